// Tool bench benchmarks the Renju searcher.
//
// The benchmark drives the searcher through a handful of fixed opening
// sequences, one ply at a time, and reports the total number of nodes
// visited and nodes searched per second, to spot non-functional
// regressions in search or evaluation.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/heatz123/renju/board"
	"github.com/heatz123/renju/config"
	"github.com/heatz123/renju/search"
)

var (
	// Fixed opening sequences, one per line of description. Each is a
	// short, uncontroversial sequence (no forbidden Black move is ever
	// reached) so the same set can be replayed at any depth.
	openings = []openingInfo{
		{
			"center exchange",
			[]board.Point{{I: 7, J: 7}, {I: 7, J: 8}, {I: 8, J: 7}, {I: 8, J: 8}, {I: 6, J: 6}},
		},
		{
			"diagonal skirmish",
			[]board.Point{{I: 7, J: 7}, {I: 6, J: 7}, {I: 8, J: 8}, {I: 6, J: 8}, {I: 9, J: 9}, {I: 5, J: 6}},
		},
		{
			"offset approach",
			[]board.Point{{I: 7, J: 7}, {I: 8, J: 9}, {I: 7, J: 6}, {I: 9, J: 8}},
		},
	}

	depth = flag.Int("depth", 3, "search depth")
)

type openingInfo struct {
	description string
	moves       []board.Point
}

// eval replays an opening through a fresh Searcher, alternating colors
// starting with Black, and returns the total number of AlphaBeta nodes
// visited searching from every position the opening passes through.
func (o *openingInfo) eval(boardSize, depth int) uint64 {
	cfg := config.DefaultConfig()
	cfg.BoardSize = boardSize
	cfg.MaxDepth = depth
	s := search.New(cfg, nil)

	b := board.New(boardSize)
	turn := board.Black
	lastMove := board.Move{I: -1, J: -1, Color: board.White}

	for _, p := range o.moves {
		move := board.Move{I: p.I, J: p.J, Color: turn}
		b.Set(p, turn)
		lastMove = move
		turn = turn.Opposite()

		s.AlphaBeta(b, cfg.MaxDepth, nil, nil, turn, lastMove)
	}
	return s.Stats.Nodes
}

// evalAll evaluates every opening and returns total nodes and nodes
// per second.
func evalAll(boardSize, depth int) (uint64, float64) {
	start := time.Now()
	var nodes uint64
	for i := range openings {
		n := openings[i].eval(boardSize, depth)
		nodes += n
		log.Printf("#%d %d %s\n", i, n, openings[i].description)
	}
	elapsed := time.Since(start)
	return nodes, float64(nodes) / elapsed.Seconds()
}

func main() {
	flag.Parse()
	nodes, nps := evalAll(15, *depth)
	fmt.Printf("nodes %d\n", nodes)
	fmt.Printf("  nps %.0f\n", nps)
}

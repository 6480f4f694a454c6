// Perft is a node-counting benchmark for the Renju move tree.
//
// It counts how many distinct legal-move sequences exist from a
// starting position up to a given depth, the same technique chess
// engines use to debug and benchmark move generation - adapted here
// to count legal Renju placements instead of legal chess moves, using
// the board's Zobrist hash to memoize subtrees already counted at the
// same depth.
//
// Example:
//
//	$ go run ./perft --size 9 --max_depth 3
//	depth        nodes  kNPS   elapsed
//	-----+------------+------+-------
//	    1           81   ...  ...
//	    2         6480   ...  ...
//	    3       511920   ...  ...
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/heatz123/renju/board"
	"github.com/heatz123/renju/rule"
)

var (
	size     = flag.Int("size", 9, "board side length N")
	minDepth = flag.Int("min_depth", 1, "minimum depth to search (inclusive)")
	maxDepth = flag.Int("max_depth", 3, "maximum depth to search (inclusive)")
	depthF   = flag.Int("depth", 0, "if non zero, searches only this depth")
)

type hashEntry struct {
	hash  uint64
	depth int
	nodes uint64
}

const hashSize = 1 << 20

// perft counts the legal-move tree rooted at b, alternating turn,
// down to depth plies. hashTable memoizes (zobrist, remaining depth) ->
// nodes; each entry records its remaining depth and only a lookup at
// that same depth hits it, so main reuses one table for every depth of
// the sweep.
func perft(b *board.Board, r *rule.Rule, turn board.Color, depth int, hashTable []hashEntry) uint64 {
	if depth == 0 {
		return 1
	}

	idx := b.Zobrist() % uint64(len(hashTable))
	if hashTable[idx].depth == depth && hashTable[idx].hash == b.Zobrist() {
		return hashTable[idx].nodes
	}

	var nodes uint64
	n := b.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p := board.Point{I: i, J: j}
			move := board.Move{I: i, J: j, Color: turn}
			if !r.IsLegalMove(b, move) {
				continue
			}
			b.Set(p, turn)
			nodes += perft(b, r, turn.Opposite(), depth-1, hashTable)
			b.Set(p, board.Empty)
		}
	}

	hashTable[idx] = hashEntry{hash: b.Zobrist(), depth: depth, nodes: nodes}
	return nodes
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	if *depthF != 0 {
		*minDepth = *depthF
		*maxDepth = *depthF
	}

	fmt.Printf("Searching %dx%d empty board\n", *size, *size)
	fmt.Printf("depth        nodes  kNPS   elapsed\n")
	fmt.Printf("-----+------------+------+-------\n")

	hashTable := make([]hashEntry, hashSize)
	r := rule.New()

	for d := *minDepth; d <= *maxDepth; d++ {
		b := board.New(*size)
		start := time.Now()
		nodes := perft(b, r, board.Black, d, hashTable)
		elapsed := time.Since(start)

		nps := float64(nodes) / elapsed.Seconds() / 1e3
		fmt.Printf("   %2d %12d %6.f %v\n", d, nodes, nps, elapsed)
	}
}

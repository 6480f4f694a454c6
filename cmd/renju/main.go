// Command renju runs an AI-vs-AI demonstration match: a minimal
// stand-in for the excluded arena/transport shell, showing how Config,
// Game, Searcher and eventloop.Loop compose end to end.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/heatz123/renju/board"
	"github.com/heatz123/renju/config"
	"github.com/heatz123/renju/eventloop"
	"github.com/heatz123/renju/game"
	"github.com/heatz123/renju/search"
)

var (
	boardSize = flag.Int("size", 15, "board side length N")
	depth     = flag.Int("depth", 3, "search depth")
	twoWeight = flag.Int("w-two", 1, "evaluator weight for a two")
	threeHalf = flag.Int("w-half-open-three", 10, "evaluator weight for a half-open three")
	threeOpen = flag.Int("w-open-three", 100, "evaluator weight for a non-closed open three")
	fourW     = flag.Int("w-four", 150, "evaluator weight for a four")
)

func main() {
	flag.Parse()

	log.SetOutput(os.Stdout)
	log.SetPrefix("renju: ")
	log.SetFlags(0)

	cfg := config.Config{
		BoardSize: *boardSize,
		MaxDepth:  *depth,
		Weights: config.Weights{
			Two:           *twoWeight,
			HalfOpenThree: *threeHalf,
			OpenThree:     *threeOpen,
			Four:          *fourW,
		},
	}

	g := game.New(cfg)
	loop := eventloop.NewLoop(search.New(cfg, nil), 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	log.Printf("new match %s, %dx%d board, depth %d", g.ID, cfg.BoardSize, cfg.BoardSize, cfg.MaxDepth)

	for !g.IsGameOver() {
		turn := g.NextTurn()
		action := <-loop.Submit(g, turn)

		if action.Pass {
			if err := g.PassMove(turn); err != nil {
				log.Fatalf("%v passed but the game rejected it: %v", turn, err)
			}
			log.Printf("%v passes", turn)
			continue
		}

		if err := g.PlayMove(action.Move); err != nil {
			log.Fatalf("%v chose an illegal move %v: %v", turn, action.Move.Point(), err)
		}
		log.Printf("%v plays %v", turn, action.Move.Point())
	}

	printBoard(g.Board())
	if g.Winner() == board.Empty {
		log.Println("match ended in a mutual-pass draw")
	} else {
		log.Printf("%v wins", g.Winner())
	}
}

func printBoard(b *board.Board) {
	for i := 0; i < b.Size(); i++ {
		for j := 0; j < b.Size(); j++ {
			switch b.Get(board.Point{I: i, J: j}) {
			case board.Black:
				fmt.Print("X ")
			case board.White:
				fmt.Print("O ")
			default:
				fmt.Print(". ")
			}
		}
		fmt.Println()
	}
}

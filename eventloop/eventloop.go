// Package eventloop is the one piece of concurrency the core exposes:
// a single worker goroutine draining a request queue and handing back
// the search's chosen action over a per-request reply channel - one
// consumer, one queue, threaded through a Go channel instead of an
// async queue or a stdin scanner.
package eventloop

import (
	"context"

	"github.com/heatz123/renju/board"
	"github.com/heatz123/renju/game"
	"github.com/heatz123/renju/search"
)

// Action is what the search hands back to the orchestrator: either a
// move, or Pass when no legal candidate exists.
type Action struct {
	Pass bool
	Move board.Move
}

// request pairs a game snapshot with the channel its chosen Action is
// delivered on.
type request struct {
	game  *game.Game
	color board.Color
	reply chan Action
}

// Loop runs one Searcher behind a single worker goroutine. The core
// is synchronous and not safe for concurrent search on the same
// Board; routing every request through one worker is what makes that
// safe.
type Loop struct {
	searcher *search.Searcher
	requests chan request
}

// NewLoop returns a Loop backed by searcher, with room for queued
// capacity pending requests before Submit blocks.
func NewLoop(searcher *search.Searcher, capacity int) *Loop {
	return &Loop{
		searcher: searcher,
		requests: make(chan request, capacity),
	}
}

// Run drains the request queue until ctx is cancelled. It is meant to
// run in its own goroutine for the lifetime of the orchestrator.
func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-l.requests:
			move := l.searcher.ChooseMove(req.game)
			var action Action
			if move == nil {
				action = Action{Pass: true}
			} else {
				action = Action{Move: board.Move{I: move.I, J: move.J, Color: req.color}}
			}
			req.reply <- action
		}
	}
}

// Submit enqueues g for a move decision and returns a channel that
// receives exactly one Action once the worker gets to it.
func (l *Loop) Submit(g *game.Game, color board.Color) <-chan Action {
	reply := make(chan Action, 1)
	l.requests <- request{game: g, color: color, reply: reply}
	return reply
}

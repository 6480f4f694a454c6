// Package game sequences turns over a Board: it is the sole writer of
// a match's Board, applies play/pass/force-win, and is the one place
// illegal-move and wrong-turn errors are raised to an orchestrator.
package game

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/heatz123/renju/board"
	"github.com/heatz123/renju/config"
	"github.com/heatz123/renju/rule"
)

// ErrWrongTurn is returned by PlayMove/PassMove when the color making
// the request is not the side to move.
var ErrWrongTurn = errors.New("wrong turn")

// ErrGameOver is returned by PlayMove/PassMove once IsGameOver is
// true; no state-advancing operation is accepted past that point.
var ErrGameOver = errors.New("game is over")

// Game is a single match's turn sequencer. It owns the Board
// exclusively for the match's duration; Rule only ever borrows it.
type Game struct {
	ID uuid.UUID

	board    *board.Board
	rule     *rule.Rule
	history  []board.Move
	nextTurn board.Color
	gameOver bool
	winner   board.Color

	// lastWasPass records whether the previous state-advancing call
	// was a pass, so a second pass (necessarily by the other side,
	// since a lone pass already flips nextTurn) ends the match.
	lastWasPass bool
}

// New starts an empty match on a board of cfg.BoardSize, Black to move.
func New(cfg config.Config) *Game {
	return &Game{
		ID:       uuid.New(),
		board:    board.New(cfg.BoardSize),
		rule:     rule.New(),
		nextTurn: board.Black,
	}
}

// Board returns the match's board. Callers must not mutate it outside
// Game's own operations and Rule's scratch-write discipline.
func (g *Game) Board() *board.Board { return g.board }

// History returns the sequence of moves played so far, earliest first.
func (g *Game) History() []board.Move {
	out := make([]board.Move, len(g.history))
	copy(out, g.history)
	return out
}

// NextTurn returns the color to move, or board.Empty once the game is over.
func (g *Game) NextTurn() board.Color { return g.nextTurn }

// Winner returns the winning color, or board.Empty if there is none
// (game still in progress, or it ended in a mutual-pass draw).
func (g *Game) Winner() board.Color { return g.winner }

// IsGameOver reports whether the match has concluded.
func (g *Game) IsGameOver() bool { return g.gameOver }

// PlayMove validates and applies move. It requires move.Color ==
// NextTurn and a Renju-legal placement; on a win it ends the game. The
// board is left mutated only when the move is accepted.
func (g *Game) PlayMove(move board.Move) error {
	if g.gameOver {
		return ErrGameOver
	}
	if move.Color != g.nextTurn {
		return errors.Wrapf(ErrWrongTurn, "%v to move, got %v", g.nextTurn, move.Color)
	}
	if err := g.rule.CheckLegalMove(g.board, move); err != nil {
		return err
	}

	g.board.Set(move.Point(), move.Color)
	g.history = append(g.history, move)
	g.lastWasPass = false

	if g.rule.IsWin(g.board, move) {
		g.winner = move.Color
		g.gameOver = true
		g.nextTurn = board.Empty
		return nil
	}
	g.nextTurn = move.Color.Opposite()
	return nil
}

// PassMove requires color == NextTurn. Two consecutive passes (which,
// since a single pass already flips NextTurn, are necessarily by
// different sides) end the match with no winner; otherwise the turn
// flips.
func (g *Game) PassMove(color board.Color) error {
	if g.gameOver {
		return ErrGameOver
	}
	if color != g.nextTurn {
		return errors.Wrapf(ErrWrongTurn, "%v to move, got %v", g.nextTurn, color)
	}

	if g.lastWasPass {
		g.gameOver = true
		g.nextTurn = board.Empty
		return nil
	}
	g.lastWasPass = true
	g.nextTurn = color.Opposite()
	return nil
}

// ForceWin ends the match immediately in color's favor, for
// resignation or disconnect. It is a no-op on the board itself.
func (g *Game) ForceWin(color board.Color) {
	g.gameOver = true
	g.nextTurn = board.Empty
	g.winner = color
}

package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatz123/renju/board"
	"github.com/heatz123/renju/config"
	"github.com/heatz123/renju/game"
)

func newGame() *game.Game {
	return game.New(config.DefaultConfig())
}

func TestOpeningCenterMove(t *testing.T) {
	g := newGame()
	err := g.PlayMove(board.Move{I: 7, J: 7, Color: board.Black})
	require.NoError(t, err)
	assert.Len(t, g.History(), 1)
	assert.Equal(t, board.White, g.NextTurn())
	assert.False(t, g.IsGameOver())
}

func TestSimpleFiveWinEndsGame(t *testing.T) {
	g := newGame()
	for _, p := range []board.Point{{I: 7, J: 3}, {I: 7, J: 4}, {I: 7, J: 5}, {I: 7, J: 6}} {
		g.Board().Set(p, board.Black)
	}
	g.Board().Set(board.Point{I: 7, J: 2}, board.White)

	require.NoError(t, g.PlayMove(board.Move{I: 7, J: 7, Color: board.Black}))
	assert.True(t, g.IsGameOver())
	assert.Equal(t, board.Black, g.Winner())
	assert.Equal(t, board.Empty, g.NextTurn())
}

func TestWrongTurnRejected(t *testing.T) {
	g := newGame()
	err := g.PlayMove(board.Move{I: 7, J: 7, Color: board.White})
	require.Error(t, err)
	assert.ErrorIs(t, err, game.ErrWrongTurn)
	assert.Len(t, g.History(), 0)
}

func TestIllegalMoveDoesNotAdvanceTurn(t *testing.T) {
	g := newGame()
	for _, p := range []board.Point{{I: 7, J: 3}, {I: 7, J: 4}, {I: 7, J: 5}, {I: 7, J: 6}, {I: 7, J: 8}} {
		g.Board().Set(p, board.Black)
	}
	err := g.PlayMove(board.Move{I: 7, J: 7, Color: board.Black})
	require.Error(t, err)
	assert.Equal(t, board.Black, g.NextTurn())
	assert.Len(t, g.History(), 0)
}

func TestPassPassDraw(t *testing.T) {
	g := newGame()
	require.NoError(t, g.PassMove(board.Black))
	assert.False(t, g.IsGameOver())
	assert.Equal(t, board.White, g.NextTurn())

	require.NoError(t, g.PassMove(board.White))
	assert.True(t, g.IsGameOver())
	assert.Equal(t, board.Empty, g.Winner())
	assert.Equal(t, board.Empty, g.NextTurn())
}

func TestHistoryLengthMatchesNonEmptyCells(t *testing.T) {
	g := newGame()
	moves := []board.Move{
		{I: 7, J: 7, Color: board.Black},
		{I: 8, J: 8, Color: board.White},
		{I: 6, J: 6, Color: board.Black},
	}
	for _, m := range moves {
		require.NoError(t, g.PlayMove(m))
	}
	assert.Len(t, g.History(), 3)

	count := 0
	g.Board().Each(func(_ board.Point, c board.Color) {
		if c != board.Empty {
			count++
		}
	})
	assert.Equal(t, len(g.History()), count)
}

func TestForceWinEndsGameWithoutTouchingBoard(t *testing.T) {
	g := newGame()
	before := g.Board().Zobrist()
	g.ForceWin(board.White)
	assert.True(t, g.IsGameOver())
	assert.Equal(t, board.White, g.Winner())
	assert.Equal(t, before, g.Board().Zobrist())
}

func TestGameOverRejectsFurtherMoves(t *testing.T) {
	g := newGame()
	g.ForceWin(board.Black)
	err := g.PlayMove(board.Move{I: 0, J: 0, Color: board.Black})
	assert.ErrorIs(t, err, game.ErrGameOver)
}

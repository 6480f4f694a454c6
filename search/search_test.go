package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatz123/renju/board"
	"github.com/heatz123/renju/config"
	"github.com/heatz123/renju/game"
	"github.com/heatz123/renju/search"
)

func TestChooseMoveOpensAtCenterOnEmptyBoard(t *testing.T) {
	cfg := config.DefaultConfig()
	g := game.New(cfg)
	s := search.New(cfg, nil)

	move := s.ChooseMove(g)
	require.NotNil(t, move)
	center := cfg.BoardSize / 2
	assert.Equal(t, board.Point{I: center, J: center}, *move)
}

func TestChooseMoveTakesImmediateWin(t *testing.T) {
	cfg := config.DefaultConfig()
	g := game.New(cfg)
	require.NoError(t, g.PlayMove(board.Move{I: 0, J: 0, Color: board.Black}))
	require.NoError(t, g.PlayMove(board.Move{I: 1, J: 1, Color: board.White}))
	for _, p := range []board.Point{{I: 7, J: 3}, {I: 7, J: 4}, {I: 7, J: 5}, {I: 7, J: 6}} {
		g.Board().Set(p, board.Black)
	}

	s := search.New(cfg, nil)
	move := s.ChooseMove(g)
	require.NotNil(t, move)
	assert.True(t, *move == board.Point{I: 7, J: 2} || *move == board.Point{I: 7, J: 7},
		"expected a move completing the open four, got %+v", *move)
}

func TestAlphaBetaReportsWinImmediately(t *testing.T) {
	cfg := config.DefaultConfig()
	b := board.New(cfg.BoardSize)
	for _, p := range []board.Point{{I: 7, J: 3}, {I: 7, J: 4}, {I: 7, J: 5}, {I: 7, J: 6}, {I: 7, J: 7}} {
		b.Set(p, board.Black)
	}
	s := search.New(cfg, nil)
	lastMove := board.Move{I: 7, J: 7, Color: board.Black}

	_, score := s.AlphaBeta(b, cfg.MaxDepth, nil, nil, board.White, lastMove)
	zero := make(search.Vector, len(score))
	assert.Equal(t, 1, score.Compare(zero), "a completed Black win must outrank a neutral position")
}

func TestVectorCompareIsLexicographic(t *testing.T) {
	a := search.Vector{1, 0, 0}
	b := search.Vector{0, 5, 5}
	assert.Equal(t, 1, a.Compare(b))
	assert.Equal(t, -1, b.Compare(a))
}

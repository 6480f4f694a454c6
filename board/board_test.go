package board_test

import (
	"testing"

	"github.com/heatz123/renju/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardGetSetInBounds(t *testing.T) {
	b := board.New(15)
	require.True(t, b.InBounds(board.Point{I: 0, J: 0}))
	require.True(t, b.InBounds(board.Point{I: 14, J: 14}))
	require.False(t, b.InBounds(board.Point{I: -1, J: 0}))
	require.False(t, b.InBounds(board.Point{I: 15, J: 0}))

	p := board.Point{I: 7, J: 7}
	assert.Equal(t, board.Empty, b.Get(p))
	b.Set(p, board.Black)
	assert.Equal(t, board.Black, b.Get(p))
}

func TestBoardOutOfBoundsReadsEmpty(t *testing.T) {
	b := board.New(9)
	assert.Equal(t, board.Empty, b.Get(board.Point{I: -5, J: 3}))
	assert.Equal(t, board.Empty, b.Get(board.Point{I: 3, J: 100}))
}

func TestZobristRoundTrips(t *testing.T) {
	b := board.New(15)
	start := b.Zobrist()

	p := board.Point{I: 3, J: 4}
	b.Set(p, board.Black)
	require.NotEqual(t, start, b.Zobrist())

	b.Set(p, board.Empty)
	assert.Equal(t, start, b.Zobrist(), "restoring a cell must restore the prior hash exactly")
}

func TestZobristDistinguishesColor(t *testing.T) {
	b1 := board.New(9)
	b2 := board.New(9)
	p := board.Point{I: 2, J: 2}
	b1.Set(p, board.Black)
	b2.Set(p, board.White)
	assert.NotEqual(t, b1.Zobrist(), b2.Zobrist())
}

func TestDirectionFrontRearOf(t *testing.T) {
	d := board.Direction{DI: 1, DJ: -1}
	p := board.Point{I: 5, J: 5}
	assert.Equal(t, board.Point{I: 4, J: 6}, d.FrontOf(p))
	assert.Equal(t, board.Point{I: 6, J: 4}, d.RearOf(p))
}

func TestCountSuccessionCountsCenterAndBothSides(t *testing.T) {
	b := board.New(15)
	d := board.Direction{DI: 1, DJ: 0}
	for _, i := range []int{3, 4, 6, 7} {
		b.Set(board.Point{I: i, J: 4}, board.Black)
	}
	// gap at i=5: place it now so the run is contiguous 3..7
	b.Set(board.Point{I: 5, J: 4}, board.Black)

	move := board.Move{I: 5, J: 4, Color: board.Black}
	assert.Equal(t, 5, board.CountSuccession(b, move, d))
}

func TestCountSuccessionStopsAtOpponentOrEdge(t *testing.T) {
	b := board.New(15)
	d := board.Direction{DI: 0, DJ: 1}
	b.Set(board.Point{I: 0, J: 0}, board.Black)
	b.Set(board.Point{I: 0, J: 1}, board.Black)
	b.Set(board.Point{I: 0, J: 2}, board.White)

	move := board.Move{I: 0, J: 0, Color: board.Black}
	assert.Equal(t, 2, board.CountSuccession(b, move, d))
}

func TestCloneIsIndependent(t *testing.T) {
	b := board.New(9)
	p := board.Point{I: 1, J: 1}
	b.Set(p, board.Black)
	clone := b.Clone()
	clone.Set(p, board.White)
	assert.Equal(t, board.Black, b.Get(p))
	assert.Equal(t, board.White, clone.Get(p))
	assert.NotEqual(t, b.Zobrist(), clone.Zobrist())
}

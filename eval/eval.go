// eval.go scores a position as a lexicographically-compared tuple
// expressing the threat hierarchy from Black's point of view.

package eval

import (
	"github.com/heatz123/renju/board"
	"github.com/heatz123/renju/config"
	"github.com/heatz123/renju/rule"
)

// Score is a fixed-length, lexicographically-compared tuple: index 0
// is most significant, index 5 least. Positive favors Black, negative
// favors White.
type Score [6]int

// Compare returns -1, 0 or 1 as s is less than, equal to, or greater
// than other, comparing component by component from index 0.
func (s Score) Compare(other Score) int {
	for i := range s {
		if s[i] < other[i] {
			return -1
		}
		if s[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Less reports whether s sorts strictly before other.
func (s Score) Less(other Score) bool { return s.Compare(other) < 0 }

// winScore is the tuple a completed five-in-a-row evaluates to, sign
// adjusted by the winner's color.
var winScore = Score{1, 1, 1, 1, 1, 1}

// Evaluator scores boards against a shared Rule instance (so its
// threat-predicate calls share the legality memo) and a set of
// per-shape weights.
type Evaluator struct {
	rule    *rule.Rule
	weights config.Weights
}

// New returns an Evaluator backed by r and weighted by w.
func New(r *rule.Rule, w config.Weights) *Evaluator {
	return &Evaluator{rule: r, weights: w}
}

// rowKey identifies a Row independent of which of its cells was used
// as ExtractRows' center, so scanning every stone of a color never
// counts the same physical row twice.
type rowKey struct {
	first, last board.Point
	direction   board.Direction
	gap         board.Point
	hasGap      bool
}

func keyOf(r rule.Row) rowKey {
	k := rowKey{first: r.Cells[0], last: r.Cells[len(r.Cells)-1], direction: r.Direction}
	if r.InnerBlank != nil {
		k.hasGap = true
		k.gap = *r.InnerBlank
	}
	return k
}

// rowsFor enumerates every distinct Row of color anywhere on b.
func rowsFor(b *board.Board, color board.Color) []rule.Row {
	seen := make(map[rowKey]bool)
	var rows []rule.Row
	b.Each(func(p board.Point, c board.Color) {
		if c != color {
			return
		}
		for _, row := range rule.ExtractRows(b, board.Move{I: p.I, J: p.J, Color: color}) {
			k := keyOf(row)
			if seen[k] {
				continue
			}
			seen[k] = true
			rows = append(rows, row)
		}
	})
	return rows
}

// sideTotals is the per-color tally this_score and next_score both
// reduce to: a weighted accumulator plus the two threat flags folded
// into the tuple.
type sideTotals struct {
	accum           int
	openFour        bool
	twoPlyForcedWin bool
	onePlyThreeFour bool
}

func (e *Evaluator) totals(b *board.Board, color board.Color) sideTotals {
	var t sideTotals
	fours, openThrees := 0, 0

	for _, row := range rowsFor(b, color) {
		switch row.Len() {
		case 2:
			t.accum += e.weights.Two
		case 3:
			closed := e.rule.IsExplicitlyClosedThree(b, row)
			open := e.rule.IsOpenThree(b, row) && !closed
			if open {
				openThrees++
				t.accum += e.weights.OpenThree
			} else if e.rule.IsHalfOpenThree(b, row) {
				t.accum += e.weights.HalfOpenThree
			}
		case 4:
			if e.rule.IsFour(b, row) {
				fours++
				t.accum += e.weights.Four
				if e.rule.IsOpenFour(b, row) {
					t.openFour = true
				}
			}
		}
	}

	t.onePlyThreeFour = openThrees >= 1 && fours >= 1

	switch color {
	case board.Black:
		t.twoPlyForcedWin = t.openFour
	case board.White:
		t.twoPlyForcedWin = t.openFour || (openThrees+fours >= 2 && (t.openFour || fours >= 2))
	}
	return t
}

// Score computes the evaluator's 6-tuple for b, given the color and
// point of the move that produced this position. last_move is assumed
// to already be on the board.
func (e *Evaluator) Score(b *board.Board, lastMove board.Move) Score {
	color := lastMove.Color

	if e.rule.IsWin(b, lastMove) {
		return signed(color, winScore)
	}

	this := e.totals(b, color)
	next := e.totals(b, color.Opposite())

	var combined Score
	combined[1] = -bit(next.twoPlyForcedWin)
	combined[2] = bit(this.twoPlyForcedWin)
	combined[3] = -bit(next.onePlyThreeFour)
	combined[4] = bit(this.onePlyThreeFour)
	combined[5] = this.accum - next.accum

	return signed(color, combined)
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}

func signed(color board.Color, s Score) Score {
	sign := int(color)
	var out Score
	for i, v := range s {
		out[i] = sign * v
	}
	return out
}

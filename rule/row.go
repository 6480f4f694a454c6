// row.go extracts the row shapes a stone participates in, per direction.

package rule

import "github.com/heatz123/renju/board"

// Row is an ephemeral, ordered run of same-colored cells along one
// direction, with at most one interior gap. Row instances are built
// per classification query and never shared across calls.
type Row struct {
	Cells      []board.Point
	InnerBlank *board.Point
	Direction  board.Direction
	Color      board.Color
}

// FrontBlank returns the blank just in front of the row's first cell.
func (r Row) FrontBlank() board.Point {
	return r.Direction.FrontOf(r.Cells[0])
}

// RearBlank returns the blank just behind the row's last cell.
func (r Row) RearBlank() board.Point {
	return r.Direction.RearOf(r.Cells[len(r.Cells)-1])
}

// Len returns the number of occupied cells in the row (2, 3, or 4).
func (r Row) Len() int {
	return len(r.Cells)
}

// run is one side's walk outward from the center cell: a contiguous
// span of same-colored cells, optionally followed (after a single
// blank) by another contiguous span.
type run struct {
	inner []board.Point // contiguous cells touching the center, nearest-first
	gap   *board.Point  // the one blank separating inner from outer, if any
	outer []board.Point // cells beyond the gap, nearest-first
}

// walk extends outward from center in direction step (either d.FrontOf
// or d.RearOf repeatedly), classifying cells into inner/gap/outer.
func walk(b *board.Board, center board.Point, color board.Color, step func(board.Point) board.Point) run {
	var r run
	p := step(center)
	for b.Get(p) == color {
		r.inner = append(r.inner, p)
		p = step(p)
	}
	if !b.InBounds(p) || b.Get(p) != board.Empty {
		return r
	}
	gap := p
	r.gap = &gap
	p = step(p)
	for b.Get(p) == color {
		r.outer = append(r.outer, p)
		p = step(p)
	}
	return r
}

// ExtractRows enumerates, per direction, every Row of length 2, 3 or 4
// that move's point participates in, assuming move.Color already
// occupies the board at that point (the caller places the stone
// first when classifying a hypothetical move).
func ExtractRows(b *board.Board, move board.Move) []Row {
	center := move.Point()
	color := move.Color

	var rows []Row
	for _, d := range board.Directions {
		front := walk(b, center, color, d.FrontOf)
		rear := walk(b, center, color, d.RearOf)

		// The center run: front.inner reversed, the center cell, rear.inner.
		centerRun := make([]board.Point, 0, 1+len(front.inner)+len(rear.inner))
		for i := len(front.inner) - 1; i >= 0; i-- {
			centerRun = append(centerRun, front.inner[i])
		}
		centerRun = append(centerRun, center)
		centerRun = append(centerRun, rear.inner...)

		if n := len(centerRun); n >= 2 && n <= 4 {
			rows = append(rows, Row{Cells: append([]board.Point(nil), centerRun...), Direction: d, Color: color})
		}

		if front.gap != nil && len(front.outer) > 0 {
			total := len(centerRun) + len(front.outer)
			if total >= 2 && total <= 4 {
				cells := make([]board.Point, 0, total)
				for i := len(front.outer) - 1; i >= 0; i-- {
					cells = append(cells, front.outer[i])
				}
				cells = append(cells, centerRun...)
				gap := *front.gap
				rows = append(rows, Row{Cells: cells, InnerBlank: &gap, Direction: d, Color: color})
			}
		}

		if rear.gap != nil && len(rear.outer) > 0 {
			total := len(centerRun) + len(rear.outer)
			if total >= 2 && total <= 4 {
				cells := make([]board.Point, 0, total)
				cells = append(cells, centerRun...)
				cells = append(cells, rear.outer...)
				gap := *rear.gap
				rows = append(rows, Row{Cells: cells, InnerBlank: &gap, Direction: d, Color: color})
			}
		}
	}
	return rows
}

// rule.go implements Renju legality, the win test, and the
// mutually-recursive threat predicates (is_four, is_open_three, ...).
//
// The legality test and the threat predicates call each other: whether
// a three is "open" depends on whether its extensions are legal moves,
// and legality itself depends on counting fours and open-threes. They
// are implemented as methods sharing one Rule receiver - never as free
// functions split across packages - so the mutual recursion never
// becomes an import cycle.

package rule

import (
	"github.com/heatz123/renju/board"
	"github.com/pkg/errors"
)

// ErrIllegalMove is the sentinel wrapped by CheckLegalMove's diagnostic
// errors. Use errors.Is(err, ErrIllegalMove) at the orchestrator boundary.
var ErrIllegalMove = errors.New("illegal move")

// legalKey is the memo key for the legality cache: the board's
// Zobrist hash (taken with the candidate cell still empty) plus the
// candidate move itself.
type legalKey struct {
	hash  uint64
	point board.Point
	color board.Color
}

// Rule bundles Renju legality, the win test, and the threat predicates
// over a single memoization cache. Memoization is private to one Rule
// instance and must be cleared between games (see Reset) since it is
// keyed on board state, not on any particular game identity.
type Rule struct {
	legalMemo map[legalKey]bool
}

// New returns a Rule with an empty memo cache.
func New() *Rule {
	return &Rule{legalMemo: make(map[legalKey]bool)}
}

// Reset clears the memo cache. Call between games, or whenever a Board
// is mutated outside this Rule's own scratch-write discipline.
func (r *Rule) Reset() {
	r.legalMemo = make(map[legalKey]bool)
}

// withStone places color at p, runs fn, then restores whatever was at
// p before the call - on every return path, including a panic unwind.
// This is the one scratch-write guard every threat predicate and the
// legality test routes through.
func (r *Rule) withStone(b *board.Board, p board.Point, color board.Color, fn func()) {
	prev := b.Get(p)
	b.Set(p, color)
	defer b.Set(p, prev)
	fn()
}

// IsLegalMove reports whether move may be played on b. Black moves are
// checked for overline, double-four and double-open-three; White
// moves are only checked for bounds and occupancy. Leaves b unchanged.
func (r *Rule) IsLegalMove(b *board.Board, move board.Move) bool {
	p := move.Point()
	if !b.InBounds(p) || b.Get(p) != board.Empty {
		return false
	}
	if move.Color == board.White {
		return true
	}

	key := legalKey{hash: b.Zobrist(), point: p, color: move.Color}
	if v, ok := r.legalMemo[key]; ok {
		return v
	}

	var result bool
	r.withStone(b, p, board.Black, func() {
		result = r.blackPlacementIsLegal(b, move)
	})
	r.legalMemo[key] = result
	return result
}

// blackPlacementIsLegal assumes move.Color (Black) is already on the
// board at move's point; it only classifies, never mutates.
func (r *Rule) blackPlacementIsLegal(b *board.Board, move board.Move) bool {
	for _, d := range board.Directions {
		if board.CountSuccession(b, move, d) >= 6 {
			return false
		}
	}

	rows := ExtractRows(b, move)

	fours := 0
	for _, row := range rows {
		if row.Len() == 4 && r.IsFour(b, row) {
			fours++
			if fours >= 2 {
				return false
			}
		}
	}

	openThrees := 0
	for _, row := range rows {
		if row.Len() == 3 && r.IsOpenThree(b, row) && !r.IsExplicitlyClosedThree(b, row) {
			openThrees++
			if openThrees >= 2 {
				return false
			}
		}
	}

	return true
}

// CheckLegalMove is the diagnostic counterpart to IsLegalMove: it
// neither reads nor stores a memo entry for move itself (the threat
// predicates it calls still go through IsLegalMove and its cache), and
// on rejection returns
// a wrapped ErrIllegalMove describing why, for surfacing to a caller
// (e.g. Game.PlayMove) rather than for use inside the recursive
// predicate network.
func (r *Rule) CheckLegalMove(b *board.Board, move board.Move) error {
	p := move.Point()
	if !b.InBounds(p) {
		return errors.Wrapf(ErrIllegalMove, "%v is out of bounds", p)
	}
	if b.Get(p) != board.Empty {
		return errors.Wrapf(ErrIllegalMove, "%v is already occupied", p)
	}
	if move.Color == board.White {
		return nil
	}

	var reason string
	r.withStone(b, p, board.Black, func() {
		for _, d := range board.Directions {
			if board.CountSuccession(b, move, d) >= 6 {
				reason = "would create an overline"
				return
			}
		}
		rows := ExtractRows(b, move)
		fours := 0
		for _, row := range rows {
			if row.Len() == 4 && r.IsFour(b, row) {
				fours++
			}
		}
		if fours >= 2 {
			reason = "would create a double four"
			return
		}
		openThrees := 0
		for _, row := range rows {
			if row.Len() == 3 && r.IsOpenThree(b, row) && !r.IsExplicitlyClosedThree(b, row) {
				openThrees++
			}
		}
		if openThrees >= 2 {
			reason = "would create a double open three"
		}
	})
	if reason != "" {
		return errors.Wrapf(ErrIllegalMove, "%v: %s", p, reason)
	}
	return nil
}

// IsWin reports whether move completes a win: exactly five for Black,
// five-or-more for White. Assumes move.Color already occupies the
// board at move's point (the caller writes the cell first).
func (r *Rule) IsWin(b *board.Board, move board.Move) bool {
	for _, d := range board.Directions {
		n := board.CountSuccession(b, move, d)
		if move.Color == board.White {
			if n >= 5 {
				return true
			}
		} else if n == 5 {
			return true
		}
	}
	return false
}

// IsFour reports whether row admits a legal extension completing a
// five-in-a-row.
func (r *Rule) IsFour(b *board.Board, row Row) bool {
	if row.InnerBlank != nil {
		return r.IsLegalMove(b, board.Move{I: row.InnerBlank.I, J: row.InnerBlank.J, Color: row.Color})
	}
	fb, rb := row.FrontBlank(), row.RearBlank()
	return r.IsLegalMove(b, board.Move{I: fb.I, J: fb.J, Color: row.Color}) ||
		r.IsLegalMove(b, board.Move{I: rb.I, J: rb.J, Color: row.Color})
}

// IsOpenFour reports whether row is a pure run (no gap) whose both
// ends are legal placements.
func (r *Rule) IsOpenFour(b *board.Board, row Row) bool {
	if row.InnerBlank != nil {
		return false
	}
	fb, rb := row.FrontBlank(), row.RearBlank()
	return r.IsLegalMove(b, board.Move{I: fb.I, J: fb.J, Color: row.Color}) &&
		r.IsLegalMove(b, board.Move{I: rb.I, J: rb.J, Color: row.Color})
}

// IsOpenThree reports whether some empty extension of row produces an
// open four.
func (r *Rule) IsOpenThree(b *board.Board, row Row) bool {
	color := row.Color
	if row.InnerBlank != nil {
		g := *row.InnerBlank
		fb, rb := row.FrontBlank(), row.RearBlank()
		var ok bool
		r.withStone(b, g, color, func() {
			ok = r.IsLegalMove(b, board.Move{I: fb.I, J: fb.J, Color: color}) &&
				r.IsLegalMove(b, board.Move{I: rb.I, J: rb.J, Color: color})
		})
		return ok
	}

	fb, rb := row.FrontBlank(), row.RearBlank()

	var extendFront bool
	r.withStone(b, fb, color, func() {
		beyond := row.Direction.FrontOf(fb)
		extendFront = r.IsLegalMove(b, board.Move{I: beyond.I, J: beyond.J, Color: color}) &&
			r.IsLegalMove(b, board.Move{I: rb.I, J: rb.J, Color: color})
	})
	if extendFront {
		return true
	}

	var extendRear bool
	r.withStone(b, rb, color, func() {
		beyond := row.Direction.RearOf(rb)
		extendRear = r.IsLegalMove(b, board.Move{I: fb.I, J: fb.J, Color: color}) &&
			r.IsLegalMove(b, board.Move{I: beyond.I, J: beyond.J, Color: color})
	})
	return extendRear
}

// IsHalfOpenThree is IsOpenThree relaxed to require only one of the
// two endpoint legalities after extension.
func (r *Rule) IsHalfOpenThree(b *board.Board, row Row) bool {
	color := row.Color
	if row.InnerBlank != nil {
		g := *row.InnerBlank
		fb, rb := row.FrontBlank(), row.RearBlank()
		var ok bool
		r.withStone(b, g, color, func() {
			ok = r.IsLegalMove(b, board.Move{I: fb.I, J: fb.J, Color: color}) ||
				r.IsLegalMove(b, board.Move{I: rb.I, J: rb.J, Color: color})
		})
		return ok
	}

	fb, rb := row.FrontBlank(), row.RearBlank()

	var extendFront bool
	r.withStone(b, fb, color, func() {
		beyond := row.Direction.FrontOf(fb)
		extendFront = r.IsLegalMove(b, board.Move{I: beyond.I, J: beyond.J, Color: color}) ||
			r.IsLegalMove(b, board.Move{I: rb.I, J: rb.J, Color: color})
	})
	if extendFront {
		return true
	}

	var extendRear bool
	r.withStone(b, rb, color, func() {
		beyond := row.Direction.RearOf(rb)
		extendRear = r.IsLegalMove(b, board.Move{I: fb.I, J: fb.J, Color: color}) ||
			r.IsLegalMove(b, board.Move{I: beyond.I, J: beyond.J, Color: color})
	})
	return extendRear
}

// IsExplicitlyClosedThree cheaply rules out "closed" threes - ones
// whose extensions are blocked by the board edge, an opponent stone,
// or a same-color stone on the second-step cell - from the
// double-three count.
func (r *Rule) IsExplicitlyClosedThree(b *board.Board, row Row) bool {
	if row.Len() != 3 {
		return false
	}
	opponent := row.Color.Opposite()
	fb, rb := row.FrontBlank(), row.RearBlank()
	fbBlocked := !b.InBounds(fb) || b.Get(fb) == opponent
	rbBlocked := !b.InBounds(rb) || b.Get(rb) == opponent
	if fbBlocked && rbBlocked {
		return true
	}

	if row.InnerBlank == nil {
		beyondFb := row.Direction.FrontOf(fb)
		beyondRb := row.Direction.RearOf(rb)
		if b.InBounds(beyondFb) && b.Get(beyondFb) == row.Color {
			return true
		}
		if b.InBounds(beyondRb) && b.Get(beyondRb) == row.Color {
			return true
		}
	}
	return false
}

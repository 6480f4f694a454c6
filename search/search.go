// search.go implements depth-limited alpha-beta search over candidate
// placements, ordered by evaluator score, with a per-search
// transposition memo keyed on the board's Zobrist hash.

package search

import (
	"sort"

	"github.com/heatz123/renju/board"
	"github.com/heatz123/renju/config"
	"github.com/heatz123/renju/eval"
	"github.com/heatz123/renju/game"
	"github.com/heatz123/renju/rule"
)

// candidateCap is the number of ordered candidates explored at each
// node before pruning, except at the root while the running best is
// still not better than a neutral position.
const candidateCap = 10

// Vector is a depth-indexed prefix (length cfg.MaxDepth) followed by
// an eval.Score (6 slots), compared lexicographically from index 0.
// The prefix lets a win discovered with more search budget remaining
// outrank an equally-final win found deeper in the tree.
type Vector []int

// Compare returns -1, 0 or 1 as v sorts before, equal to, or after
// other. Both vectors must share the same length within one search.
func (v Vector) Compare(other Vector) int {
	for i := range v {
		if v[i] < other[i] {
			return -1
		}
		if v[i] > other[i] {
			return 1
		}
	}
	return 0
}

func (v Vector) negate() Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = -x
	}
	return out
}

// Searcher runs AlphaBeta over a shared Rule and Evaluator. A
// Searcher is reused across searches; its transposition memo is
// scoped to one search and reset whenever AlphaBeta is entered at
// cfg.MaxDepth (the root of a search).
type Searcher struct {
	cfg   config.Config
	rule  *rule.Rule
	eval  *eval.Evaluator
	log   Logger
	Stats Stats

	memo map[uint64]memoEntry
}

type memoEntry struct {
	move  *board.Point
	score Vector
}

// New returns a Searcher configured by cfg, logging to log (NulLogger
// if nil).
func New(cfg config.Config, log Logger) *Searcher {
	if log == nil {
		log = NulLogger{}
	}
	r := rule.New()
	return &Searcher{
		cfg:  cfg,
		rule: r,
		eval: eval.New(r, cfg.Weights),
		log:  log,
	}
}

func (s *Searcher) maxScoreAt(depth int) Vector {
	v := make(Vector, s.cfg.MaxDepth+6)
	for i := s.cfg.MaxDepth - depth; i < s.cfg.MaxDepth; i++ {
		v[i] = 1
	}
	return v
}

func (s *Searcher) minScoreAt(depth int) Vector {
	return s.maxScoreAt(depth).negate()
}

func (s *Searcher) leafScore(b *board.Board, lastMove board.Move) Vector {
	v := make(Vector, s.cfg.MaxDepth+6)
	copy(v[s.cfg.MaxDepth:], s.eval.Score(b, lastMove)[:])
	return v
}

func zeroVector(n int) Vector { return make(Vector, n) }

// AlphaBeta searches b to depth plies for turn to move, given that
// lastMove was just played. It returns the best point to play (nil if
// no legal candidate exists) and that move's Vector.
func (s *Searcher) AlphaBeta(b *board.Board, depth int, alpha, beta Vector, turn board.Color, lastMove board.Move) (*board.Point, Vector) {
	s.Stats.Nodes++

	if s.rule.IsWin(b, lastMove) {
		if lastMove.Color == board.Black {
			return nil, s.maxScoreAt(depth)
		}
		return nil, s.minScoreAt(depth)
	}
	if depth == 0 {
		return nil, s.leafScore(b, lastMove)
	}

	key := b.Zobrist()
	if depth == s.cfg.MaxDepth {
		s.memo = make(map[uint64]memoEntry)
		s.Stats.Depth = depth
	}
	if cached, ok := s.memo[key]; ok {
		s.Stats.CacheHit++
		return cached.move, cached.score
	}
	s.Stats.CacheMiss++

	candidates := s.orderedCandidates(b, turn)
	if len(candidates) == 0 {
		return nil, s.leafScore(b, lastMove)
	}

	var best *board.Point
	var bestScore Vector
	explored := 0

	for _, p := range candidates {
		prev := b.Get(p)
		b.Set(p, turn)
		_, childScore := s.AlphaBeta(b, depth-1, alpha, beta, turn.Opposite(), board.Move{I: p.I, J: p.J, Color: turn})
		b.Set(p, prev)

		if best == nil || s.improves(turn, childScore, bestScore) {
			point := p
			best = &point
			bestScore = childScore
		}

		if turn == board.Black {
			if alpha == nil || bestScore.Compare(alpha) > 0 {
				alpha = bestScore
			}
		} else {
			if beta == nil || bestScore.Compare(beta) < 0 {
				beta = bestScore
			}
		}
		if alpha != nil && beta != nil && beta.Compare(alpha) <= 0 {
			break
		}

		explored++
		if explored >= candidateCap {
			atRoot := depth == s.cfg.MaxDepth
			if !(atRoot && s.stillLosing(turn, bestScore)) {
				break
			}
		}
	}

	s.memo[key] = memoEntry{best, bestScore}
	return best, bestScore
}

// improves reports whether candidate beats current from turn's point
// of view (higher is better for Black, lower is better for White).
func (s *Searcher) improves(turn board.Color, candidate, current Vector) bool {
	if turn == board.Black {
		return candidate.Compare(current) > 0
	}
	return candidate.Compare(current) < 0
}

// stillLosing reports whether score is no better than a neutral
// position for turn, keeping the root searching past the candidate
// cap while nothing winning has been found yet.
func (s *Searcher) stillLosing(turn board.Color, score Vector) bool {
	zero := zeroVector(len(score))
	if turn == board.Black {
		return score.Compare(zero) <= 0
	}
	return score.Compare(zero) >= 0
}

type candidateOrdering struct {
	point board.Point
	score Vector
	dist  int
	order int
}

// orderedCandidates enumerates legal placements for turn within
// Chebyshev distance 2 of any stone, ordered by hypothetical
// evaluator score (descending for Black, ascending for White), with
// distance-to-nearest-stone and scan order as tie-breaks.
func (s *Searcher) orderedCandidates(b *board.Board, turn board.Color) []board.Point {
	var stones []board.Point
	n := b.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if p := (board.Point{I: i, J: j}); b.Get(p) != board.Empty {
				stones = append(stones, p)
			}
		}
	}

	var entries []candidateOrdering
	idx := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p := board.Point{I: i, J: j}
			if b.Get(p) != board.Empty {
				continue
			}
			dist := nearestStoneDistance(stones, p)
			if dist > 2 {
				continue
			}
			move := board.Move{I: i, J: j, Color: turn}
			if !s.rule.IsLegalMove(b, move) {
				continue
			}

			prev := b.Get(p)
			b.Set(p, turn)
			score := Vector(append([]int(nil), s.eval.Score(b, move)...))
			b.Set(p, prev)

			entries = append(entries, candidateOrdering{point: p, score: score, dist: dist, order: idx})
			idx++
		}
	}

	sort.SliceStable(entries, func(a, bb int) bool {
		ea, eb := entries[a], entries[bb]
		if c := ea.score.Compare(eb.score); c != 0 {
			if turn == board.Black {
				return c > 0
			}
			return c < 0
		}
		if ea.dist != eb.dist {
			return ea.dist < eb.dist
		}
		return ea.order < eb.order
	})

	out := make([]board.Point, len(entries))
	for i, e := range entries {
		out[i] = e.point
	}
	return out
}

func nearestStoneDistance(stones []board.Point, p board.Point) int {
	best := 1 << 30
	for _, q := range stones {
		if d := chebyshev(p, q); d < best {
			best = d
		}
	}
	return best
}

func chebyshev(p, q board.Point) int {
	di, dj := p.I-q.I, p.J-q.J
	if di < 0 {
		di = -di
	}
	if dj < 0 {
		dj = -dj
	}
	if di > dj {
		return di
	}
	return dj
}

// ChooseMove picks turn's move for the current game state. On an
// empty board it returns (N/2, N/2) by convention without invoking
// AlphaBeta; if no candidate is legal it returns nil, signalling Pass
// to the caller.
func (s *Searcher) ChooseMove(g *game.Game) *board.Point {
	b := g.Board()
	turn := g.NextTurn()
	history := g.History()

	if len(history) == 0 {
		center := b.Size() / 2
		return &board.Point{I: center, J: center}
	}

	s.log.BeginSearch()
	defer s.log.EndSearch()

	lastMove := history[len(history)-1]
	alpha := s.minScoreAt(s.cfg.MaxDepth)
	beta := s.maxScoreAt(s.cfg.MaxDepth)
	move, score := s.AlphaBeta(b, s.cfg.MaxDepth, alpha, beta, turn, lastMove)
	s.log.PrintPV(s.Stats, score, move)
	return move
}

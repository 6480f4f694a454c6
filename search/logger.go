// logger.go defines a minimal progress-reporting seam with a no-op
// default: Logger/NulLogger/Stats.

package search

import "github.com/heatz123/renju/board"

// Stats accumulates statistics over every AlphaBeta invocation of one
// Searcher; it is never reset.
type Stats struct {
	CacheHit  uint64 // positions resolved from the per-search memo
	CacheMiss uint64 // positions that had to be searched
	Nodes     uint64 // nodes visited
	Depth     int    // depth the most recent search was run at
}

// CacheHitRatio returns the ratio of memo hits over total lookups.
func (s *Stats) CacheHitRatio() float64 {
	total := s.CacheHit + s.CacheMiss
	if total == 0 {
		return 0
	}
	return float64(s.CacheHit) / float64(total)
}

// Logger observes a search's progress.
type Logger interface {
	// BeginSearch signals a new search is starting.
	BeginSearch()
	// EndSearch signals the search has concluded.
	EndSearch()
	// PrintPV reports the result once AlphaBeta returns.
	PrintPV(stats Stats, score Vector, move *board.Point)
}

// NulLogger implements Logger with no-ops; it is the default.
type NulLogger struct{}

func (NulLogger) BeginSearch()                                        {}
func (NulLogger) EndSearch()                                          {}
func (NulLogger) PrintPV(stats Stats, score Vector, move *board.Point) {}

// Package config holds the tuning knobs shared by the game, eval and
// search packages: board size, search depth and per-shape evaluator
// weights. A plain struct built by the caller, never loaded from a
// file.
package config

// Weights assigns a score contribution to each non-winning threat
// shape the evaluator accumulates over a position.
type Weights struct {
	Two           int
	HalfOpenThree int
	OpenThree     int
	Four          int
}

// Config bundles every compile-time-fixed tuning parameter the rule
// engine and search need. Zero value is not meaningful; use
// DefaultConfig and override individual fields.
type Config struct {
	BoardSize int
	MaxDepth  int
	Weights   Weights

	// ProRenjuOverlineDraw names the Pro Renju treatment of a White
	// overline (six or more) as a draw rather than a win. No package
	// reads it: Rule.IsWin counts a White overline as a win and Rule
	// forbids a Black overline whatever its value.
	ProRenjuOverlineDraw bool
}

// DefaultConfig returns the reference tuning: a 15x15 board, search
// depth 3, and a conservative weight table (twos=1, half-open-three=10,
// open-three=100, four=150).
func DefaultConfig() Config {
	return Config{
		BoardSize: 15,
		MaxDepth:  3,
		Weights: Weights{
			Two:           1,
			HalfOpenThree: 10,
			OpenThree:     100,
			Four:          150,
		},
	}
}

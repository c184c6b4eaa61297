package generator

import "time"

// Options configures puzzle generation behavior.
type Options struct {
	Colors         int           // Number of chemical types, three units each
	EmptyFlasks    int           // Spare flasks that start empty
	Timeout        time.Duration // Timeout limits generation time
	Seed           int64         // Seed for reproducible puzzles (0 = random)
	EnsureSolvable bool          // EnsureSolvable runs the solver on each candidate
	// MaxStates caps the solver's search per candidate (0 = none).
	MaxStates int
}

// DefaultOptions returns standard generator options.
func DefaultOptions(colors int) *Options {
	colors = min(max(colors, MinColors), MaxColors)
	return &Options{
		Colors:         colors,
		EmptyFlasks:    DefaultEmptyFlasks,
		Timeout:        10 * time.Second,
		Seed:           0,
		EnsureSolvable: true,
	}
}

package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/MuhammadZain2005/Flask-Filler/internal/board"
	"github.com/MuhammadZain2005/Flask-Filler/internal/solver"
)

const (
	MinColors          = 2
	MaxColors          = 8
	DefaultColors      = 3
	DefaultEmptyFlasks = 1
	MaxEmptyFlasks     = 4
)

var (
	ErrGenerationFailed = errors.New("failed to generate valid puzzle")
	ErrInvalidColors    = errors.New("color count must be between 2 and 8")
	ErrInvalidEmpty     = errors.New("empty flask count must be between 0 and 4")
)

// Puzzle is a generated starting layout and one shortest solution.
// Solution is nil when the generator did not run the solver.
type Puzzle struct {
	Flasks   []*board.Flask
	Solution []board.Move
}

// Description returns the puzzle in the text format board.Load reads.
func (p *Puzzle) Description() string {
	return board.Describe(p.Flasks)
}

// Generator creates flask puzzles.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions(DefaultColors)
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate creates a new puzzle that does not start solved.
// Returns an error if no acceptable layout is found before the timeout.
func (g *Generator) Generate(ctx context.Context) (*Puzzle, error) {
	if g.options.Colors < MinColors || g.options.Colors > MaxColors {
		return nil, ErrInvalidColors
	}
	if g.options.EmptyFlasks < 0 || g.options.EmptyFlasks > MaxEmptyFlasks {
		return nil, ErrInvalidEmpty
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if g.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.options.Timeout)
		defer cancel()
	}

	for {
		if ctx.Err() != nil {
			return nil, ErrGenerationFailed
		}

		flasks, err := g.shuffle()
		if err != nil {
			return nil, err
		}
		if !g.acceptable(flasks) {
			continue
		}

		if !g.options.EnsureSolvable {
			return &Puzzle{Flasks: flasks}, nil
		}

		moves, err := solver.Solve(ctx, flasks, &solver.Options{MaxStates: g.options.MaxStates})
		switch {
		case err == nil:
			return &Puzzle{Flasks: flasks, Solution: moves}, nil
		case errors.Is(err, solver.ErrNoSolution), errors.Is(err, solver.ErrStateLimit):
			continue
		case errors.Is(err, solver.ErrTimeout):
			return nil, ErrGenerationFailed
		default:
			return nil, fmt.Errorf("solver failed: %w", err)
		}
	}
}

// shuffle deals every unit into a random non-full colour flask.
// The spare flasks stay empty at the end of the vector.
func (g *Generator) shuffle() ([]*board.Flask, error) {
	colors := g.options.Colors
	units := make([]board.Chemical, 0, colors*board.UnitsPerType)
	for c := 0; c < colors; c++ {
		for i := 0; i < board.UnitsPerType; i++ {
			units = append(units, Label(c))
		}
	}
	g.rng.Shuffle(len(units), func(i, j int) {
		units[i], units[j] = units[j], units[i]
	})

	flasks := board.NewFlasks(colors + g.options.EmptyFlasks)
	for _, u := range units {
		// Colour flasks hold 4*colors slots for 3*colors units, so a
		// non-full flask always exists.
		i := g.rng.Intn(colors)
		for flasks[i].IsFull() {
			i = (i + 1) % colors
		}
		if err := flasks[i].Push(u); err != nil {
			return nil, err
		}
	}
	return flasks, nil
}

// acceptable rejects layouts that start won or with a flask already sealed.
func (g *Generator) acceptable(flasks []*board.Flask) bool {
	if board.AllSealed(flasks) {
		return false
	}
	for _, f := range flasks {
		if f.IsSealed() {
			return false
		}
	}
	return true
}

// Label returns the chemical label for colour index c: "AA", "BB", ...
func Label(c int) board.Chemical {
	ch := string(rune('A' + c))
	return board.Chemical(ch + ch)
}

// GenerateWithColors is a convenience function to generate a puzzle with a specific colour count.
func GenerateWithColors(colors int) (*Puzzle, error) {
	gen := New(DefaultOptions(colors))
	return gen.Generate(context.Background())
}

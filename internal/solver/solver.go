package solver

import (
	"context"
	"errors"
	"time"

	"github.com/MuhammadZain2005/Flask-Filler/internal/board"
)

var (
	ErrNoSolution = errors.New("puzzle has no solution")
	ErrTimeout    = errors.New("solver timeout exceeded")
	ErrStateLimit = errors.New("solver state limit exceeded")
)

// Options configures the search.
type Options struct {
	Timeout   time.Duration // Timeout limits search time (0 = none)
	MaxStates int           // MaxStates caps distinct positions visited (0 = none)
}

// DefaultOptions returns standard solver options.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   10 * time.Second,
		MaxStates: 200_000,
	}
}

// Solver finds the shortest pour sequence that seals every flask.
type Solver struct {
	flasks   []*board.Flask
	options  *Options
	explored int
}

// node is one visited position in the search tree.
type node struct {
	flasks []*board.Flask
	parent int
	move   board.Move
}

// New creates a solver for a copy of flasks.
func New(flasks []*board.Flask, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}
	return &Solver{
		flasks:  board.Clone(flasks),
		options: options,
	}
}

// Explored returns how many distinct positions the last Solve visited.
func (s *Solver) Explored() int {
	return s.explored
}

// Solve runs a breadth-first search over legal pours.
// Returns nil moves for an already-won position.
func (s *Solver) Solve(ctx context.Context) ([]board.Move, error) {
	s.explored = 1
	if board.AllSealed(s.flasks) {
		return nil, nil
	}

	ctx, cancel := s.makeContext(ctx)
	defer cancel()

	// Positions that are permutations of each other are equivalent, so the
	// visited set is keyed on the order-insensitive board.Key.
	nodes := []node{{flasks: s.flasks, parent: -1}}
	visited := map[string]struct{}{board.Key(s.flasks): {}}

	for head := 0; head < len(nodes); head++ {
		if head%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, ErrTimeout
			}
		}

		current := nodes[head].flasks
		for _, m := range board.LegalMoves(current) {
			next := board.Clone(current)
			if err := board.Pour(next, m.Source, m.Dest); err != nil {
				return nil, err
			}
			key := board.Key(next)
			if _, seen := visited[key]; seen {
				continue
			}
			visited[key] = struct{}{}
			nodes = append(nodes, node{flasks: next, parent: head, move: m})
			s.explored++

			if board.AllSealed(next) {
				return path(nodes, len(nodes)-1), nil
			}
			if s.options.MaxStates > 0 && s.explored >= s.options.MaxStates {
				return nil, ErrStateLimit
			}
		}
	}

	return nil, ErrNoSolution
}

// Solve is a convenience wrapper around New(...).Solve.
func Solve(ctx context.Context, flasks []*board.Flask, options *Options) ([]board.Move, error) {
	return New(flasks, options).Solve(ctx)
}

// path walks parent links back from nodes[i] to the root.
func path(nodes []node, i int) []board.Move {
	var moves []board.Move
	for ; nodes[i].parent >= 0; i = nodes[i].parent {
		moves = append(moves, nodes[i].move)
	}
	for l, r := 0, len(moves)-1; l < r; l, r = l+1, r-1 {
		moves[l], moves[r] = moves[r], moves[l]
	}
	return moves
}

// makeContext derives the search context, applying Timeout when set.
func (s *Solver) makeContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if s.options.Timeout > 0 {
		return context.WithTimeout(parent, s.options.Timeout)
	}
	return context.WithCancel(parent)
}

package solver

import (
	"context"

	"github.com/MuhammadZain2005/Flask-Filler/internal/board"
)

// Rating measures how hard a puzzle is.
type Rating struct {
	Moves    int // length of the shortest solution
	Explored int // positions visited to find it
}

// Score folds a rating into one integer; more pours weigh heavier than a
// wider search.
func (r Rating) Score() int {
	return r.Moves*10 + r.Explored/100
}

// Difficulty solves flasks and reports the effort it took.
func Difficulty(ctx context.Context, flasks []*board.Flask, options *Options) (Rating, error) {
	s := New(flasks, options)
	moves, err := s.Solve(ctx)
	if err != nil {
		return Rating{Explored: s.Explored()}, err
	}
	return Rating{Moves: len(moves), Explored: s.Explored()}, nil
}

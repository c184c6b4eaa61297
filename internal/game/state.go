// Package game runs turns of the flask puzzle over board's rules.
package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MuhammadZain2005/Flask-Filler/internal/board"
)

// NoFlask marks an unset LastSource or LastDest.
const NoFlask = -1

var (
	ErrQuitRequested = errors.New("quit requested")
	ErrGameOver      = errors.New("game is already won")
	ErrInvalidMove   = errors.New("invalid move")
)

// State is one puzzle in progress. LastSource and LastDest are zero-based
// and only used for highlighting.
type State struct {
	Flasks     []*board.Flask
	LastSource int
	LastDest   int
	Moves      int
	won        bool
}

// NewState takes ownership of flasks.
func NewState(flasks []*board.Flask) *State {
	return &State{
		Flasks:     flasks,
		LastSource: NoFlask,
		LastDest:   NoFlask,
		won:        board.AllSealed(flasks),
	}
}

// Won reports whether every flask is empty or sealed.
func (s *State) Won() bool {
	return s.won
}

// Apply performs one pour. A *board.PourRejection leaves the state as it
// was. Once the puzzle is won every call returns ErrGameOver.
func (s *State) Apply(m board.Move) error {
	if s.won {
		return ErrGameOver
	}
	if err := board.Pour(s.Flasks, m.Source, m.Dest); err != nil {
		return err
	}
	s.LastSource, s.LastDest = m.Source, m.Dest
	s.Moves++
	s.won = board.AllSealed(s.Flasks)
	return nil
}

// ParseFlaskNumber converts player input into a zero-based index,
// accepting only 1..n.
func ParseFlaskNumber(input string, n int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || v < 1 || v > n {
		return 0, fmt.Errorf("%w: %q must be a flask number between 1 and %d", ErrInvalidMove, input, n)
	}
	return v - 1, nil
}

// ParseMove reads a one-based "src>dst", "src-dst", "src,dst" or "src dst".
func ParseMove(input string, n int) (board.Move, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == '>' || r == '-' || r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return board.Move{}, fmt.Errorf("%w: %q must name a source and a destination", ErrInvalidMove, input)
	}
	src, err := ParseFlaskNumber(fields[0], n)
	if err != nil {
		return board.Move{}, err
	}
	dst, err := ParseFlaskNumber(fields[1], n)
	if err != nil {
		return board.Move{}, err
	}
	return board.Move{Source: src, Dest: dst}, nil
}

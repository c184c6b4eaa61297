package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFlask      = errors.New("flask index out of range")
	ErrPourRejected      = errors.New("pour rejected")
	ErrInconsistentState = errors.New("internal consistency violated")
)

// RejectReason says why a pour was refused.
type RejectReason int

const (
	SameFlask RejectReason = iota + 1
	SourceEmpty
	SourceSealed
	DestinationFull
	DestinationSealed
)

func (r RejectReason) String() string {
	switch r {
	case SameFlask:
		return "same flask"
	case SourceEmpty:
		return "source empty"
	case SourceSealed:
		return "source sealed"
	case DestinationFull:
		return "destination full"
	case DestinationSealed:
		return "destination sealed"
	default:
		return "unknown"
	}
}

// PourRejection is the expected, recoverable refusal of a pour.
// No flask is mutated when one is returned.
type PourRejection struct {
	Reason RejectReason
	Source int
	Dest   int
}

func (r *PourRejection) Error() string {
	switch r.Reason {
	case SameFlask:
		return "Source and destination flasks can't be the same."
	case SourceEmpty:
		return fmt.Sprintf("Can't pour from the selected flask: flask %d is empty.", r.Source+1)
	case SourceSealed:
		return fmt.Sprintf("Can't pour from the selected flask: flask %d is sealed.", r.Source+1)
	case DestinationFull:
		return fmt.Sprintf("Can't pour into the selected flask: flask %d is full.", r.Dest+1)
	case DestinationSealed:
		return fmt.Sprintf("Can't pour into the selected flask: flask %d is sealed.", r.Dest+1)
	default:
		return "Can't pour from the selected flask."
	}
}

// Is makes errors.Is(err, ErrPourRejected) hold for every rejection.
func (r *PourRejection) Is(target error) bool {
	return target == ErrPourRejected
}

// IsSealed reports whether f holds at least UnitsPerType units and the top
// UnitsPerType of them are identical. A fourth unit underneath does not
// affect the result.
func IsSealed(f *Flask) bool {
	if f.Size() < UnitsPerType {
		return false
	}
	top := f.Top(UnitsPerType)
	for _, u := range top[1:] {
		if u != top[0] {
			return false
		}
	}
	return true
}

// AllSealed reports whether every flask is either empty or sealed.
// An empty vector is vacuously sealed.
func AllSealed(flasks []*Flask) bool {
	for _, f := range flasks {
		size := f.Size()
		if size > 0 && size < UnitsPerType {
			return false
		}
		if size >= UnitsPerType && !IsSealed(f) {
			return false
		}
	}
	return true
}

// CanPour checks whether the top unit of flasks[src] may move onto flasks[dst].
// Returns *PourRejection for an illegal pour and an ErrInvalidFlask-wrapped
// error when an index is out of range.
func CanPour(flasks []*Flask, src, dst int) error {
	if err := validateIndex(flasks, src); err != nil {
		return err
	}
	if err := validateIndex(flasks, dst); err != nil {
		return err
	}

	source, dest := flasks[src], flasks[dst]
	reject := func(reason RejectReason) error {
		return &PourRejection{Reason: reason, Source: src, Dest: dst}
	}

	switch {
	case src == dst:
		return reject(SameFlask)
	case source.IsEmpty():
		return reject(SourceEmpty)
	case IsSealed(source):
		return reject(SourceSealed)
	case dest.IsFull():
		return reject(DestinationFull)
	case IsSealed(dest):
		return reject(DestinationSealed)
	}
	return nil
}

// Pour moves exactly one unit from flasks[src] to flasks[dst].
// The unit's colour is not checked against the destination.
func Pour(flasks []*Flask, src, dst int) error {
	if err := CanPour(flasks, src, dst); err != nil {
		return err
	}

	// Only modify the flasks once we know the pour is legal
	return transfer(flasks[src], flasks[dst])
}

// transfer moves the top unit of source onto dest. If dest refuses it the
// unit is put back, and any failure to do so is joined into the error.
func transfer(source, dest *Flask) error {
	unit, err := source.Pop()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInconsistentState, err)
	}
	if err := dest.Push(unit); err != nil {
		if rerr := source.Push(unit); rerr != nil {
			err = errors.Join(err, fmt.Errorf("restoring source: %w", rerr))
		}
		return fmt.Errorf("%w: %w", ErrInconsistentState, err)
	}
	return nil
}

// LegalMoves lists every pour CanPour accepts, in source-major order.
func LegalMoves(flasks []*Flask) []Move {
	var moves []Move
	for src := range flasks {
		for dst := range flasks {
			if CanPour(flasks, src, dst) == nil {
				moves = append(moves, Move{Source: src, Dest: dst})
			}
		}
	}
	return moves
}

// validateIndex checks that i addresses a flask.
func validateIndex(flasks []*Flask, i int) error {
	if i < 0 || i >= len(flasks) {
		return fmt.Errorf("%w: index %d must be in range [0, %d)", ErrInvalidFlask, i, len(flasks))
	}
	return nil
}

// Package container provides fixed-capacity LIFO and FIFO containers.
// Capacity is set at construction and never grows.
package container

import (
	"errors"
	"fmt"
)

var (
	ErrCapacityExceeded = errors.New("container is at capacity")
	ErrEmptyContainer   = errors.New("container is empty")
)

// Stack is a bounded last-in-first-out container.
type Stack[T any] struct {
	items    []T
	capacity int
}

// NewStack creates an empty Stack holding at most capacity items.
// A negative capacity is treated as zero.
func NewStack[T any](capacity int) *Stack[T] {
	capacity = max(capacity, 0)
	return &Stack[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Push places item on top of the stack.
// Returns ErrCapacityExceeded and leaves the stack unchanged if it is full.
func (s *Stack[T]) Push(item T) error {
	if s.IsFull() {
		return fmt.Errorf("%w: push onto stack of capacity %d", ErrCapacityExceeded, s.capacity)
	}
	s.items = append(s.items, item)
	return nil
}

// Pop removes and returns the top item.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, fmt.Errorf("%w: pop", ErrEmptyContainer)
	}
	last := len(s.items) - 1
	item := s.items[last]
	s.items[last] = zero
	s.items = s.items[:last]
	return item, nil
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("%w: peek", ErrEmptyContainer)
	}
	return s.items[len(s.items)-1], nil
}

func (s *Stack[T]) Size() int     { return len(s.items) }
func (s *Stack[T]) Capacity() int { return s.capacity }
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }
func (s *Stack[T]) IsFull() bool  { return len(s.items) >= s.capacity }

// Items returns a copy of the contents from bottom to top.
func (s *Stack[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Reversed returns a copy of the contents from top to bottom.
func (s *Stack[T]) Reversed() []T {
	out := make([]T, len(s.items))
	for i, item := range s.items {
		out[len(s.items)-1-i] = item
	}
	return out
}

// Top returns up to n items from the top, ordered bottom to top.
func (s *Stack[T]) Top(n int) []T {
	n = min(max(n, 0), len(s.items))
	return s.Items()[len(s.items)-n:]
}

// Clear empties the stack. Capacity is unchanged.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Clone returns an independent copy of the stack.
func (s *Stack[T]) Clone() *Stack[T] {
	c := NewStack[T](s.capacity)
	c.items = append(c.items, s.items...)
	return c
}

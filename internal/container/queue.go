package container

import "fmt"

// Queue is a bounded first-in-first-out ring buffer.
type Queue[T any] struct {
	items []T
	head  int
	count int
}

// NewQueue creates an empty Queue holding at most capacity items.
// A negative capacity is treated as zero.
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{items: make([]T, max(capacity, 0))}
}

// Enqueue appends item at the back.
// Returns ErrCapacityExceeded and leaves the queue unchanged if it is full.
func (q *Queue[T]) Enqueue(item T) error {
	if q.IsFull() {
		return fmt.Errorf("%w: enqueue onto queue of capacity %d", ErrCapacityExceeded, len(q.items))
	}
	q.items[(q.head+q.count)%len(q.items)] = item
	q.count++
	return nil
}

// Dequeue removes and returns the front item.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, fmt.Errorf("%w: dequeue", ErrEmptyContainer)
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head = (q.head + 1) % len(q.items)
	q.count--
	return item, nil
}

func (q *Queue[T]) Size() int     { return q.count }
func (q *Queue[T]) Capacity() int { return len(q.items) }
func (q *Queue[T]) IsEmpty() bool { return q.count == 0 }
func (q *Queue[T]) IsFull() bool  { return q.count >= len(q.items) }

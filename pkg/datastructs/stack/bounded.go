package stack

import (
	"iter"

	"github.com/pkg/errors"
)

var (
	// ErrFull is returned by Push when the stack holds Capacity items.
	ErrFull = errors.New("stack is full")

	// ErrEmpty is returned by Pop and Peek when the stack holds no items.
	ErrEmpty = errors.New("stack is empty")
)

// Bounded is a fixed-capacity LIFO stack.
// Push on a full stack fails; nothing is evicted.
type Bounded[T any] struct {
	items []T
	top   int // number of items; items[top-1] is the top
}

// NewBounded creates an empty stack holding at most capacity items.
// A capacity below 1 is raised to 1.
func NewBounded[T any](capacity int) *Bounded[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Bounded[T]{items: make([]T, capacity)}
}

func (s *Bounded[T]) IsEmpty() bool { return s.top == 0 }
func (s *Bounded[T]) IsFull() bool  { return s.top == len(s.items) }
func (s *Bounded[T]) Len() int      { return s.top }
func (s *Bounded[T]) Capacity() int { return len(s.items) }

// Push places item on top. Returns ErrFull if the stack is full.
func (s *Bounded[T]) Push(item T) error {
	if s.IsFull() {
		return ErrFull
	}
	s.items[s.top] = item
	s.top++
	return nil
}

// Pop removes and returns the most recently pushed item.
func (s *Bounded[T]) Pop() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, ErrEmpty
	}

	s.top--
	item := s.items[s.top]
	s.items[s.top] = zero
	return item, nil
}

// Peek returns the top item without removing it.
func (s *Bounded[T]) Peek() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	return s.items[s.top-1], nil
}

// All returns an iterator from the top of the stack to the bottom.
func (s *Bounded[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.top - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

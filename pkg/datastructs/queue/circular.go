package queue

import "iter"

var _ Queue[int] = (*Circular[int])(nil)

// Circular is a fixed-capacity FIFO queue backed by a ring of slots.
// It never grows: Enqueue on a full queue fails instead of overwriting.
type Circular[T any] struct {
	slots []T
	head  int // index of the oldest item
	size  int // number of items currently stored
}

// NewCircular creates an empty queue holding at most capacity items.
// A capacity below 1 is raised to 1.
func NewCircular[T any](capacity int) *Circular[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Circular[T]{slots: make([]T, capacity)}
}

func (q *Circular[T]) idx(offset int) int { return (q.head + offset) % len(q.slots) }

// IsEmpty reports whether the queue holds no items.
func (q *Circular[T]) IsEmpty() bool { return q.size == 0 }

// IsFull reports whether the queue holds Capacity items.
func (q *Circular[T]) IsFull() bool { return q.size == len(q.slots) }

// Len returns the number of queued items.
func (q *Circular[T]) Len() int { return q.size }

// Capacity returns the fixed capacity of the queue.
func (q *Circular[T]) Capacity() int { return len(q.slots) }

// Enqueue appends item at the tail. Returns ErrFull if the queue is full.
func (q *Circular[T]) Enqueue(item T) error {
	if q.IsFull() {
		return ErrFull
	}
	q.slots[q.idx(q.size)] = item
	q.size++
	return nil
}

// Dequeue removes and returns the head. Returns ErrEmpty if the queue is empty.
func (q *Circular[T]) Dequeue() (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, ErrEmpty
	}

	item := q.slots[q.head]
	q.slots[q.head] = zero
	q.head = q.idx(1)
	q.size--
	return item, nil
}

// Peek returns the head without removing it.
func (q *Circular[T]) Peek() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	return q.slots[q.head], nil
}

// All returns an iterator over the queued items from head to tail.
// Each call starts from the current head, so the sequence can be ranged
// over again after the queue changes.
func (q *Circular[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < q.size; i++ {
			if !yield(q.slots[q.idx(i)]) {
				return
			}
		}
	}
}

package queue

import (
	"iter"

	"github.com/pkg/errors"
)

var (
	// ErrFull is returned by Enqueue when the queue holds Capacity items.
	ErrFull = errors.New("queue is full")

	// ErrEmpty is returned by Dequeue and Peek when the queue holds no items.
	ErrEmpty = errors.New("queue is empty")
)

// Queue is a generic interface for bounded FIFO queues.
type Queue[T any] interface {
	// Enqueue adds an item to the tail of the queue.
	// Returns ErrFull if the queue is full; the queue is left unchanged.
	Enqueue(item T) error

	// Dequeue removes and returns the item at the head of the queue.
	// Returns ErrEmpty if the queue is empty.
	Dequeue() (T, error)

	// Peek returns the item at the head without removing it.
	Peek() (T, error)

	// All yields the queued items from head to tail.
	All() iter.Seq[T]

	// Len returns the number of queued items.
	Len() int

	// Capacity returns the total capacity of the queue.
	Capacity() int
}

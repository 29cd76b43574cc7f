package exchange

import (
	"fmt"

	"github.com/pkg/errors"
)

// Container names used in TooShortError.
const (
	ContainerQueue = "queue"
	ContainerStack = "stack"
)

var (
	ErrQueueEmpty    = errors.New("queue is empty")
	ErrQueueFull     = errors.New("queue is full")
	ErrQueueTooShort = errors.New("queue too short")
	ErrStackEmpty    = errors.New("stack is empty")
	ErrStackFull     = errors.New("stack is full")
	ErrStackTooShort = errors.New("stack too short")
)

// TooShortError reports that a container holds fewer pieces than an
// operation needs. It matches ErrQueueTooShort or ErrStackTooShort with
// errors.Is depending on Container.
type TooShortError struct {
	Container string
	Required  int
	Actual    int
}

func (e *TooShortError) Error() string {
	return fmt.Sprintf("%s needs at least %d pieces, has %d", e.Container, e.Required, e.Actual)
}

func (e *TooShortError) Is(target error) bool {
	switch target {
	case ErrQueueTooShort:
		return e.Container == ContainerQueue
	case ErrStackTooShort:
		return e.Container == ContainerStack
	}
	return false
}

// invariant marks a container failure that a passed precondition check
// should have made impossible.
func invariant(err error, op string) error {
	return errors.Wrapf(err, "%s: container invariant violated", op)
}

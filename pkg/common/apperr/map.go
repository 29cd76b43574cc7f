package apperr

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/huynhanx03/tetris-stack/pkg/exchange"
)

// Codes reported to the player.
const (
	CodeUnknown = iota + 1000
	CodeQueueEmpty
	CodeQueueFull
	CodeQueueTooShort
	CodeStackEmpty
	CodeStackFull
	CodeStackTooShort
	CodeInvalidOption
)

// Player-facing messages
const (
	MsgQueueEmpty    = "queue is empty!"
	MsgQueueFull     = "queue is full! Play a piece first."
	MsgStackEmpty    = "reserve stack is empty!"
	MsgStackFull     = "reserve stack is full!"
	MsgInvalidOption = "invalid option!"
	MsgUnknown       = "unexpected failure"
)

// MapError translates an engine failure into an AppError with a stable code.
// op names the attempted action and is prefixed to the message. Errors that
// already carry an AppError are returned as is.
func MapError(op string, err error) *AppError {
	if err == nil {
		return nil
	}

	var (
		appErr *AppError
		short  *exchange.TooShortError
	)
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.As(err, &short):
		code := CodeQueueTooShort
		if short.Container == exchange.ContainerStack {
			code = CodeStackTooShort
		}
		msg := fmt.Sprintf("%s needs at least %d pieces (currently %d)", short.Container, short.Required, short.Actual)
		return NewError(op, code, msg, err)
	case errors.Is(err, exchange.ErrQueueEmpty):
		return NewError(op, CodeQueueEmpty, MsgQueueEmpty, err)
	case errors.Is(err, exchange.ErrQueueFull):
		return NewError(op, CodeQueueFull, MsgQueueFull, err)
	case errors.Is(err, exchange.ErrStackEmpty):
		return NewError(op, CodeStackEmpty, MsgStackEmpty, err)
	case errors.Is(err, exchange.ErrStackFull):
		return NewError(op, CodeStackFull, MsgStackFull, err)
	}
	return NewError(op, CodeUnknown, MsgUnknown, err)
}

// NewError creates a new AppError with standardized message format
func NewError(op string, code int, msg string, cause error) *AppError {
	if op == "" {
		return New(code, msg, cause)
	}
	return New(code, fmt.Sprintf("%s: %s", op, msg), cause)
}

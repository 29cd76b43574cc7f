// Package exchange owns the next-pieces queue and the reserve stack and
// implements every operation that moves pieces between them.
//
// Each operation validates all of its preconditions before touching either
// container, so a failed call leaves both exactly as they were.
package exchange

import (
	"slices"

	"github.com/huynhanx03/tetris-stack/pkg/datastructs/queue"
	"github.com/huynhanx03/tetris-stack/pkg/datastructs/stack"
	"github.com/huynhanx03/tetris-stack/pkg/piece"
	"github.com/huynhanx03/tetris-stack/pkg/settings"
)

// SwapBatch is the number of pieces each side gives up in SwapThree.
const SwapBatch = 3

// SwapOneResult describes a completed SwapOne.
type SwapOneResult struct {
	FromQueue piece.Piece // former queue head, now the stack top
	FromStack piece.Piece // former stack top, now the queue tail
}

// SwapThreeResult describes a completed SwapThree.
type SwapThreeResult struct {
	FromQueue [SwapBatch]piece.Piece // in dequeue order, oldest first
	FromStack [SwapBatch]piece.Piece // in pop order, top first
}

// Engine is the piece supply: a bounded queue of upcoming pieces and a
// bounded reserve stack. It is not safe for concurrent use.
type Engine struct {
	queue *queue.Circular[piece.Piece]
	stack *stack.Bounded[piece.Piece]
	gen   *piece.Generator
}

// New creates an engine with empty containers sized from cfg.
// Call Fill before handing the engine to a player.
func New(cfg settings.Game, src piece.KindSource) *Engine {
	return &Engine{
		queue: queue.NewCircular[piece.Piece](cfg.QueueCapacity),
		stack: stack.NewBounded[piece.Piece](cfg.StackCapacity),
		gen:   piece.NewGenerator(src),
	}
}

// Fill tops the queue up to capacity with new pieces and returns how many
// were added.
func (e *Engine) Fill() int {
	added := 0
	for !e.queue.IsFull() {
		_ = e.queue.Enqueue(e.gen.Generate())
		added++
	}
	return added
}

// Play removes the queue head and refills the tail with a new piece.
func (e *Engine) Play() (piece.Piece, error) {
	if e.queue.IsEmpty() {
		return piece.Piece{}, ErrQueueEmpty
	}

	p, err := e.queue.Dequeue()
	if err != nil {
		return piece.Piece{}, invariant(err, "play")
	}
	if err := e.queue.Enqueue(e.gen.Generate()); err != nil {
		return p, invariant(err, "play refill")
	}
	return p, nil
}

// Insert appends a new piece to the queue without playing one.
func (e *Engine) Insert() (piece.Piece, error) {
	if e.queue.IsFull() {
		return piece.Piece{}, ErrQueueFull
	}

	p := e.gen.Generate()
	if err := e.queue.Enqueue(p); err != nil {
		return piece.Piece{}, invariant(err, "insert")
	}
	return p, nil
}

// Reserve moves the queue head onto the reserve stack and refills the queue.
// A full stack is reported before an empty queue.
func (e *Engine) Reserve() (piece.Piece, error) {
	if e.stack.IsFull() {
		return piece.Piece{}, ErrStackFull
	}
	if e.queue.IsEmpty() {
		return piece.Piece{}, ErrQueueEmpty
	}

	p, err := e.queue.Dequeue()
	if err != nil {
		return piece.Piece{}, invariant(err, "reserve")
	}
	if err := e.stack.Push(p); err != nil {
		return p, invariant(err, "reserve")
	}
	if err := e.queue.Enqueue(e.gen.Generate()); err != nil {
		return p, invariant(err, "reserve refill")
	}
	return p, nil
}

// UseReserved pops the top of the reserve stack. The stack is not refilled.
func (e *Engine) UseReserved() (piece.Piece, error) {
	p, err := e.stack.Pop()
	if err != nil {
		return piece.Piece{}, ErrStackEmpty
	}
	return p, nil
}

// SwapOne exchanges the queue head with the stack top. The former head
// becomes the stack top; the former top re-enters the queue at the tail.
// An empty queue is reported before an empty stack.
func (e *Engine) SwapOne() (SwapOneResult, error) {
	if e.queue.IsEmpty() {
		return SwapOneResult{}, ErrQueueEmpty
	}
	if e.stack.IsEmpty() {
		return SwapOneResult{}, ErrStackEmpty
	}

	var (
		res SwapOneResult
		err error
	)
	if res.FromQueue, err = e.queue.Dequeue(); err != nil {
		return SwapOneResult{}, invariant(err, "swap one")
	}
	if res.FromStack, err = e.stack.Pop(); err != nil {
		return SwapOneResult{}, invariant(err, "swap one")
	}
	if err = e.stack.Push(res.FromQueue); err != nil {
		return SwapOneResult{}, invariant(err, "swap one")
	}
	if err = e.queue.Enqueue(res.FromStack); err != nil {
		return SwapOneResult{}, invariant(err, "swap one")
	}
	return res, nil
}

// SwapThree exchanges the first SwapBatch queue pieces with the top SwapBatch
// stack pieces. Stack pieces enter the queue tail in pop order; queue pieces
// are pushed in reverse so the former queue head ends on top.
// A short queue is reported before a short stack.
func (e *Engine) SwapThree() (SwapThreeResult, error) {
	if n := e.queue.Len(); n < SwapBatch {
		return SwapThreeResult{}, &TooShortError{Container: ContainerQueue, Required: SwapBatch, Actual: n}
	}
	if n := e.stack.Len(); n < SwapBatch {
		return SwapThreeResult{}, &TooShortError{Container: ContainerStack, Required: SwapBatch, Actual: n}
	}

	var (
		res SwapThreeResult
		err error
	)
	for i := range SwapBatch {
		if res.FromQueue[i], err = e.queue.Dequeue(); err != nil {
			return SwapThreeResult{}, invariant(err, "swap three")
		}
	}
	for i := range SwapBatch {
		if res.FromStack[i], err = e.stack.Pop(); err != nil {
			return SwapThreeResult{}, invariant(err, "swap three")
		}
	}
	for _, p := range res.FromStack {
		if err = e.queue.Enqueue(p); err != nil {
			return SwapThreeResult{}, invariant(err, "swap three")
		}
	}
	for i := SwapBatch - 1; i >= 0; i-- {
		if err = e.stack.Push(res.FromQueue[i]); err != nil {
			return SwapThreeResult{}, invariant(err, "swap three")
		}
	}
	return res, nil
}

// QueueContents returns the queued pieces from head to tail.
func (e *Engine) QueueContents() []piece.Piece { return slices.Collect(e.queue.All()) }

// StackContents returns the reserved pieces from top to bottom.
func (e *Engine) StackContents() []piece.Piece { return slices.Collect(e.stack.All()) }

// GeneratedCount returns how many pieces have been generated this run.
func (e *Engine) GeneratedCount() int64 { return e.gen.Count() }

func (e *Engine) QueueLen() int      { return e.queue.Len() }
func (e *Engine) QueueCapacity() int { return e.queue.Capacity() }
func (e *Engine) StackLen() int      { return e.stack.Len() }
func (e *Engine) StackCapacity() int { return e.stack.Capacity() }

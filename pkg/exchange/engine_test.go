package exchange

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huynhanx03/tetris-stack/pkg/piece"
	"github.com/huynhanx03/tetris-stack/pkg/settings"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	return New(settings.Default().Game, piece.NewCycleSource())
}

func newFilledEngine(t *testing.T) *Engine {
	t.Helper()
	e := newEngine(t)
	require.Equal(t, 5, e.Fill())
	return e
}

func ids(pieces []piece.Piece) []int64 {
	out := make([]int64, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, p.ID)
	}
	return out
}

type snapshot struct {
	queue     []piece.Piece
	stack     []piece.Piece
	generated int64
}

func snap(e *Engine) snapshot {
	return snapshot{queue: e.QueueContents(), stack: e.StackContents(), generated: e.GeneratedCount()}
}

// =============================================================================
// Fill
// =============================================================================

func TestEngine_Fill(t *testing.T) {
	e := newEngine(t)
	assert.Equal(t, 0, e.QueueLen())

	assert.Equal(t, 5, e.Fill())
	assert.Equal(t, []int64{0, 1, 2, 3, 4}, ids(e.QueueContents()))
	assert.Equal(t, int64(5), e.GeneratedCount())

	assert.Equal(t, 0, e.Fill(), "a full queue needs no pieces")
}

// =============================================================================
// Play
// =============================================================================

func TestEngine_Play(t *testing.T) {
	e := newFilledEngine(t)

	p, err := e.Play()
	require.NoError(t, err)
	assert.Equal(t, int64(0), p.ID)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(e.QueueContents()))
	assert.Equal(t, int64(6), e.GeneratedCount())
}

func TestEngine_PlayPreservesLength(t *testing.T) {
	e := newFilledEngine(t)
	for i := 0; i < 20; i++ {
		before := e.QueueLen()
		_, err := e.Play()
		require.NoError(t, err)
		require.Equal(t, before, e.QueueLen())
	}
}

func TestEngine_PlayEmptyQueue(t *testing.T) {
	e := newEngine(t)
	before := snap(e)

	_, err := e.Play()
	assert.ErrorIs(t, err, ErrQueueEmpty)
	assert.Equal(t, before, snap(e))
}

// =============================================================================
// Insert
// =============================================================================

func TestEngine_Insert(t *testing.T) {
	e := newEngine(t)

	p, err := e.Insert()
	require.NoError(t, err)
	assert.Equal(t, int64(0), p.ID)
	assert.Equal(t, []int64{0}, ids(e.QueueContents()))
}

func TestEngine_InsertFullQueue(t *testing.T) {
	e := newFilledEngine(t)
	before := snap(e)

	_, err := e.Insert()
	assert.ErrorIs(t, err, ErrQueueFull)
	assert.Equal(t, before, snap(e))
}

// =============================================================================
// Reserve / UseReserved
// =============================================================================

func TestEngine_ReserveThreeTimes(t *testing.T) {
	e := newFilledEngine(t)

	for i := 0; i < 3; i++ {
		qBefore, sBefore := e.QueueLen(), e.StackLen()
		p, err := e.Reserve()
		require.NoError(t, err)
		assert.Equal(t, int64(i), p.ID)
		assert.Equal(t, qBefore, e.QueueLen())
		assert.Equal(t, sBefore+1, e.StackLen())
	}

	assert.Equal(t, []int64{2, 1, 0}, ids(e.StackContents()))
	assert.Equal(t, []int64{3, 4, 5, 6, 7}, ids(e.QueueContents()))
}

func TestEngine_ReserveStackFull(t *testing.T) {
	e := newFilledEngine(t)
	for i := 0; i < 3; i++ {
		_, err := e.Reserve()
		require.NoError(t, err)
	}
	before := snap(e)

	_, err := e.Reserve()
	assert.ErrorIs(t, err, ErrStackFull)
	assert.Equal(t, before, snap(e))
}

func TestEngine_ReserveEmptyQueue(t *testing.T) {
	e := newEngine(t)

	_, err := e.Reserve()
	assert.ErrorIs(t, err, ErrQueueEmpty)
	assert.Zero(t, e.StackLen())
}

func TestEngine_ReserveChecksStackFirst(t *testing.T) {
	// One-slot containers: after a single reserve, draining the queue leaves
	// both "stack full" and "queue empty" true at once.
	cfg := settings.Default().Game
	cfg.QueueCapacity, cfg.StackCapacity = 1, 1
	e := New(cfg, piece.NewCycleSource())
	e.Fill()
	_, err := e.Reserve()
	require.NoError(t, err)
	_, err = e.queue.Dequeue()
	require.NoError(t, err)

	_, err = e.Reserve()
	assert.ErrorIs(t, err, ErrStackFull)
}

func TestEngine_UseReserved(t *testing.T) {
	e := newFilledEngine(t)
	_, _ = e.Reserve()
	_, _ = e.Reserve()
	queueBefore := e.QueueContents()
	generated := e.GeneratedCount()

	p, err := e.UseReserved()
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, 1, e.StackLen())
	assert.Equal(t, queueBefore, e.QueueContents())
	assert.Equal(t, generated, e.GeneratedCount(), "using a reserved piece must not generate")
}

func TestEngine_UseReservedEmpty(t *testing.T) {
	e := newFilledEngine(t)
	before := snap(e)

	_, err := e.UseReserved()
	assert.ErrorIs(t, err, ErrStackEmpty)
	assert.Equal(t, before, snap(e))
}

// =============================================================================
// SwapOne
// =============================================================================

func TestEngine_SwapOne(t *testing.T) {
	e := newFilledEngine(t)
	_, _ = e.Reserve() // stack [0], queue [1 2 3 4 5]
	generated := e.GeneratedCount()

	res, err := e.SwapOne()
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.FromQueue.ID)
	assert.Equal(t, int64(0), res.FromStack.ID)

	assert.Equal(t, []int64{2, 3, 4, 5, 0}, ids(e.QueueContents()), "stack piece re-enters at the tail")
	assert.Equal(t, []int64{1}, ids(e.StackContents()))
	assert.Equal(t, generated, e.GeneratedCount())
}

func TestEngine_SwapOneTwiceRestoresFrontAndTop(t *testing.T) {
	cfg := settings.Default().Game
	cfg.QueueCapacity = 1
	e := New(cfg, piece.NewCycleSource())
	e.Fill()
	_, err := e.Reserve()
	require.NoError(t, err)
	before := snap(e)

	_, err = e.SwapOne()
	require.NoError(t, err)
	assert.NotEqual(t, before, snap(e))
	_, err = e.SwapOne()
	require.NoError(t, err)

	assert.Equal(t, before, snap(e))
}

func TestEngine_SwapOneTwiceReturnsPieceToTail(t *testing.T) {
	e := newFilledEngine(t)
	_, _ = e.Reserve()
	_, _ = e.Reserve()
	// queue [2 3 4 5 6], stack [1 0]

	first, err := e.SwapOne()
	require.NoError(t, err)
	second, err := e.SwapOne()
	require.NoError(t, err)

	assert.Equal(t, first.FromQueue, second.FromStack)
	assert.Equal(t, []int64{4, 5, 6, 1, 2}, ids(e.QueueContents()))
	assert.Equal(t, []int64{3, 0}, ids(e.StackContents()))
}

func TestEngine_SwapOneFailures(t *testing.T) {
	t.Run("queue_empty_checked_first", func(t *testing.T) {
		e := newEngine(t)
		_, err := e.SwapOne()
		assert.ErrorIs(t, err, ErrQueueEmpty)
	})

	t.Run("stack_empty", func(t *testing.T) {
		e := newFilledEngine(t)
		before := snap(e)
		_, err := e.SwapOne()
		assert.ErrorIs(t, err, ErrStackEmpty)
		assert.Equal(t, before, snap(e))
	})
}

// =============================================================================
// SwapThree
// =============================================================================

func TestEngine_SwapThree(t *testing.T) {
	e := newFilledEngine(t)
	for i := 0; i < 3; i++ {
		_, err := e.Reserve()
		require.NoError(t, err)
	}
	// queue [3 4 5 6 7], stack top->bottom [2 1 0]
	generated := e.GeneratedCount()

	res, err := e.SwapThree()
	require.NoError(t, err)

	assert.Equal(t, []int64{3, 4, 5}, ids(res.FromQueue[:]))
	assert.Equal(t, []int64{2, 1, 0}, ids(res.FromStack[:]))
	assert.Equal(t, []int64{6, 7, 2, 1, 0}, ids(e.QueueContents()))
	assert.Equal(t, []int64{3, 4, 5}, ids(e.StackContents()))
	assert.Equal(t, generated, e.GeneratedCount())
}

func TestEngine_SwapThreeAtomicity(t *testing.T) {
	tests := []struct {
		name      string
		reserves  int
		fill      bool
		want      error
		container string
		actual    int
	}{
		{name: "empty_queue", fill: false, want: ErrQueueTooShort, container: ContainerQueue, actual: 0},
		{name: "empty_stack", fill: true, reserves: 0, want: ErrStackTooShort, container: ContainerStack, actual: 0},
		{name: "two_in_stack", fill: true, reserves: 2, want: ErrStackTooShort, container: ContainerStack, actual: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t)
			if tt.fill {
				e.Fill()
			}
			for i := 0; i < tt.reserves; i++ {
				_, err := e.Reserve()
				require.NoError(t, err)
			}
			before := snap(e)

			_, err := e.SwapThree()
			require.ErrorIs(t, err, tt.want)

			var short *TooShortError
			require.True(t, errors.As(err, &short))
			assert.Equal(t, tt.container, short.Container)
			assert.Equal(t, SwapBatch, short.Required)
			assert.Equal(t, tt.actual, short.Actual)

			assert.Equal(t, before, snap(e))
		})
	}
}

func TestEngine_SwapThreeQueueCheckedFirst(t *testing.T) {
	cfg := settings.Default().Game
	cfg.QueueCapacity = 2
	e := New(cfg, piece.NewCycleSource())
	e.Fill()

	_, err := e.SwapThree()
	assert.ErrorIs(t, err, ErrQueueTooShort)
	assert.NotErrorIs(t, err, ErrStackTooShort)
}

// =============================================================================
// Invariants
// =============================================================================

func TestEngine_MixedWorkloadInvariants(t *testing.T) {
	e := newFilledEngine(t)
	ops := []func() error{
		func() error { _, err := e.Play(); return err },
		func() error { _, err := e.Reserve(); return err },
		func() error { _, err := e.UseReserved(); return err },
		func() error { _, err := e.SwapOne(); return err },
		func() error { _, err := e.SwapThree(); return err },
		func() error { _, err := e.Reserve(); return err },
		func() error { _, err := e.Reserve(); return err },
	}

	seen := map[int64]bool{}
	for step := 0; step < 500; step++ {
		_ = ops[(step*7+step/3)%len(ops)]()

		require.LessOrEqual(t, e.QueueLen(), e.QueueCapacity())
		require.LessOrEqual(t, e.StackLen(), e.StackCapacity())

		clear(seen)
		for _, p := range append(e.QueueContents(), e.StackContents()...) {
			require.False(t, seen[p.ID], "piece %v present twice", p)
			seen[p.ID] = true
			require.Less(t, p.ID, e.GeneratedCount())
		}
	}
}

func TestTooShortError_Message(t *testing.T) {
	err := &TooShortError{Container: ContainerStack, Required: 3, Actual: 1}
	assert.Equal(t, "stack needs at least 3 pieces, has 1", err.Error())
	assert.False(t, errors.Is(err, ErrQueueTooShort))
}

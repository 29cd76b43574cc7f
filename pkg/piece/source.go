package piece

import (
	"math/rand/v2"
	"time"
)

// KindSource picks the kind of the next generated piece.
type KindSource interface {
	NextKind() Kind
}

// RandomSource draws kinds uniformly from Kinds.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a source seeded with seed.
// A zero seed is replaced by the current wall-clock time.
func NewRandomSource(seed uint64) *RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomSource{rng: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

func (s *RandomSource) NextKind() Kind {
	return Kinds[s.rng.IntN(len(Kinds))]
}

// CycleSource replays a fixed script of kinds, wrapping around at the end.
// Useful for deterministic runs and tests.
type CycleSource struct {
	script []Kind
	pos    int
}

// NewCycleSource creates a source that returns kinds in order, forever.
// An empty script falls back to Kinds.
func NewCycleSource(kinds ...Kind) *CycleSource {
	if len(kinds) == 0 {
		kinds = Kinds[:]
	}
	return &CycleSource{script: kinds}
}

func (s *CycleSource) NextKind() Kind {
	k := s.script[s.pos]
	s.pos = (s.pos + 1) % len(s.script)
	return k
}

package die

import (
	"math/rand/v2"
	"sync"
	"time"
)

// RandomSource supplies uniform draws in [0, 1).
type RandomSource interface {
	Float64() float64
}

// lockedSource is a PCG generator that can be shared between dice.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSource returns a reproducible source for the given seed.
func NewSource(seed uint64) RandomSource {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandomSource returns a source seeded from the current time.
func NewRandomSource() RandomSource {
	return NewSource(uint64(time.Now().UnixNano()))
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

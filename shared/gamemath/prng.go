package gamemath

import (
	"math/rand"
	"time"
)

// PRNG wraps a seeded random source so rolls can be replayed in tests and
// with the -seed flag.
type PRNG struct {
	rng *rand.Rand
}

// NewPRNG creates a generator. A zero seed uses the current time.
func NewPRNG(seed int64) *PRNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNG{rng: rand.New(rand.NewSource(seed))}
}

// IntRange returns a uniform integer in [lo, hi].
func (p *PRNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + p.rng.Intn(hi-lo+1)
}

// Float64 returns a value in [0, 1).
func (p *PRNG) Float64() float64 {
	return p.rng.Float64()
}

package rng

import (
	"math/rand"
	"time"
)

// Source is the randomness the wheel and the confetti draw from.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

type Randomizer struct {
	rnd *rand.Rand
}

// NewRandomizer returns a Randomizer seeded with seed, or with the current time when seed is 0.
func NewRandomizer(seed int64) *Randomizer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Randomizer{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a non-negative pseudo-random int in [0,n)
func (r *Randomizer) Intn(n int) int {
	return r.rnd.Intn(n)
}

// Float64 returns a pseudo-random float64 in [0,1)
func (r *Randomizer) Float64() float64 {
	return r.rnd.Float64()
}

// Range returns a pseudo-random float64 in [lo,hi)
func Range(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

package core

import (
	"time"
)

// Random is the injectable source behind every gameplay draw
type Random interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
	// Intn returns a value in [0, n); n <= 0 yields 0
	Intn(n int) int
}

// Rand is a small deterministic xorshift64* generator
type Rand struct {
	s uint64
}

// NewRandom seeds a generator; seed 0 draws from the wall clock
func NewRandom(seed uint64) *Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) next() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Float64() float64 {
	return float64(r.next()>>11) * (1.0 / (1 << 53))
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % uint64(n))
}

// RangeF returns a value in [min, max)
func RangeF(r Random, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}

// Chance reports true with probability p
func Chance(r Random, p float64) bool {
	return r.Float64() < p
}

// JitterDuration returns base plus a uniform share of span
func JitterDuration(r Random, base, span time.Duration) time.Duration {
	return base + time.Duration(r.Float64()*float64(span))
}

package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRandDeterministicForSeed(t *testing.T) {
	a := NewRandom(42)
	b := NewRandom(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Intn(17), b.Intn(17))
	}
}

func TestRandRanges(t *testing.T) {
	r := NewRandom(7)
	for i := 0; i < 1000; i++ {
		f := r.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)

		n := r.Intn(40)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 40)
	}
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-3))
}

func TestRangeHelpers(t *testing.T) {
	seq := &SequenceRandom{Floats: []float64{0, 0.5, 0.99}}
	assert.Equal(t, 10.0, RangeF(seq, 10, 20))
	assert.Equal(t, 15.0, RangeF(seq, 10, 20))
	assert.InDelta(t, 19.9, RangeF(seq, 10, 20), 1e-9)
	assert.Equal(t, 5.0, RangeF(seq, 5, 5))

	seq = &SequenceRandom{Floats: []float64{0.1, 0.3}}
	assert.True(t, Chance(seq, 0.2))
	assert.False(t, Chance(seq, 0.2))

	seq = &SequenceRandom{Floats: []float64{0.5}}
	assert.Equal(t, 3500*time.Millisecond, JitterDuration(seq, 2*time.Second, 3*time.Second))
}

func TestSequenceRandomClampsAndCycles(t *testing.T) {
	seq := &SequenceRandom{Ints: []int{5, -1, 1}}
	assert.Equal(t, 2, seq.Intn(3))
	assert.Equal(t, 0, seq.Intn(3))
	assert.Equal(t, 1, seq.Intn(3))
	assert.Equal(t, 2, seq.Intn(3))
	assert.Equal(t, 0.0, (&SequenceRandom{}).Float64())
}

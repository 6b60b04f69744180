package systems

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kickdrive/core"
)

func TestParticlesSpawnAndFade(t *testing.T) {
	p := NewParticles(&core.SequenceRandom{Floats: []float64{0.5}}, 16)
	p.Spawn(100, 200, "💰", 3)
	require.Equal(t, 3, p.Len())

	var first Particle
	p.Each(func(pt Particle) { first = pt })
	assert.Equal(t, 0.0, first.VX)
	assert.Equal(t, -4.5, first.VY)
	assert.Equal(t, 21.0, first.Size)

	p.Update(100 * time.Millisecond)
	p.Each(func(pt Particle) {
		assert.InDelta(t, 200-4.5*6, pt.Y, 1e-9)
		assert.InDelta(t, 0.85, pt.Life, 1e-9)
	})

	p.Update(600 * time.Millisecond)
	assert.Equal(t, 0, p.Len())
}

func TestParticlesCapacityOverwritesOldest(t *testing.T) {
	p := NewParticles(core.NewRandom(1), 4)
	p.Spawn(0, 0, "a", 4)
	p.Spawn(0, 0, "b", 2)

	glyphs := []string{}
	p.Each(func(pt Particle) { glyphs = append(glyphs, pt.Glyph) })
	assert.Equal(t, []string{"b", "b", "a", "a"}, glyphs)
}

func TestParticlesDefaultCapacity(t *testing.T) {
	p := NewParticles(core.NewRandom(1), 0)
	p.Spawn(0, 0, "x", 300)
	assert.Equal(t, 256, p.Len())
}

package systems

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kickdrive/core"
)

func TestHerdSpawnsInsideArea(t *testing.T) {
	cfg := HumanCrowd()
	h := NewHerd(cfg, core.NewRandom(3))
	require.Len(t, h.Members, cfg.Count)

	glyphs := map[string]bool{}
	for _, m := range h.Members {
		assert.GreaterOrEqual(t, m.X, cfg.Spawn.MinX)
		assert.Less(t, m.X, cfg.Spawn.MaxX)
		assert.GreaterOrEqual(t, m.Y, cfg.Spawn.MinY)
		assert.Less(t, m.Y, cfg.Spawn.MaxY)
		assert.LessOrEqual(t, m.VX, cfg.Spread/2)
		assert.GreaterOrEqual(t, m.VX, -cfg.Spread/2)
		glyphs[m.Glyph] = true
	}
	assert.Len(t, glyphs, 4)
}

func TestHerdStaysInBounds(t *testing.T) {
	cfg := SheepFlock()
	h := NewHerd(cfg, core.NewRandom(11))
	for i := 0; i < 2000; i++ {
		h.Update(50 * time.Millisecond)
		for _, m := range h.Members {
			require.GreaterOrEqual(t, m.X, cfg.Bounds.MinX)
			require.LessOrEqual(t, m.X, cfg.Bounds.MaxX)
			require.GreaterOrEqual(t, m.Y, cfg.Bounds.MinY)
			require.LessOrEqual(t, m.Y, cfg.Bounds.MaxY)
		}
	}
}

func TestHerdMovementScalesWithDelta(t *testing.T) {
	cfg := HumanCrowd()
	cfg.Count = 1
	// Spawn at 200,425 moving +0.5 on both axes with a long first wait
	rng := &core.SequenceRandom{Floats: []float64{0.5, 0.5, 5.0 / 6.0, 5.0 / 6.0, 0.99}}
	h := NewHerd(cfg, rng)
	m := h.Members[0]
	require.InDelta(t, 200, m.X, 1e-9)
	require.InDelta(t, 0.5, m.VX, 1e-9)

	h.Update(100 * time.Millisecond)
	assert.InDelta(t, 200+0.5*60*0.1, h.Members[0].X, 1e-9)
	assert.InDelta(t, 425+0.5*60*0.1, h.Members[0].Y, 1e-9)
}

func TestHerdBleating(t *testing.T) {
	cfg := SheepFlock()
	cfg.Count = 2
	h := NewHerd(cfg, core.NewRandom(5))
	h.Members[0].X, h.Members[0].Y = 100, 300
	h.Members[1].X, h.Members[1].Y = 350, 500

	assert.Equal(t, 1, h.BleatNear(110, 310, 120))
	assert.True(t, h.Members[0].Bleating())
	assert.False(t, h.Members[1].Bleating())
}

func TestHerdRandomBleatOnReroll(t *testing.T) {
	cfg := SheepFlock()
	cfg.Count = 1
	// Spawn draws, zero initial wait, then re-roll velocities, wait and bleat chance
	rng := &core.SequenceRandom{Floats: []float64{0.5, 0.5, 0.5, 0.5, 0, 0.5, 0.5, 0.5, 0.1}}
	h := NewHerd(cfg, rng)

	h.Update(10 * time.Millisecond)
	assert.True(t, h.Members[0].Bleating())

	h.Update(1500 * time.Millisecond)
	assert.False(t, h.Members[0].Bleating())
}

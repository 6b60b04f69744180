package systems

import (
	"time"

	"github.com/lixenwraith/kickdrive/constants"
	"github.com/lixenwraith/kickdrive/core"
)

// Particle is a short-lived flying glyph
type Particle struct {
	Glyph  string
	X, Y   float64
	VX, VY float64
	Size   float64
	Life   float64 // 1 at spawn, removed at 0
}

// Particles is a bounded pool; the oldest particle is overwritten when full
type Particles struct {
	rng   core.Random
	items []Particle
	cap   int
	next  int
}

// NewParticles creates a pool holding at most capacity particles
func NewParticles(rng core.Random, capacity int) *Particles {
	if capacity <= 0 {
		capacity = constants.ParticleCapacity
	}
	return &Particles{rng: rng, items: make([]Particle, 0, capacity), cap: capacity}
}

// Spawn bursts count glyphs from (x, y)
func (p *Particles) Spawn(x, y float64, glyph string, count int) {
	for i := 0; i < count; i++ {
		pt := Particle{
			Glyph: glyph,
			X:     x,
			Y:     y,
			VX:    (p.rng.Float64() - 0.5) * 6,
			VY:    -p.rng.Float64()*5 - 2,
			Size:  16 + p.rng.Float64()*10,
			Life:  1,
		}
		if len(p.items) < p.cap {
			p.items = append(p.items, pt)
			continue
		}
		p.items[p.next] = pt
		p.next = (p.next + 1) % p.cap
	}
}

// Update integrates motion and fades particles out
func (p *Particles) Update(dt time.Duration) {
	sec := dt.Seconds()
	step := constants.MoveScale * sec

	kept := p.items[:0]
	for _, pt := range p.items {
		pt.X += pt.VX * step
		pt.Y += pt.VY * step
		pt.VY += constants.ParticleGravity * step
		pt.Life -= constants.ParticleDecay * sec
		if pt.Life > 0 {
			kept = append(kept, pt)
		}
	}
	p.items = kept
	if p.next >= len(p.items) {
		p.next = 0
	}
}

// Each visits live particles in spawn order
func (p *Particles) Each(fn func(Particle)) {
	for _, pt := range p.items {
		fn(pt)
	}
}

// Len returns the live particle count
func (p *Particles) Len() int { return len(p.items) }

package systems

import (
	"time"

	"github.com/lixenwraith/kickdrive/constants"
	"github.com/lixenwraith/kickdrive/core"
)

// HerdConfig describes a group of wandering background characters
type HerdConfig struct {
	Glyphs []string
	Count  int

	// Spawn area
	Spawn Bounds
	// Movement area
	Bounds Bounds

	// Spread is the full width of the per-axis velocity draw
	Spread float64
	// InitialWait spreads the first re-roll
	InitialWait time.Duration
	Wait        time.Duration
	Jitter      time.Duration

	// BleatChance is rolled on each velocity re-roll; zero disables bleating
	BleatChance float64
}

// HumanCrowd is the ambient townsfolk herd
func HumanCrowd() HerdConfig {
	return HerdConfig{
		Glyphs:      []string{"👦", "👧", "👨", "👩"},
		Count:       constants.HumanNPCCount,
		Spawn:       Bounds{MinX: 60, MaxX: 340, MinY: 350, MaxY: 500},
		Bounds:      Bounds{MinX: constants.RoamMinX, MaxX: constants.RoamMaxX, MinY: constants.HumanNPCMinY, MaxY: constants.HumanNPCMaxY},
		Spread:      constants.HumanNPCSpread,
		InitialWait: 3 * time.Second,
		Wait:        constants.HumanNPCWait,
		Jitter:      constants.HumanNPCJitter,
	}
}

// SheepFlock is the herd sharing the meadow with a sheep player
func SheepFlock() HerdConfig {
	return HerdConfig{
		Glyphs:      []string{"🐑"},
		Count:       constants.HerdCount,
		Spawn:       Bounds{MinX: 40, MaxX: 360, MinY: 200, MaxY: 500},
		Bounds:      Bounds{MinX: constants.RoamMinX, MaxX: constants.RoamMaxX, MinY: constants.HerdMinY, MaxY: constants.HerdMaxY},
		Spread:      constants.HerdSpread,
		InitialWait: 5 * time.Second,
		Wait:        constants.HerdWait,
		Jitter:      constants.HerdJitter,
		BleatChance: constants.BleatChance,
	}
}

// Wanderer is one herd member
type Wanderer struct {
	Glyph  string
	X, Y   float64
	VX, VY float64

	timer time.Duration
	bleat time.Duration
}

// Bleating reports whether the member shows a bleat bubble
func (w *Wanderer) Bleating() bool {
	return w.bleat > 0
}

// Herd moves wanderers on random headings
type Herd struct {
	cfg     HerdConfig
	rng     core.Random
	Members []Wanderer
}

// NewHerd scatters cfg.Count members inside the spawn area
func NewHerd(cfg HerdConfig, rng core.Random) *Herd {
	h := &Herd{cfg: cfg, rng: rng, Members: make([]Wanderer, cfg.Count)}
	for i := range h.Members {
		m := &h.Members[i]
		if len(cfg.Glyphs) > 0 {
			m.Glyph = cfg.Glyphs[i%len(cfg.Glyphs)]
		}
		m.X = core.RangeF(rng, cfg.Spawn.MinX, cfg.Spawn.MaxX)
		m.Y = core.RangeF(rng, cfg.Spawn.MinY, cfg.Spawn.MaxY)
		m.VX, m.VY = h.velocity(), h.velocity()
		m.timer = core.JitterDuration(rng, 0, cfg.InitialWait)
	}
	return h
}

func (h *Herd) velocity() float64 {
	return (h.rng.Float64() - 0.5) * h.cfg.Spread
}

// Update re-rolls expired headings, moves and clamps every member
func (h *Herd) Update(dt time.Duration) {
	step := constants.MoveScale * dt.Seconds()
	for i := range h.Members {
		m := &h.Members[i]

		m.timer -= dt
		if m.timer <= 0 {
			m.VX, m.VY = h.velocity(), h.velocity()
			m.timer = core.JitterDuration(h.rng, h.cfg.Wait, h.cfg.Jitter)
			if h.cfg.BleatChance > 0 && core.Chance(h.rng, h.cfg.BleatChance) {
				m.bleat = constants.BleatDuration
			}
		}

		if m.bleat > 0 {
			m.bleat -= dt
		}

		m.X += m.VX * step
		m.Y += m.VY * step
		m.X, m.Y = h.cfg.Bounds.Clamp(m.X, m.Y)
	}
}

// BleatNear makes members within radius of (x, y) bleat; returns how many joined
func (h *Herd) BleatNear(x, y, radius float64) int {
	n := 0
	for i := range h.Members {
		m := &h.Members[i]
		if core.Distance(x, y, m.X, m.Y) < radius {
			m.bleat = constants.BleatDuration
			n++
		}
	}
	return n
}

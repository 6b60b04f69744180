package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single simulation step after a stall
	MaxFrameDelta = 50 * time.Millisecond

	// EventQueueSize is the buffered input channel capacity
	EventQueueSize = 256
)

// Virtual canvas; all simulation coordinates live in this space
const (
	BaseWidth  = 400.0
	BaseHeight = 700.0
)

// Scene Timing
const (
	TransformDuration    = 2 * time.Second
	ShopMessageDuration  = 1500 * time.Millisecond
	ShopSuccessDuration  = 2 * time.Second
	MontageChantDuration = 5 * time.Second
	MontageTotalDuration = 7 * time.Second

	// MontageTextChance is the per-tick probability of a new chant line
	MontageTextChance = 0.15
	// MontageChantChance is the per-tick probability of replaying the chant
	MontageChantChance = 0.05
)

// Input
const (
	// KeyHoldTimeout is how long a key counts as held without a terminal repeat
	KeyHoldTimeout = 150 * time.Millisecond
)

package constants

import "time"

// Audio Output
const (
	AudioSampleRate = 48000
	AudioBuffer     = 100 * time.Millisecond
	DefaultVolume   = 1.0

	// EngineHumInterval throttles the race engine hum
	EngineHumInterval = 160 * time.Millisecond

	// ToneAttack is the fade-in applied to every synthesized tone
	ToneAttack = 5 * time.Millisecond

	// MaxPendingTones bounds the delayed-note queue
	MaxPendingTones = 64
)

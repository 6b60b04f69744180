package constants

import "time"

// Antagonist Encounter
const (
	WarningDuration = 2 * time.Second
	ChaseTimeout    = 15 * time.Second
	ResultDuration  = 3 * time.Second

	AntagonistEase = 0.015
	CatchDistance  = 35.0
	KickReach      = 100.0

	AntagonistStartX = -40.0

	EncounterMinX = 30.0
	EncounterMaxX = 370.0
	EncounterMinY = 50.0
	EncounterMaxY = 600.0
)

// Particles
const (
	ParticleCapacity = 256
	ParticleGravity  = 0.15
	ParticleDecay    = 1.5
)

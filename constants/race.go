package constants

import "time"

// Road Layout
const (
	RoadLanes  = 3
	LaneWidth  = 80.0
	RoadMargin = 80.0

	// PlayerYRatio places the player vehicle relative to BaseHeight
	PlayerYRatio = 0.82

	// SteerMargin keeps the steering target off the road edge
	SteerMargin = 20.0
)

// Race Tuning
const (
	RaceGoal = 3000.0

	SteerGain  = 1.8
	SteerEase  = 0.2
	ChaserEase = 0.02

	// DistancePerSpeed converts vehicle speed to distance units per second
	DistancePerSpeed = 60.0
	// StripePerSpeed is the road stripe scroll rate per unit of speed
	StripePerSpeed = 120.0
	StripePeriod   = 40.0

	SpawnIntervalStart = 1.2
	SpawnIntervalMin   = 0.4
	// SpawnRampDistance is the distance over which the spawn interval shrinks by one second
	SpawnRampDistance = 5000.0

	ObstacleSpawnY   = -70.0
	ObstacleCullPast = 100.0
)

// Race Phase Timing
const (
	CrashRecovery = 2 * time.Second
	GoalDwell     = 2500 * time.Millisecond
)

package constants

import "time"

// Roam Movement
const (
	// ArriveDistance stops the walker short of its target
	ArriveDistance = 5.0
	// MoveScale converts per-frame speeds to per-second
	MoveScale = 60.0

	HumanSpeed      = 2.5
	HumanShoesSpeed = 4.0
	SheepSpeed      = 2.0
	RunMultiplier   = 2.0

	KickPose = 300 * time.Millisecond
)

// Roam Bounds
const (
	RoamMinX = 20.0
	RoamMaxX = 380.0

	HumanMinY = 200.0
	HumanMaxY = 550.0
	SheepMinY = 80.0
	SheepMaxY = 550.0

	HumanSpawnX = 200.0
	HumanSpawnY = 385.0
	SheepSpawnX = 200.0
	SheepSpawnY = 350.0
)

// Ambient NPCs
const (
	HumanNPCCount  = 4
	HumanNPCSpread = 1.5
	HumanNPCMinY   = 350.0
	HumanNPCMaxY   = 550.0
	HumanNPCWait   = 2 * time.Second
	HumanNPCJitter = 3 * time.Second

	HerdCount     = 6
	HerdSpread    = 0.8
	HerdMinY      = 100.0
	HerdMaxY      = 550.0
	HerdWait      = 3 * time.Second
	HerdJitter    = 4 * time.Second
	BleatChance   = 0.2
	BleatDuration = 1500 * time.Millisecond
	BleatRadius   = 120.0
)

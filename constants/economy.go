package constants

import "time"

// Economy Defaults
const (
	KickMin = 10
	// KickMax is exclusive; base draws land in [KickMin, KickMax)
	KickMax = 50

	ComboTimeout = 800 * time.Millisecond
	ComboBonus   = 0.3

	// BootMultiplier applies to kick payouts while boots are owned
	BootMultiplier = 2.0

	AntagonistThreshold = 1000
	ClearMoney          = 5000
)

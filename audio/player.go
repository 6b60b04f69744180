package audio

import "time"

// Player is the audio surface the game drives
type Player interface {
	EngineHum(speed float64)
	Crash()
	KickThud()
	CoinChime()
	Fanfare()
	SelectBlip()
	PurchaseChime()
	MehBleat()
	AntagonistDrone()
	VictoryChant()
	// Advance releases delayed notes whose time has come
	Advance(dt time.Duration)
}

var (
	_ Player = (*SoundManager)(nil)
	_ Player = (*Recorder)(nil)
)

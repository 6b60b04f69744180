package audio

import "time"

// Sound names a game cue
type Sound int

const (
	SoundEngineHum Sound = iota
	SoundCrash
	SoundKick
	SoundCoin
	SoundFanfare
	SoundSelect
	SoundPurchase
	SoundMeh
	SoundDrone
	SoundChant
)

var soundNames = map[Sound]string{
	SoundEngineHum: "engine",
	SoundCrash:     "crash",
	SoundKick:      "kick",
	SoundCoin:      "coin",
	SoundFanfare:   "fanfare",
	SoundSelect:    "select",
	SoundPurchase:  "purchase",
	SoundMeh:       "meh",
	SoundDrone:     "drone",
	SoundChant:     "chant",
}

func (s Sound) String() string {
	if n, ok := soundNames[s]; ok {
		return n
	}
	return "unknown"
}

const ms = time.Millisecond

// engineTones pitches the hum with vehicle speed
func engineTones(speed float64) []Tone {
	return []Tone{{Freq: 80 + speed*15, Wave: WaveSaw, Duration: 80 * ms, Volume: 0.05}}
}

// recipes holds the fixed cues; engine hum is built per call
var recipes = map[Sound][]Tone{
	SoundCrash: {
		{Wave: WaveNoise, Duration: 400 * ms, Volume: 0.3},
		{Freq: 100, Wave: WaveSquare, Duration: 300 * ms, Volume: 0.2},
	},
	SoundKick: {
		{Wave: WaveNoise, Duration: 100 * ms, Volume: 0.2},
		{Freq: 200, Wave: WaveSquare, Duration: 80 * ms, Volume: 0.15},
	},
	SoundCoin: {
		{Freq: 880, Wave: WaveSine, Duration: 80 * ms, Volume: 0.12},
		{Freq: 1320, Wave: WaveSine, Duration: 100 * ms, Volume: 0.1, Delay: 80 * ms},
	},
	SoundMeh: {
		{Freq: 300, Wave: WaveSine, Duration: 300 * ms, Volume: 0.12},
		{Freq: 250, Wave: WaveSine, Duration: 400 * ms, Volume: 0.1, Delay: 150 * ms},
	},
	SoundDrone: {
		{Freq: 60, Wave: WaveSaw, Duration: time.Second, Volume: 0.15},
		{Freq: 63, Wave: WaveSaw, Duration: time.Second, Volume: 0.1},
	},
	SoundFanfare: {
		{Freq: 523, Wave: WaveSquare, Duration: 250 * ms, Volume: 0.12},
		{Freq: 659, Wave: WaveSquare, Duration: 250 * ms, Volume: 0.12, Delay: 200 * ms},
		{Freq: 784, Wave: WaveSquare, Duration: 250 * ms, Volume: 0.12, Delay: 400 * ms},
		{Freq: 1047, Wave: WaveSquare, Duration: 250 * ms, Volume: 0.12, Delay: 600 * ms},
	},
	SoundChant: {
		{Freq: 440, Wave: WaveSine, Duration: 150 * ms, Volume: 0.08},
		{Freq: 490, Wave: WaveSine, Duration: 150 * ms, Volume: 0.08, Delay: 120 * ms},
		{Freq: 540, Wave: WaveSine, Duration: 150 * ms, Volume: 0.08, Delay: 240 * ms},
		{Freq: 590, Wave: WaveSine, Duration: 150 * ms, Volume: 0.08, Delay: 360 * ms},
	},
	SoundSelect: {
		{Freq: 660, Wave: WaveSine, Duration: 80 * ms, Volume: 0.1},
	},
	SoundPurchase: {
		{Freq: 523, Wave: WaveSine, Duration: 100 * ms, Volume: 0.1},
		{Freq: 784, Wave: WaveSine, Duration: 150 * ms, Volume: 0.1, Delay: 100 * ms},
	},
}

// Recipe returns the tones for a fixed cue
func Recipe(s Sound) []Tone {
	return recipes[s]
}

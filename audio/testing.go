package audio

import (
	"sync"
	"time"
)

// Recorder is a Player that records cue names for assertions
type Recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *Recorder) record(name string) {
	r.mu.Lock()
	r.calls = append(r.calls, name)
	r.mu.Unlock()
}

// Calls returns recorded cue names in order
func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// Count returns how often a cue was played
func (r *Recorder) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c == name {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}

func (r *Recorder) EngineHum(float64) { r.record(SoundEngineHum.String()) }
func (r *Recorder) Crash() { r.record(SoundCrash.String()) }
func (r *Recorder) KickThud() { r.record(SoundKick.String()) }
func (r *Recorder) CoinChime() { r.record(SoundCoin.String()) }
func (r *Recorder) Fanfare() { r.record(SoundFanfare.String()) }
func (r *Recorder) SelectBlip() { r.record(SoundSelect.String()) }
func (r *Recorder) PurchaseChime() { r.record(SoundPurchase.String()) }
func (r *Recorder) MehBleat() { r.record(SoundMeh.String()) }
func (r *Recorder) AntagonistDrone() { r.record(SoundDrone.String()) }
func (r *Recorder) VictoryChant() { r.record(SoundChant.String()) }
func (r *Recorder) Advance(time.Duration) {}

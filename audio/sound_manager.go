package audio

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/kickdrive/constants"
)

type pendingTone struct {
	remaining time.Duration
	tone      Tone
}

// SoundManager schedules game cues onto an Output.
// A nil output, a disabled manager or a failed backend turn every call into a no-op.
type SoundManager struct {
	mu      sync.Mutex
	out     Output
	enabled bool
	log     logrus.FieldLogger

	pending []pendingTone

	// Virtual clock advanced by frame deltas so throttling stays deterministic
	clock time.Time
	hum   *rate.Limiter
}

// NewSoundManager creates a manager playing through out
func NewSoundManager(out Output, log logrus.FieldLogger) *SoundManager {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &SoundManager{
		out:     out,
		enabled: out != nil,
		log:     log.WithField("component", "audio"),
		clock:   time.Unix(0, 0),
		hum:     rate.NewLimiter(rate.Every(constants.EngineHumInterval), 1),
	}
}

// SetEnabled toggles output; disabling drops queued notes
func (sm *SoundManager) SetEnabled(on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.enabled = on && sm.out != nil
	if !sm.enabled {
		sm.pending = sm.pending[:0]
	}
}

// Enabled reports whether cues reach the output
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}

// Pending returns the number of queued delayed notes
func (sm *SoundManager) Pending() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return len(sm.pending)
}

// Advance moves the scheduler clock and plays notes that came due
func (sm *SoundManager) Advance(dt time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.clock = sm.clock.Add(dt)
	if !sm.enabled || len(sm.pending) == 0 {
		return
	}

	kept := sm.pending[:0]
	var due []Tone
	for _, p := range sm.pending {
		p.remaining -= dt
		if p.remaining <= 0 {
			due = append(due, p.tone)
			continue
		}
		kept = append(kept, p)
	}
	sm.pending = kept

	for _, t := range due {
		sm.emit(t)
	}
}

// EngineHum is throttled to one note per EngineHumInterval of game time
func (sm *SoundManager) EngineHum(speed float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.enabled || !sm.hum.AllowN(sm.clock, 1) {
		return
	}
	sm.schedule(engineTones(speed))
}

func (sm *SoundManager) Crash() { sm.cue(SoundCrash) }
func (sm *SoundManager) KickThud() { sm.cue(SoundKick) }
func (sm *SoundManager) CoinChime() { sm.cue(SoundCoin) }
func (sm *SoundManager) Fanfare() { sm.cue(SoundFanfare) }
func (sm *SoundManager) SelectBlip() { sm.cue(SoundSelect) }
func (sm *SoundManager) PurchaseChime() { sm.cue(SoundPurchase) }
func (sm *SoundManager) MehBleat() { sm.cue(SoundMeh) }
func (sm *SoundManager) AntagonistDrone() { sm.cue(SoundDrone) }
func (sm *SoundManager) VictoryChant() { sm.cue(SoundChant) }

func (sm *SoundManager) cue(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.enabled {
		return
	}
	sm.schedule(Recipe(s))
}

// schedule plays immediate tones and queues delayed ones; caller holds mu
func (sm *SoundManager) schedule(tones []Tone) {
	for _, t := range tones {
		if !sm.enabled {
			return
		}
		if t.Delay <= 0 {
			sm.emit(t)
			continue
		}
		if len(sm.pending) >= constants.MaxPendingTones {
			sm.log.Debug("tone queue full, dropping note")
			continue
		}
		sm.pending = append(sm.pending, pendingTone{remaining: t.Delay, tone: t})
	}
}

// emit sends a tone to the output; a failing backend disables audio for the session
func (sm *SoundManager) emit(t Tone) {
	if !sm.enabled {
		return
	}

	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Errorf("audio backend panic: %v", r)
			}
		}()
		return sm.out.Play(t)
	}()

	if err != nil {
		sm.log.WithError(err).Warn("audio disabled after output failure")
		sm.enabled = false
		sm.pending = sm.pending[:0]
	}
}

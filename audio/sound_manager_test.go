package audio

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type recordingOutput struct {
	played []Tone
	err    error
	panics bool
}

func (o *recordingOutput) Play(t Tone) error {
	if o.panics {
		panic("device vanished")
	}
	if o.err != nil {
		return o.err
	}
	o.played = append(o.played, t)
	return nil
}

func freqs(tones []Tone) []float64 {
	out := make([]float64, len(tones))
	for i, t := range tones {
		out[i] = t.Freq
	}
	return out
}

// TestSoundManagerGracefulDegradation verifies cues don't panic without an output
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil, nil)
	assert.False(t, sm.Enabled())

	assert.NotPanics(t, func() {
		sm.EngineHum(4)
		sm.Crash()
		sm.KickThud()
		sm.CoinChime()
		sm.Fanfare()
		sm.SelectBlip()
		sm.PurchaseChime()
		sm.MehBleat()
		sm.AntagonistDrone()
		sm.VictoryChant()
		sm.Advance(time.Second)
	})
	assert.Equal(t, 0, sm.Pending())
}

func TestSoundManagerSchedulesDelayedNotes(t *testing.T) {
	out := &recordingOutput{}
	sm := NewSoundManager(out, nil)

	sm.Fanfare()
	assert.Equal(t, []float64{523}, freqs(out.played))
	assert.Equal(t, 3, sm.Pending())

	sm.Advance(199 * time.Millisecond)
	assert.Len(t, out.played, 1)

	sm.Advance(time.Millisecond)
	assert.Equal(t, []float64{523, 659}, freqs(out.played))

	sm.Advance(400 * time.Millisecond)
	assert.Equal(t, []float64{523, 659, 784, 1047}, freqs(out.played))
	assert.Equal(t, 0, sm.Pending())
}

func TestSoundManagerCoinChime(t *testing.T) {
	out := &recordingOutput{}
	sm := NewSoundManager(out, nil)

	sm.CoinChime()
	sm.Advance(80 * time.Millisecond)
	assert.Equal(t, []float64{880, 1320}, freqs(out.played))
}

func TestSoundManagerThrottlesEngineHum(t *testing.T) {
	out := &recordingOutput{}
	sm := NewSoundManager(out, nil)

	// One second of 16ms frames
	for i := 0; i < 62; i++ {
		sm.EngineHum(4)
		sm.Advance(16 * time.Millisecond)
	}
	assert.GreaterOrEqual(t, len(out.played), 6)
	assert.LessOrEqual(t, len(out.played), 8)
	assert.InDelta(t, 140.0, out.played[0].Freq, 1e-9)
}

func TestSoundManagerDisableDropsQueue(t *testing.T) {
	out := &recordingOutput{}
	sm := NewSoundManager(out, nil)

	sm.VictoryChant()
	assert.Equal(t, 3, sm.Pending())

	sm.SetEnabled(false)
	assert.Equal(t, 0, sm.Pending())
	sm.Advance(time.Second)
	sm.KickThud()
	assert.Len(t, out.played, 1)

	sm.SetEnabled(true)
	sm.KickThud()
	assert.Len(t, out.played, 3)
}

func TestSoundManagerOutputFailureDisables(t *testing.T) {
	out := &recordingOutput{err: errors.New("device busy")}
	sm := NewSoundManager(out, nil)

	sm.MehBleat()
	assert.False(t, sm.Enabled())
	assert.Equal(t, 0, sm.Pending())
}

func TestSoundManagerRecoversBackendPanic(t *testing.T) {
	out := &recordingOutput{panics: true}
	sm := NewSoundManager(out, nil)

	assert.NotPanics(t, func() { sm.Crash() })
	assert.False(t, sm.Enabled())
}

func TestSpeakerOutputRequiresInit(t *testing.T) {
	o := NewSpeakerOutput(0, 1)
	assert.ErrorIs(t, o.Play(Tone{Freq: 440, Duration: time.Millisecond, Volume: 0.1}), ErrNotInitialized)
	assert.NotPanics(t, o.Cleanup)
}

func TestRecorderCountsCues(t *testing.T) {
	r := &Recorder{}
	r.KickThud()
	r.CoinChime()
	r.KickThud()
	assert.Equal(t, 2, r.Count("kick"))
	assert.Equal(t, []string{"kick", "coin", "kick"}, r.Calls())
	r.Reset()
	assert.Empty(t, r.Calls())
}

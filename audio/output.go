package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/kickdrive/constants"
)

// ErrNotInitialized is returned when playing through a closed output
var ErrNotInitialized = errors.New("audio output not initialized")

// Output renders tones on a device
type Output interface {
	Play(t Tone) error
}

// SpeakerOutput mixes synthesized tones into the system speaker
type SpeakerOutput struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	master      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeakerOutput creates an output; Initialize opens the device
func NewSpeakerOutput(sampleRate int, master float64) *SpeakerOutput {
	if sampleRate <= 0 {
		sampleRate = constants.AudioSampleRate
	}
	return &SpeakerOutput{
		rate:   beep.SampleRate(sampleRate),
		master: master,
		mixer:  &beep.Mixer{},
	}
}

// Initialize sets up the speaker and starts the mixer
func (o *SpeakerOutput) Initialize() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.initialized {
		return nil
	}

	if err := speaker.Init(o.rate, o.rate.N(constants.AudioBuffer)); err != nil {
		return errors.Wrap(err, "init speaker")
	}

	speaker.Play(o.mixer)
	o.initialized = true
	return nil
}

// Play adds a synthesized tone to the mixer
func (o *SpeakerOutput) Play(t Tone) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.initialized {
		return ErrNotInitialized
	}

	s := Synthesize(t, o.rate, o.master)
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// Cleanup silences the mixer
// beep has no speaker Close for this backend, clearing streamers avoids artifacts
func (o *SpeakerOutput) Cleanup() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.initialized {
		return
	}

	speaker.Lock()
	o.mixer.Clear()
	speaker.Unlock()
	o.initialized = false
}

package engine

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/kickdrive/audio"
	"github.com/lixenwraith/kickdrive/content"
	"github.com/lixenwraith/kickdrive/core"
	"github.com/lixenwraith/kickdrive/economy"
)

// SessionConfig holds the injected collaborators of a session
type SessionConfig struct {
	Rules  economy.Rules
	Audio  audio.Player
	Rand   core.Random
	Logger logrus.FieldLogger
}

// Session is the state shared by all scenes for one play-through
type Session struct {
	ID       string
	Economy  *economy.Economy
	Director *Director
	Audio    audio.Player
	Rand     core.Random
	Log      logrus.FieldLogger

	AntagonistTriggered bool
	AntagonistForm      content.Form
	ClearShown          bool
	SelectedVehicle     content.VehicleID

	rules economy.Rules
	quit  bool
}

// NewSession creates a session with a fresh economy and an empty director
// Missing collaborators fall back to silent audio, a clock-seeded source and a discarding logger
func NewSession(cfg SessionConfig) *Session {
	if cfg.Audio == nil {
		cfg.Audio = audio.NewSoundManager(nil, nil)
	}
	if cfg.Rand == nil {
		cfg.Rand = core.NewRandom(0)
	}
	if cfg.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.Logger = l
	}
	if cfg.Rules == (economy.Rules{}) {
		cfg.Rules = economy.DefaultRules()
	}

	id := uuid.NewString()
	return &Session{
		ID:              id,
		Economy:         economy.New(cfg.Rules, cfg.Rand),
		Director:        NewDirector(),
		Audio:           cfg.Audio,
		Rand:            cfg.Rand,
		Log:             cfg.Logger.WithField("session", id),
		SelectedVehicle: content.VehicleCar,
		rules:           cfg.Rules,
	}
}

// ChangeScene asks the director for a transition; unknown names are logged and ignored
func (s *Session) ChangeScene(name string, p Params) bool {
	from := s.Director.Active()
	if err := s.Director.ChangeScene(s, name, p); err != nil {
		s.Log.WithError(err).Warn("scene transition rejected")
		return false
	}
	s.Log.WithFields(logrus.Fields{"from": from, "scene": name}).Debug("scene changed")
	return true
}

// Reset starts a new play-through on the same registry and returns to the title
func (s *Session) Reset() {
	s.Economy = economy.New(s.rules, s.Rand)
	s.AntagonistTriggered = false
	s.AntagonistForm = content.FormHuman
	s.ClearShown = false
	s.SelectedVehicle = content.VehicleCar
	s.Log.Info("session reset")
	s.ChangeScene(SceneTitle, Params{})
}

// RequestQuit asks the frame loop to stop after the current tick
func (s *Session) RequestQuit() { s.quit = true }

// QuitRequested reports a pending quit
func (s *Session) QuitRequested() bool { return s.quit }

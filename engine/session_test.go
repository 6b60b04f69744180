package engine

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kickdrive/audio"
	"github.com/lixenwraith/kickdrive/content"
	"github.com/lixenwraith/kickdrive/core"
	"github.com/lixenwraith/kickdrive/economy"
)

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession(SessionConfig{})

	assert.NotEmpty(t, s.ID)
	assert.NotNil(t, s.Audio)
	assert.NotNil(t, s.Rand)
	assert.Equal(t, economy.DefaultRules(), s.Economy.Rules())
	assert.Zero(t, s.Economy.Money())
	assert.Equal(t, content.VehicleCar, s.SelectedVehicle)
	assert.False(t, s.QuitRequested())

	other := NewSession(SessionConfig{})
	assert.NotEqual(t, s.ID, other.ID)
}

func TestSessionResetStartsOver(t *testing.T) {
	rules := economy.DefaultRules()
	rules.StartingMoney = 300
	s := NewSession(SessionConfig{Rules: rules, Audio: &audio.Recorder{}, Rand: &core.SequenceRandom{}})
	title := &sceneSpy{}
	s.Director.Register(SceneTitle, title)
	s.Director.Register(SceneClear, &sceneSpy{})
	require.True(t, s.ChangeScene(SceneClear, Params{}))

	require.True(t, s.Economy.Purchase(content.ItemShoes))
	s.Economy.AddKickMoney(false)
	s.AntagonistTriggered = true
	s.AntagonistForm = content.FormSheep
	s.ClearShown = true
	s.SelectedVehicle = content.VehicleBike
	before := s.Economy

	s.Reset()

	assert.NotSame(t, before, s.Economy)
	assert.Equal(t, 300, s.Economy.Money())
	assert.Zero(t, s.Economy.TotalEarned())
	assert.Empty(t, s.Economy.Owned())
	assert.False(t, s.AntagonistTriggered)
	assert.Equal(t, content.FormHuman, s.AntagonistForm)
	assert.False(t, s.ClearShown)
	assert.Equal(t, content.VehicleCar, s.SelectedVehicle)
	assert.Equal(t, SceneTitle, s.Director.Active())
	assert.Equal(t, []string{"enter"}, title.calls)
}

func TestSessionLogsTransitions(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	s := NewSession(SessionConfig{Logger: logger})
	s.Director.Register(SceneTitle, &sceneSpy{})

	s.ChangeScene(SceneTitle, Params{})
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, SceneTitle, entry.Data["scene"])
	assert.Equal(t, s.ID, entry.Data["session"])

	s.ChangeScene("missing", Params{})
	entry = hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, SceneTitle, s.Director.Active())
}

func TestSessionQuit(t *testing.T) {
	s := NewSession(SessionConfig{})
	s.RequestQuit()
	assert.True(t, s.QuitRequested())
}

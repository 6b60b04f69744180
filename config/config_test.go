package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kickdrive/economy"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	if diff := cmp.Diff(economy.DefaultRules(), cfg.EconomyRules()); diff != "" {
		t.Errorf("default rules mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 50*time.Millisecond, cfg.MaxFrameDelta())
	assert.InDelta(t, float64(16*time.Millisecond), float64(cfg.FrameInterval()), float64(time.Millisecond))
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "kickdrive.toml", `
seed = 42
log_level = "debug"

[display]
fps = 30
color_mode = "256"

[audio]
enabled = false
volume = 0.5

[rules]
kick_min = 5
kick_max = 15
combo_timeout_ms = 1000
starting_money = 100
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30, cfg.Display.FPS)
	assert.Equal(t, Color256, cfg.Display.ColorMode)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.5, cfg.Audio.Volume)

	rules := cfg.EconomyRules()
	assert.Equal(t, 5, rules.KickMin)
	assert.Equal(t, 15, rules.KickMax)
	assert.Equal(t, time.Second, rules.ComboTimeout)
	assert.Equal(t, 100, rules.StartingMoney)
	// Untouched keys keep their defaults
	assert.Equal(t, Default().Rules.ClearMoney, rules.ClearMoney)
	assert.Equal(t, Default().Display.MaxFrameDeltaMS, cfg.Display.MaxFrameDeltaMS)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "bad.toml", "[display]\nframes = 60\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display.frames")
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := writeFile(t, "broken.toml", "seed = [\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeFile(t, "invalid.toml", "[rules]\nkick_min = 50\nkick_max = 10\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kick_min")
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "kickdrive.toml", "seed = 1\n")
	t.Setenv("KICKDRIVE_SEED", "7")
	t.Setenv("KICKDRIVE_DEBUG", "true")
	t.Setenv("KICKDRIVE_AUDIO", "false")
	t.Setenv("KICKDRIVE_FPS", "30")
	t.Setenv("KICKDRIVE_LOG_LEVEL", "warn")
	t.Setenv("KICKDRIVE_LOG_DIR", "/tmp/kick")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 30, cfg.Display.FPS)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/tmp/kick", cfg.LogDir)
}

func TestApplyEnvErrors(t *testing.T) {
	env := map[string]string{"KICKDRIVE_SEED": "lots"}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	cfg := Default()
	err := cfg.ApplyEnv(lookup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KICKDRIVE_SEED")

	// Blank values are ignored
	env = map[string]string{"KICKDRIVE_FPS": "  "}
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, Default().Display.FPS, cfg.Display.FPS)
}

func TestLoadDotEnv(t *testing.T) {
	path := writeFile(t, ".env", "KICKDRIVE_TEST_DOTENV=loaded\n")
	t.Cleanup(func() { os.Unsetenv("KICKDRIVE_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env"), path))
	assert.Equal(t, "loaded", os.Getenv("KICKDRIVE_TEST_DOTENV"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero fps", func(c *Config) { c.Display.FPS = 0 }, "fps"},
		{"zero delta", func(c *Config) { c.Display.MaxFrameDeltaMS = 0 }, "max_frame_delta_ms"},
		{"color mode", func(c *Config) { c.Display.ColorMode = "sepia" }, "color_mode"},
		{"loud", func(c *Config) { c.Audio.Volume = 1.5 }, "volume"},
		{"sample rate", func(c *Config) { c.Audio.SampleRate = 0 }, "sample_rate"},
		{"log level", func(c *Config) { c.LogLevel = "chatty" }, "log_level"},
		{"kick range", func(c *Config) { c.Rules.KickMax = c.Rules.KickMin }, "kick_min"},
		{"negative bonus", func(c *Config) { c.Rules.ComboBonus = -1 }, "negative"},
		{"negative threshold", func(c *Config) { c.Rules.AntagonistThreshold = -1 }, "negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseFlags(t *testing.T) {
	f, err := ParseFlags("kickdrive", []string{"-config", "game.toml", "-seed", "9", "-mute"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "game.toml", f.ConfigPath)
	require.NotNil(t, f.Seed)
	assert.Nil(t, f.Debug)

	cfg := Default()
	cfg.Debug = true
	f.Apply(&cfg)
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.Audio.Enabled)

	_, err = ParseFlags("kickdrive", []string{"-bogus"}, io.Discard)
	assert.Error(t, err)
}

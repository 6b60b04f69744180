package config

import (
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/kickdrive/constants"
	"github.com/lixenwraith/kickdrive/economy"
)

// EnvPrefix namespaces environment overrides
const EnvPrefix = "KICKDRIVE_"

// Color modes accepted by [display] color_mode
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Config is the full runtime configuration
type Config struct {
	Seed     uint64 `toml:"seed"`
	Debug    bool   `toml:"debug"`
	LogLevel string `toml:"log_level"`
	LogDir   string `toml:"log_dir"`

	Display Display `toml:"display"`
	Audio   Audio   `toml:"audio"`
	Rules   Rules   `toml:"rules"`
}

type Display struct {
	FPS             int    `toml:"fps"`
	MaxFrameDeltaMS int    `toml:"max_frame_delta_ms"`
	ColorMode       string `toml:"color_mode"`
}

type Audio struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"`
	SampleRate int     `toml:"sample_rate"`
}

// Rules mirrors economy.Rules with file-friendly units
type Rules struct {
	KickMin             int     `toml:"kick_min"`
	KickMax             int     `toml:"kick_max"`
	ComboTimeoutMS      int     `toml:"combo_timeout_ms"`
	ComboBonus          float64 `toml:"combo_bonus"`
	BootMultiplier      float64 `toml:"boot_multiplier"`
	AntagonistThreshold int     `toml:"antagonist_threshold"`
	ClearMoney          int     `toml:"clear_money"`
	StartingMoney       int     `toml:"starting_money"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		LogLevel: "info",
		LogDir:   "logs",
		Display: Display{
			FPS:             int(time.Second / constants.FrameUpdateInterval),
			MaxFrameDeltaMS: int(constants.MaxFrameDelta / time.Millisecond),
			ColorMode:       ColorAuto,
		},
		Audio: Audio{
			Enabled:    true,
			Volume:     constants.DefaultVolume,
			SampleRate: constants.AudioSampleRate,
		},
		Rules: Rules{
			KickMin:             constants.KickMin,
			KickMax:             constants.KickMax,
			ComboTimeoutMS:      int(constants.ComboTimeout / time.Millisecond),
			ComboBonus:          constants.ComboBonus,
			BootMultiplier:      constants.BootMultiplier,
			AntagonistThreshold: constants.AntagonistThreshold,
			ClearMoney:          constants.ClearMoney,
		},
	}
}

// Load builds the configuration from defaults, the optional TOML file at path,
// an optional .env file and KICKDRIVE_ environment variables, in that order
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return cfg, err
		}
	}
	if err := LoadDotEnv(".env"); err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// LoadDotEnv loads variables from the given files; missing files are skipped
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Wrapf(err, "load env file %s", p)
		}
	}
	return nil
}

// ApplyEnv overrides fields from KICKDRIVE_ variables found by lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "%sSEED", EnvPrefix)
		}
		c.Seed = seed
	}
	if v, ok := get("DEBUG"); ok {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "%sDEBUG", EnvPrefix)
		}
		c.Debug = debug
	}
	if v, ok := get("AUDIO"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "%sAUDIO", EnvPrefix)
		}
		c.Audio.Enabled = enabled
	}
	if v, ok := get("FPS"); ok {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "%sFPS", EnvPrefix)
		}
		c.Display.FPS = fps
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := get("LOG_DIR"); ok {
		c.LogDir = v
	}
	return nil
}

// Validate rejects configurations the game cannot run with
func (c Config) Validate() error {
	if c.Display.FPS <= 0 {
		return errors.Errorf("display.fps must be positive, got %d", c.Display.FPS)
	}
	if c.Display.MaxFrameDeltaMS <= 0 {
		return errors.Errorf("display.max_frame_delta_ms must be positive, got %d", c.Display.MaxFrameDeltaMS)
	}
	switch c.Display.ColorMode {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return errors.Errorf("display.color_mode %q is not one of auto, truecolor, 256", c.Display.ColorMode)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return errors.Errorf("audio.volume must be within [0, 1], got %g", c.Audio.Volume)
	}
	if c.Audio.SampleRate <= 0 {
		return errors.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}

	r := c.Rules
	if r.KickMin < 0 || r.KickMin >= r.KickMax {
		return errors.Errorf("rules.kick_min %d must be below kick_max %d", r.KickMin, r.KickMax)
	}
	if r.ComboTimeoutMS < 0 || r.ComboBonus < 0 || r.BootMultiplier < 0 {
		return errors.New("rules combo and boot tuning must not be negative")
	}
	if r.AntagonistThreshold < 0 || r.ClearMoney < 0 || r.StartingMoney < 0 {
		return errors.New("rules thresholds must not be negative")
	}
	return nil
}

// EconomyRules converts the rules section for economy.New
func (c Config) EconomyRules() economy.Rules {
	r := c.Rules
	return economy.Rules{
		KickMin:             r.KickMin,
		KickMax:             r.KickMax,
		ComboTimeout:        time.Duration(r.ComboTimeoutMS) * time.Millisecond,
		ComboBonus:          r.ComboBonus,
		BootMultiplier:      r.BootMultiplier,
		AntagonistThreshold: r.AntagonistThreshold,
		ClearMoney:          r.ClearMoney,
		StartingMoney:       r.StartingMoney,
	}
}

// FrameInterval is the ticker period for the configured frame rate
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Display.FPS)
}

// MaxFrameDelta caps a single simulation step
func (c Config) MaxFrameDelta() time.Duration {
	return time.Duration(c.Display.MaxFrameDeltaMS) * time.Millisecond
}

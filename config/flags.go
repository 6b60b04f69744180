package config

import (
	"flag"
	"io"

	"github.com/pkg/errors"
)

// Flags are the command-line overrides; nil fields were not given
type Flags struct {
	ConfigPath string
	Seed       *uint64
	Debug      *bool
	Mute       *bool
}

// ParseFlags reads -config, -seed, -debug and -mute from args
func ParseFlags(name string, args []string, output io.Writer) (Flags, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	var f Flags
	fs.StringVar(&f.ConfigPath, "config", "", "path to a TOML config file")
	seed := fs.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	debug := fs.Bool("debug", false, "write a debug log to the log directory")
	mute := fs.Bool("mute", false, "disable audio")

	if err := fs.Parse(args); err != nil {
		return f, errors.Wrap(err, "parse flags")
	}

	// Only explicitly set flags override the file
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "seed":
			f.Seed = seed
		case "debug":
			f.Debug = debug
		case "mute":
			f.Mute = mute
		}
	})
	return f, nil
}

// Apply overlays the given flags onto c
func (f Flags) Apply(c *Config) {
	if f.Seed != nil {
		c.Seed = *f.Seed
	}
	if f.Debug != nil {
		c.Debug = *f.Debug
	}
	if f.Mute != nil && *f.Mute {
		c.Audio.Enabled = false
	}
}

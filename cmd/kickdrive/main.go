package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/kickdrive/audio"
	"github.com/lixenwraith/kickdrive/config"
	"github.com/lixenwraith/kickdrive/constants"
	"github.com/lixenwraith/kickdrive/core"
	"github.com/lixenwraith/kickdrive/engine"
	"github.com/lixenwraith/kickdrive/input"
	"github.com/lixenwraith/kickdrive/render"
	"github.com/lixenwraith/kickdrive/scenes"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "kickdrive: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags, err := config.ParseFlags("kickdrive", args, os.Stderr)
	if err != nil {
		return err
	}
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}
	flags.Apply(&cfg)

	log, logFile, err := core.SetupLogging(cfg.Debug, cfg.LogDir, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	// tcell reads the override before probing the terminal
	switch cfg.Display.ColorMode {
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	screen.EnableMouse()
	screen.HideCursor()

	defer screen.Fini()

	// Crash handler restores the terminal from any goroutine
	core.SetCrashTerminal(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	out := newOutput(cfg, log)
	if speaker, ok := out.(*audio.SpeakerOutput); ok {
		defer speaker.Cleanup()
	}
	sound := audio.NewSoundManager(out, log)
	sound.SetEnabled(cfg.Audio.Enabled)

	session := engine.NewSession(engine.SessionConfig{
		Rules:  cfg.EconomyRules(),
		Audio:  sound,
		Rand:   core.NewRandom(cfg.Seed),
		Logger: log,
	})
	session.Log.WithFields(logrus.Fields{"seed": cfg.Seed, "audio": sound.Enabled()}).Info("session started")
	scenes.Start(session)

	surface := render.NewTerminalSurface(screen)
	vp := surface.Viewport()
	loop := engine.NewLoop(session, surface, input.NewTranslator(vp.Cols, vp.Rows), engine.NewTimeProvider())
	loop.SetTiming(cfg.FrameInterval(), cfg.MaxFrameDelta())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event, constants.EventQueueSize)
	core.Go(func() { pollEvents(ctx, screen, events) })

	if err := loop.Run(ctx, events); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// newOutput opens the speaker; failures leave the game silent
func newOutput(cfg config.Config, log logrus.FieldLogger) audio.Output {
	if !cfg.Audio.Enabled {
		return nil
	}
	out := audio.NewSpeakerOutput(cfg.Audio.SampleRate, cfg.Audio.Volume)
	if err := out.Initialize(); err != nil {
		log.WithError(err).Warn("audio unavailable, continuing without sound")
		return nil
	}
	return out
}

// pollEvents forwards terminal events until the screen is finalized
func pollEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

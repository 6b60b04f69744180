package engine

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kickdrive/constants"
	"github.com/lixenwraith/kickdrive/input"
	"github.com/lixenwraith/kickdrive/render"
)

// Loop drives the session one frame at a time
// Only the loop goroutine touches scenes and the economy; the poller just feeds events
type Loop struct {
	session    *Session
	screen     render.Screen
	translator *input.Translator
	clock      Clock

	interval time.Duration
	maxDelta time.Duration

	last    time.Time
	frames  uint64
	changes uint64
}

// NewLoop creates a frame loop rendering to screen
func NewLoop(session *Session, screen render.Screen, translator *input.Translator, clock Clock) *Loop {
	if clock == nil {
		clock = NewTimeProvider()
	}
	return &Loop{
		session:    session,
		screen:     screen,
		translator: translator,
		clock:      clock,
		interval:   constants.FrameUpdateInterval,
		maxDelta:   constants.MaxFrameDelta,
		changes:    session.Director.Changes(),
	}
}

// SetTiming overrides the frame interval and the dt clamp
func (l *Loop) SetTiming(interval, maxDelta time.Duration) {
	if interval > 0 {
		l.interval = interval
	}
	if maxDelta > 0 {
		l.maxDelta = maxDelta
	}
}

// Frames returns the number of completed steps
func (l *Loop) Frames() uint64 { return l.frames }

// Delta computes the clamped step duration since the previous frame
func (l *Loop) Delta(now time.Time) time.Duration {
	if l.last.IsZero() {
		return 0
	}
	dt := now.Sub(l.last)
	if dt < 0 {
		return 0
	}
	if dt > l.maxDelta {
		return l.maxDelta
	}
	return dt
}

// Step advances one frame: key expiry, audio queue, scene update, render
func (l *Loop) Step(now time.Time) {
	dt := l.Delta(now)
	l.last = now

	s := l.session
	for _, ev := range l.translator.Expire(now) {
		s.Director.Dispatch(s, ev)
	}
	s.Audio.Advance(dt)
	s.Director.Update(s, dt)
	l.releaseOnSceneChange()

	l.screen.BeginFrame()
	s.Director.Render(s, l.screen)
	l.screen.EndFrame()
	l.frames++
}

// HandleEvent translates and routes one terminal event
func (l *Loop) HandleEvent(ev tcell.Event, now time.Time) {
	s := l.session
	for _, e := range l.translator.Translate(ev, now) {
		switch e.Kind {
		case input.Quit:
			s.RequestQuit()
		case input.Resize:
			l.screen.Resize(e.Cols, e.Rows)
		default:
			s.Director.Dispatch(s, e)
		}
	}
	l.releaseOnSceneChange()
}

// releaseOnSceneChange lifts every held key once the active scene changes
// The new scene receives the KeyUps, so a hold never outlives its scene
func (l *Loop) releaseOnSceneChange() {
	s := l.session
	n := s.Director.Changes()
	if n == l.changes {
		return
	}
	l.changes = n
	for _, ev := range l.translator.ReleaseAll() {
		s.Director.Dispatch(s, ev)
	}
}

// Run ticks until ctx is cancelled, the events channel closes or a quit is requested
func (l *Loop) Run(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for !l.session.QuitRequested() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			l.HandleEvent(ev, l.clock.Now())
		case <-ticker.C:
			l.Step(l.clock.Now())
		}
	}
	l.session.Log.WithField("frames", l.frames).Info("loop stopped")
	return nil
}

package input

import (
	"sort"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/kickdrive/constants"
	"github.com/lixenwraith/kickdrive/render"
)

// Translator converts tcell events into input events
// Terminals never report key release, so held keys expire after a quiet period
type Translator struct {
	vp      render.Viewport
	timeout time.Duration

	// held tracks the last press or repeat per key name
	held map[string]time.Time

	buttonDown bool
}

// NewTranslator creates a translator for a terminal of the given size
func NewTranslator(cols, rows int) *Translator {
	return &Translator{
		vp:      render.Viewport{Cols: cols, Rows: rows},
		timeout: constants.KeyHoldTimeout,
		held:    make(map[string]time.Time),
	}
}

// SetHoldTimeout overrides the key release delay
func (t *Translator) SetHoldTimeout(d time.Duration) {
	if d > 0 {
		t.timeout = d
	}
}

// Held reports whether a key is currently considered down
func (t *Translator) Held(key string) bool {
	_, ok := t.held[key]
	return ok
}

// Translate converts one tcell event; unhandled events yield nil
func (t *Translator) Translate(ev tcell.Event, now time.Time) []Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.translateKey(ev.Key(), ev.Rune(), ev.Modifiers(), now)
	case *tcell.EventMouse:
		col, row := ev.Position()
		return t.translateMouse(col, row, ev.Buttons(), ev.Modifiers(), now)
	case *tcell.EventResize:
		cols, rows := ev.Size()
		t.vp = render.Viewport{Cols: cols, Rows: rows}
		return []Event{{Kind: Resize, Cols: cols, Rows: rows}}
	}
	return nil
}

func (t *Translator) translateKey(key tcell.Key, r rune, mod tcell.ModMask, now time.Time) []Event {
	if quitKeys[key] {
		return []Event{{Kind: Quit}}
	}

	var names []string
	if key == tcell.KeyRune {
		if r == ' ' {
			names = append(names, KeySpace)
		} else {
			if unicode.IsUpper(r) {
				names = append(names, KeyShift)
			}
			names = append(names, string(unicode.ToLower(r)))
		}
	} else if name, ok := specialKeys[key]; ok {
		if mod&tcell.ModShift != 0 {
			names = append(names, KeyShift)
		}
		names = append(names, name)
	}

	var out []Event
	for _, name := range names {
		out = t.press(out, name, now)
	}
	return out
}

// press refreshes the hold on name; hold keys emit KeyDown only on the first press
// while every other key emits one per press or repeat
func (t *Translator) press(out []Event, name string, now time.Time) []Event {
	_, held := t.held[name]
	t.held[name] = now
	if held && holdKeys[name] {
		return out
	}
	return append(out, Event{Kind: KeyDown, Key: name})
}

func (t *Translator) translateMouse(col, row int, buttons tcell.ButtonMask, mod tcell.ModMask, now time.Time) []Event {
	pressed := buttons&tcell.Button1 != 0
	x, y := t.vp.ToCanvas(col, row)

	var out []Event
	if mod&tcell.ModShift != 0 {
		out = t.press(out, KeyShift, now)
	}
	switch {
	case pressed && !t.buttonDown:
		t.buttonDown = true
		out = append(out, Event{Kind: PointerDown, X: x, Y: y})
	case !pressed && t.buttonDown:
		t.buttonDown = false
		out = append(out, Event{Kind: PointerUp, X: x, Y: y})
	}
	return out
}

// Expire synthesises KeyUp for keys with no press or repeat within the hold timeout
func (t *Translator) Expire(now time.Time) []Event {
	return t.release(func(last time.Time) bool { return now.Sub(last) >= t.timeout })
}

// ReleaseAll emits KeyUp for every held key
func (t *Translator) ReleaseAll() []Event {
	return t.release(func(time.Time) bool { return true })
}

func (t *Translator) release(match func(last time.Time) bool) []Event {
	var expired []string
	for name, last := range t.held {
		if match(last) {
			expired = append(expired, name)
		}
	}
	if len(expired) == 0 {
		return nil
	}
	sort.Strings(expired)

	out := make([]Event, 0, len(expired))
	for _, name := range expired {
		delete(t.held, name)
		out = append(out, Event{Kind: KeyUp, Key: name})
	}
	return out
}

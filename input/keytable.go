package input

import "github.com/gdamore/tcell/v2"

// Named keys delivered to scenes; printable keys use their lowercase rune
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyEnter      = "Enter"
	KeyEscape     = "Escape"
	KeySpace      = " "
	KeyShift      = "Shift"
	KeyBackspace  = "Backspace"
)

// specialKeys maps non-rune tcell keys to key names
var specialKeys = map[tcell.Key]string{
	tcell.KeyLeft:       KeyArrowLeft,
	tcell.KeyRight:      KeyArrowRight,
	tcell.KeyUp:         KeyArrowUp,
	tcell.KeyDown:       KeyArrowDown,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
}

// holdKeys are read as held state, so terminal auto-repeat must not re-press them
var holdKeys = map[string]bool{
	KeyArrowLeft:  true,
	KeyArrowRight: true,
	KeyArrowUp:    true,
	KeyArrowDown:  true,
	"a":           true,
	"d":           true,
	KeyShift:      true,
}

// quitKeys end the session regardless of scene
var quitKeys = map[tcell.Key]bool{
	tcell.KeyCtrlC: true,
	tcell.KeyCtrlQ: true,
}

// IsDigit reports a single-digit key and its value
func IsDigit(key string) (int, bool) {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '0'), true
}

// IsConfirm reports the keys that activate a focused button
func IsConfirm(key string) bool {
	return key == KeyEnter || key == KeySpace
}

// IsLeft reports keys that steer or walk left
func IsLeft(key string) bool {
	return key == KeyArrowLeft || key == "a"
}

// IsRight reports keys that steer or walk right
func IsRight(key string) bool {
	return key == KeyArrowRight || key == "d"
}

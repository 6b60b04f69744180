package input

// Kind discriminates translated input events
type Kind uint8

const (
	KindNone Kind = iota
	PointerDown
	PointerUp
	KeyDown
	KeyUp
	Quit
	Resize
)

var kindNames = [...]string{"none", "pointer_down", "pointer_up", "key_down", "key_up", "quit", "resize"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Event is a device-neutral input event; pointer coordinates are canvas units
type Event struct {
	Kind Kind
	X, Y float64
	Key  string

	// Cols and Rows carry the new terminal size on Resize
	Cols, Rows int
}

package content

// Form is the player's roaming body
type Form int

const (
	FormHuman Form = iota
	FormSheep
)

func (f Form) String() string {
	if f == FormSheep {
		return "sheep"
	}
	return "human"
}

// Glyph returns the player sprite for the form
func (f Form) Glyph() string {
	if f == FormSheep {
		return "🐑"
	}
	return "🧍"
}

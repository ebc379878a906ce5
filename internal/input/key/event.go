package key

import "unicode"

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	// Shift is folded into Rune for character keys and not recorded.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods &^ ModShift}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true for a printable character with no Ctrl, Alt or Meta.
func (e Event) IsChar() bool {
	return e.IsRune() && e.Modifiers == ModNone && unicode.IsPrint(e.Rune)
}

// String returns the event in Vim notation: "a", "<Space>", "<C-c>", "<Esc>".
func (e Event) String() string {
	if e.IsRune() {
		name := string(e.Rune)
		switch e.Rune {
		case ' ':
			name = "Space"
		case '<':
			name = "lt"
		}
		if e.Modifiers == ModNone && len(name) == len(string(e.Rune)) {
			return name
		}
		return "<" + e.Modifiers.prefix() + name + ">"
	}
	return "<" + e.Modifiers.prefix() + e.Key.String() + ">"
}

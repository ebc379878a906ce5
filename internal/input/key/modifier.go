package key

import "strings"

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << (iota - 1)

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS).
	ModMeta
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// prefix returns the Vim prefix for the modifiers, e.g. "C-A-".
func (m Modifier) prefix() string {
	var b strings.Builder
	if m.Has(ModCtrl) {
		b.WriteString("C-")
	}
	if m.Has(ModAlt) {
		b.WriteString("A-")
	}
	if m.Has(ModMeta) {
		b.WriteString("M-")
	}
	if m.Has(ModShift) {
		b.WriteString("S-")
	}
	return b.String()
}

// String returns the modifiers in Vim notation without the trailing dash.
func (m Modifier) String() string {
	return strings.TrimSuffix(m.prefix(), "-")
}

// modifierFromName returns the modifier for a Vim prefix letter.
func modifierFromName(name string) Modifier {
	switch strings.ToLower(name) {
	case "c", "ctrl":
		return ModCtrl
	case "a", "alt":
		return ModAlt
	case "m", "d", "meta":
		return ModMeta
	case "s", "shift":
		return ModShift
	default:
		return ModNone
	}
}

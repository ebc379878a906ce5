package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors.
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key in Vim notation.
//
// Supported forms are a single character ("j", "G", "$"), a bracketed key
// name ("<Esc>", "<CR>", "<BS>", "<Up>", "<Space>", "<lt>") and modifier
// prefixes inside brackets ("<C-c>", "<A-S-Left>").
func Parse(spec string) (Event, error) {
	if spec == "" {
		return Event{}, ErrEmptySpec
	}
	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseBracketed(spec[1 : len(spec)-1])
	}
	r, size := utf8.DecodeRuneInString(spec)
	if size != len(spec) || r == utf8.RuneError {
		return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
	}
	return NewRuneEvent(r, ModNone), nil
}

// MustParse is like Parse but panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return ev
}

func parseBracketed(inner string) (Event, error) {
	var mods Modifier
	// A trailing "-" is the minus key, as in "<C-->".
	for {
		i := strings.Index(inner, "-")
		if i <= 0 || i == len(inner)-1 {
			break
		}
		mod := modifierFromName(inner[:i])
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, inner[:i])
		}
		mods |= mod
		inner = inner[i+1:]
	}

	switch strings.ToLower(inner) {
	case "space":
		return NewRuneEvent(' ', mods), nil
	case "lt":
		return NewRuneEvent('<', mods), nil
	}
	if k := KeyFromName(inner); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}
	r, size := utf8.DecodeRuneInString(inner)
	if size == len(inner) && r != utf8.RuneError {
		if mods.Has(ModCtrl) {
			r = toLowerASCII(r)
		}
		return NewRuneEvent(r, mods), nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, inner)
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

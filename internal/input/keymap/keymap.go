package keymap

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dshills/red/internal/editor"
	"github.com/dshills/red/internal/input/key"
)

// Keymap holds the key bindings of one mode.
type Keymap struct {
	mode     editor.Mode
	bindings map[key.Event]editor.Command
}

// New creates an empty keymap for mode.
func New(mode editor.Mode) *Keymap {
	return &Keymap{mode: mode, bindings: make(map[key.Event]editor.Command)}
}

// Mode returns the mode the keymap applies to.
func (k *Keymap) Mode() editor.Mode {
	return k.mode
}

// Bind maps the key written as spec to cmd, replacing any earlier binding.
// It fails if spec does not parse or cmd is not legal in the keymap's mode.
func (k *Keymap) Bind(spec string, cmd editor.Command) error {
	ev, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("bind %q: %w", spec, err)
	}
	if !k.mode.Allows(cmd.Kind) {
		return fmt.Errorf("bind %q: %w: %s in %s mode", spec, editor.ErrCommandNotAllowed, cmd, k.mode)
	}
	k.bindings[ev] = cmd
	return nil
}

// Unbind removes the binding for spec, if any.
func (k *Keymap) Unbind(spec string) error {
	ev, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("unbind %q: %w", spec, err)
	}
	delete(k.bindings, ev)
	return nil
}

// Lookup returns the command bound to ev.
func (k *Keymap) Lookup(ev key.Event) (editor.Command, bool) {
	cmd, ok := k.bindings[ev]
	return cmd, ok
}

// Keys returns the bound keys in Vim notation, sorted.
func (k *Keymap) Keys() []string {
	keys := make([]string, 0, len(k.bindings))
	for ev := range maps.Keys(k.bindings) {
		keys = append(keys, ev.String())
	}
	slices.Sort(keys)
	return keys
}

// Set holds one keymap per mode.
type Set struct {
	normal *Keymap
	insert *Keymap
}

// NewSet creates a set with empty keymaps.
func NewSet() *Set {
	return &Set{normal: New(editor.ModeNormal), insert: New(editor.ModeInsert)}
}

// For returns the keymap of mode.
func (s *Set) For(mode editor.Mode) *Keymap {
	if mode == editor.ModeInsert {
		return s.insert
	}
	return s.normal
}

// Translate maps a key event in the given mode to a command.
// In insert mode an unbound printable character becomes InsertCharacter.
func (s *Set) Translate(mode editor.Mode, ev key.Event) (editor.Command, bool) {
	if cmd, ok := s.For(mode).Lookup(ev); ok {
		return cmd, true
	}
	if mode == editor.ModeInsert && ev.IsChar() {
		return editor.InsertCharacter(ev.Rune), true
	}
	return editor.Command{}, false
}

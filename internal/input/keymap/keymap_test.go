package keymap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/red/internal/editor"
	"github.com/dshills/red/internal/input/key"
)

func TestDefaultNormal(t *testing.T) {
	s := Default()
	tests := []struct {
		spec string
		want editor.CommandKind
	}{
		{"j", editor.CmdDown},
		{"<Down>", editor.CmdDown},
		{"k", editor.CmdUp},
		{"h", editor.CmdLeft},
		{"l", editor.CmdRight},
		{"0", editor.CmdLineStart},
		{"$", editor.CmdLineEnd},
		{"g", editor.CmdJumpToTop},
		{"G", editor.CmdJumpToEnd},
		{"L", editor.CmdJumpToBottom},
		{"i", editor.CmdEnterInsert},
		{"q", editor.CmdQuit},
	}
	for _, tt := range tests {
		cmd, ok := s.Translate(editor.ModeNormal, key.MustParse(tt.spec))
		require.True(t, ok, tt.spec)
		require.Equal(t, tt.want, cmd.Kind, tt.spec)
	}

	_, ok := s.Translate(editor.ModeNormal, key.MustParse("x"))
	require.False(t, ok, "unbound keys are ignored in normal mode")
}

func TestDefaultInsert(t *testing.T) {
	s := Default()

	cmd, ok := s.Translate(editor.ModeInsert, key.MustParse("j"))
	require.True(t, ok)
	require.Equal(t, editor.InsertCharacter('j'), cmd)

	cmd, ok = s.Translate(editor.ModeInsert, key.MustParse("<Tab>"))
	require.True(t, ok)
	require.Equal(t, editor.InsertCharacter('\t'), cmd)

	for spec, want := range map[string]editor.CommandKind{
		"<Esc>":   editor.CmdExitInsert,
		"<BS>":    editor.CmdDeleteBackward,
		"<CR>":    editor.CmdInsertNewline,
		"<Left>":  editor.CmdLeft,
		"<Space>": editor.CmdInsertCharacter,
	} {
		cmd, ok := s.Translate(editor.ModeInsert, key.MustParse(spec))
		require.True(t, ok, spec)
		require.Equal(t, want, cmd.Kind, spec)
	}

	_, ok = s.Translate(editor.ModeInsert, key.MustParse("<C-x>"))
	require.False(t, ok, "control characters do not insert")
}

func TestBindRejectsIllegalCommand(t *testing.T) {
	km := New(editor.ModeNormal)
	err := km.Bind("x", editor.Cmd(editor.CmdDeleteBackward))
	require.ErrorIs(t, err, editor.ErrCommandNotAllowed)

	err = km.Bind("<Nope>", editor.Cmd(editor.CmdUp))
	require.ErrorIs(t, err, key.ErrInvalidSpec)
}

func TestKeys(t *testing.T) {
	km := New(editor.ModeInsert)
	require.NoError(t, km.Bind("<Esc>", editor.Cmd(editor.CmdExitInsert)))
	require.NoError(t, km.Bind("<BS>", editor.Cmd(editor.CmdDeleteBackward)))
	require.Equal(t, []string{"<BS>", "<Esc>"}, km.Keys())
	require.Equal(t, editor.ModeInsert, km.Mode())
}

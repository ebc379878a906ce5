package keymap

import "github.com/dshills/red/internal/editor"

type binding struct {
	spec string
	cmd  editor.Command
}

var motions = []binding{
	{"<Up>", editor.Cmd(editor.CmdUp)},
	{"<Down>", editor.Cmd(editor.CmdDown)},
	{"<Left>", editor.Cmd(editor.CmdLeft)},
	{"<Right>", editor.Cmd(editor.CmdRight)},
	{"<Home>", editor.Cmd(editor.CmdLineStart)},
	{"<End>", editor.Cmd(editor.CmdLineEnd)},
}

var normalBindings = []binding{
	{"k", editor.Cmd(editor.CmdUp)},
	{"j", editor.Cmd(editor.CmdDown)},
	{"h", editor.Cmd(editor.CmdLeft)},
	{"l", editor.Cmd(editor.CmdRight)},
	{"0", editor.Cmd(editor.CmdLineStart)},
	{"$", editor.Cmd(editor.CmdLineEnd)},
	{"g", editor.Cmd(editor.CmdJumpToTop)},
	{"G", editor.Cmd(editor.CmdJumpToEnd)},
	{"L", editor.Cmd(editor.CmdJumpToBottom)},
	{"i", editor.Cmd(editor.CmdEnterInsert)},
	{"q", editor.Cmd(editor.CmdQuit)},
}

var insertBindings = []binding{
	{"<Esc>", editor.Cmd(editor.CmdExitInsert)},
	{"<BS>", editor.Cmd(editor.CmdDeleteBackward)},
	{"<CR>", editor.Cmd(editor.CmdInsertNewline)},
	{"<Tab>", editor.InsertCharacter('\t')},
}

// Default returns the built-in bindings.
func Default() *Set {
	s := NewSet()
	mustBind(s.normal, motions)
	mustBind(s.normal, normalBindings)
	mustBind(s.insert, motions)
	mustBind(s.insert, insertBindings)
	return s
}

func mustBind(km *Keymap, bindings []binding) {
	for _, b := range bindings {
		if err := km.Bind(b.spec, b.cmd); err != nil {
			panic(err)
		}
	}
}

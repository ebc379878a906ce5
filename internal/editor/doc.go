// Package editor is the editor core: a document, a viewport over it, a
// cursor and the normal/insert mode machine.
//
// The cursor is kept in screen terms, a column on the current line and a
// row below the viewport anchor. The caret's byte offset is derived from
// those on demand. The column is sticky: moving to a shorter line keeps it,
// and every read clamps it to the line length.
//
//	s := editor.New(editor.Size{Width: 80, Height: 24}, "hello\n")
//	s.Apply(editor.Cmd(editor.CmdEnterInsert))
//	s.Apply(editor.InsertCharacter('!'))
//	for row, line := range s.VisibleLines() {
//		draw(row, line)
//	}
package editor

package editor

import (
	"fmt"

	"github.com/dshills/red/internal/engine/buffer"
	"github.com/dshills/red/internal/engine/rope"
)

// Position is a cursor position. Row is relative to the viewport's top
// row; Column is relative to the start of the cursor's line and counted
// in grapheme clusters.
type Position struct {
	Column int
	Row    int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Column, p.Row)
}

// Cursor is the caret. Its column is sticky: vertical motion keeps it even
// when the destination line is shorter, and every read clamps it to the
// length of the line the cursor is on. The absolute offset is recomputed
// from the viewport anchor on each use, so it never goes stale.
type Cursor struct {
	doc  *buffer.Document
	view *Viewport
	col  int
	row  int
}

func newCursor(doc *buffer.Document, view *Viewport) *Cursor {
	return &Cursor{doc: doc, view: view}
}

// Position returns the raw (unclamped) cursor position.
func (c *Cursor) Position() Position {
	return Position{Column: c.col, Row: c.row}
}

// lineCursor returns a line cursor on the cursor's line, walking row
// boundaries down from the anchor. Returns false when the row lies past
// the end of the document.
func (c *Cursor) lineCursor() (*rope.LineCursor, bool) {
	lc := c.doc.LineCursor(c.view.Anchor())
	for i := 0; i < c.row; i++ {
		if _, ok := lc.Next(); !ok {
			return nil, false
		}
	}
	return lc, true
}

// LineStart returns the offset of the start of the cursor's line.
func (c *Cursor) LineStart() (buffer.ByteOffset, bool) {
	lc, ok := c.lineCursor()
	if !ok {
		return 0, false
	}
	return lc.Pos(), true
}

// LineText returns the text of the cursor's line without its newline.
func (c *Cursor) LineText() (string, bool) {
	lc, ok := c.lineCursor()
	if !ok {
		return "", false
	}
	return c.doc.Slice(buffer.NewRange(lc.Pos(), lc.LineEnd())), true
}

// CurrentLineLength returns the length in columns of the cursor's line,
// excluding the newline. Returns false when the row has no line.
func (c *Cursor) CurrentLineLength() (int, bool) {
	text, ok := c.LineText()
	if !ok {
		return 0, false
	}
	return columnCount(text), true
}

// ClampedColumn returns the column limited to the current line length.
func (c *Cursor) ClampedColumn() int {
	n, _ := c.CurrentLineLength()
	return min(c.col, n)
}

// Offset returns the absolute byte offset of the caret.
// Returns false when the row has no line.
func (c *Cursor) Offset() (buffer.ByteOffset, bool) {
	lc, ok := c.lineCursor()
	if !ok {
		return 0, false
	}
	text := c.doc.Slice(buffer.NewRange(lc.Pos(), lc.LineEnd()))
	col := min(c.col, columnCount(text))
	return lc.Pos() + buffer.ByteOffset(columnOffset(text, col)), true
}

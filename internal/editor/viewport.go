package editor

import (
	"github.com/dshills/red/internal/engine/buffer"
)

// Size is a screen size in character cells.
type Size struct {
	Width  int
	Height int
}

// Viewport tracks which part of the document is on screen.
// The anchor is the offset of the first byte of the top row and is always
// the start of a line.
type Viewport struct {
	doc    *buffer.Document
	anchor buffer.ByteOffset
	width  int
	height int
}

// newViewport creates a viewport at the top of doc.
// Width and height are clamped to a minimum of 1.
func newViewport(doc *buffer.Document, size Size) *Viewport {
	return &Viewport{
		doc:    doc,
		width:  max(size.Width, 1),
		height: max(size.Height, 1),
	}
}

// Anchor returns the offset displayed at the top-left of the screen.
func (v *Viewport) Anchor() buffer.ByteOffset {
	return v.anchor
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the viewport height.
func (v *Viewport) Height() int {
	return v.height
}

// VisibleRange returns the byte range covered by the screen: from the
// anchor to the start of the first line below the screen, or to the end
// of the document when it ends on screen.
func (v *Viewport) VisibleRange() buffer.Range {
	c := v.doc.LineCursor(v.anchor)
	for i := 0; i < v.height; i++ {
		if _, ok := c.Next(); !ok {
			return buffer.NewRange(v.anchor, v.doc.Len())
		}
	}
	return buffer.NewRange(v.anchor, c.Pos())
}

// ScrollUp moves the anchor to the start of the previous line.
// Returns false when the top line is already the first line.
func (v *Viewport) ScrollUp() bool {
	prev, ok := v.doc.LineCursor(v.anchor).Prev()
	if ok {
		v.anchor = prev
	}
	return ok
}

// ScrollDown moves the anchor to the start of the next line.
// Returns false when the top line is the last line.
func (v *Viewport) ScrollDown() bool {
	next, ok := v.doc.LineCursor(v.anchor).Next()
	if ok {
		v.anchor = next
	}
	return ok
}

// scrollTo sets the anchor, snapping to the start of the line containing offset.
func (v *Viewport) scrollTo(offset buffer.ByteOffset) {
	v.anchor = v.doc.LineCursor(offset).Pos()
}

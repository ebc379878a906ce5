package rope

// LineCursor walks line boundaries of a rope.
// A line boundary is the start of the document or the byte just after a
// newline. The cursor always rests on a boundary; each step is one
// O(log n) descent of the tree.
type LineCursor struct {
	rope Rope
	line uint32
	pos  ByteOffset
}

// LineCursor returns a cursor at the start of the line containing offset.
func (r Rope) LineCursor(offset ByteOffset) *LineCursor {
	line := r.LineOf(offset)
	pos, _ := r.LineStart(line)
	return &LineCursor{rope: r, line: line, pos: pos}
}

// Pos returns the absolute byte offset of the cursor.
func (c *LineCursor) Pos() ByteOffset {
	return c.pos
}

// Line returns the 0-indexed line the cursor is on.
func (c *LineCursor) Line() uint32 {
	return c.line
}

// Next moves to the next line boundary and returns it.
// Returns false, leaving the cursor in place, when no newline follows.
func (c *LineCursor) Next() (ByteOffset, bool) {
	pos, ok := c.rope.LineStart(c.line + 1)
	if !ok {
		return c.pos, false
	}
	c.line++
	c.pos = pos
	return pos, true
}

// Prev moves to the start of the previous line and returns it.
// Returns false, leaving the cursor in place, on the first line.
func (c *LineCursor) Prev() (ByteOffset, bool) {
	if c.line == 0 {
		return c.pos, false
	}
	pos, _ := c.rope.LineStart(c.line - 1)
	c.line--
	c.pos = pos
	return pos, true
}

// LineEnd returns the offset of the end of the cursor's line, excluding
// the newline. For the last line this is the end of the rope.
func (c *LineCursor) LineEnd() ByteOffset {
	next, ok := c.rope.LineStart(c.line + 1)
	if !ok {
		return c.rope.Len()
	}
	return next - 1
}

// Clone returns an independent cursor at the same position.
func (c *LineCursor) Clone() *LineCursor {
	clone := *c
	return &clone
}

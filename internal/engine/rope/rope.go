package rope

import (
	"io"
	"strings"
)

// Rope is a persistent rope for text storage.
// Operations return new Rope values; the original is never modified.
// The zero value is an empty rope.
type Rope struct {
	root *Node
}

// New creates an empty rope.
func New() Rope {
	return Rope{}
}

// FromString creates a rope from a string.
func FromString(s string) Rope {
	return Rope{root: buildTree(splitIntoLeaves(s))}
}

// FromReader creates a rope from everything readable from r.
func FromReader(r io.Reader) (Rope, error) {
	var sb strings.Builder
	if _, err := io.Copy(&sb, r); err != nil {
		return Rope{}, err
	}
	return FromString(sb.String()), nil
}

// Len returns the total byte length.
func (r Rope) Len() ByteOffset {
	if r.root == nil {
		return 0
	}
	return r.root.Len()
}

// LineCount returns the number of lines (newlines + 1).
func (r Rope) LineCount() uint32 {
	return r.Summary().Lines + 1
}

// IsEmpty returns true if the rope contains no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// Summary returns the aggregated metrics for the entire rope.
func (r Rope) Summary() TextSummary {
	if r.root == nil {
		return TextSummary{}
	}
	return r.root.summary
}

// String returns the full text as a string.
// Use sparingly for large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(int(r.Len()))
	r.root.appendTo(&sb)
	return sb.String()
}

// Slice returns the text in the byte range [start, end).
// The range is clamped to the rope.
func (r Rope) Slice(start, end ByteOffset) string {
	end = min(end, r.Len())
	if r.root == nil || start >= end {
		return ""
	}
	var sb strings.Builder
	sb.Grow(int(end - start))
	r.root.appendRange(&sb, start, end)
	return sb.String()
}

// ByteAt returns the byte at the given offset.
// Returns 0 and false if offset is out of range.
func (r Rope) ByteAt(offset ByteOffset) (byte, bool) {
	if offset >= r.Len() {
		return 0, false
	}
	node := r.root
	for !node.IsLeaf() {
		var idx int
		idx, offset = node.childAt(offset)
		node = node.children[idx]
	}
	return node.text[offset], true
}

// IsCharBoundary reports whether offset lies in [0, Len()] and does not
// fall inside a multi-byte UTF-8 sequence.
func (r Rope) IsCharBoundary(offset ByteOffset) bool {
	if offset == r.Len() {
		return true
	}
	b, ok := r.ByteAt(offset)
	return ok && isUTF8Start(b)
}

// Insert inserts text at the given byte offset.
// Offsets past the end append.
func (r Rope) Insert(offset ByteOffset, text string) Rope {
	if len(text) == 0 {
		return r
	}
	left, right := split(r.root, offset)
	return Rope{root: concat(concat(left, FromString(text).root), right)}
}

// Delete removes text in the byte range [start, end).
// The range is clamped to the rope.
func (r Rope) Delete(start, end ByteOffset) Rope {
	end = min(end, r.Len())
	if start >= end {
		return r
	}
	left, rest := split(r.root, start)
	_, right := split(rest, end-start)
	return Rope{root: concat(left, right)}
}

// Replace replaces text in [start, end) with text.
func (r Rope) Replace(start, end ByteOffset, text string) Rope {
	return r.Delete(start, end).Insert(start, text)
}

// Split splits the rope at offset.
// Left contains [0, offset), right contains [offset, end).
func (r Rope) Split(offset ByteOffset) (Rope, Rope) {
	left, right := split(r.root, offset)
	return Rope{root: left}, Rope{root: right}
}

// Concat concatenates two ropes.
func (r Rope) Concat(other Rope) Rope {
	return Rope{root: concat(r.root, other.root)}
}

// LineOf returns the 0-indexed line containing offset.
// Offsets past the end report the last line.
func (r Rope) LineOf(offset ByteOffset) uint32 {
	if r.root == nil {
		return 0
	}
	return r.root.linesBefore(min(offset, r.Len()))
}

// LineStart returns the byte offset of the start of the given line.
// Returns false if the rope has no such line.
func (r Rope) LineStart(line uint32) (ByteOffset, bool) {
	if line == 0 {
		return 0, true
	}
	if line > r.Summary().Lines {
		return 0, false
	}
	return r.root.offsetOfNewline(line), true
}

// LineText returns the text of the given line without its newline.
func (r Rope) LineText(line uint32) string {
	start, ok := r.LineStart(line)
	if !ok {
		return ""
	}
	end, ok := r.LineStart(line + 1)
	if !ok {
		return r.Slice(start, r.Len())
	}
	return r.Slice(start, end-1)
}

// Height returns the height of the rope tree.
// Useful for debugging and testing balance.
func (r Rope) Height() int {
	if r.root == nil {
		return 0
	}
	return int(r.root.height) + 1
}

// Equal reports whether two ropes hold the same text.
func (r Rope) Equal(other Rope) bool {
	if r.Len() != other.Len() {
		return false
	}
	return r.String() == other.String()
}

package buffer

import (
	"strings"

	"github.com/dshills/red/internal/engine/rope"
)

// LineEnding specifies the line ending style found in loaded text.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the escaped form of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// Document is the editable text of one file.
// Internally text always uses \n; the line ending found at load time is
// remembered so the file-I/O layer can write it back.
//
// A Document is owned by a single editor and is not safe for concurrent use.
type Document struct {
	rope       rope.Rope
	revision   uint64
	lineEnding LineEnding
}

// New creates a document holding text.
func New(text string) *Document {
	le := DetectLineEnding(text)
	return &Document{
		rope:       rope.FromString(normalizeLineEndings(text)),
		lineEnding: le,
	}
}

// normalizeLineEndings converts CRLF and lone CR to LF.
func normalizeLineEndings(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// DetectLineEnding returns the most common line ending in text.
// Returns LineEndingLF if no line endings are found.
func DetectLineEnding(text string) LineEnding {
	var lf, crlf, cr int
	for i := 0; i < len(text); i++ {
		switch {
		case text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n':
			crlf++
			i++
		case text[i] == '\r':
			cr++
		case text[i] == '\n':
			lf++
		}
	}

	switch {
	case crlf > 0 && crlf >= lf && crlf >= cr:
		return LineEndingCRLF
	case cr > 0 && cr >= lf && cr >= crlf:
		return LineEndingCR
	default:
		return LineEndingLF
	}
}

// Read Operations

// Text returns the full document content with \n line endings.
func (d *Document) Text() string {
	return d.rope.String()
}

// TextWithLineEndings returns the content using the line ending the
// document was loaded with.
func (d *Document) TextWithLineEndings() string {
	text := d.rope.String()
	if d.lineEnding == LineEndingLF {
		return text
	}
	return strings.ReplaceAll(text, "\n", d.lineEnding.Sequence())
}

// Slice returns the text in the given byte range, clamped to the document.
func (d *Document) Slice(r Range) string {
	return d.rope.Slice(r.Start, r.End)
}

// Len returns the total byte length of the document.
func (d *Document) Len() ByteOffset {
	return d.rope.Len()
}

// LineCount returns the number of lines.
func (d *Document) LineCount() uint32 {
	return d.rope.LineCount()
}

// LineCursor returns a line-boundary cursor at the start of the line
// containing offset.
func (d *Document) LineCursor(offset ByteOffset) *rope.LineCursor {
	return d.rope.LineCursor(offset)
}

// LastLineStart returns the offset of the start of the final line.
func (d *Document) LastLineStart() ByteOffset {
	start, _ := d.rope.LineStart(d.rope.Summary().Lines)
	return start
}

// Rope returns the current text as a persistent rope.
// The returned value is unaffected by later edits.
func (d *Document) Rope() rope.Rope {
	return d.rope
}

// LineEnding returns the line ending detected when the document was created.
func (d *Document) LineEnding() LineEnding {
	return d.lineEnding
}

// Revision returns a counter that increases with every mutation.
func (d *Document) Revision() uint64 {
	return d.revision
}

// Write Operations

// Insert inserts text at the given offset.
// Returns the offset just past the inserted text.
func (d *Document) Insert(offset ByteOffset, text string) (ByteOffset, error) {
	if err := d.checkOffset("insert", offset); err != nil {
		return offset, err
	}
	if text == "" {
		return offset, nil
	}

	text = normalizeLineEndings(text)
	d.rope = d.rope.Insert(offset, text)
	d.revision++
	return offset + ByteOffset(len(text)), nil
}

// Delete removes the text in r.
func (d *Document) Delete(r Range) error {
	if !r.IsValid() {
		return &OffsetError{Op: "delete", Offset: r.Start, Len: d.Len(), Err: ErrRangeInvalid}
	}
	if err := d.checkOffset("delete", r.Start); err != nil {
		return err
	}
	if err := d.checkOffset("delete", r.End); err != nil {
		return err
	}
	if r.IsEmpty() {
		return nil
	}

	d.rope = d.rope.Delete(r.Start, r.End)
	d.revision++
	return nil
}

// checkOffset rejects offsets past the end or inside a UTF-8 sequence.
func (d *Document) checkOffset(op string, offset ByteOffset) error {
	if !d.rope.IsCharBoundary(offset) {
		return &OffsetError{Op: op, Offset: offset, Len: d.Len(), Err: ErrInvalidOffset}
	}
	return nil
}

package editor

import (
	"fmt"
	"iter"

	"github.com/dshills/red/internal/engine/buffer"
)

// DefaultTabWidth is the number of cells a tab advances to when no
// WithTabWidth option is given.
const DefaultTabWidth = 4

// Logger is the logging capability the editor needs.
// *logging.Logger satisfies it.
type Logger interface {
	Debug(format string, args ...any)
	Error(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Error(string, ...any) {}

// Option configures a State.
type Option func(*State)

// WithLogger sets the logger used to trace commands and report defects.
func WithLogger(l Logger) Option {
	return func(s *State) {
		if l != nil {
			s.log = l
		}
	}
}

// WithTabWidth sets the tab width used by CursorScreenPosition.
func WithTabWidth(n int) Option {
	return func(s *State) {
		if n > 0 {
			s.tabWidth = n
		}
	}
}

// State is the editor core: the document, the viewport over it, the
// cursor and the mode. It is not safe for concurrent use.
type State struct {
	doc      *buffer.Document
	view     *Viewport
	cursor   *Cursor
	mode     Mode
	tabWidth int
	log      Logger
}

// New creates an editor for text on a screen of the given size.
// The cursor starts at (0,0) in normal mode.
func New(size Size, text string, opts ...Option) *State {
	doc := buffer.New(text)
	view := newViewport(doc, size)
	s := &State{
		doc:      doc,
		view:     view,
		cursor:   newCursor(doc, view),
		mode:     ModeNormal,
		tabWidth: DefaultTabWidth,
		log:      nopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Apply runs cmd against the state.
// It returns ErrCommandNotAllowed when cmd is illegal in the current mode
// and ErrQuit for the Quit command. Any other error is an internal defect.
func (s *State) Apply(cmd Command) error {
	if !s.mode.Allows(cmd.Kind) {
		return fmt.Errorf("%w: %s in %s mode", ErrCommandNotAllowed, cmd, s.mode)
	}
	s.log.Debug("apply %s at %s anchor=%d", cmd, s.cursor.Position(), s.view.Anchor())

	var err error
	switch cmd.Kind {
	case CmdUp:
		s.up()
	case CmdDown:
		s.down()
	case CmdLeft:
		s.cursor.col = max(s.cursor.ClampedColumn()-1, 0)
	case CmdRight:
		n, _ := s.cursor.CurrentLineLength()
		s.cursor.col = min(s.cursor.col+1, n)
	case CmdJumpToBottom:
		s.cursor.row = s.view.Height() - 1
	case CmdJumpToTop:
		s.view.scrollTo(0)
		s.cursor.row, s.cursor.col = 0, 0
	case CmdJumpToEnd:
		s.jumpToEnd()
	case CmdLineStart:
		s.cursor.col = 0
	case CmdLineEnd:
		s.cursor.col, _ = s.cursor.CurrentLineLength()
	case CmdInsertCharacter:
		if cmd.Char == '\n' || cmd.Char == '\r' {
			err = s.insertNewline()
		} else {
			err = s.insertCharacter(cmd.Char)
		}
	case CmdInsertNewline:
		err = s.insertNewline()
	case CmdDeleteBackward:
		err = s.deleteBackward()
	case CmdEnterInsert:
		s.mode = ModeInsert
	case CmdExitInsert:
		s.mode = ModeNormal
	case CmdQuit:
		return ErrQuit
	}

	if err != nil {
		err = fmt.Errorf("apply %s: %w", cmd, err)
		s.log.Error("%v", err)
	}
	return err
}

func (s *State) up() {
	if s.cursor.row > 0 {
		s.cursor.row--
		return
	}
	s.view.ScrollUp()
}

func (s *State) down() {
	lc, ok := s.cursor.lineCursor()
	if !ok {
		return
	}
	if _, ok := lc.Next(); !ok {
		return
	}
	if s.cursor.row < s.view.Height()-1 {
		s.cursor.row++
		return
	}
	s.view.ScrollDown()
}

// jumpToEnd scrolls so the last line is the bottom row, or to the top when
// the whole document fits, and puts the cursor at the start of that line.
func (s *State) jumpToEnd() {
	lc := s.doc.LineCursor(s.doc.LastLineStart())
	row := 0
	for row < s.view.Height()-1 {
		if _, ok := lc.Prev(); !ok {
			break
		}
		row++
	}
	s.view.scrollTo(lc.Pos())
	s.cursor.row, s.cursor.col = row, 0
}

// insertCharacter inserts r at the caret and puts the caret after it.
// A character that joins the cluster before it (a combining mark, the
// second half of a flag) adds no column, so the column is recounted from
// the line start. A sticky column past the line end just moves on by one.
func (s *State) insertCharacter(r rune) error {
	lc, ok := s.cursor.lineCursor()
	if !ok {
		return nil
	}
	start := lc.Pos()
	text := s.doc.Slice(buffer.NewRange(start, lc.LineEnd()))
	n := columnCount(text)
	prefix := text[:columnOffset(text, min(s.cursor.col, n))]

	ch := string(r)
	if _, err := s.doc.Insert(start+buffer.ByteOffset(len(prefix)), ch); err != nil {
		return err
	}
	if s.cursor.col > n {
		s.cursor.col++
		return nil
	}
	s.cursor.col = columnCount(prefix + ch)
	return nil
}

func (s *State) insertNewline() error {
	offset, ok := s.cursor.Offset()
	if !ok {
		return nil
	}
	if _, err := s.doc.Insert(offset, "\n"); err != nil {
		return err
	}
	if s.cursor.row < s.view.Height()-1 {
		s.cursor.row++
	} else {
		s.view.ScrollDown()
	}
	s.cursor.col = 0
	return nil
}

func (s *State) deleteBackward() error {
	lc, ok := s.cursor.lineCursor()
	if !ok {
		return nil
	}
	start := lc.Pos()
	text := s.doc.Slice(buffer.NewRange(start, lc.LineEnd()))
	col := min(s.cursor.col, columnCount(text))

	if col > 0 {
		from := start + buffer.ByteOffset(columnOffset(text, col-1))
		to := start + buffer.ByteOffset(columnOffset(text, col))
		if err := s.doc.Delete(buffer.NewRange(from, to)); err != nil {
			return err
		}
		s.cursor.col = col - 1
		return nil
	}

	// Column 0: join with the line above.
	if s.cursor.row > 0 {
		s.cursor.row--
	} else if !s.view.ScrollUp() {
		return nil
	}
	prevLen, _ := s.cursor.CurrentLineLength()
	if err := s.doc.Delete(buffer.NewRange(start-1, start)); err != nil {
		return err
	}
	s.cursor.col = prevLen
	return nil
}

// VisibleLines yields (row, text) for each line on screen, top to bottom.
// The text is the full line without its newline; fitting it to the screen
// width is left to the caller. The sequence stops at the end of the
// document, after the last line, which may be empty.
func (s *State) VisibleLines() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		lc := s.doc.LineCursor(s.view.Anchor())
		for row := 0; row < s.view.Height(); row++ {
			text := s.doc.Slice(buffer.NewRange(lc.Pos(), lc.LineEnd()))
			if !yield(row, text) {
				return
			}
			if _, ok := lc.Next(); !ok {
				return
			}
		}
	}
}

// CursorScreenPosition returns the caret position in screen cells relative
// to the top-left of the text area. Wide characters count two cells and
// tabs advance to the next tab stop.
func (s *State) CursorScreenPosition() (col, row int) {
	text, ok := s.cursor.LineText()
	if !ok {
		return 0, s.cursor.row
	}
	prefix := text[:columnOffset(text, s.cursor.col)]
	return cellWidth(prefix, s.tabWidth), s.cursor.row
}

// CaretOffset returns the absolute byte offset of the caret.
// Returns false when the cursor is below the end of the document.
func (s *State) CaretOffset() (buffer.ByteOffset, bool) {
	return s.cursor.Offset()
}

// Text returns the full document text.
func (s *State) Text() string {
	return s.doc.Text()
}

// Document returns the underlying document.
func (s *State) Document() *buffer.Document {
	return s.doc
}

// Mode returns the current mode.
func (s *State) Mode() Mode {
	return s.mode
}

// Cursor returns the cursor.
func (s *State) Cursor() *Cursor {
	return s.cursor
}

// Viewport returns the viewport.
func (s *State) Viewport() *Viewport {
	return s.view
}

// Anchor returns the offset of the first byte on screen.
func (s *State) Anchor() buffer.ByteOffset {
	return s.view.Anchor()
}

// Size returns the screen size the editor was created with.
func (s *State) Size() Size {
	return Size{Width: s.view.Width(), Height: s.view.Height()}
}

// TabWidth returns the configured tab width.
func (s *State) TabWidth() int {
	return s.tabWidth
}

// Revision returns the document revision. It increases on every edit.
func (s *State) Revision() uint64 {
	return s.doc.Revision()
}

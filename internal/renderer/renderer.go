package renderer

import (
	"github.com/dshills/red/internal/editor"
	"github.com/dshills/red/internal/renderer/backend"
)

// Config holds renderer settings.
type Config struct {
	// ShowLineNumbers enables the line number gutter.
	ShowLineNumbers bool
	// GutterWidth is the initial gutter width in cells, see GutterWidth.
	// Render widens it as the document grows.
	GutterWidth int
}

// Renderer draws editor states on a backend.
type Renderer struct {
	b      backend.Backend
	config Config
}

// New creates a renderer drawing on b.
func New(b backend.Backend, config Config) *Renderer {
	if !config.ShowLineNumbers {
		config.GutterWidth = 0
	}
	return &Renderer{b: b, config: config}
}

// TextArea returns the size left for text on a screen of width by height
// cells: the gutter and the status line are taken out.
func (r *Renderer) TextArea(width, height int) editor.Size {
	return editor.Size{
		Width:  max(width-r.config.GutterWidth, 1),
		Height: max(height-1, 1),
	}
}

// Render draws s and the status line, places the cursor and flushes.
func (r *Renderer) Render(s *editor.State, st Status) {
	width, height := r.b.Size()
	r.b.Clear()

	if r.config.ShowLineNumbers {
		r.config.GutterWidth = GutterWidth(true, s.Document().LineCount())
	}
	gutter := r.config.GutterWidth
	tabWidth := s.TabWidth()
	firstLine := s.Document().LineCursor(s.Anchor()).Line()
	textRows := min(s.Size().Height, height-1)

	for row, line := range s.VisibleLines() {
		if row >= textRows {
			break
		}
		if gutter > 0 {
			drawText(r.b, 0, 0, row, gutter, formatLineNumber(firstLine+uint32(row), gutter), 1, backend.StyleDim)
		}
		drawText(r.b, gutter, gutter, row, width, line, tabWidth, backend.StyleDefault)
	}

	drawStatusLine(r.b, height-1, width, s, st)

	if s.Mode() == editor.ModeInsert {
		r.b.SetCursorStyle(backend.CursorBar)
	} else {
		r.b.SetCursorStyle(backend.CursorBlock)
	}
	col, row := s.CursorScreenPosition()
	r.b.ShowCursor(min(gutter+col, width-1), min(row, max(textRows-1, 0)))
	r.b.Show()
}

package renderer

import (
	"fmt"

	"github.com/dshills/red/internal/editor"
	"github.com/dshills/red/internal/renderer/backend"
)

// Status is the information shown on the status line besides the mode.
type Status struct {
	// Name is the file name. Empty shows [No Name].
	Name string
	// Modified adds a [+] marker after the name.
	Modified bool
	// Message replaces the file name when set.
	Message string
}

// drawStatusLine draws the mode, file name and caret position on row y.
func drawStatusLine(b backend.Backend, y, width int, s *editor.State, st Status) {
	fill(b, 0, y, width, backend.StyleReverse)

	x := drawText(b, 0, 0, y, width, " "+s.Mode().String()+" ", 1, backend.StyleReverse|backend.StyleBold)
	x++

	left := st.Message
	if left == "" {
		left = st.Name
		if left == "" {
			left = "[No Name]"
		}
		if st.Modified {
			left += " [+]"
		}
	}

	pos := formatPosition(s)
	posStart := width - len(pos) - 1
	limit := width
	if posStart > x {
		limit = posStart - 1
		drawText(b, 0, posStart, y, width, pos, 1, backend.StyleReverse)
	}
	drawText(b, 0, x, y, limit, left, 1, backend.StyleReverse)
}

// formatPosition formats the caret as "Ln 3, Col 7", both 1-based.
func formatPosition(s *editor.State) string {
	line := s.Document().LineCursor(s.Anchor()).Line() + uint32(s.Cursor().Position().Row)
	return fmt.Sprintf("Ln %d, Col %d", line+1, s.Cursor().ClampedColumn()+1)
}

// Package backend provides the terminal abstraction the renderer draws on
// and the app reads key events from.
package backend

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/red/internal/input/key"
)

// CursorStyle defines how the cursor appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorBar
	CursorHidden
)

// Style is a set of text attributes.
type Style uint8

const (
	StyleDefault Style = 0
	StyleBold    Style = 1 << (iota - 1)
	StyleDim
	StyleReverse
)

// Has reports whether s includes attr.
func (s Style) Has(attr Style) bool {
	return s&attr != 0
}

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int
}

// Backend is a character-cell display with a keyboard.
type Backend interface {
	// Init prepares the display. Must be called before any other method.
	Init() error

	// Shutdown restores the terminal.
	Shutdown()

	// Size returns the display size in cells.
	Size() (width, height int)

	// SetContent draws a grapheme cluster at the given cell.
	// Positions outside the display are ignored.
	SetContent(x, y int, cluster string, style Style)

	// Clear blanks the display.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// SetCursorStyle changes the cursor appearance.
	SetCursorStyle(style CursorStyle)

	// PollEvent blocks for the next event.
	PollEvent() Event
}

// Cell is one cell of a Memory backend.
type Cell struct {
	Content string
	Style   Style
}

// Memory is an in-memory Backend. Events are fed with Post.
type Memory struct {
	width, height int
	cells         [][]Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorStyle   CursorStyle
	events        chan Event
	shown         int
}

// NewMemory creates a memory backend with the given dimensions.
func NewMemory(width, height int) *Memory {
	return &Memory{
		width:  width,
		height: height,
		events: make(chan Event, 128),
	}
}

func (m *Memory) Init() error {
	m.cells = make([][]Cell, m.height)
	for i := range m.cells {
		m.cells[i] = make([]Cell, m.width)
	}
	m.Clear()
	return nil
}

func (m *Memory) Shutdown() {}

func (m *Memory) Size() (int, int) {
	return m.width, m.height
}

func (m *Memory) SetContent(x, y int, cluster string, style Style) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.cells[y][x] = Cell{Content: cluster, Style: style}
	// A wide cluster covers the next cell too.
	if uniseg.StringWidth(cluster) == 2 && x+1 < m.width {
		m.cells[y][x+1] = Cell{Style: style}
	}
}

func (m *Memory) Clear() {
	for y := range m.cells {
		for x := range m.cells[y] {
			m.cells[y][x] = Cell{Content: " "}
		}
	}
	m.cursorVisible = false
}

func (m *Memory) Show() {
	m.shown++
}

func (m *Memory) ShowCursor(x, y int) {
	m.cursorX, m.cursorY = x, y
	m.cursorVisible = true
}

func (m *Memory) SetCursorStyle(style CursorStyle) {
	m.cursorStyle = style
}

// PollEvent returns the next posted event. When the queue is empty it
// returns an EventNone so tests never block.
func (m *Memory) PollEvent() Event {
	select {
	case ev := <-m.events:
		return ev
	default:
		return Event{Type: EventNone}
	}
}

// Post queues an event. Events beyond the queue capacity are dropped.
func (m *Memory) Post(ev Event) {
	select {
	case m.events <- ev:
	default:
	}
}

// PostKeys queues a key event for each spec, in Vim key notation.
func (m *Memory) PostKeys(specs ...string) {
	for _, spec := range specs {
		m.Post(Event{Type: EventKey, Key: key.MustParse(spec)})
	}
}

// Cell returns the cell at the given position.
func (m *Memory) Cell(x, y int) Cell {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Cell{}
	}
	return m.cells[y][x]
}

// Line returns row y as a string, wide clusters taking one entry.
func (m *Memory) Line(y int) string {
	if y < 0 || y >= m.height {
		return ""
	}
	var s string
	for _, c := range m.cells[y] {
		s += c.Content
	}
	return s
}

// Cursor returns the cursor position and visibility.
func (m *Memory) Cursor() (x, y int, visible bool) {
	return m.cursorX, m.cursorY, m.cursorVisible
}

// CursorStyle returns the current cursor style.
func (m *Memory) CursorStyle() CursorStyle {
	return m.cursorStyle
}

// Frames returns how many times Show was called.
func (m *Memory) Frames() int {
	return m.shown
}

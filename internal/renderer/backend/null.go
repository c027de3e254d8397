package backend

import (
	"strings"
	"sync"
)

// NullBackend is an in-memory backend for testing. Events are injected
// with Post and the drawn screen can be read back with Row.
type NullBackend struct {
	mu            sync.Mutex
	width, height int
	cells         [][]rune
	styles        [][]Style
	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorStyle   CursorStyle
	shows         int
	events        chan Event
	closeOnce     sync.Once
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
}

// Ensure NullBackend implements Backend.
var _ Backend = (*NullBackend)(nil)

func (b *NullBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.resetLocked()
	return nil
}

func (b *NullBackend) resetLocked() {
	b.cells = make([][]rune, b.height)
	b.styles = make([][]Style, b.height)
	for i := range b.cells {
		b.cells[i] = []rune(strings.Repeat(" ", b.width))
		b.styles[i] = make([]Style, b.width)
	}
}

func (b *NullBackend) Shutdown() {
	b.closeOnce.Do(func() { close(b.events) })
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *NullBackend) SetContent(x, y int, r rune, style Style) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= len(b.cells) || x < 0 || x >= b.width {
		return
	}
	b.cells[y][x] = r
	b.styles[y][x] = style
}

func (b *NullBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.resetLocked()
}

func (b *NullBackend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shows++
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorX, b.cursorY = x, y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorVisible = false
}

func (b *NullBackend) SetCursorStyle(style CursorStyle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorStyle = style
}

func (b *NullBackend) Events() <-chan Event {
	return b.events
}

// Post queues an event for delivery.
func (b *NullBackend) Post(ev Event) {
	b.events <- ev
}

// Resize changes the screen size and posts a resize event.
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	b.width, b.height = width, height
	b.resetLocked()
	b.mu.Unlock()
	b.Post(Event{Type: EventResize, Width: width, Height: height})
}

// Row returns the text of screen row y with trailing spaces removed.
func (b *NullBackend) Row(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= len(b.cells) {
		return ""
	}
	return strings.TrimRight(string(b.cells[y]), " ")
}

// StyleAt returns the style of the cell at (x, y).
func (b *NullBackend) StyleAt(x, y int) Style {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= len(b.styles) || x < 0 || x >= len(b.styles[y]) {
		return StyleDefault
	}
	return b.styles[y][x]
}

// Cursor returns the cursor position and whether it is visible.
func (b *NullBackend) Cursor() (x, y int, visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorX, b.cursorY, b.cursorVisible
}

// CursorStyle returns the last cursor style set.
func (b *NullBackend) CursorStyle() CursorStyle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorStyle
}

// Shows returns how many times Show was called.
func (b *NullBackend) Shows() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shows
}

// Package backend provides the terminal abstraction the editor draws on
// and reads key presses from.
package backend

import "github.com/dshills/helios/internal/input/key"

// CursorStyle defines how the cursor appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
	CursorHidden
)

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

	// Key is set for EventKey. Only key presses are reported.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int
}

// Style is the drawing style of a cell.
type Style struct {
	Bold    bool
	Dim     bool
	Reverse bool
}

// StyleDefault is the terminal's default style.
var StyleDefault = Style{}

// Backend defines the interface for terminal backends.
type Backend interface {
	// Init initializes the backend and starts event delivery.
	// Must be called before any other methods.
	Init() error

	// Shutdown stops event delivery and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetContent sets a single cell. Positions outside the terminal are
	// silently ignored.
	SetContent(x, y int, r rune, style Style)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// SetCursorStyle changes the cursor appearance.
	SetCursorStyle(style CursorStyle)

	// Events returns the channel terminal events are delivered on. It is
	// closed after Shutdown.
	Events() <-chan Event
}

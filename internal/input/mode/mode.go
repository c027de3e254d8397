package mode

import "github.com/dshills/helios/internal/input/key"

// Standard mode names.
const (
	ModeNavigate = "navigate"
	ModeEdit     = "edit"
	ModeSelect   = "select"
	ModeCommand  = "command"
)

// State is implemented by the four mode types only.
type State interface {
	// Name returns the unique mode identifier (e.g., "navigate", "edit").
	Name() string

	// DisplayName returns a human-readable name for the status line.
	DisplayName() string

	// CursorStyle returns the cursor style for this mode.
	CursorStyle() CursorStyle

	// Session returns the session driven by this mode, or nil once the
	// mode has transitioned away.
	Session() *Session

	// HandleKey interprets one key press. It returns the mode that is
	// active afterwards (the receiver or a successor) and the intent for
	// the host.
	HandleKey(ev key.Event) (State, Intent)

	sealed()
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (navigate mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (edit mode).
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	default:
		return "unknown"
	}
}

// base holds the session of a live mode.
type base struct {
	s *Session
}

func (b *base) sealed() {}

// Session returns the session, or nil if the mode is inert.
func (b *base) Session() *Session {
	return b.s
}

// take detaches the session from the receiver, leaving it inert.
func (b *base) take() *Session {
	s := b.s
	b.s = nil
	return s
}

// motion applies a cursor motion if the mode is live.
func (b *base) motion(move func(*Session)) {
	if b.s != nil {
		move(b.s)
	}
}

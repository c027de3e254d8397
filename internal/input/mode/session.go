package mode

import (
	"fmt"
	"strings"
	"time"

	"github.com/dshills/helios/internal/engine/buffer"
	"github.com/dshills/helios/internal/engine/cursor"
	"github.com/dshills/helios/internal/input/key"
)

// Session is the state shared by all modes: the open buffers, the cursor,
// the command line, the status line and the viewport.
// A Session is driven by one goroutine and is not thread-safe.
type Session struct {
	buffers []*buffer.Buffer
	focused int

	cursor  cursor.Cursor
	anchor  cursor.Cursor
	command []rune
	pending *key.Sequence

	status        Status
	statusTimeout time.Duration
	now           func() time.Time

	offset int
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithStatusTimeout sets how long status messages stay visible.
func WithStatusTimeout(d time.Duration) SessionOption {
	return func(s *Session) {
		if d > 0 {
			s.statusTimeout = d
		}
	}
}

// WithClock overrides the time source used for status expiry.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSession creates a session over the given buffers, focusing the first.
// An empty buffer is created when none are given.
func NewSession(buffers []*buffer.Buffer, opts ...SessionOption) *Session {
	s := &Session{
		pending:       key.NewSequence(),
		statusTimeout: DefaultStatusTimeout,
		now:           time.Now,
	}
	for _, b := range buffers {
		if b != nil {
			s.buffers = append(s.buffers, b)
		}
	}
	if len(s.buffers) == 0 {
		s.buffers = []*buffer.Buffer{buffer.NewBuffer()}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Buffers

// Buffer returns the focused buffer.
func (s *Session) Buffer() *buffer.Buffer {
	return s.buffers[s.focused]
}

// Buffers returns all open buffers.
func (s *Session) Buffers() []*buffer.Buffer {
	out := make([]*buffer.Buffer, len(s.buffers))
	copy(out, s.buffers)
	return out
}

// Focused returns the index of the focused buffer.
func (s *Session) Focused() int {
	return s.focused
}

// AddBuffer opens b and focuses it with the cursor at the start.
func (s *Session) AddBuffer(b *buffer.Buffer) {
	s.buffers = append(s.buffers, b)
	s.focus(len(s.buffers) - 1)
}

// FocusNext focuses the next buffer, wrapping around.
func (s *Session) FocusNext() {
	s.focus((s.focused + 1) % len(s.buffers))
}

// FocusPrev focuses the previous buffer, wrapping around.
func (s *Session) FocusPrev() {
	s.focus((s.focused - 1 + len(s.buffers)) % len(s.buffers))
}

func (s *Session) focus(i int) {
	s.focused = i
	s.cursor = cursor.Cursor{}
	s.offset = 0
}

// CloseFocused closes the focused buffer and focuses its neighbour.
// The last buffer is never closed; it returns false in that case.
func (s *Session) CloseFocused() bool {
	if len(s.buffers) < 2 {
		return false
	}
	s.buffers = append(s.buffers[:s.focused], s.buffers[s.focused+1:]...)
	if s.focused >= len(s.buffers) {
		s.focused = len(s.buffers) - 1
	}
	s.focus(s.focused)
	return true
}

// CloseBuffer closes b. Focus stays on the focused buffer unless b was
// the one focused. The last buffer is never closed; it returns false in
// that case or when b is not open.
func (s *Session) CloseBuffer(b *buffer.Buffer) bool {
	if len(s.buffers) < 2 {
		return false
	}
	for i, open := range s.buffers {
		if open != b {
			continue
		}
		if i == s.focused {
			return s.CloseFocused()
		}
		s.buffers = append(s.buffers[:i], s.buffers[i+1:]...)
		if i < s.focused {
			s.focused--
		}
		return true
	}
	return false
}

// AnyModified reports whether any open buffer has unsaved changes.
func (s *Session) AnyModified() bool {
	for _, b := range s.buffers {
		if b.IsModified() {
			return true
		}
	}
	return false
}

// Cursor

// Cursor returns the cursor position.
func (s *Session) Cursor() cursor.Cursor {
	return s.cursor
}

// SetCursor moves the cursor, clamped to the focused buffer.
func (s *Session) SetCursor(c cursor.Cursor) {
	s.cursor = cursor.Clamp(s.Buffer(), c)
}

// move applies a motion to the cursor.
func (s *Session) move(m func(cursor.Text, cursor.Cursor) cursor.Cursor) {
	s.cursor = m(s.Buffer(), s.cursor)
}

// Selection returns the selection from the select anchor to the cursor.
func (s *Session) Selection() cursor.Selection {
	return cursor.NewSelection(s.anchor, s.cursor)
}

// Command line

// CommandLine returns the accumulated command-line text.
func (s *Session) CommandLine() string {
	return string(s.command)
}

func (s *Session) clearCommand() {
	s.command = s.command[:0]
}

// Pending returns the pending key sequence, e.g. "d" after d was pressed.
func (s *Session) Pending() string {
	return s.pending.String()
}

// Status line

// Status returns the status message, or "" once it has expired.
func (s *Session) Status() string {
	return s.status.Message(s.now(), s.statusTimeout)
}

// SetStatus shows msg on the status line.
func (s *Session) SetStatus(msg string) {
	s.status.Set(msg, s.now())
}

// SetStatusf formats and shows a status message.
func (s *Session) SetStatusf(format string, args ...any) {
	s.SetStatus(fmt.Sprintf(format, args...))
}

// SetStatusTimeout changes how long status messages stay visible.
func (s *Session) SetStatusTimeout(d time.Duration) {
	if d > 0 {
		s.statusTimeout = d
	}
}

// Viewport

// Offset returns the first visible line.
func (s *Session) Offset() int {
	return s.offset
}

// UpdateViewport scrolls so that the cursor line is visible in a viewport
// of height lines.
func (s *Session) UpdateViewport(height int) {
	s.offset = ScrollOffset(s.cursor.Line, s.offset, height)
}

// Debug

// DebugLines describes the focused buffer's line structure.
func (s *Session) DebugLines() string {
	b := s.Buffer()
	lens := make([]string, 0, b.LineCount())
	for i := 0; i < b.LineCount(); i++ {
		lens = append(lens, fmt.Sprint(b.LineLength(i)))
	}
	return fmt.Sprintf("lines=%d chars=%d lengths=[%s]",
		b.LineCount(), b.CharCount(), strings.Join(lens, " "))
}

// DebugCursor describes the cursor and viewport.
func (s *Session) DebugCursor() string {
	return fmt.Sprintf("cursor=%s line_len=%d offset=%d",
		s.cursor, s.Buffer().LineLength(s.cursor.Line), s.offset)
}

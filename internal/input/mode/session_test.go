package mode

import (
	"strings"
	"testing"
	"time"

	"github.com/dshills/helios/internal/engine/buffer"
	"github.com/dshills/helios/internal/engine/cursor"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestStatusExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	s := NewSession(nil, WithClock(clock.Now))

	s.SetStatus("Saved... Saved to a.txt")
	clock.Advance(9 * time.Second)
	if got := s.Status(); got != "Saved... Saved to a.txt" {
		t.Errorf("Status() at 9s = %q", got)
	}
	clock.Advance(time.Second)
	if got := s.Status(); got != "" {
		t.Errorf("Status() at 10s = %q, want cleared", got)
	}

	// Expired messages stay cleared even if the clock goes back.
	clock.Advance(-5 * time.Second)
	if got := s.Status(); got != "" {
		t.Errorf("Status() = %q, want cleared", got)
	}
}

func TestStatusTimeoutOption(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	s := NewSession(nil, WithClock(clock.Now), WithStatusTimeout(2*time.Second))
	s.SetStatusf("Error Occurred... %s", "boom")
	clock.Advance(time.Second)
	if got := s.Status(); got != "Error Occurred... boom" {
		t.Errorf("Status() = %q", got)
	}
	clock.Advance(time.Second)
	if got := s.Status(); got != "" {
		t.Errorf("Status() = %q, want cleared", got)
	}

	s.SetStatusTimeout(0)
	s.SetStatus("kept")
	clock.Advance(time.Second)
	if got := s.Status(); got != "kept" {
		t.Errorf("zero timeout was applied: Status() = %q", got)
	}
}

func TestScrollOffset(t *testing.T) {
	tests := []struct {
		name                       string
		line, offset, height, want int
	}{
		{"visible", 5, 0, 10, 0},
		{"last visible row", 9, 0, 10, 0},
		{"one below", 10, 0, 10, 1},
		{"far below", 50, 0, 10, 41},
		{"above snaps", 3, 20, 10, 3},
		{"top", 0, 5, 10, 0},
		{"zero height", 4, 0, 0, 4},
		{"negative offset", 2, -3, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScrollOffset(tt.line, tt.offset, tt.height); got != tt.want {
				t.Errorf("ScrollOffset(%d, %d, %d) = %d, want %d",
					tt.line, tt.offset, tt.height, got, tt.want)
			}
		})
	}
}

func TestScrollOffsetKeepsCursorVisible(t *testing.T) {
	offset := 0
	for _, line := range []int{0, 30, 31, 7, 100, 95, 0} {
		for _, height := range []int{1, 5, 24} {
			offset = ScrollOffset(line, offset, height)
			if line < offset || line >= offset+height {
				t.Fatalf("line %d outside [%d, %d)", line, offset, offset+height)
			}
		}
	}
}

func TestUpdateViewport(t *testing.T) {
	lines := strings.Repeat("x\n", 99) + "x"
	s := NewSession([]*buffer.Buffer{buffer.NewBufferFromString(lines)})
	s.SetCursor(cursor.New(40, 0))
	s.UpdateViewport(20)
	if got := s.Offset(); got != 21 {
		t.Errorf("Offset() = %d, want 21", got)
	}
	s.SetCursor(cursor.New(10, 0))
	s.UpdateViewport(20)
	if got := s.Offset(); got != 10 {
		t.Errorf("Offset() = %d, want 10", got)
	}
}

func TestSessionBuffers(t *testing.T) {
	s := NewSession(nil)
	if len(s.Buffers()) != 1 || !s.Buffer().IsEmpty() {
		t.Fatal("NewSession(nil) should hold one empty buffer")
	}
	if s.CloseFocused() {
		t.Error("CloseFocused closed the last buffer")
	}

	other := buffer.NewBufferFromString("one\ntwo")
	s.SetCursor(cursor.New(0, 0))
	s.AddBuffer(other)
	if s.Buffer() != other || s.Focused() != 1 {
		t.Fatal("AddBuffer did not focus the new buffer")
	}
	s.SetCursor(cursor.New(1, 2))
	if !s.CloseFocused() {
		t.Fatal("CloseFocused refused with two buffers")
	}
	if s.Focused() != 0 || len(s.Buffers()) != 1 {
		t.Errorf("after close focused=%d buffers=%d", s.Focused(), len(s.Buffers()))
	}
	if s.Cursor() != (cursor.Cursor{}) {
		t.Errorf("cursor = %v, want reset", s.Cursor())
	}
}

func TestCloseBuffer(t *testing.T) {
	a := buffer.NewBufferFromString("a")
	b := buffer.NewBufferFromString("b\nb")
	c := buffer.NewBufferFromString("c")
	s := NewSession([]*buffer.Buffer{a, b, c})
	s.FocusNext()
	s.SetCursor(cursor.New(1, 0))

	if !s.CloseBuffer(a) {
		t.Fatal("CloseBuffer(a) refused")
	}
	if s.Buffer() != b || s.Focused() != 0 {
		t.Errorf("focus moved to %d", s.Focused())
	}
	if s.Cursor() != cursor.New(1, 0) {
		t.Errorf("cursor reset on unfocused close: %v", s.Cursor())
	}

	if s.CloseBuffer(a) {
		t.Error("closed a buffer that is not open")
	}
	if !s.CloseBuffer(b) {
		t.Fatal("CloseBuffer(b) refused")
	}
	if s.Buffer() != c {
		t.Error("focus should move to the remaining buffer")
	}
	if s.CloseBuffer(c) {
		t.Error("closed the last buffer")
	}
}

func TestSetCursorClamps(t *testing.T) {
	s := NewSession([]*buffer.Buffer{buffer.NewBufferFromString("ab\nc")})
	s.SetCursor(cursor.New(9, 9))
	if got, want := s.Cursor(), cursor.New(1, 1); got != want {
		t.Errorf("Cursor() = %v, want %v", got, want)
	}
	s.SetCursor(cursor.New(-1, -1))
	if got := s.Cursor(); got != (cursor.Cursor{}) {
		t.Errorf("Cursor() = %v, want origin", got)
	}
}

func TestSelectionFollowsCursor(t *testing.T) {
	m := newTestMachine("hello\nworld")
	feed(m, "llvjl")
	sel, ok := m.State().(*SelectMode)
	if !ok {
		t.Fatalf("State() = %T, want *SelectMode", m.State())
	}
	got := sel.Selection()
	if got.Start() != cursor.New(0, 2) || got.End() != cursor.New(1, 3) {
		t.Errorf("Selection() = %v", got)
	}
	if !got.Contains(1, 0) || got.Contains(1, 4) {
		t.Error("Contains does not match the selected range")
	}
}

func TestDebugDumps(t *testing.T) {
	s := NewSession([]*buffer.Buffer{buffer.NewBufferFromString("ab\n\ncde")})
	if got, want := s.DebugLines(), "lines=3 chars=7 lengths=[2 0 3]"; got != want {
		t.Errorf("DebugLines() = %q, want %q", got, want)
	}
	s.SetCursor(cursor.New(2, 1))
	if got, want := s.DebugCursor(), "cursor=(2:1) line_len=3 offset=0"; got != want {
		t.Errorf("DebugCursor() = %q, want %q", got, want)
	}
}

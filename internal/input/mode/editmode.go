package mode

import (
	"github.com/dshills/helios/internal/engine/cursor"
	"github.com/dshills/helios/internal/engine/edit"
	"github.com/dshills/helios/internal/input/key"
)

// EditMode inserts and deletes text at the cursor. All changes made
// between entering and leaving edit mode undo as one unit.
type EditMode struct {
	base
}

func enterEdit(s *Session, snapshot bool) *EditMode {
	if s != nil && snapshot {
		s.Buffer().SaveSnapshot()
	}
	return &EditMode{base{s}}
}

// Name returns "edit".
func (m *EditMode) Name() string { return ModeEdit }

// DisplayName returns "EDIT".
func (m *EditMode) DisplayName() string { return "EDIT" }

// CursorStyle returns CursorBar.
func (m *EditMode) CursorStyle() CursorStyle { return CursorBar }

// HandleKey implements State.
func (m *EditMode) HandleKey(ev key.Event) (State, Intent) {
	if m.s == nil {
		return m, None
	}

	switch ev.Key {
	case key.KeyEscape, key.KeyCapsLock:
		return m.Navigate(), intentOf(IntentEnterNavigateMode)
	case key.KeyEnter:
		m.Newline()
	case key.KeyTab:
		m.Insert('\t')
	case key.KeyBackspace, key.KeyDelete:
		m.Backspace()
	case key.KeyLeft:
		m.motion(func(s *Session) { s.move(cursor.MoveLeft) })
	case key.KeyRight:
		m.motion(func(s *Session) { s.move(cursor.MoveRight) })
	case key.KeyUp:
		m.motion(func(s *Session) { s.move(cursor.MoveUp) })
	case key.KeyDown:
		m.motion(func(s *Session) { s.move(cursor.MoveDown) })
	case key.KeyRune:
		if ev.IsChar() {
			m.Insert(ev.Rune)
		}
	}
	return m, None
}

// Insert types r at the cursor.
func (m *EditMode) Insert(r rune) {
	m.motion(func(s *Session) {
		s.cursor = edit.InsertRune(s.Buffer(), s.cursor, r)
	})
}

// Backspace deletes the character before the cursor.
func (m *EditMode) Backspace() {
	m.motion(func(s *Session) {
		s.cursor = edit.Backspace(s.Buffer(), s.cursor)
	})
}

// Newline splits the line at the cursor.
func (m *EditMode) Newline() {
	m.motion(func(s *Session) {
		s.cursor = edit.SplitLine(s.Buffer(), s.cursor)
	})
}

// Navigate returns to navigate mode.
func (m *EditMode) Navigate() *NavigateMode {
	return enterNavigate(m.take())
}

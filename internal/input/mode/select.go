package mode

import (
	"github.com/dshills/helios/internal/engine/cursor"
	"github.com/dshills/helios/internal/input/key"
)

// SelectMode extends a character selection from the anchor set on entry
// to the cursor.
type SelectMode struct {
	base
}

// Name returns "select".
func (m *SelectMode) Name() string { return ModeSelect }

// DisplayName returns "SELECT".
func (m *SelectMode) DisplayName() string { return "SELECT" }

// CursorStyle returns CursorUnderline.
func (m *SelectMode) CursorStyle() CursorStyle { return CursorUnderline }

// HandleKey implements State.
func (m *SelectMode) HandleKey(ev key.Event) (State, Intent) {
	if m.s == nil {
		return m, None
	}

	switch ev.Key {
	case key.KeyEscape:
		return m.Navigate(), intentOf(IntentEnterNavigateMode)
	case key.KeyLeft:
		m.motion(func(s *Session) { s.move(cursor.MoveLeft) })
	case key.KeyRight:
		m.motion(func(s *Session) { s.move(cursor.MoveRight) })
	case key.KeyUp:
		m.motion(func(s *Session) { s.move(cursor.MoveUp) })
	case key.KeyDown:
		m.motion(func(s *Session) { s.move(cursor.MoveDown) })
	case key.KeyRune:
		if ev.IsModified() {
			break
		}
		switch ev.Rune {
		case 'h':
			m.motion(func(s *Session) { s.move(cursor.MoveLeft) })
		case 'l':
			m.motion(func(s *Session) { s.move(cursor.MoveRight) })
		case 'k':
			m.motion(func(s *Session) { s.move(cursor.MoveUp) })
		case 'j':
			m.motion(func(s *Session) { s.move(cursor.MoveDown) })
		case 'i':
			return m.Insert(), intentOf(IntentEnterEditMode)
		case ':':
			return m.Command(), intentOf(IntentEnterCommandMode)
		}
	}
	return m, None
}

// Selection returns the current selection.
func (m *SelectMode) Selection() cursor.Selection {
	if m.s == nil {
		return cursor.Selection{}
	}
	return m.s.Selection()
}

// Insert leaves the selection and enters edit mode at the cursor.
func (m *SelectMode) Insert() *EditMode {
	return enterEdit(m.take(), true)
}

// Command enters command mode.
func (m *SelectMode) Command() *CommandMode {
	return enterCommand(m.take())
}

// Navigate drops the selection and returns to navigate mode.
func (m *SelectMode) Navigate() *NavigateMode {
	return enterNavigate(m.take())
}

package mode

import (
	"github.com/dshills/helios/internal/engine/cursor"
	"github.com/dshills/helios/internal/engine/edit"
	"github.com/dshills/helios/internal/input/key"
)

// NavigateMode is the initial mode: motions, undo and entry into the
// other modes.
type NavigateMode struct {
	base
}

// NewNavigateMode starts a session in navigate mode.
func NewNavigateMode(s *Session) *NavigateMode {
	return &NavigateMode{base{s}}
}

// Name returns "navigate".
func (m *NavigateMode) Name() string { return ModeNavigate }

// DisplayName returns "NAVIGATE".
func (m *NavigateMode) DisplayName() string { return "NAVIGATE" }

// CursorStyle returns CursorBlock.
func (m *NavigateMode) CursorStyle() CursorStyle { return CursorBlock }

// HandleKey implements State.
func (m *NavigateMode) HandleKey(ev key.Event) (State, Intent) {
	s := m.s
	if s == nil {
		return m, None
	}

	if !s.pending.IsEmpty() {
		m.completePending(ev)
		return m, None
	}

	switch ev.Key {
	case key.KeyLeft:
		m.Left()
	case key.KeyRight:
		m.Right()
	case key.KeyUp:
		m.Up()
	case key.KeyDown:
		m.Down()
	case key.KeyRune:
		if ev.IsModified() {
			return m, None
		}
		return m.handleRune(ev)
	}
	return m, None
}

func (m *NavigateMode) handleRune(ev key.Event) (State, Intent) {
	switch ev.Rune {
	case 'i':
		return m.Insert(), intentOf(IntentEnterEditMode)
	case 'a':
		return m.Append(), intentOf(IntentEnterEditMode)
	case 'o':
		return m.OpenLine(), intentOf(IntentEnterEditModeInNewLine)
	case ':':
		return m.Command(), intentOf(IntentEnterCommandMode)
	case 'v':
		return m.Select(), intentOf(IntentEnterSelectMode)
	case 'h':
		m.Left()
	case 'l':
		m.Right()
	case 'k':
		m.Up()
	case 'j':
		m.Down()
	case 'w':
		m.motion(func(s *Session) { s.move(cursor.MoveWordForward) })
	case 'e':
		m.motion(func(s *Session) { s.move(cursor.MoveWordEndForward) })
	case 'b':
		m.motion(func(s *Session) { s.move(cursor.MoveWordBackward) })
	case 'G':
		m.motion(func(s *Session) { s.move(cursor.MoveToEndOfFile) })
	case '^':
		m.motion(func(s *Session) { s.move(cursor.MoveToLineStartNonWhitespace) })
	case '$':
		m.motion(func(s *Session) { s.move(cursor.MoveToLineEnd) })
	case 'g', 'd':
		m.s.pending.Add(ev)
	case 'u':
		m.Undo()
	case 'U':
		m.Redo()
	}
	return m, None
}

// completePending finishes a two-key sequence. Any key that does not
// complete it resets the sequence and is otherwise ignored.
func (m *NavigateMode) completePending(ev key.Event) {
	s := m.s
	s.pending.Add(ev)
	seq, _ := s.pending.AsString()
	s.pending.Clear()

	switch seq {
	case "gg":
		s.move(cursor.MoveToStartOfFile)
	case "dw":
		m.DeleteWord()
	}
}

// Motions

// Left moves the cursor one column left (h).
func (m *NavigateMode) Left() { m.motion(func(s *Session) { s.move(cursor.MoveLeft) }) }

// Right moves the cursor one column right (l).
func (m *NavigateMode) Right() { m.motion(func(s *Session) { s.move(cursor.MoveRight) }) }

// Up moves the cursor one line up (k).
func (m *NavigateMode) Up() { m.motion(func(s *Session) { s.move(cursor.MoveUp) }) }

// Down moves the cursor one line down (j).
func (m *NavigateMode) Down() { m.motion(func(s *Session) { s.move(cursor.MoveDown) }) }

// DeleteWord deletes up to the next whitespace on the line (dw). It is
// a single undoable change.
func (m *NavigateMode) DeleteWord() {
	m.motion(func(s *Session) {
		b := s.Buffer()
		b.SaveSnapshot()
		s.cursor = cursor.DeleteToNextWhitespace(b, s.cursor)
	})
}

// Undo restores the previous snapshot (u).
func (m *NavigateMode) Undo() {
	m.motion(func(s *Session) {
		if !s.Buffer().Undo() {
			s.SetStatus("Already at oldest change")
		}
		s.SetCursor(s.cursor)
	})
}

// Redo reapplies the last undone snapshot (U).
func (m *NavigateMode) Redo() {
	m.motion(func(s *Session) {
		if !s.Buffer().Redo() {
			s.SetStatus("Already at newest change")
		}
		s.SetCursor(s.cursor)
	})
}

// Transitions

// Insert enters edit mode at the cursor (i).
func (m *NavigateMode) Insert() *EditMode {
	s := m.take()
	return enterEdit(s, true)
}

// Append enters edit mode one column right of the cursor (a).
func (m *NavigateMode) Append() *EditMode {
	s := m.take()
	if s != nil {
		s.cursor = edit.AppendPosition(s.Buffer(), s.cursor)
	}
	return enterEdit(s, true)
}

// OpenLine opens an empty line below the cursor and enters edit mode on
// it (o). Opening the line and the typing that follows undo together.
func (m *NavigateMode) OpenLine() *EditMode {
	s := m.take()
	if s != nil {
		b := s.Buffer()
		b.SaveSnapshot()
		s.cursor = edit.OpenLineBelow(b, s.cursor)
	}
	return enterEdit(s, false)
}

// Command enters command mode (:).
func (m *NavigateMode) Command() *CommandMode {
	return enterCommand(m.take())
}

// Select enters select mode anchored at the cursor (v).
func (m *NavigateMode) Select() *SelectMode {
	s := m.take()
	if s != nil {
		s.anchor = s.cursor
	}
	return &SelectMode{base{s}}
}

func enterNavigate(s *Session) *NavigateMode {
	if s != nil {
		s.pending.Clear()
		s.SetCursor(s.cursor)
	}
	return &NavigateMode{base{s}}
}

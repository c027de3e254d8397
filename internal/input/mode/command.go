package mode

import (
	"strings"

	"github.com/dshills/helios/internal/input/key"
)

// Messages shown when a quit is refused.
const (
	msgUnsaved    = "No write since last change (add ! to override)"
	msgUnsavedAll = "No write since last change in some buffer (add ! to override)"
)

// CommandMode accumulates an ex-style command line.
type CommandMode struct {
	base
}

func enterCommand(s *Session) *CommandMode {
	if s != nil {
		s.clearCommand()
		s.pending.Clear()
	}
	return &CommandMode{base{s}}
}

// Name returns "command".
func (m *CommandMode) Name() string { return ModeCommand }

// DisplayName returns "COMMAND".
func (m *CommandMode) DisplayName() string { return "COMMAND" }

// CursorStyle returns CursorBar.
func (m *CommandMode) CursorStyle() CursorStyle { return CursorBar }

// HandleKey implements State.
func (m *CommandMode) HandleKey(ev key.Event) (State, Intent) {
	if m.s == nil {
		return m, None
	}

	switch ev.Key {
	case key.KeyEscape:
		return m.Navigate(), intentOf(IntentEnterNavigateMode)
	case key.KeyEnter:
		return m.Execute()
	case key.KeyBackspace, key.KeyDelete:
		m.Pop()
	case key.KeyRune:
		if ev.IsChar() {
			m.Push(ev.Rune)
		}
	}
	return m, None
}

// Push appends r to the command line.
func (m *CommandMode) Push(r rune) {
	m.motion(func(s *Session) { s.command = append(s.command, r) })
}

// Pop removes the last command-line character.
func (m *CommandMode) Pop() {
	m.motion(func(s *Session) {
		if n := len(s.command); n > 0 {
			s.command = s.command[:n-1]
		}
	})
}

// Navigate abandons the command line.
func (m *CommandMode) Navigate() *NavigateMode {
	s := m.take()
	if s != nil {
		s.clearCommand()
	}
	return enterNavigate(s)
}

// Execute runs the command line and returns to navigate mode with the
// resulting intent. Buffer switching is handled here; quits of modified
// buffers are refused unless forced.
func (m *CommandMode) Execute() (*NavigateMode, Intent) {
	s := m.take()
	if s == nil {
		return enterNavigate(nil), None
	}

	text := s.CommandLine()
	s.clearCommand()
	next := enterNavigate(s)

	switch strings.TrimSpace(text) {
	case "bn":
		s.FocusNext()
		return next, None
	case "bp":
		s.FocusPrev()
		return next, None
	}

	intent := ParseCommand(text)
	switch intent.Kind {
	case IntentQuit:
		if !intent.Force && s.Buffer().IsModified() {
			s.SetStatus(msgUnsaved)
			return next, None
		}
	case IntentQuitAll:
		if !intent.Force && s.AnyModified() {
			s.SetStatus(msgUnsavedAll)
			return next, None
		}
	}
	return next, intent
}

// ParseCommand maps command-line text to an intent. Unknown or empty
// commands map to None.
func ParseCommand(text string) Intent {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return None
	}
	var target string
	if len(fields) > 1 {
		target = fields[1]
	}

	switch cmd := fields[0]; cmd {
	case "q":
		return intentOf(IntentQuit)
	case "q!":
		return Intent{Kind: IntentQuit, Force: true}
	case "qa":
		return intentOf(IntentQuitAll)
	case "qa!":
		return Intent{Kind: IntentQuitAll, Force: true}
	case "dla":
		return intentOf(IntentDebugDumpLines)
	case "dlc":
		return intentOf(IntentDebugDumpCursor)
	case "e":
		if target == "" {
			return None
		}
		return Intent{Kind: IntentOpen, Target: target}
	default:
		switch {
		case strings.HasPrefix(cmd, "wq"):
			return Intent{Kind: IntentSaveAndQuit, Target: target}
		case strings.HasPrefix(cmd, "w"):
			return Intent{Kind: IntentSave, Target: target}
		}
	}
	return None
}

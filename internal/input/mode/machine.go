package mode

import "github.com/dshills/helios/internal/input/key"

// ChangeCallback is called after the active mode changes.
type ChangeCallback func(from, to string)

// Machine owns the active mode of a session and routes key events to it.
// Like the Session it drives, it is used from a single goroutine.
type Machine struct {
	state     State
	callbacks []ChangeCallback
}

// NewMachine starts s in navigate mode.
func NewMachine(s *Session) *Machine {
	return &Machine{state: NewNavigateMode(s)}
}

// State returns the active mode.
func (m *Machine) State() State {
	return m.state
}

// Mode returns the name of the active mode.
func (m *Machine) Mode() string {
	return m.state.Name()
}

// Session returns the session.
func (m *Machine) Session() *Session {
	return m.state.Session()
}

// OnChange registers a callback for mode changes.
func (m *Machine) OnChange(cb ChangeCallback) {
	m.callbacks = append(m.callbacks, cb)
}

// HandleKey feeds one key press to the active mode and returns the
// intent for the host.
func (m *Machine) HandleKey(ev key.Event) Intent {
	from := m.state
	next, intent := from.HandleKey(ev)
	if next == nil {
		return intent
	}
	m.state = next
	if next != from {
		for _, cb := range m.callbacks {
			if cb != nil {
				cb(from.Name(), next.Name())
			}
		}
	}
	return intent
}

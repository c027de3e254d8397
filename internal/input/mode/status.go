package mode

import "time"

// DefaultStatusTimeout is how long a status message stays visible.
const DefaultStatusTimeout = 10 * time.Second

// Status is a transient status-line message. Expiry is checked on read;
// nothing is scheduled.
type Status struct {
	message   string
	timestamp time.Time
}

// Set replaces the message and stamps it with now.
func (s *Status) Set(msg string, now time.Time) {
	s.message = msg
	s.timestamp = now
}

// Message returns the current message, clearing it first if it is at
// least timeout old.
func (s *Status) Message(now time.Time, timeout time.Duration) string {
	if s.message != "" && now.Sub(s.timestamp) >= timeout {
		s.Clear()
	}
	return s.message
}

// Clear removes the message.
func (s *Status) Clear() {
	s.message = ""
	s.timestamp = time.Time{}
}

package key

import (
	"fmt"
	"strings"
)

// Sequence represents the pending keys of a multi-key command.
// Examples: "gg" (go to top), "dw" (delete word)
type Sequence struct {
	// Events contains the key events in order.
	Events []Event
}

// NewSequence creates an empty key sequence.
func NewSequence() *Sequence {
	return &Sequence{
		Events: make([]Event, 0, 2), // Pending sequences are short
	}
}

// Len returns the number of events in the sequence.
func (s *Sequence) Len() int {
	return len(s.Events)
}

// IsEmpty returns true if the sequence has no events.
func (s *Sequence) IsEmpty() bool {
	return len(s.Events) == 0
}

// Add appends an event to the sequence.
func (s *Sequence) Add(event Event) {
	s.Events = append(s.Events, event)
}

// Clear removes all events from the sequence.
func (s *Sequence) Clear() {
	s.Events = s.Events[:0]
}

// String returns a Vim-style representation such as "gg" or "d<Esc>".
func (s *Sequence) String() string {
	var sb strings.Builder
	for _, e := range s.Events {
		sb.WriteString(e.String())
	}
	return sb.String()
}

// AsString returns the sequence as a string if it contains only unmodified
// runes. Returns "" and false otherwise.
func (s *Sequence) AsString() (string, bool) {
	if len(s.Events) == 0 {
		return "", false
	}

	var sb strings.Builder
	for _, e := range s.Events {
		if !e.IsRune() || e.IsModified() {
			return "", false
		}
		sb.WriteRune(e.Rune)
	}
	return sb.String(), true
}

// Equals returns true if two sequences are identical.
func (s *Sequence) Equals(other *Sequence) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.Events) != len(other.Events) {
		return false
	}
	for i, e := range s.Events {
		if !e.Equals(other.Events[i]) {
			return false
		}
	}
	return true
}

// ParseSequence parses a continuous Vim-style sequence like "gg", "dw" or
// "<Esc>:". Special keys use <Name> notation.
func ParseSequence(s string) (*Sequence, error) {
	seq := NewSequence()

	for _, part := range splitSpec(s) {
		if len(part) > 2 && part[0] == '<' && part[len(part)-1] == '>' {
			name := part[1 : len(part)-1]
			if name == "Space" {
				seq.Add(NewRuneEvent(' ', ModNone))
				continue
			}
			k := KeyFromName(name)
			if k == KeyNone {
				return nil, fmt.Errorf("unknown key %q", name)
			}
			seq.Add(NewSpecialEvent(k, ModNone))
			continue
		}
		for _, r := range part {
			seq.Add(NewRuneEvent(r, ModNone))
		}
	}
	return seq, nil
}

// MustParseSequence parses a sequence string and panics on error.
// Use only for known-valid sequences in tests and initialization code.
func MustParseSequence(s string) *Sequence {
	seq, err := ParseSequence(s)
	if err != nil {
		panic("invalid key sequence: " + s + ": " + err.Error())
	}
	return seq
}

// splitSpec splits s into <...> groups and runs of plain characters.
func splitSpec(s string) []string {
	var parts []string
	for len(s) > 0 {
		if s[0] == '<' {
			if end := strings.IndexByte(s, '>'); end > 1 {
				parts = append(parts, s[:end+1])
				s = s[end+1:]
				continue
			}
		}
		next := strings.IndexByte(s[1:], '<')
		if next < 0 {
			parts = append(parts, s)
			break
		}
		parts = append(parts, s[:next+1])
		s = s[next+1:]
	}
	return parts
}

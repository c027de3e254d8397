package cursor

import "fmt"

// Selection represents a range of selected text.
// Anchor is where the selection started; Head is the current cursor position.
// Both ends are inclusive, matching visual selection.
// Selection is an immutable value type.
type Selection struct {
	Anchor Cursor // Where selection started
	Head   Cursor // Current cursor position
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head Cursor) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// Start returns the earlier end of the selection.
func (s Selection) Start() Cursor {
	if s.Anchor.Compare(s.Head) <= 0 {
		return s.Anchor
	}
	return s.Head
}

// End returns the later end of the selection.
func (s Selection) End() Cursor {
	if s.Anchor.Compare(s.Head) >= 0 {
		return s.Anchor
	}
	return s.Head
}

// IsBackward returns true if the selection extends backward (head < anchor).
func (s Selection) IsBackward() bool {
	return s.Head.Before(s.Anchor)
}

// Extend returns a new selection with the head moved to c.
// The anchor remains fixed.
func (s Selection) Extend(c Cursor) Selection {
	return Selection{Anchor: s.Anchor, Head: c}
}

// Contains returns true if (line, col) lies within the selection.
func (s Selection) Contains(line, col int) bool {
	p := Cursor{Line: line, Column: col}
	return p.Compare(s.Start()) >= 0 && p.Compare(s.End()) <= 0
}

// LineSpan returns the first and last line touched by the selection.
func (s Selection) LineSpan() (int, int) {
	return s.Start().Line, s.End().Line
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	dir := "→"
	if s.IsBackward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%s%s%s)", s.Anchor, dir, s.Head)
}

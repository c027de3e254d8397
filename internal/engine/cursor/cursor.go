package cursor

import "fmt"

// Text is the read-only buffer view motions operate on.
// *buffer.Buffer implements it.
type Text interface {
	LineCount() int
	LineLength(line int) int
	CharAt(line, col int) (rune, bool)
}

// Editable is a Text that can delete characters.
type Editable interface {
	Text
	DeleteChar(line, col int) bool
}

// Cursor is a (line, column) position measured in characters.
// Cursor is an immutable value type.
type Cursor struct {
	Line   int
	Column int
}

// New creates a cursor at the given position.
func New(line, col int) Cursor {
	return Cursor{Line: line, Column: col}
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("(%d:%d)", c.Line, c.Column)
}

// Compare returns -1 if c < other, 0 if c == other, 1 if c > other.
func (c Cursor) Compare(other Cursor) int {
	if c.Line < other.Line {
		return -1
	}
	if c.Line > other.Line {
		return 1
	}
	if c.Column < other.Column {
		return -1
	}
	if c.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if c comes before other.
func (c Cursor) Before(other Cursor) bool {
	return c.Compare(other) < 0
}

// After returns true if c comes after other.
func (c Cursor) After(other Cursor) bool {
	return c.Compare(other) > 0
}

// Clamp returns c restricted to valid positions in t.
func Clamp(t Text, c Cursor) Cursor {
	last := t.LineCount() - 1
	if last < 0 {
		last = 0
	}
	if c.Line > last {
		c.Line = last
	}
	if c.Line < 0 {
		c.Line = 0
	}
	if n := t.LineLength(c.Line); c.Column > n {
		c.Column = n
	}
	if c.Column < 0 {
		c.Column = 0
	}
	return c
}

// Package edit implements the character and line editing operations used
// by Edit mode. Each operation mutates the buffer and returns the clamped
// cursor position that follows the edit.
package edit

import "github.com/dshills/helios/internal/engine/cursor"

// Buffer is the mutable text the operations act on.
// *buffer.Buffer implements it.
type Buffer interface {
	cursor.Editable
	InsertChar(line, col int, ch rune) bool
	InsertLine(line, col int) bool
}

// InsertRune inserts r at the cursor and advances one column.
func InsertRune(b Buffer, c cursor.Cursor, r rune) cursor.Cursor {
	c = cursor.Clamp(b, c)
	if r == '\n' {
		return SplitLine(b, c)
	}
	if b.InsertChar(c.Line, c.Column, r) {
		c.Column++
	}
	return cursor.Clamp(b, c)
}

// Backspace deletes the character before the cursor. At column 0 the line
// is joined onto the previous one and the cursor lands at the join point.
func Backspace(b Buffer, c cursor.Cursor) cursor.Cursor {
	c = cursor.Clamp(b, c)
	switch {
	case c.Column > 0:
		if b.DeleteChar(c.Line, c.Column-1) {
			c.Column--
		}
	case c.Line > 0:
		prev := c.Line - 1
		join := b.LineLength(prev)
		if b.DeleteChar(prev, join) {
			c = cursor.Cursor{Line: prev, Column: join}
		}
	}
	return cursor.Clamp(b, c)
}

// SplitLine breaks the line at the cursor (Enter) and moves to the start
// of the new line.
func SplitLine(b Buffer, c cursor.Cursor) cursor.Cursor {
	c = cursor.Clamp(b, c)
	if b.InsertLine(c.Line, c.Column) {
		c = cursor.Cursor{Line: c.Line + 1}
	}
	return cursor.Clamp(b, c)
}

// OpenLineBelow inserts an empty line after the cursor's line (o) and
// moves to it.
func OpenLineBelow(b Buffer, c cursor.Cursor) cursor.Cursor {
	c = cursor.Clamp(b, c)
	return SplitLine(b, cursor.Cursor{Line: c.Line, Column: b.LineLength(c.Line)})
}

// AppendPosition returns the insertion point for append (a): one column
// right, bounded by the end of the line.
func AppendPosition(b Buffer, c cursor.Cursor) cursor.Cursor {
	return cursor.MoveRight(b, c)
}

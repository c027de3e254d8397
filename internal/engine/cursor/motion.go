package cursor

import "unicode"

// MoveLeft moves one column left, stopping at column 0.
func MoveLeft(t Text, c Cursor) Cursor {
	c = Clamp(t, c)
	if c.Column > 0 {
		c.Column--
	}
	return c
}

// MoveRight moves one column right, stopping at the end of the line.
func MoveRight(t Text, c Cursor) Cursor {
	c = Clamp(t, c)
	if c.Column < t.LineLength(c.Line) {
		c.Column++
	}
	return c
}

// MoveUp moves to the previous line, clamping the column to its length.
func MoveUp(t Text, c Cursor) Cursor {
	c = Clamp(t, c)
	if c.Line > 0 {
		c.Line--
	}
	return Clamp(t, c)
}

// MoveDown moves to the next line, clamping the column to its length.
func MoveDown(t Text, c Cursor) Cursor {
	c = Clamp(t, c)
	if c.Line < t.LineCount()-1 {
		c.Line++
	}
	return Clamp(t, c)
}

// MoveToLineEnd moves to the last character before the line's newline,
// or column 0 on an empty line.
func MoveToLineEnd(t Text, c Cursor) Cursor {
	c = Clamp(t, c)
	c.Column = lastColumn(t, c.Line)
	return c
}

// MoveToLineStartNonWhitespace moves to the first non-whitespace character
// of the line. Lines that are empty or all whitespace resolve to their last
// character.
func MoveToLineStartNonWhitespace(t Text, c Cursor) Cursor {
	c = Clamp(t, c)
	n := t.LineLength(c.Line)
	col := 0
	for col < n {
		ch, _ := t.CharAt(c.Line, col)
		if !isSpace(ch) {
			break
		}
		col++
	}
	if col > n-1 {
		col = lastColumn(t, c.Line)
	}
	c.Column = col
	return c
}

// MoveToStartOfFile moves to (0, 0).
func MoveToStartOfFile(t Text, c Cursor) Cursor {
	return Clamp(t, Cursor{})
}

// MoveToEndOfFile moves to column 0 of the last line.
func MoveToEndOfFile(t Text, c Cursor) Cursor {
	return Clamp(t, Cursor{Line: t.LineCount() - 1})
}

// MoveWordForward moves to the start of the next word (w).
// Phase 1: skip the rest of the current run of non-whitespace.
// Phase 2: skip whitespace, including newlines and empty lines.
// Phase 3: stop on the first character of the next word.
// With no next word, stops on the last character of the document.
func MoveWordForward(t Text, c Cursor) Cursor {
	c = Clamp(t, c)
	s := newScanner(t, c)

	ch, ok := s.char()
	if !ok {
		return c
	}

	// Phase 1: Skip current word
	if !isSpace(ch) {
		for {
			if !s.next() {
				return lastChar(t)
			}
			if ch, _ = s.char(); isSpace(ch) {
				break
			}
		}
	}

	// Phase 2: Skip whitespace
	for isSpace(ch) {
		if !s.next() {
			return lastChar(t)
		}
		ch, _ = s.char()
	}

	// Phase 3: At the start of the next word
	return s.cursor()
}

// MoveWordEndForward advances one character unconditionally, then keeps
// advancing while the following character is non-whitespace (e). Stops on
// the last character before whitespace or the end of the document.
func MoveWordEndForward(t Text, c Cursor) Cursor {
	c = Clamp(t, c)
	s := newScanner(t, c)

	if !s.next() {
		return c
	}
	for {
		ch, ok := s.peek()
		if !ok || isSpace(ch) {
			break
		}
		s.next()
	}
	return s.cursor()
}

// MoveWordBackward retreats to the start of the previous word (b). It
// steps back one character at a time and stops on a non-whitespace
// character that sits at column 0 or follows whitespace. Reaching column 0
// continues at the end of the previous line.
func MoveWordBackward(t Text, c Cursor) Cursor {
	c = Clamp(t, c)
	s := newScanner(t, c)

	for s.prev() {
		ch, _ := s.char()
		if isSpace(ch) {
			continue
		}
		if s.col == 0 {
			break
		}
		if before, _ := t.CharAt(s.line, s.col-1); isSpace(before) {
			break
		}
	}
	return s.cursor()
}

// DeleteToNextWhitespace deletes from the cursor to the next whitespace
// boundary on the current line (dw). On whitespace it deletes the run of
// whitespace up to the next word instead. The cursor does not move.
func DeleteToNextWhitespace(e Editable, c Cursor) Cursor {
	c = Clamp(e, c)
	n := e.LineLength(c.Line)
	if c.Column >= n {
		return c
	}

	first, _ := e.CharAt(c.Line, c.Column)
	onSpace := isSpace(first)

	count := 0
	for col := c.Column; col < n; col++ {
		ch, _ := e.CharAt(c.Line, col)
		if isSpace(ch) != onSpace {
			break
		}
		count++
	}

	for i := 0; i < count; i++ {
		e.DeleteChar(c.Line, c.Column)
	}
	return Clamp(e, c)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// lastColumn returns the column of the last character on a line, or 0.
func lastColumn(t Text, line int) int {
	if n := t.LineLength(line); n > 0 {
		return n - 1
	}
	return 0
}

// lastChar returns the position of the last character of the document.
func lastChar(t Text) Cursor {
	line := t.LineCount() - 1
	if line < 0 {
		line = 0
	}
	return Cursor{Line: line, Column: lastColumn(t, line)}
}

package cursor

// scanner walks the document one character at a time. The newline ending a
// line is addressed as column LineLength(line).
type scanner struct {
	t    Text
	line int
	col  int
}

func newScanner(t Text, c Cursor) *scanner {
	return &scanner{t: t, line: c.Line, col: c.Column}
}

func (s *scanner) cursor() Cursor {
	return Cursor{Line: s.line, Column: s.col}
}

// char returns the character under the scanner.
func (s *scanner) char() (rune, bool) {
	return s.t.CharAt(s.line, s.col)
}

// following returns the position after the scanner's.
func (s *scanner) following() (int, int) {
	if s.col < s.t.LineLength(s.line) {
		return s.line, s.col + 1
	}
	return s.line + 1, 0
}

// peek returns the character after the scanner without moving.
func (s *scanner) peek() (rune, bool) {
	if _, ok := s.char(); !ok {
		return 0, false
	}
	line, col := s.following()
	return s.t.CharAt(line, col)
}

// next advances one character. Returns false, without moving, at the end
// of the document.
func (s *scanner) next() bool {
	if _, ok := s.peek(); !ok {
		return false
	}
	s.line, s.col = s.following()
	return true
}

// prev retreats one character, stepping from column 0 onto the previous
// line's newline. Returns false at the start of the document.
func (s *scanner) prev() bool {
	switch {
	case s.col > 0:
		s.col--
	case s.line > 0:
		s.line--
		s.col = s.t.LineLength(s.line)
	default:
		return false
	}
	return true
}

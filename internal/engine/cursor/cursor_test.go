package cursor

import (
	"testing"

	"github.com/dshills/helios/internal/engine/buffer"
)

type motion func(Text, Cursor) Cursor

func TestCursorCompare(t *testing.T) {
	tests := []struct {
		a, b Cursor
		want int
	}{
		{New(0, 0), New(0, 0), 0},
		{New(0, 1), New(0, 2), -1},
		{New(1, 0), New(0, 9), 1},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	buf := buffer.NewBufferFromString("abc\nde")
	tests := []struct {
		in, want Cursor
	}{
		{New(0, 2), New(0, 2)},
		{New(0, 9), New(0, 3)},
		{New(5, 5), New(1, 2)},
		{New(-1, -1), New(0, 0)},
	}
	for _, tt := range tests {
		if got := Clamp(buf, tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBasicMotions(t *testing.T) {
	buf := buffer.NewBufferFromString("hello\nhi\n\nworld")

	tests := []struct {
		name string
		move motion
		from Cursor
		want Cursor
	}{
		{"left", MoveLeft, New(0, 3), New(0, 2)},
		{"left at start", MoveLeft, New(1, 0), New(1, 0)},
		{"right", MoveRight, New(0, 3), New(0, 4)},
		{"right to line end", MoveRight, New(0, 4), New(0, 5)},
		{"right at line end", MoveRight, New(0, 5), New(0, 5)},
		{"up clamps column", MoveUp, New(1, 2), New(0, 2)},
		{"up at top", MoveUp, New(0, 4), New(0, 4)},
		{"down clamps column", MoveDown, New(0, 4), New(1, 2)},
		{"down onto empty line", MoveDown, New(1, 1), New(2, 0)},
		{"down at bottom", MoveDown, New(3, 1), New(3, 1)},
		{"line end", MoveToLineEnd, New(0, 0), New(0, 4)},
		{"line end on empty line", MoveToLineEnd, New(2, 0), New(2, 0)},
		{"start of file", MoveToStartOfFile, New(3, 4), New(0, 0)},
		{"end of file keeps column 0", MoveToEndOfFile, New(0, 4), New(3, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move(buf, tt.from); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoveToLineStartNonWhitespace(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"indented", "   abc", 3},
		{"tab indented", "\tx", 1},
		{"no indent", "abc", 0},
		{"empty line", "", 0},
		{"only whitespace", "   ", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := buffer.NewBufferFromString(tt.text)
			got := MoveToLineStartNonWhitespace(buf, New(0, 0))
			if got.Column != tt.want {
				t.Errorf("column = %d, want %d", got.Column, tt.want)
			}
		})
	}
}

func TestMoveWordForwardVisitsWordStarts(t *testing.T) {
	buf := buffer.NewBufferFromString("ab cd\nef")

	c := New(0, 0)
	for _, want := range []Cursor{New(0, 3), New(1, 0)} {
		c = MoveWordForward(buf, c)
		if c != want {
			t.Fatalf("got %v, want %v", c, want)
		}
	}
}

func TestMoveWordForward(t *testing.T) {
	tests := []struct {
		name string
		text string
		from Cursor
		want Cursor
	}{
		{"from middle of word", "hello world", New(0, 2), New(0, 6)},
		{"from whitespace", "a   b", New(0, 1), New(0, 4)},
		{"multibyte words", "héllo wörld", New(0, 0), New(0, 6)},
		{"skips empty lines", "ab\n\n\ncd", New(0, 0), New(3, 0)},
		{"skips leading indent", "ab\n   cd", New(0, 1), New(1, 3)},
		{"last word stops on last char", "ab cd", New(0, 3), New(0, 4)},
		{"trailing whitespace", "ab   ", New(0, 0), New(0, 4)},
		{"from line end", "ab\ncd", New(0, 2), New(1, 0)},
		{"empty buffer", "", New(0, 0), New(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := buffer.NewBufferFromString(tt.text)
			if got := MoveWordForward(buf, tt.from); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoveWordEndForward(t *testing.T) {
	tests := []struct {
		name string
		text string
		from Cursor
		want Cursor
	}{
		{"to end of word", "hello world", New(0, 0), New(0, 4)},
		{"from word end to next word end", "ab cd", New(0, 1), New(0, 4)},
		{"across newline", "ab\ncd", New(0, 1), New(1, 1)},
		{"stops before whitespace run", "a  b", New(0, 0), New(0, 1)},
		{"end of document", "abc", New(0, 2), New(0, 2)},
		{"empty buffer", "", New(0, 0), New(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := buffer.NewBufferFromString(tt.text)
			if got := MoveWordEndForward(buf, tt.from); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoveWordBackward(t *testing.T) {
	tests := []struct {
		name string
		text string
		from Cursor
		want Cursor
	}{
		{"to previous word", "ab cd", New(0, 3), New(0, 0)},
		{"to start of current word", "ab cd", New(0, 4), New(0, 3)},
		{"across line boundary", "ab cd\nef", New(1, 0), New(0, 3)},
		{"across empty lines", "ab\n\n  cd", New(2, 2), New(0, 0)},
		{"at start of file", "ab", New(0, 0), New(0, 0)},
		{"multibyte", "héllo wörld", New(0, 9), New(0, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := buffer.NewBufferFromString(tt.text)
			if got := MoveWordBackward(buf, tt.from); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeleteToNextWhitespace(t *testing.T) {
	tests := []struct {
		name string
		text string
		from Cursor
		want string
	}{
		{"word", "hello world", New(0, 0), " world"},
		{"middle of word", "hello world", New(0, 2), "he world"},
		{"whitespace run", "ab   cd", New(0, 2), "abcd"},
		{"bounded to line", "abc\ndef", New(0, 1), "a\ndef"},
		{"at line end", "abc\ndef", New(0, 3), "abc\ndef"},
		{"empty line", "\nabc", New(0, 0), "\nabc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := buffer.NewBufferFromString(tt.text)
			got := DeleteToNextWhitespace(buf, tt.from)
			if buf.Text() != tt.want {
				t.Errorf("text = %q, want %q", buf.Text(), tt.want)
			}
			if got != Clamp(buf, tt.from) {
				t.Errorf("cursor moved to %v", got)
			}
		})
	}
}

func TestMotionsKeepCursorInBounds(t *testing.T) {
	texts := []string{"", "a", "\n", "ab cd\nef", "  x  \n\n\ty\n", "héllo\nwörld 世界\n"}
	motions := map[string]motion{
		"h": MoveLeft, "l": MoveRight, "k": MoveUp, "j": MoveDown,
		"w": MoveWordForward, "e": MoveWordEndForward, "b": MoveWordBackward,
		"$": MoveToLineEnd, "^": MoveToLineStartNonWhitespace,
		"gg": MoveToStartOfFile, "G": MoveToEndOfFile,
	}

	for _, text := range texts {
		buf := buffer.NewBufferFromString(text)
		for name, move := range motions {
			for line := -1; line <= buf.LineCount(); line++ {
				for col := -1; col <= buf.LineLength(0)+2; col++ {
					got := move(buf, New(line, col))
					if got.Line < 0 || got.Line >= buf.LineCount() ||
						got.Column < 0 || got.Column > buf.LineLength(got.Line) {
						t.Errorf("%s on %q from (%d,%d) left cursor at %v", name, text, line, col, got)
					}
				}
			}
		}
	}
}

func TestSelection(t *testing.T) {
	s := NewSelection(New(2, 3), New(1, 0))
	if !s.IsBackward() {
		t.Error("selection should be backward")
	}
	if s.Start() != New(1, 0) || s.End() != New(2, 3) {
		t.Errorf("Start/End = %v/%v", s.Start(), s.End())
	}
	if !s.Contains(1, 5) || !s.Contains(2, 3) || s.Contains(2, 4) || s.Contains(0, 9) {
		t.Error("Contains reported wrong membership")
	}
	first, last := s.Extend(New(4, 0)).LineSpan()
	if first != 2 || last != 4 {
		t.Errorf("LineSpan() = %d, %d; want 2, 4", first, last)
	}
}

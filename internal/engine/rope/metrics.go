package rope

import (
	"strings"
	"unicode/utf8"
)

// metrics is the size of a span of text. Every chunk and node carries the
// metrics of the text below it, which is what makes offset lookups
// logarithmic.
type metrics struct {
	bytes int
	chars int
	lines int // newline count
	ascii bool
}

// measure computes the metrics of s.
func measure(s string) metrics {
	m := metrics{bytes: len(s), ascii: true}
	for i := 0; i < len(s); i++ {
		switch b := s[i]; {
		case b == '\n':
			m.lines++
		case b >= utf8.RuneSelf:
			m.ascii = false
		}
	}
	if m.ascii {
		m.chars = len(s)
	} else {
		m.chars = utf8.RuneCountInString(s)
	}
	return m
}

// plus returns the metrics of m's span followed by o's.
func (m metrics) plus(o metrics) metrics {
	if m.bytes == 0 {
		return o
	}
	if o.bytes == 0 {
		return m
	}
	return metrics{
		bytes: m.bytes + o.bytes,
		chars: m.chars + o.chars,
		lines: m.lines + o.lines,
		ascii: m.ascii && o.ascii,
	}
}

// runeOffset returns the byte index of the n-th rune of s, or len(s) when
// s is shorter.
func runeOffset(s string, n int, ascii bool) int {
	if n <= 0 {
		return 0
	}
	if ascii {
		return min(n, len(s))
	}
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}

// afterNewline returns the byte index just past the n-th newline of s,
// or -1 when s has fewer.
func afterNewline(s string, n int) int {
	off := 0
	for ; n > 0; n-- {
		i := strings.IndexByte(s[off:], '\n')
		if i < 0 {
			return -1
		}
		off += i + 1
	}
	return off
}

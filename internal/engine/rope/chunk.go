package rope

import (
	"strings"
	"unicode/utf8"
)

// Chunk bounds, in bytes. Text is cut into chunks of at most maxChunk
// bytes; adjacent chunks are coalesced while they fit.
const (
	minChunk = 128
	maxChunk = 256
)

// chunk is an immutable run of text held by a leaf.
type chunk struct {
	text string
	m    metrics
}

func newChunk(s string) chunk {
	return chunk{text: s, m: measure(s)}
}

// cut splits c at byte offset at, which must fall on a rune boundary.
func (c chunk) cut(at int) (chunk, chunk) {
	return newChunk(c.text[:at]), newChunk(c.text[at:])
}

// splitText cuts s into chunks of at most maxChunk bytes.
func splitText(s string) []chunk {
	var out []chunk
	for len(s) > maxChunk {
		at := cutPoint(s, (minChunk+maxChunk)/2)
		out = append(out, newChunk(s[:at]))
		s = s[at:]
	}
	if s != "" {
		out = append(out, newChunk(s))
	}
	return out
}

// cutPoint picks where to end a chunk near target. A newline within a
// quarter chunk wins, so chunks tend to hold whole lines; otherwise the
// cut moves back to the nearest rune start. len(s) must exceed maxChunk.
func cutPoint(s string, target int) int {
	const slack = minChunk / 4
	if i := strings.IndexByte(s[target:target+slack], '\n'); i >= 0 {
		return target + i + 1
	}
	if i := strings.LastIndexByte(s[target-slack:target], '\n'); i >= 0 {
		return target - slack + i + 1
	}
	for at := target; at > target-utf8.UTFMax; at-- {
		if utf8.RuneStart(s[at]) {
			return at
		}
	}
	return target
}

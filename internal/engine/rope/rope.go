package rope

import (
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

// maxHeight bounds tree depth before a full rebuild. A balanced tree of
// this height holds far more chunks than any editable document.
const maxHeight = 24

// Rope is immutable text. Edits return a new Rope sharing unchanged
// subtrees with the old one, so a Rope value is a free snapshot that any
// number of goroutines may read.
type Rope struct {
	root *node
}

// New creates an empty rope.
func New() Rope {
	return Rope{root: empty()}
}

// FromString creates a rope holding s.
func FromString(s string) Rope {
	chunks := splitText(s)
	leaves := make([]*node, 0, (len(chunks)+maxChunks-1)/maxChunks)
	for i := 0; i < len(chunks); i += maxChunks {
		j := min(i+maxChunks, len(chunks))
		leaves = append(leaves, leaf(chunks[i:j:j]))
	}
	return Rope{root: build(leaves)}
}

// Chunks returns the rope's text as a sequence of pieces in order.
// Concatenated they equal String().
func (r Rope) Chunks() iter.Seq[string] {
	return func(yield func(string) bool) {
		if r.root != nil {
			r.root.walk(yield)
		}
	}
}

// WriteTo streams the rope's text to w chunk by chunk without
// materializing the whole document. Implements io.WriterTo.
func (r Rope) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for text := range r.Chunks() {
		n, err := io.WriteString(w, text)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Len returns the length in bytes.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.m.bytes
}

// CharCount returns the length in characters.
func (r Rope) CharCount() int {
	if r.root == nil {
		return 0
	}
	return r.root.m.chars
}

// LineCount returns the number of lines (newlines + 1).
func (r Rope) LineCount() int {
	if r.root == nil {
		return 1
	}
	return r.root.m.lines + 1
}

// IsEmpty reports whether the rope holds no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// String returns the full text. Use sparingly for large ropes.
func (r Rope) String() string {
	var sb strings.Builder
	sb.Grow(r.Len())
	for text := range r.Chunks() {
		sb.WriteString(text)
	}
	return sb.String()
}

// Slice returns the text in the character range [start, end).
func (r Rope) Slice(start, end int) string {
	if r.root == nil || start >= end || start < 0 {
		return ""
	}
	from, to := r.byteOffset(start), r.byteOffset(end)
	var sb strings.Builder
	sb.Grow(to - from)
	r.root.appendRange(&sb, from, to)
	return sb.String()
}

// byteOffset converts a character offset to a byte offset, clamped to the
// rope.
func (r Rope) byteOffset(c int) int {
	switch {
	case r.root == nil || c <= 0:
		return 0
	case c >= r.CharCount():
		return r.Len()
	case r.root.m.ascii:
		return c
	}
	k, before, ok := r.root.findChar(c)
	if !ok {
		return r.Len()
	}
	return before.bytes + runeOffset(k.text, c-before.chars, k.m.ascii)
}

// CharAt returns the character at offset c, or false when c is out of
// range.
func (r Rope) CharAt(c int) (rune, bool) {
	if r.root == nil || c < 0 || c >= r.CharCount() {
		return 0, false
	}
	k, before, ok := r.root.findChar(c)
	if !ok {
		return 0, false
	}
	ch, _ := utf8.DecodeRuneInString(k.text[runeOffset(k.text, c-before.chars, k.m.ascii):])
	return ch, true
}

// LineToChar returns the character offset at which line starts, or
// CharCount() when line is at or past LineCount().
func (r Rope) LineToChar(line int) int {
	if r.root == nil || line <= 0 {
		return 0
	}
	if line >= r.LineCount() {
		return r.CharCount()
	}
	before, ok := r.root.findLine(line)
	if !ok {
		return r.CharCount()
	}
	return before.chars
}

// CharToLine returns the line holding character offset c. Offsets past the
// end map to the last line.
func (r Rope) CharToLine(c int) int {
	if r.root == nil || c <= 0 {
		return 0
	}
	if c >= r.CharCount() {
		return r.LineCount() - 1
	}
	k, before, ok := r.root.findChar(c)
	if !ok {
		return r.LineCount() - 1
	}
	head := k.text[:runeOffset(k.text, c-before.chars, k.m.ascii)]
	return before.lines + strings.Count(head, "\n")
}

// Line returns the text of line including its trailing newline, or "" when
// line is out of range.
func (r Rope) Line(line int) string {
	if line < 0 || line >= r.LineCount() {
		return ""
	}
	return r.Slice(r.LineToChar(line), r.LineToChar(line+1))
}

// LineLen returns the length of line in characters, including its trailing
// newline. Returns 0 if line is out of range.
func (r Rope) LineLen(line int) int {
	if line < 0 || line >= r.LineCount() {
		return 0
	}
	return r.LineToChar(line+1) - r.LineToChar(line)
}

// InsertChar inserts ch at character offset c. Offsets past the end leave
// the rope unchanged.
func (r Rope) InsertChar(c int, ch rune) Rope {
	return r.InsertString(c, string(ch))
}

// InsertString inserts text at character offset c. Offsets past the end
// leave the rope unchanged.
func (r Rope) InsertString(c int, text string) Rope {
	if c < 0 || c > r.CharCount() || text == "" {
		return r
	}
	left, right := r.splitAt(r.byteOffset(c))
	return Rope{root: join(join(left, FromString(text).root), right)}.rebalanced()
}

// Remove deletes the characters in [start, end). Ranges reaching past the
// end leave the rope unchanged.
func (r Rope) Remove(start, end int) Rope {
	if start < 0 || start >= end || end > r.CharCount() {
		return r
	}
	from, to := r.byteOffset(start), r.byteOffset(end)
	left, rest := r.splitAt(from)
	_, right := rest.split(to - from)
	return Rope{root: join(left, right)}.rebalanced()
}

// splitAt divides the tree at byte offset at.
func (r Rope) splitAt(at int) (*node, *node) {
	if r.root == nil {
		return empty(), empty()
	}
	return r.root.split(at)
}

// Concat returns a rope holding r's text followed by other's.
func (r Rope) Concat(other Rope) Rope {
	switch {
	case other.root == nil:
		return r
	case r.root == nil:
		return other
	}
	return Rope{root: join(r.root, other.root)}.rebalanced()
}

// Height returns the height of the tree.
func (r Rope) Height() int {
	if r.root == nil {
		return 0
	}
	return r.root.height + 1
}

// rebalanced rebuilds the tree once repeated splits and joins have left it
// deeper than maxHeight.
func (r Rope) rebalanced() Rope {
	if r.root == nil || r.root.height <= maxHeight {
		return r
	}
	return FromString(r.String())
}

// Equals reports whether two ropes hold the same text.
func (r Rope) Equals(other Rope) bool {
	if r.Len() != other.Len() {
		return false
	}
	if r.root == other.root {
		return true
	}
	return r.String() == other.String()
}

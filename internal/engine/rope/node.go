package rope

import "strings"

// Tree fan-out.
const (
	maxKids   = 8 // children per branch
	maxChunks = 4 // chunks per leaf
)

// node is an immutable tree node. Leaves (height 0) hold chunks and
// branches hold children; m covers the whole subtree. Nodes are never
// modified once built, so edited ropes share every untouched subtree.
type node struct {
	height int
	m      metrics
	kids   []*node
	chunks []chunk
}

func empty() *node {
	return &node{}
}

func leaf(chunks []chunk) *node {
	n := &node{chunks: chunks}
	for _, c := range chunks {
		n.m = n.m.plus(c.m)
	}
	return n
}

func branch(kids []*node) *node {
	n := &node{kids: kids}
	for _, k := range kids {
		n.height = max(n.height, k.height+1)
		n.m = n.m.plus(k.m)
	}
	return n
}

func (n *node) isLeaf() bool {
	return n.height == 0
}

// build stacks nodes into a tree of branches with at most maxKids
// children each.
func build(nodes []*node) *node {
	if len(nodes) == 0 {
		return empty()
	}
	for len(nodes) > 1 {
		parents := make([]*node, 0, (len(nodes)+maxKids-1)/maxKids)
		for i := 0; i < len(nodes); i += maxKids {
			j := min(i+maxKids, len(nodes))
			parents = append(parents, branch(nodes[i:j:j]))
		}
		nodes = parents
	}
	return nodes[0]
}

// split divides the subtree at byte offset at, which must fall on a rune
// boundary.
func (n *node) split(at int) (*node, *node) {
	if at <= 0 {
		return empty(), n
	}
	if at >= n.m.bytes {
		return n, empty()
	}

	if n.isLeaf() {
		var left, right []chunk
		off := 0
		for _, c := range n.chunks {
			end := off + c.m.bytes
			switch {
			case end <= at:
				left = append(left, c)
			case off >= at:
				right = append(right, c)
			default:
				l, r := c.cut(at - off)
				left = append(left, l)
				right = append(right, r)
			}
			off = end
		}
		return leaf(left), leaf(right)
	}

	var left, right []*node
	off := 0
	for _, k := range n.kids {
		end := off + k.m.bytes
		switch {
		case end <= at:
			left = append(left, k)
		case off >= at:
			right = append(right, k)
		default:
			l, r := k.split(at - off)
			left = append(left, l)
			right = append(right, r)
		}
		off = end
	}
	return build(left), build(right)
}

// join returns a subtree holding l's text followed by r's.
func join(l, r *node) *node {
	if l.m.bytes == 0 {
		return r
	}
	if r.m.bytes == 0 {
		return l
	}
	if l.isLeaf() && r.isLeaf() {
		return joinLeaves(l, r)
	}

	for l.height < r.height {
		l = branch([]*node{l})
	}
	for r.height < l.height {
		r = branch([]*node{r})
	}
	kids := make([]*node, 0, len(l.kids)+len(r.kids))
	kids = append(kids, l.kids...)
	kids = append(kids, r.kids...)
	return build(kids)
}

// joinLeaves merges two leaves, coalescing small neighbouring chunks so
// runs of single-character inserts do not fragment the text.
func joinLeaves(l, r *node) *node {
	chunks := make([]chunk, 0, len(l.chunks)+len(r.chunks))
	chunks = append(chunks, l.chunks...)
	for _, c := range r.chunks {
		if last := len(chunks) - 1; last >= 0 && chunks[last].m.bytes+c.m.bytes <= maxChunk {
			chunks[last] = newChunk(chunks[last].text + c.text)
			continue
		}
		chunks = append(chunks, c)
	}
	if len(chunks) <= maxChunks {
		return leaf(chunks)
	}
	return branch([]*node{l, r})
}

// walk calls fn with the text of every chunk in order, stopping when fn
// returns false. It reports whether the walk ran to the end.
func (n *node) walk(fn func(string) bool) bool {
	if n.isLeaf() {
		for _, c := range n.chunks {
			if !fn(c.text) {
				return false
			}
		}
		return true
	}
	for _, k := range n.kids {
		if !k.walk(fn) {
			return false
		}
	}
	return true
}

// appendRange writes the bytes [from, to) of the subtree to sb. The
// bounds may reach outside the subtree.
func (n *node) appendRange(sb *strings.Builder, from, to int) {
	off := 0
	if n.isLeaf() {
		for _, c := range n.chunks {
			end := off + c.m.bytes
			if end > from && off < to {
				sb.WriteString(c.text[max(from-off, 0):min(to-off, c.m.bytes)])
			}
			off = end
			if off >= to {
				return
			}
		}
		return
	}
	for _, k := range n.kids {
		end := off + k.m.bytes
		if end > from && off < to {
			k.appendRange(sb, from-off, to-off)
		}
		off = end
		if off >= to {
			return
		}
	}
}

// findChar descends to the chunk holding character c. It also returns the
// metrics of the text before that chunk; ok is false when c is past the
// end of the subtree.
func (n *node) findChar(c int) (chunk, metrics, bool) {
	var before metrics
	for !n.isLeaf() {
		i := 0
		for i < len(n.kids) && before.chars+n.kids[i].m.chars <= c {
			before = before.plus(n.kids[i].m)
			i++
		}
		if i == len(n.kids) {
			return chunk{}, before, false
		}
		n = n.kids[i]
	}
	for _, k := range n.chunks {
		if before.chars+k.m.chars > c {
			return k, before, true
		}
		before = before.plus(k.m)
	}
	return chunk{}, before, false
}

// findLine returns the metrics of the text before the start of line, that
// is up to and including its preceding newline. ok is false when the
// subtree holds fewer than line newlines.
func (n *node) findLine(line int) (metrics, bool) {
	var before metrics
	if line <= 0 {
		return before, true
	}
	for !n.isLeaf() {
		i := 0
		for i < len(n.kids) && before.lines+n.kids[i].m.lines < line {
			before = before.plus(n.kids[i].m)
			i++
		}
		if i == len(n.kids) {
			return before, false
		}
		n = n.kids[i]
	}
	for _, k := range n.chunks {
		if before.lines+k.m.lines < line {
			before = before.plus(k.m)
			continue
		}
		at := afterNewline(k.text, line-before.lines)
		return before.plus(measure(k.text[:at])), true
	}
	return before, false
}

package doctext

import "strings"

// Tree shape constants. build fills each leaf with whole lines up to
// maxLeaf runes; a single line of maxLeaf runes or more gets a leaf of its
// own that exceeds that bound. A branch holds at most maxBranch children.
// Leaves cut by an edit are not merged with their neighbours, so a leaf can
// be far shorter than baseLeaf/2; baseLeaf itself is not read by the
// builder.
const (
	maxLeaf   = 512
	baseLeaf  = 256
	maxBranch = 32
)

// node is either a leaf, holding the document's content as a slice of
// lines with no embedded separators, or a branch, holding child subtrees
// plus their precomputed summaries for O(log n) descent.
//
// Nodes are never mutated after construction: every operation that would
// change a node's content builds a replacement and leaves the original,
// and any subtree it shares with other trees, untouched.
type node struct {
	sum summary

	// Leaf fields. lines[i] never contains "\n"; joining lines with "\n"
	// reproduces the exact substring this leaf covers. A leaf always has
	// at least one element (possibly "").
	lines []string

	// Branch fields.
	children       []*node
	childSummaries []summary
}

func (n *node) isLeaf() bool { return n.children == nil }

func newLeaf(lines []string) *node {
	n := &node{lines: lines}
	n.sum = summary{length: linesLength(lines), lines: len(lines)}
	return n
}

func newBranch(children []*node) *node {
	if len(children) == 0 {
		return newLeaf([]string{""})
	}
	if len(children) == 1 {
		return children[0]
	}
	// Copy defensively: callers (notably the builder) sometimes pass a
	// slice backed by pooled, reusable storage.
	owned := make([]*node, len(children))
	copy(owned, children)
	summaries := make([]summary, len(children))
	for i, c := range children {
		summaries[i] = c.sum
	}
	return &node{
		children:       owned,
		childSummaries: summaries,
		sum:            sumSummaries(summaries),
	}
}

// linesLength returns the rune length of the string obtained by joining
// lines with "\n".
func linesLength(lines []string) int {
	total := 0
	for _, l := range lines {
		total += len([]rune(l))
	}
	if len(lines) > 1 {
		total += len(lines) - 1
	}
	return total
}

func (n *node) length() int { return n.sum.length }
func (n *node) lineCount() int { return n.sum.lines }

// depth reports the number of branch levels between n and its deepest
// leaf: 0 for a leaf itself, 1 for a branch whose children are all
// leaves, and so on. Unlike height (builder.go), which only walks the
// leftmost child as a balanced-tree shortcut during concatenation,
// depth checks every child and is what P7/P8's depth bounds mean.
func (n *node) depth() int {
	if n.isLeaf() {
		return 0
	}
	d := 0
	for _, c := range n.children {
		if cd := c.depth(); cd > d {
			d = cd
		}
	}
	return d + 1
}

// String renders the subtree's full content.
func (n *node) String() string {
	var sb strings.Builder
	sb.Grow(n.length())
	n.appendTo(&sb)
	return sb.String()
}

func (n *node) appendTo(sb *strings.Builder) {
	if n.isLeaf() {
		for i, l := range n.lines {
			if i > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(l)
		}
		return
	}
	for _, c := range n.children {
		c.appendTo(sb)
	}
}

// flatten appends this subtree's lines onto dst, joining the boundary
// between dst's last element and this subtree's first line per the
// shared-line rule.
func (n *node) flatten(dst []string) []string {
	if n.isLeaf() {
		return joinBoundary(dst, n.lines)
	}
	for _, c := range n.children {
		dst = c.flatten(dst)
	}
	return dst
}

// joinBoundary appends src onto dst such that the last element of dst and
// the first element of src merge into one logical line, unless dst is
// empty.
func joinBoundary(dst, src []string) []string {
	if len(dst) == 0 {
		return append(dst, src...)
	}
	if len(src) == 0 {
		return dst
	}
	dst[len(dst)-1] += src[0]
	return append(dst, src[1:]...)
}

// toLines flattens the subtree into a single slice of lines.
func (n *node) toLines() []string {
	return n.flatten(make([]string, 0, n.lineCount()))
}

// findChildByOffset returns the index of the child containing offset, and
// the offset local to that child.
func (n *node) findChildByOffset(offset int) (int, int) {
	pos := 0
	for i, s := range n.childSummaries {
		if pos+s.length >= offset || i == len(n.childSummaries)-1 {
			return i, offset - pos
		}
		pos += s.length
	}
	return len(n.childSummaries) - 1, offset - pos
}

// findChildByLine returns the index of the child containing 1-based line
// number line, and the line number local to that child (1-based).
func (n *node) findChildByLine(line int) (int, int) {
	base := 1
	for i, s := range n.childSummaries {
		top := base + s.lines - 1
		if line <= top || i == len(n.childSummaries)-1 {
			return i, line - base + 1
		}
		base = top
	}
	return len(n.childSummaries) - 1, line - base + 1
}

// sliceLines returns the lines covering the half-open rune range
// [from, to) of this subtree's content, as a slice with no embedded
// separators, following the shared-line rule at every boundary crossed.
func (n *node) sliceLines(from, to int) []string {
	if from >= to {
		return []string{""}
	}
	return n.appendRange(make([]string, 0, 4), from, to)
}

// appendRange appends the lines covering [from, to) of this subtree onto
// dst, joining boundaries per joinBoundary.
func (n *node) appendRange(dst []string, from, to int) []string {
	if from >= to {
		return dst
	}
	if n.isLeaf() {
		return joinBoundary(dst, sliceJoinedLines(n.lines, from, to))
	}
	pos := 0
	for i, c := range n.children {
		clen := n.childSummaries[i].length
		cStart, cEnd := pos, pos+clen
		pos = cEnd
		if cEnd <= from {
			continue
		}
		if cStart >= to {
			break
		}
		lo := from - cStart
		if lo < 0 {
			lo = 0
		}
		hi := to - cStart
		if hi > clen {
			hi = clen
		}
		dst = c.appendRange(dst, lo, hi)
	}
	return dst
}

// sliceJoinedLines slices the rune range [from, to) out of lines as if
// they were joined with "\n", returning the result as an unjoined line
// slice. Leaves are small (at most maxLeaf runes), so the simplest
// correct approach -- join, slice by rune, split -- is cheap enough and
// avoids subtle off-by-one errors at line boundaries.
func sliceJoinedLines(lines []string, from, to int) []string {
	rs := []rune(strings.Join(lines, "\n"))
	if from < 0 {
		from = 0
	}
	if to > len(rs) {
		to = len(rs)
	}
	if from >= to {
		return []string{""}
	}
	return strings.Split(string(rs[from:to]), "\n")
}

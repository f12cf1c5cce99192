package doctext

import "strings"

// Of builds a Text from a list of lines, none of which may contain a
// line separator. The returned tree is balanced according to the same
// shape constants a Replace rebuild uses, so repeated Of(doc.toLines())
// round-trips produce structurally comparable trees.
func Of(lines []string) (Text, error) {
	for _, l := range lines {
		if strings.ContainsRune(l, '\n') {
			return Text{}, contractViolation(l)
		}
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return Text{root: build(lines)}, nil
}

// Empty returns the zero-length, one-line document.
func Empty() Text {
	return Text{root: newLeaf([]string{""})}
}

// build partitions lines greedily into leaves of at most maxLeaf runes (a
// single line longer than that still gets one leaf of its own) and
// assembles them into a balanced branch structure. Every leaf but the last
// ends with an extra empty line, which carries the separator before the
// next leaf's first line under the shared-line rule.
func build(lines []string) *node {
	if linesLength(lines) <= maxLeaf {
		return newLeaf(lines)
	}

	var leaves []*node
	start := 0
	length := 0
	for i, l := range lines {
		lineLen := len([]rune(l))
		addition := lineLen
		if i > start {
			addition++ // the separator joining this line to the chunk
		}
		if length > 0 && length+addition+1 > maxLeaf {
			chunk := make([]string, 0, i-start+1)
			chunk = append(append(chunk, lines[start:i]...), "")
			leaves = append(leaves, newLeaf(chunk))
			start = i
			length = 0
			addition = lineLen
		}
		length += addition
	}
	leaves = append(leaves, newLeaf(lines[start:]))

	return buildFromChildren(leaves)
}

// buildFromChildren groups an arbitrary list of same-level nodes into a
// balanced tree with at most maxBranch children per branch.
func buildFromChildren(children []*node) *node {
	if len(children) == 0 {
		return newLeaf([]string{""})
	}
	if len(children) == 1 {
		return children[0]
	}
	if len(children) <= maxBranch {
		return newBranch(children)
	}

	parents := getNodeSlice()
	defer putNodeSlice(parents)
	for i := 0; i < len(children); i += maxBranch {
		end := i + maxBranch
		if end > len(children) {
			end = len(children)
		}
		*parents = append(*parents, newBranch(children[i:end]))
	}
	return buildFromChildren(*parents)
}

// concatNodes joins two subtrees into one, respecting the shared-line
// rule at the seam and rebalancing locally so the result stays within
// shape bounds.
func concatNodes(left, right *node) *node {
	if left == nil || left.sum.isZero() {
		if right == nil {
			return newLeaf([]string{""})
		}
		return right
	}
	if right == nil || right.sum.isZero() {
		return left
	}

	if left.isLeaf() && right.isLeaf() {
		merged := joinBoundary(append([]string{}, left.lines...), right.lines)
		if linesLength(merged) <= maxLeaf {
			return newLeaf(merged)
		}
		return build(merged)
	}

	leftHeight := height(left)
	rightHeight := height(right)

	switch {
	case leftHeight == rightHeight:
		return mergeSameHeight(left, right)
	case leftHeight > rightHeight:
		// left is taller, so it cannot be a leaf (leaves have height 0).
		lastIdx := len(left.children) - 1
		merged := concatNodes(left.children[lastIdx], right)
		children := append(append([]*node{}, left.children[:lastIdx]...), splitIfBranch(merged)...)
		return buildFromChildren(children)
	default:
		// right is taller, so it cannot be a leaf.
		merged := concatNodes(left, right.children[0])
		children := append(splitIfBranch(merged), right.children[1:]...)
		return buildFromChildren(children)
	}
}

// splitIfBranch returns n's children if n is an over-wide branch sitting
// where a single child was expected, otherwise []*node{n}. This keeps
// concatNodes' recursive rebuild from ever exceeding maxBranch.
func splitIfBranch(n *node) []*node {
	if !n.isLeaf() && len(n.children) > maxBranch {
		return n.children
	}
	return []*node{n}
}

// mergeSameHeight merges two same-height branch nodes by concatenating
// their child lists. Equal-height leaves are handled by concatNodes
// before this is reached.
func mergeSameHeight(left, right *node) *node {
	children := append(append([]*node{}, left.children...), right.children...)
	return buildFromChildren(children)
}

// height reports the number of levels on a subtree's leftmost path, 0 for
// leaves. Children of one branch can differ in height (split and
// buildFromChildren do not equalise them), so this can be less than depth().
func height(n *node) int {
	h := 0
	for !n.isLeaf() {
		h++
		n = n.children[0]
	}
	return h
}

// split partitions a subtree at rune offset into [0, offset) and
// [offset, length).
func split(n *node, offset int) (*node, *node) {
	if offset <= 0 {
		return newLeaf([]string{""}), n
	}
	if offset >= n.length() {
		return n, newLeaf([]string{""})
	}
	if n.isLeaf() {
		full := []rune(strings.Join(n.lines, "\n"))
		left := strings.Split(string(full[:offset]), "\n")
		right := strings.Split(string(full[offset:]), "\n")
		return newLeaf(left), newLeaf(right)
	}

	pos := 0
	var leftChildren, rightChildren []*node
	for i, c := range n.children {
		clen := n.childSummaries[i].length
		switch {
		case pos+clen <= offset:
			leftChildren = append(leftChildren, c)
		case pos >= offset:
			rightChildren = append(rightChildren, c)
		default:
			l, r := split(c, offset-pos)
			if !l.sum.isZero() {
				leftChildren = append(leftChildren, l)
			}
			if !r.sum.isZero() {
				rightChildren = append(rightChildren, r)
			}
		}
		pos += clen
	}
	return buildFromChildren(leftChildren), buildFromChildren(rightChildren)
}

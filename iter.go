package doctext

import "strings"

// Result is the value produced by one call to (*Iterator).Next.
type Result struct {
	// Value is either a fragment of line text, or "\n" when LineBreak is
	// true. For a forward iterator, concatenating every non-final Value in
	// order reproduces the iterated range exactly; a backward iterator
	// yields the same tokens in reverse order.
	Value string

	// LineBreak is true when this token represents a line separator
	// rather than text content.
	LineBreak bool

	// Done is true once the iterator is exhausted; Value and LineBreak
	// are zero in that case.
	Done bool
}

// segment is one leaf's worth of line fragments, ready for token-at-a-time
// emission. Interior segments reference a leaf's lines directly; the
// segments at either end of a clipped range hold a synthetic slice built
// by sliceLines so the clip bound is respected without mutating shared
// tree nodes.
type segment struct {
	lines []string
}

// Iterator walks a Text as an alternating stream of text tokens and line
// breaks, without materializing the whole document. An Iterator owns
// mutable state and must not be used from more than one goroutine.
type Iterator struct {
	owner Text
	dir   int // +1 forward, -1 backward
	from  int // inclusive lower bound, absolute rune offset
	to    int // exclusive upper bound, absolute rune offset

	segs []segment
	pos  int // index of the next segment to start from, in segs order

	// Position within the current in-progress segment.
	line         int  // index into segs[pos].lines of the next text token
	pendingBreak bool // true once a text token has been emitted and a
	// break token is due before the next text token in the same segment

	next int // absolute rune offset of the next character to be produced
	done bool

	// Line mode, used by IterLines: lineToks holds one already-assembled
	// logical line per element (never a char-level fragment), and Next
	// simply walks it, emitting no LineBreak tokens. skip is interpreted
	// as a line count in this mode.
	lineMode bool
	lineToks []string
	lineIdx  int
}

// Iter returns an iterator over the whole document. dir must be 1
// (forward) or -1 (backward).
func (t Text) Iter(dir int) *Iterator {
	return t.IterRange(0, t.Length(), dir)
}

// IterRange returns an iterator over the half-open rune range
// [from, to), traversed forward or backward according to dir.
func (t Text) IterRange(from, to int, dir int) *Iterator {
	if dir != 1 && dir != -1 {
		dir = 1
	}
	if from < 0 {
		from = 0
	}
	if to > t.Length() {
		to = t.Length()
	}
	if from > to {
		from, to = to, from
	}

	it := &Iterator{owner: t, dir: dir, from: from, to: to}
	it.seekTo(startOffset(from, to, dir))
	return it
}

// IterLines returns an iterator over whole lines in the half-open range
// [startLine, endLine), 1-based, walking forward. It yields exactly one
// Value per line, with LineBreak always false; a blank line yields "".
// A zero startLine means "from the first line"; a zero endLine means
// "through the last line". An inverted or empty range (endLine <=
// startLine) yields an iterator that is immediately done.
func (t Text) IterLines(startLine, endLine int) (*Iterator, error) {
	if startLine == 0 {
		startLine = 1
	}
	if endLine == 0 {
		endLine = t.Lines() + 1
	}
	if endLine <= startLine {
		return &Iterator{owner: t, dir: 1, done: true}, nil
	}
	if startLine < 1 || startLine > t.Lines() {
		return nil, invalidLine(startLine, t.Lines())
	}
	last := endLine - 1
	if last < 1 || last > t.Lines() {
		return nil, invalidLine(last, t.Lines())
	}

	first, err := t.Line(startLine)
	if err != nil {
		return nil, err
	}
	lastLine, err := t.Line(last)
	if err != nil {
		return nil, err
	}
	text, err := t.SliceString(first.From, lastLine.To)
	if err != nil {
		return nil, err
	}

	return &Iterator{
		owner:    t,
		dir:      1,
		lineMode: true,
		lineToks: strings.Split(text, "\n"),
	}, nil
}

func startOffset(from, to, dir int) int {
	if dir == 1 {
		return from
	}
	return to
}

// seekTo reinitializes the iterator's segment stream so the next token
// produced starts at absolute offset pos. pos must lie within [from, to].
func (it *Iterator) seekTo(pos int) {
	it.next = pos
	it.pendingBreak = false
	it.line = 0
	it.pos = 0

	var lo, hi int
	if it.dir == 1 {
		lo, hi = pos, it.to
	} else {
		lo, hi = it.from, pos
	}
	if lo >= hi {
		it.segs = nil
		it.done = true
		return
	}
	it.segs = collectSegments(it.text(), lo, hi)
	it.done = len(it.segs) == 0
	if it.dir == -1 && len(it.segs) > 0 {
		it.pos = len(it.segs) - 1
		it.line = len(it.segs[it.pos].lines) - 1
	}
}

func (it *Iterator) text() Text { return it.owner }

// nextLine implements Next for an IterLines iterator: skip counts lines,
// not characters, and every token is a whole line with LineBreak false.
func (it *Iterator) nextLine(skip int) Result {
	if skip != 0 {
		target := it.lineIdx + skip
		if target < 0 {
			target = 0
		}
		if target > len(it.lineToks) {
			target = len(it.lineToks)
		}
		it.lineIdx = target
	}
	if it.done || it.lineIdx >= len(it.lineToks) {
		it.done = true
		return Result{Done: true}
	}
	v := it.lineToks[it.lineIdx]
	it.lineIdx++
	return Result{Value: v}
}

// Next returns the next token in the stream. A non-zero skip first moves
// the iterator's position by skip characters in the iteration direction
// (negative values move it back), without producing a token for the
// skipped span, before computing the token that is returned.
func (it *Iterator) Next(skip int) Result {
	if it.lineMode {
		return it.nextLine(skip)
	}

	if skip != 0 {
		target := it.next + skip*signOf(it.dir)
		if target < it.from {
			target = it.from
		}
		if target > it.to {
			target = it.to
		}
		if target != it.next {
			it.seekTo(target)
		}
	}
	if it.done {
		return Result{Done: true}
	}

	seg := it.segs[it.pos]

	if it.pendingBreak {
		it.pendingBreak = false
		it.next += signOf(it.dir)
		return Result{Value: "\n", LineBreak: true}
	}

	text := seg.lines[it.line]
	it.next += signOf(it.dir) * runeLen(text)

	if it.dir == 1 {
		if it.line < len(seg.lines)-1 {
			it.line++
			it.pendingBreak = true
		} else {
			it.advanceSegmentForward()
		}
	} else {
		if it.line > 0 {
			it.line--
			it.pendingBreak = true
		} else {
			it.advanceSegmentBackward()
		}
	}

	return Result{Value: text}
}

func (it *Iterator) advanceSegmentForward() {
	it.pos++
	it.line = 0
	if it.pos >= len(it.segs) {
		it.done = true
	}
}

func (it *Iterator) advanceSegmentBackward() {
	it.pos--
	if it.pos < 0 {
		it.done = true
		return
	}
	it.line = len(it.segs[it.pos].lines) - 1
}

func signOf(dir int) int {
	if dir < 0 {
		return -1
	}
	return 1
}

func runeLen(s string) int { return len([]rune(s)) }

// collectSegments walks the tree in order, gathering the leaves that
// overlap [lo, hi), clipping the two boundary leaves to the requested
// range with sliceLines so the produced segments never read outside it.
func collectSegments(t Text, lo, hi int) []segment {
	var segs []segment
	var walk func(n *node, base int)
	walk = func(n *node, base int) {
		if n.isLeaf() {
			leafLo, leafHi := base, base+n.length()
			if leafHi <= lo || leafLo >= hi {
				return
			}
			start, end := 0, n.length()
			if leafLo < lo {
				start = lo - leafLo
			}
			if leafHi > hi {
				end = hi - leafLo
			}
			if start == 0 && end == n.length() {
				segs = append(segs, segment{lines: n.lines})
			} else {
				segs = append(segs, segment{lines: n.sliceLines(start, end)})
			}
			return
		}
		pos := base
		for i, c := range n.children {
			clen := n.childSummaries[i].length
			if pos+clen > lo && pos < hi {
				walk(c, pos)
			}
			pos += clen
		}
	}
	walk(t.root, 0)
	return segs
}

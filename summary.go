package doctext

// summary aggregates the metrics of a subtree: its length in runes and its
// line count. Summaries combine left-to-right with add, mirroring the way
// the subtrees they describe concatenate.
//
// length is a pure sum of child lengths: no separator is ever inserted
// between children, so nothing is added at a boundary. lines undercounts
// the naive sum by one per boundary, because the last line of the left
// operand and the first line of the right operand are the same logical
// line (the shared-line rule) -- concatenating two single-line texts
// yields one line, not two.
type summary struct {
	length int
	lines  int
}

// zeroSummary is the identity element: the summary of the empty document.
var zeroSummary = summary{length: 0, lines: 1}

func (s summary) isZero() bool {
	return s.length == 0 && s.lines == 1
}

// add combines two adjacent summaries, left then right, respecting the
// shared-line rule at their boundary.
func (s summary) add(other summary) summary {
	if s.isZero() {
		return other
	}
	if other.isZero() {
		return s
	}
	return summary{
		length: s.length + other.length,
		lines:  s.lines + other.lines - 1,
	}
}

// sumSummaries folds add over a slice of summaries, starting from the
// identity element.
func sumSummaries(ss []summary) summary {
	total := zeroSummary
	for _, s := range ss {
		total = total.add(s)
	}
	return total
}

package doctext

import "sync"

// Unlike a mutable rope, a persistent Text can have any of its nodes
// still referenced by an older version after an edit, so finished nodes
// are never returned to a pool here. What gets pooled instead is the
// scratch slices the builder uses while assembling a new tree; those are
// always fully consumed into a fresh, immutable structure or discarded
// before the pooled slice is returned.

var nodeSlicePool = sync.Pool{
	New: func() any {
		s := make([]*node, 0, maxBranch*2)
		return &s
	},
}

func getNodeSlice() *[]*node {
	s := nodeSlicePool.Get().(*[]*node)
	*s = (*s)[:0]
	return s
}

func putNodeSlice(s *[]*node) {
	if s == nil {
		return
	}
	for i := range *s {
		(*s)[i] = nil
	}
	*s = (*s)[:0]
	nodeSlicePool.Put(s)
}

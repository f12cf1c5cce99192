// Package doctext provides an immutable, persistent tree representation of
// text for backing an interactive editor buffer.
//
// A Text value is a balanced tree of Leaf and Branch nodes whose in-order
// concatenation is the document's logical content. Every public operation
// (Replace, Slice, Append, ...) returns a new Text; the receiver is never
// modified. Unchanged subtrees are shared by reference between versions, so
// edits run in time proportional to the size of the edit, not the size of
// the document.
//
// # Basic usage
//
//	t, _ := doctext.Of([]string{"one", "two", "three"})
//	insert, _ := doctext.Of([]string{"foo", "bar"})
//	t, _ = t.Replace(2, 5, insert)
//	t.String() // "onfoo\nbarwo\nthree"
//
// # Lines and offsets
//
// Offsets are 0-based character positions into the document's string form,
// counting line separators. Line numbers are 1-based. Characters are
// counted by Unicode code point (rune); doctext does not interpret UTF-16
// surrogate pairs, matching the spec's allowance that callers need only be
// internally consistent about their unit of measure.
//
//	t, _ := doctext.Of([]string{"hello", "world"})
//	line, _ := t.Line(2)       // {From: 6, To: 11, Number: 2, Text: "world"}
//	line, _ = t.LineAt(7)      // same line, looked up by offset
//
// # Iteration
//
// Iterator walks the tree as an alternating stream of text chunks and line
// breaks without ever materializing the whole document:
//
//	it := t.Iter(1)
//	for {
//		r := it.Next(0)
//		if r.Done {
//			break
//		}
//		...
//	}
//
// # Concurrency
//
// Text values are immutable and safe for concurrent use by any number of
// goroutines. An *Iterator is not: it owns a mutable cursor over a
// precomputed segment list and must not be shared across goroutines
// without external synchronization.
package doctext

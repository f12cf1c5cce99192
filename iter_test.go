package doctext

import "testing"

func collect(it *Iterator) string {
	var sb []byte
	for {
		r := it.Next(0)
		if r.Done {
			break
		}
		sb = append(sb, r.Value...)
	}
	return string(sb)
}

func TestIterForwardReconstructsContent(t *testing.T) {
	input := "a\nbb\nccc\ndddd"
	txt := mustOf(t, input)
	if got := collect(txt.Iter(1)); got != input {
		t.Errorf("forward iteration = %q, want %q", got, input)
	}
}

func TestIterBackwardReconstructsContent(t *testing.T) {
	input := "a\nbb\nccc\ndddd"
	txt := mustOf(t, input)
	it := txt.Iter(-1)
	var chunks []string
	for {
		r := it.Next(0)
		if r.Done {
			break
		}
		chunks = append(chunks, r.Value)
	}
	var sb []byte
	for i := len(chunks) - 1; i >= 0; i-- {
		sb = append(sb, chunks[i]...)
	}
	if got := string(sb); got != input {
		t.Errorf("reversed backward iteration = %q, want %q", got, input)
	}
}

func TestIterRangeClips(t *testing.T) {
	txt := mustOf(t, "one\ntwo\nthree")
	got := collect2(txt.IterRange(2, 6, 1))
	if want := "e\ntw"; got != want {
		t.Errorf("IterRange(2,6) = %q, want %q", got, want)
	}
}

func collect2(it *Iterator) string { return collect(it) }

func TestIterLines(t *testing.T) {
	txt := mustOf(t, "ab\ncde\n\n\nf\n\ng")

	// No bounds: every line, in order, with no break tokens.
	all, err := txt.IterLines(0, 0)
	if err != nil {
		t.Fatalf("IterLines(0,0): %v", err)
	}
	var got []string
	for {
		r := all.Next(0)
		if r.Done {
			break
		}
		got = append(got, r.Value)
	}
	want := []string{"ab", "cde", "", "", "f", "", "g"}
	if len(got) != len(want) {
		t.Fatalf("IterLines(0,0) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IterLines(0,0)[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Half-open [2,3): just line 2.
	it23, err := txt.IterLines(2, 3)
	if err != nil {
		t.Fatalf("IterLines(2,3): %v", err)
	}
	r := it23.Next(0)
	if r.Value != "cde" {
		t.Errorf("IterLines(2,3) first value = %q, want %q", r.Value, "cde")
	}
	if r2 := it23.Next(0); !r2.Done {
		t.Errorf("IterLines(2,3) should yield exactly one value, got extra %+v", r2)
	}

	// Empty / inverted ranges yield an immediately-done iterator.
	for _, bounds := range [][2]int{{1, 1}, {2, 1}} {
		it, err := txt.IterLines(bounds[0], bounds[1])
		if err != nil {
			t.Fatalf("IterLines%v: %v", bounds, err)
		}
		if r := it.Next(0); !r.Done {
			t.Errorf("IterLines%v should be immediately done, got %+v", bounds, r)
		}
	}
}

func TestIterNextSkip(t *testing.T) {
	input := "abcdefghij"
	txt := mustOf(t, input)
	it := txt.Iter(1)

	r := it.Next(0)
	if r.Value != input {
		t.Fatalf("first token = %q, want whole single-leaf content %q", r.Value, input)
	}

	it2 := txt.Iter(1)
	r = it2.Next(5)
	if r.Done || r.Value != "fghij" {
		t.Errorf("Next(5) = %+v, want remaining content from offset 5", r)
	}

	r = it2.Next(-3)
	if r.Done || r.Value != "hij" {
		t.Errorf("Next(-3) after exhaustion = %+v, want content from offset 7", r)
	}
}

func TestIterEmptyRange(t *testing.T) {
	txt := mustOf(t, "hello")
	it := txt.IterRange(3, 3, 1)
	r := it.Next(0)
	if !r.Done {
		t.Errorf("empty range iterator should be immediately done, got %+v", r)
	}
}

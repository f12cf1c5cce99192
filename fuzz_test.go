package doctext

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzOf checks that building a Text from an arbitrary string's lines and
// rendering it back always reproduces the original string.
func FuzzOf(f *testing.F) {
	f.Add("")
	f.Add("hello")
	f.Add("hello\nworld")
	f.Add("a\nb\nc\nd\ne")
	f.Add("日本語\n世界")
	f.Add("emoji 🎉\ntest")

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			return
		}
		txt, err := Of(strings.Split(s, "\n"))
		if err != nil {
			t.Fatalf("Of: %v", err)
		}
		if got := txt.String(); got != s {
			t.Errorf("String() = %q, want %q", got, s)
		}
		if got, want := txt.Length(), len([]rune(s)); got != want {
			t.Errorf("Length() = %d, want %d", got, want)
		}
	})
}

// FuzzReplace checks that Replace always matches slicing and
// concatenating the equivalent Go strings by rune index.
func FuzzReplace(f *testing.F) {
	f.Add("hello world", 0, 5, "x")
	f.Add("hello world", 5, 11, "")
	f.Add("", 0, 0, "test")
	f.Add("日本語", 1, 2, "x")

	f.Fuzz(func(t *testing.T, initial string, from, to int, insert string) {
		if !utf8.ValidString(initial) || !utf8.ValidString(insert) {
			return
		}
		runes := []rune(initial)
		if from < 0 {
			from = 0
		}
		if from > len(runes) {
			from = len(runes)
		}
		if to < from {
			to = from
		}
		if to > len(runes) {
			to = len(runes)
		}

		txt, err := Of(strings.Split(initial, "\n"))
		if err != nil {
			t.Fatalf("Of: %v", err)
		}
		ins, err := Of(strings.Split(insert, "\n"))
		if err != nil {
			t.Fatalf("Of: %v", err)
		}

		got, err := txt.Replace(from, to, ins)
		if err != nil {
			t.Fatalf("Replace(%d,%d): %v", from, to, err)
		}

		want := string(runes[:from]) + insert + string(runes[to:])
		if got.String() != want {
			t.Errorf("Replace(%d,%d,%q) on %q = %q, want %q", from, to, insert, initial, got.String(), want)
		}
	})
}

// FuzzLineAtAgreesWithLine checks that LineAt(pos) always returns the
// line that Line reports as containing pos.
func FuzzLineAtAgreesWithLine(f *testing.F) {
	f.Add("one\ntwo\nthree", 5)
	f.Add("", 0)

	f.Fuzz(func(t *testing.T, s string, pos int) {
		if !utf8.ValidString(s) {
			return
		}
		txt, err := Of(strings.Split(s, "\n"))
		if err != nil {
			t.Fatalf("Of: %v", err)
		}
		if pos < 0 {
			pos = 0
		}
		if pos > txt.Length() {
			pos = txt.Length()
		}

		li, err := txt.LineAt(pos)
		if err != nil {
			t.Fatalf("LineAt(%d): %v", pos, err)
		}
		if pos < li.From || pos > li.To {
			t.Errorf("LineAt(%d) returned line [%d,%d], which excludes pos", pos, li.From, li.To)
		}
	})
}

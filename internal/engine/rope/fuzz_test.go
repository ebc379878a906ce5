package rope

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzInsertDelete checks edits and line queries against plain strings.
func FuzzInsertDelete(f *testing.F) {
	f.Add("hello\nworld", 3, "x", 1, 4)
	f.Add("", 0, "test\n", 0, 0)
	f.Add("日本語\n", 3, "x", 0, 3)
	f.Add(strings.Repeat("ab\n", 200), 301, "\n\n", 10, 290)

	f.Fuzz(func(t *testing.T, initial string, offset int, insert string, delStart, delEnd int) {
		if !utf8.ValidString(initial) || !utf8.ValidString(insert) {
			return
		}

		r := FromString(initial)
		offset = clampToRuneStart(initial, offset)
		r = r.Insert(ByteOffset(offset), insert)
		ref := initial[:offset] + insert + initial[offset:]

		delStart = clampToRuneStart(ref, delStart)
		delEnd = clampToRuneStart(ref, delEnd)
		if delStart <= delEnd {
			r = r.Delete(ByteOffset(delStart), ByteOffset(delEnd))
			ref = ref[:delStart] + ref[delEnd:]
		}

		if r.String() != ref {
			t.Fatalf("content mismatch: got %q, want %q", r.String(), ref)
		}
		if got, want := r.LineCount(), uint32(strings.Count(ref, "\n"))+1; got != want {
			t.Fatalf("LineCount() = %d, want %d", got, want)
		}

		c := r.LineCursor(0)
		for {
			want := strings.IndexByte(ref[c.Pos():], '\n')
			next, ok := c.Next()
			if want < 0 {
				if ok {
					t.Fatalf("Next() found boundary %d with no newline left", next)
				}
				break
			}
			if !ok {
				t.Fatalf("Next() missed newline after %d", c.Pos())
			}
		}
	})
}

func clampToRuneStart(s string, i int) int {
	if i < 0 {
		i = 0
	}
	if i > len(s) {
		i = len(s)
	}
	for i > 0 && i < len(s) && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

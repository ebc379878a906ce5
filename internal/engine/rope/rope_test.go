package rope

import (
	"math/rand"
	"strings"
	"testing"
	"testing/quick"
)

func TestNew(t *testing.T) {
	r := New()
	if r.Len() != 0 {
		t.Errorf("New rope should have length 0, got %d", r.Len())
	}
	if !r.IsEmpty() {
		t.Error("New rope should be empty")
	}
	if r.String() != "" {
		t.Errorf("New rope String() should be empty, got %q", r.String())
	}
	if r.LineCount() != 1 {
		t.Errorf("New rope should have 1 line, got %d", r.LineCount())
	}
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"single char", "a"},
		{"short string", "hello"},
		{"with newline", "hello\nworld"},
		{"multiple newlines", "a\nb\nc\nd"},
		{"unicode", "hello 世界 🌍"},
		{"long string", strings.Repeat("abcdefghij", 100)},
		{"very long string", strings.Repeat("x", 10000)},
		{"long multibyte", strings.Repeat("日本語", 500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.input)
			if r.String() != tt.input {
				t.Errorf("String() = %q, want %q", r.String(), tt.input)
			}
			if r.Len() != ByteOffset(len(tt.input)) {
				t.Errorf("Len() = %d, want %d", r.Len(), len(tt.input))
			}
			if got, want := r.LineCount(), uint32(strings.Count(tt.input, "\n"))+1; got != want {
				t.Errorf("LineCount() = %d, want %d", got, want)
			}
		})
	}
}

func TestFromReader(t *testing.T) {
	text := strings.Repeat("line of text\n", 200)
	r, err := FromReader(strings.NewReader(text))
	if err != nil {
		t.Fatalf("FromReader() error = %v", err)
	}
	if r.String() != text {
		t.Error("FromReader() content mismatch")
	}
}

func TestLeavesKeepRunesWhole(t *testing.T) {
	text := strings.Repeat("ü", 1000)
	r := FromString(text)
	var check func(n *Node)
	check = func(n *Node) {
		if n.IsLeaf() {
			if len(n.text) > 0 && !isUTF8Start(n.text[0]) {
				t.Fatalf("leaf starts with a continuation byte: %q", n.text[:1])
			}
			return
		}
		for _, c := range n.children {
			check(c)
		}
	}
	check(r.root)
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		offset   ByteOffset
		text     string
		expected string
	}{
		{"insert at start", "world", 0, "hello ", "hello world"},
		{"insert at end", "hello", 5, " world", "hello world"},
		{"insert in middle", "helloworld", 5, " ", "hello world"},
		{"insert into empty", "", 0, "hello", "hello"},
		{"insert empty string", "hello", 2, "", "hello"},
		{"insert past end appends", "abc", 99, "d", "abcd"},
		{"insert newline", "ab", 1, "\n", "a\nb"},
		{"insert unicode", "ab", 1, "世界", "a世界b"},
		{"insert into long", strings.Repeat("x", 1000), 500, "Y", strings.Repeat("x", 500) + "Y" + strings.Repeat("x", 500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := FromString(tt.initial)
			r := original.Insert(tt.offset, tt.text)
			if r.String() != tt.expected {
				t.Errorf("Insert() = %q, want %q", r.String(), tt.expected)
			}
			if original.String() != tt.initial {
				t.Errorf("original modified: %q", original.String())
			}
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name       string
		initial    string
		start, end ByteOffset
		expected   string
	}{
		{"delete from start", "hello world", 0, 6, "world"},
		{"delete from end", "hello world", 5, 11, "hello"},
		{"delete middle", "hello world", 5, 6, "helloworld"},
		{"delete all", "hello", 0, 5, ""},
		{"delete empty range", "hello", 2, 2, "hello"},
		{"delete reversed range", "hello", 3, 1, "hello"},
		{"delete clamps end", "hello", 3, 99, "hel"},
		{"delete newline", "a\nb", 1, 2, "ab"},
		{"delete across leaves", strings.Repeat("abcd", 200), 100, 700, strings.Repeat("abcd", 200)[:100] + strings.Repeat("abcd", 200)[700:]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := FromString(tt.initial)
			r := original.Delete(tt.start, tt.end)
			if r.String() != tt.expected {
				t.Errorf("Delete() = %q, want %q", r.String(), tt.expected)
			}
			if original.String() != tt.initial {
				t.Errorf("original modified: %q", original.String())
			}
		})
	}
}

func TestSplitConcat(t *testing.T) {
	text := strings.Repeat("the quick brown fox\n", 50)
	r := FromString(text)
	for _, at := range []ByteOffset{0, 1, 19, 20, 255, 256, 500, ByteOffset(len(text))} {
		left, right := r.Split(at)
		if left.String() != text[:at] {
			t.Errorf("Split(%d) left mismatch", at)
		}
		if right.String() != text[at:] {
			t.Errorf("Split(%d) right mismatch", at)
		}
		if joined := left.Concat(right); joined.String() != text {
			t.Errorf("Concat after Split(%d) mismatch", at)
		}
	}
}

func TestSlice(t *testing.T) {
	text := strings.Repeat("0123456789", 100)
	r := FromString(text)

	tests := []struct {
		start, end ByteOffset
		want       string
	}{
		{0, 10, "0123456789"},
		{250, 262, text[250:262]},
		{990, 1000, text[990:]},
		{995, 2000, text[995:]},
		{5, 5, ""},
		{7, 3, ""},
	}
	for _, tt := range tests {
		if got := r.Slice(tt.start, tt.end); got != tt.want {
			t.Errorf("Slice(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestByteAtAndCharBoundary(t *testing.T) {
	r := FromString("aé世")
	if b, ok := r.ByteAt(0); !ok || b != 'a' {
		t.Errorf("ByteAt(0) = %q, %v", b, ok)
	}
	if _, ok := r.ByteAt(r.Len()); ok {
		t.Error("ByteAt(Len()) should be out of range")
	}

	boundaries := map[ByteOffset]bool{0: true, 1: true, 2: false, 3: true, 4: false, 5: false, 6: true, 7: false}
	for off, want := range boundaries {
		if got := r.IsCharBoundary(off); got != want {
			t.Errorf("IsCharBoundary(%d) = %v, want %v", off, got, want)
		}
	}
}

func TestLineOfAndLineStart(t *testing.T) {
	text := "ab\ncd\n\nefg"
	r := FromString(text)

	lineOf := []struct {
		offset ByteOffset
		line   uint32
	}{
		{0, 0}, {2, 0}, {3, 1}, {5, 1}, {6, 2}, {7, 3}, {10, 3}, {99, 3},
	}
	for _, tt := range lineOf {
		if got := r.LineOf(tt.offset); got != tt.line {
			t.Errorf("LineOf(%d) = %d, want %d", tt.offset, got, tt.line)
		}
	}

	starts := []ByteOffset{0, 3, 6, 7}
	for line, want := range starts {
		got, ok := r.LineStart(uint32(line))
		if !ok || got != want {
			t.Errorf("LineStart(%d) = %d, %v; want %d", line, got, ok, want)
		}
	}
	if _, ok := r.LineStart(4); ok {
		t.Error("LineStart(4) should not exist")
	}
}

func TestLineStartLargeDocument(t *testing.T) {
	var sb strings.Builder
	var starts []int
	for i := 0; i < 2000; i++ {
		starts = append(starts, sb.Len())
		sb.WriteString(strings.Repeat("x", i%37))
		sb.WriteByte('\n')
	}
	r := FromString(sb.String())

	for line, want := range starts {
		got, ok := r.LineStart(uint32(line))
		if !ok || got != ByteOffset(want) {
			t.Fatalf("LineStart(%d) = %d, %v; want %d", line, got, ok, want)
		}
		if l := r.LineOf(ByteOffset(want)); l != uint32(line) {
			t.Fatalf("LineOf(%d) = %d, want %d", want, l, line)
		}
	}
}

func TestLineText(t *testing.T) {
	r := FromString("first\nsecond\nthird")
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if got := r.LineText(uint32(i)); got != w {
			t.Errorf("LineText(%d) = %q, want %q", i, got, w)
		}
	}
	if got := r.LineText(10); got != "" {
		t.Errorf("LineText(10) = %q, want empty", got)
	}
}

func TestBalanceUnderTyping(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := FromString(strings.Repeat("some line of text\n", 100))
	ref := r.String()

	for i := 0; i < 5000; i++ {
		off := rng.Intn(len(ref) + 1)
		r = r.Insert(ByteOffset(off), "k")
		ref = ref[:off] + "k" + ref[off:]
	}

	if r.String() != ref {
		t.Fatal("content diverged from reference")
	}
	if h := r.Height(); h > 24 {
		t.Errorf("Height() = %d after 5000 inserts; tree is not staying balanced", h)
	}
}

func TestEditsMatchStrings(t *testing.T) {
	f := func(seed int64) bool {
		rng := rand.New(rand.NewSource(seed))
		ref := strings.Repeat("ab\ncdef\n", rng.Intn(100))
		r := FromString(ref)

		for i := 0; i < 50; i++ {
			if rng.Intn(2) == 0 || len(ref) == 0 {
				off := rng.Intn(len(ref) + 1)
				ins := strings.Repeat("z\n", rng.Intn(3)) + "q"
				r = r.Insert(ByteOffset(off), ins)
				ref = ref[:off] + ins + ref[off:]
			} else {
				start := rng.Intn(len(ref))
				end := start + rng.Intn(len(ref)-start+1)
				r = r.Delete(ByteOffset(start), ByteOffset(end))
				ref = ref[:start] + ref[end:]
			}
		}
		return r.String() == ref && r.LineCount() == uint32(strings.Count(ref, "\n"))+1
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

package rope

// Leaf size constants control the granularity of text storage.
const (
	// MinLeafSize is the size below which adjacent leaves are merged.
	MinLeafSize = 128

	// MaxLeafSize is the maximum bytes held by a single leaf.
	MaxLeafSize = 256

	// targetLeafSize is the preferred leaf size when splitting long text.
	targetLeafSize = (MinLeafSize + MaxLeafSize) / 2
)

// splitIntoLeaves cuts s into pieces of at most MaxLeafSize bytes.
// Cuts land on rune boundaries and prefer to follow a newline.
func splitIntoLeaves(s string) []string {
	if len(s) == 0 {
		return nil
	}
	if len(s) <= MaxLeafSize {
		return []string{s}
	}

	pieces := make([]string, 0, len(s)/targetLeafSize+1)
	for len(s) > MaxLeafSize {
		cut := leafBoundary(s, targetLeafSize)
		pieces = append(pieces, s[:cut])
		s = s[cut:]
	}
	if len(s) > 0 {
		pieces = append(pieces, s)
	}
	return pieces
}

// leafBoundary finds a cut point near target. A newline within a quarter
// leaf of the target wins; otherwise the nearest rune start is used.
func leafBoundary(s string, target int) int {
	if target >= len(s) {
		return len(s)
	}

	lo := max(target-MinLeafSize/4, 1)
	hi := min(target+MinLeafSize/4, len(s)-1)
	for i := target; i < hi; i++ {
		if s[i] == '\n' {
			return i + 1
		}
	}
	for i := target - 1; i >= lo; i-- {
		if s[i] == '\n' {
			return i + 1
		}
	}

	pos := target
	for pos > 0 && !isUTF8Start(s[pos]) {
		pos--
	}
	if pos == 0 {
		pos = target
		for pos < len(s) && !isUTF8Start(s[pos]) {
			pos++
		}
	}
	return pos
}

// isUTF8Start reports whether b begins a UTF-8 sequence.
// Continuation bytes have the form 10xxxxxx.
func isUTF8Start(b byte) bool {
	return b&0xC0 != 0x80
}

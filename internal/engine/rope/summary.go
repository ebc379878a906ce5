package rope

import "strings"

// ByteOffset represents an absolute byte position in the rope.
type ByteOffset uint64

// TextSummary holds the aggregated metrics of a span of text.
type TextSummary struct {
	// Bytes is the UTF-8 byte count.
	Bytes ByteOffset

	// Lines is the number of newline characters.
	Lines uint32
}

// Add combines two summaries.
func (s TextSummary) Add(other TextSummary) TextSummary {
	return TextSummary{
		Bytes: s.Bytes + other.Bytes,
		Lines: s.Lines + other.Lines,
	}
}

// ComputeSummary calculates the summary of a string.
func ComputeSummary(s string) TextSummary {
	return TextSummary{
		Bytes: ByteOffset(len(s)),
		Lines: uint32(strings.Count(s, "\n")),
	}
}

// nthNewline returns the index of the nth newline (1-indexed) in s,
// or -1 if s has fewer than n newlines.
func nthNewline(s string, n uint32) int {
	if n == 0 {
		return -1
	}
	var count uint32
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			count++
			if count == n {
				return i
			}
		}
	}
	return -1
}

package rope

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

// generateTextWithLines creates text with the given number of lines.
func generateTextWithLines(lines int, avgLineLen int) string {
	var sb strings.Builder
	sb.Grow(lines * (avgLineLen + 1))

	for i := 0; i < lines; i++ {
		lineLen := max(avgLineLen+rand.Intn(21)-10, 1)
		for j := 0; j < lineLen; j++ {
			sb.WriteByte(byte('a' + rand.Intn(26)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func BenchmarkInsertMiddle(b *testing.B) {
	for _, lines := range []int{1_000, 100_000} {
		r := FromString(generateTextWithLines(lines, 60))
		mid := r.Len() / 2
		b.Run(fmt.Sprintf("lines=%d", lines), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = r.Insert(mid, "x")
			}
		})
	}
}

func BenchmarkLineCursorNext(b *testing.B) {
	for _, lines := range []int{1_000, 100_000} {
		r := FromString(generateTextWithLines(lines, 60))
		start, _ := r.LineStart(uint32(lines / 2))
		b.Run(fmt.Sprintf("lines=%d", lines), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				c := r.LineCursor(start)
				for j := 0; j < 50; j++ {
					c.Next()
				}
			}
		})
	}
}

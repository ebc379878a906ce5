package renderer

import "strconv"

// minLineNumberWidth is the narrowest line number column.
const minLineNumberWidth = 3

// GutterWidth returns the gutter width for a document of lineCount lines,
// including the separator column. It is 0 when line numbers are off.
func GutterWidth(showLineNumbers bool, lineCount uint32) int {
	if !showLineNumbers {
		return 0
	}
	return max(countDigits(lineCount), minLineNumberWidth) + 1
}

// countDigits returns the number of digits needed to display a number.
func countDigits(n uint32) int {
	if n == 0 {
		return 1
	}
	digits := 0
	for n > 0 {
		digits++
		n /= 10
	}
	return digits
}

// formatLineNumber right-aligns the 1-based number of line in width-1
// cells. Numbers too wide for the column keep their low digits.
func formatLineNumber(line uint32, width int) string {
	s := strconv.FormatUint(uint64(line)+1, 10)
	digits := width - 1
	if len(s) > digits {
		s = s[len(s)-digits:]
	}
	for len(s) < digits {
		s = " " + s
	}
	return s
}

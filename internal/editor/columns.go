package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Columns count grapheme clusters: "e" followed by a combining accent is
// one column, and so is a flag emoji. Screen cells are a separate unit.

// columnCount returns the number of grapheme clusters in s.
func columnCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// columnOffset returns the byte offset in s where column col begins.
// Columns past the end map to len(s).
func columnOffset(s string, col int) int {
	offset := 0
	state := -1
	for i := 0; i < col && len(s) > 0; i++ {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		offset += len(cluster)
	}
	return offset
}

// cellWidth returns the number of screen cells s occupies when drawn
// from the start of a line. Tabs advance to the next multiple of tabWidth.
func cellWidth(s string, tabWidth int) int {
	width := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		width += ClusterWidth(cluster, width, tabWidth)
	}
	return width
}

// ClusterWidth returns the cells taken by one grapheme cluster drawn at
// cell position at. The renderer draws with the same rule.
func ClusterWidth(cluster string, at, tabWidth int) int {
	if cluster == "\t" {
		if tabWidth < 1 {
			tabWidth = 1
		}
		return tabWidth - at%tabWidth
	}
	if w := runewidth.StringWidth(cluster); w > 0 {
		return w
	}
	// Zero-width clusters (control characters, a lone combining mark) are
	// drawn as a one-cell placeholder.
	return 1
}

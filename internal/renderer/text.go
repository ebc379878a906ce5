package renderer

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/red/internal/editor"
	"github.com/dshills/red/internal/renderer/backend"
)

// drawText draws s at (x, y), stopping before the cell at limit.
// Tabs expand to spaces up to the next multiple of tabWidth, counted from
// x0. A wide cluster that would straddle limit is left out.
// Returns the cell after the last one drawn.
func drawText(b backend.Backend, x0, x, y, limit int, s string, tabWidth int, style backend.Style) int {
	state := -1
	for len(s) > 0 && x < limit {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)

		if cluster == "\t" {
			stop := x + tabWidth - (x-x0)%tabWidth
			for ; x < stop && x < limit; x++ {
				b.SetContent(x, y, " ", style)
			}
			continue
		}

		w := editor.ClusterWidth(cluster, x-x0, tabWidth)
		if runewidth.StringWidth(cluster) == 0 {
			// Control characters are shown as a placeholder.
			cluster = "?"
		}
		if x+w > limit {
			break
		}
		b.SetContent(x, y, cluster, style)
		x += w
	}
	return x
}

// fill sets cells from x up to limit to blanks in style.
func fill(b backend.Backend, x, y, limit int, style backend.Style) {
	for ; x < limit; x++ {
		b.SetContent(x, y, " ", style)
	}
}

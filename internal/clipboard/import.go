// internal/clipboard/import.go
package clipboard

import (
	"strings"

	"github.com/bethropolis/sketch/internal/types"
	"github.com/rivo/uniseg"
)

// ImportText converts plain text into draw operations anchored at (x, y).
// Lines advance downward; columns advance by grapheme cluster so combining
// sequences land on a single cell. Spaces are skipped so pasted text does
// not blank cells around existing art. Wide clusters occupy one cell.
func ImportText(text string, x, y int) []types.DrawOp {
	var ops []types.DrawOp
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for dy, line := range lines {
		col := 0
		gr := uniseg.NewGraphemes(line)
		for gr.Next() {
			runes := gr.Runes()
			if len(runes) == 0 {
				continue
			}
			ch := runes[0]
			if ch == '\t' {
				col += 4
				continue
			}
			if ch != ' ' {
				ops = append(ops, types.DrawOp{
					X:    x + col,
					Y:    y + dy,
					Cell: types.NewCell(ch),
				})
			}
			col++
		}
	}
	return ops
}

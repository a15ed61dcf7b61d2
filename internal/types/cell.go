// internal/types/cell.go
package types

import "unicode"

// Style is a bitmask of rendering attributes for a cell.
type Style uint8

const (
	StyleBold Style = 1 << iota
	StyleItalic
	StyleUnderline
	StyleHighlight
)

// Has reports whether all bits of s are set.
func (st Style) Has(s Style) bool {
	return st&s == s
}

// Cell is a single position on the canvas: one character plus style flags.
// Cells are plain values; the grid owns every instance and copies freely.
type Cell struct {
	Ch    rune
	Style Style
}

// DefaultCell returns the blank cell (space, no style).
func DefaultCell() Cell {
	return Cell{Ch: ' '}
}

// NewCell creates a cell holding ch with no styling.
func NewCell(ch rune) Cell {
	return Cell{Ch: ch}
}

// IsEmpty reports whether the cell holds the blank space character.
func (c Cell) IsEmpty() bool {
	return c.Ch == ' '
}

// IsVisible reports whether the cell holds a non-whitespace character.
func (c Cell) IsVisible() bool {
	return !unicode.IsSpace(c.Ch) && c.Ch != 0
}

// Clear resets the cell to the blank state.
func (c *Cell) Clear() {
	*c = DefaultCell()
}

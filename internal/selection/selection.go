// Package selection holds the rectangular region descriptor used by the
// select tool and the region clipboard for copy/cut/paste.
package selection

import "github.com/bethropolis/sketch/internal/types"

// Selection is a rectangular region given by two corner points. The
// corners are stored as dragged, not pre-normalized; every derived query
// normalizes internally.
type Selection struct {
	X1, Y1 int
	X2, Y2 int
}

// New creates a selection from two corner points.
func New(x1, y1, x2, y2 int) Selection {
	return Selection{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Bounds returns the normalized (minX, minY, maxX, maxY).
func (s Selection) Bounds() (int, int, int, int) {
	minX, maxX := s.X1, s.X2
	if maxX < minX {
		minX, maxX = maxX, minX
	}
	minY, maxY := s.Y1, s.Y2
	if maxY < minY {
		minY, maxY = maxY, minY
	}
	return minX, minY, maxX, maxY
}

// Width returns the inclusive horizontal extent.
func (s Selection) Width() int {
	return abs(s.X2-s.X1) + 1
}

// Height returns the inclusive vertical extent.
func (s Selection) Height() int {
	return abs(s.Y2-s.Y1) + 1
}

// Area returns the number of cells covered.
func (s Selection) Area() int {
	return s.Width() * s.Height()
}

// Contains reports whether (x, y) lies inside the selection.
func (s Selection) Contains(x, y int) bool {
	minX, minY, maxX, maxY := s.Bounds()
	return x >= minX && x <= maxX && y >= minY && y <= maxY
}

// IsPoint reports whether the selection covers a single cell.
func (s Selection) IsPoint() bool {
	return s.X1 == s.X2 && s.Y1 == s.Y2
}

// Translated returns a copy shifted by (dx, dy).
func (s Selection) Translated(dx, dy int) Selection {
	return Selection{X1: s.X1 + dx, Y1: s.Y1 + dy, X2: s.X2 + dx, Y2: s.Y2 + dy}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ClipboardCell is one captured cell at an offset relative to the copied
// selection's top-left corner.
type ClipboardCell struct {
	DX, DY int
	Cell   types.Cell
}

// Clipboard is the region buffer filled by copy/cut and consumed by paste.
type Clipboard struct {
	Cells  []ClipboardCell
	Width  int
	Height int
}

// IsEmpty reports whether nothing has been copied.
func (c *Clipboard) IsEmpty() bool {
	return len(c.Cells) == 0
}

// Clear drops the captured region.
func (c *Clipboard) Clear() {
	c.Cells = nil
	c.Width = 0
	c.Height = 0
}

// Package grid implements the 2D character canvas as a flat, row-major
// slice of cells. All coordinate math is O(1) and every mutating accessor
// is bounds-checked: out-of-range coordinates report failure instead of
// panicking or mutating.
package grid

import "github.com/bethropolis/sketch/internal/types"

// Grid is the full canvas. Invariant: len(cells) == width*height.
type Grid struct {
	cells  []types.Cell
	width  int
	height int
}

// New creates a grid of the given dimensions filled with blank cells.
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]types.Cell, width*height)
	for i := range cells {
		cells[i] = types.DefaultCell()
	}
	return &Grid{cells: cells, width: width, height: height}
}

// FromCells builds a grid around an existing cell slice. The slice length
// must equal width*height; otherwise a blank grid of the requested size is
// returned.
func FromCells(cells []types.Cell, width, height int) *Grid {
	if len(cells) != width*height {
		return New(width, height)
	}
	return &Grid{cells: cells, width: width, height: height}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// Len returns the total cell count.
func (g *Grid) Len() int { return len(g.cells) }

// IndexOf converts (x, y) to the flat row-major index.
func (g *Grid) IndexOf(x, y int) int {
	return y*g.width + x
}

// CoordsOf converts a flat index back to (x, y).
func (g *Grid) CoordsOf(index int) (int, int) {
	return index % g.width, index / g.width
}

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// Get returns the cell at (x, y). ok is false if out of bounds.
func (g *Grid) Get(x, y int) (types.Cell, bool) {
	if !g.InBounds(x, y) {
		return types.Cell{}, false
	}
	return g.cells[g.IndexOf(x, y)], true
}

// Set writes a cell at (x, y). Returns false (no mutation) if out of bounds.
func (g *Grid) Set(x, y int, cell types.Cell) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[g.IndexOf(x, y)] = cell
	return true
}

// SetChar writes a character at (x, y) keeping the existing style.
func (g *Grid) SetChar(x, y int, ch rune) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[g.IndexOf(x, y)].Ch = ch
	return true
}

// ClearCell resets the cell at (x, y) to blank.
func (g *Grid) ClearCell(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[g.IndexOf(x, y)] = types.DefaultCell()
	return true
}

// Clear resets every cell to blank.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = types.DefaultCell()
	}
}

// Cells returns the backing slice. Callers must not resize it.
func (g *Grid) Cells() []types.Cell {
	return g.cells
}

// Snapshot returns a copy of the backing slice.
func (g *Grid) Snapshot() []types.Cell {
	out := make([]types.Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Each calls fn for every cell with its coordinates, row by row.
func (g *Grid) Each(fn func(x, y int, cell types.Cell)) {
	for i, cell := range g.cells {
		fn(i%g.width, i/g.width, cell)
	}
}

// Resize reallocates the grid to the new dimensions, copying the
// overlapping sub-rectangle row by row. Content outside the new bounds is
// dropped; this is lossy.
func (g *Grid) Resize(newWidth, newHeight int) {
	if newWidth < 0 {
		newWidth = 0
	}
	if newHeight < 0 {
		newHeight = 0
	}
	if newWidth == g.width && newHeight == g.height {
		return
	}

	newCells := make([]types.Cell, newWidth*newHeight)
	for i := range newCells {
		newCells[i] = types.DefaultCell()
	}

	copyWidth := min(newWidth, g.width)
	copyHeight := min(newHeight, g.height)
	for y := 0; y < copyHeight; y++ {
		src := y * g.width
		dst := y * newWidth
		copy(newCells[dst:dst+copyWidth], g.cells[src:src+copyWidth])
	}

	g.cells = newCells
	g.width = newWidth
	g.height = newHeight
}

// FillRect writes ch into every cell of the normalized rectangle,
// silently clipping coordinates that fall outside the grid.
func (g *Grid) FillRect(x1, y1, x2, y2 int, ch rune) {
	minX, maxX := minMax(x1, x2)
	minY, maxY := minMax(y1, y2)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			g.SetChar(x, y, ch)
		}
	}
}

// Region copies the rectangular sub-array clipped to grid bounds, returning
// the cells in row-major order plus the clipped region's dimensions. An
// entirely out-of-bounds rectangle yields (nil, 0, 0).
func (g *Grid) Region(x1, y1, x2, y2 int) ([]types.Cell, int, int) {
	minX, maxX := minMax(x1, x2)
	minY, maxY := minMax(y1, y2)
	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, g.width-1)
	maxY = min(maxY, g.height-1)
	if minX > maxX || minY > maxY {
		return nil, 0, 0
	}

	w := maxX - minX + 1
	h := maxY - minY + 1
	region := make([]types.Cell, 0, w*h)
	for y := minY; y <= maxY; y++ {
		start := g.IndexOf(minX, y)
		region = append(region, g.cells[start:start+w]...)
	}
	return region, w, h
}

func minMax(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

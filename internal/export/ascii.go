// Package export serializes grid content to plain ASCII text.
package export

import (
	"fmt"
	"strings"

	"github.com/bethropolis/sketch/internal/grid"
	"github.com/bethropolis/sketch/internal/types"
)

// Options controls how the grid is rendered to text.
type Options struct {
	// TrimBorders drops empty rows and columns around the content.
	TrimBorders bool
	// LineNumbers prefixes each row with its 1-based row number.
	LineNumbers bool
	// MaxWidth truncates each output line to this many characters after
	// any numbering. Zero means no limit.
	MaxWidth int
}

// DefaultOptions trims borders and adds no decoration.
func DefaultOptions() Options {
	return Options{TrimBorders: true}
}

// Grid renders the grid to a string per the options. A grid with no
// visible content exports to the empty string when trimming.
func Grid(g *grid.Grid, opts Options) string {
	if opts.TrimBorders {
		return exportTrimmed(g, opts)
	}
	return exportFull(g)
}

func exportFull(g *grid.Grid) string {
	var sb strings.Builder
	sb.Grow(g.Len() + g.Height())

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			cell, _ := g.Get(x, y)
			sb.WriteRune(cell.Ch)
		}
		if y < g.Height()-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func exportTrimmed(g *grid.Grid, opts Options) string {
	minX, minY, maxX, maxY, ok := ContentBounds(g)
	if !ok {
		return ""
	}

	var sb strings.Builder
	for y := minY; y <= maxY; y++ {
		var line strings.Builder
		if opts.LineNumbers {
			fmt.Fprintf(&line, "%4d | ", y+1)
		}
		for x := minX; x <= maxX; x++ {
			cell, _ := g.Get(x, y)
			line.WriteRune(cell.Ch)
		}

		// Trailing spaces go, even when that eats into the number prefix
		// of a blank row.
		row := strings.TrimRight(line.String(), " ")
		if opts.MaxWidth > 0 {
			row = truncateRunes(row, opts.MaxWidth)
		}
		sb.WriteString(row)
		if y < maxY {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// ContentBounds finds the bounding box of visible content. ok is false
// when the grid holds nothing visible.
func ContentBounds(g *grid.Grid) (minX, minY, maxX, maxY int, ok bool) {
	minX, minY = g.Width(), g.Height()
	maxX, maxY = -1, -1

	g.Each(func(x, y int, cell types.Cell) {
		if !cell.IsVisible() {
			return
		}
		if x < minX {
			minX = x
		}
		if y < minY {
			minY = y
		}
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}
	})

	if maxX < 0 {
		return 0, 0, 0, 0, false
	}
	return minX, minY, maxX, maxY, true
}

// Region renders a rectangular slice of the grid, clamped to its
// bounds, with trailing spaces stripped per row.
func Region(g *grid.Grid, x1, y1, x2, y2 int) string {
	minX, maxX := orderClamp(x1, x2, g.Width()-1)
	minY, maxY := orderClamp(y1, y2, g.Height()-1)

	var sb strings.Builder
	for y := minY; y <= maxY; y++ {
		var line strings.Builder
		for x := minX; x <= maxX; x++ {
			cell, _ := g.Get(x, y)
			line.WriteRune(cell.Ch)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < maxY {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// CountContent returns the number of visible cells.
func CountContent(g *grid.Grid) int {
	count := 0
	g.Each(func(x, y int, cell types.Cell) {
		if cell.IsVisible() {
			count++
		}
	})
	return count
}

func orderClamp(a, b, hi int) (int, int) {
	if a > b {
		a, b = b, a
	}
	if a < 0 {
		a = 0
	}
	if b > hi {
		b = hi
	}
	return a, b
}

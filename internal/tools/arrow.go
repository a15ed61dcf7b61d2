// internal/tools/arrow.go
package tools

import "github.com/bethropolis/sketch/internal/types"

// ArrowTool draws a line segment with an arrowhead glyph at the endpoint.
type ArrowTool struct {
	noKeys
	noSelection

	anchor  point
	dragged bool
}

// NewArrow creates an arrow tool.
func NewArrow() *ArrowTool {
	return &ArrowTool{}
}

func (t *ArrowTool) ID() ID { return Arrow }

func (t *ArrowTool) PointerDown(x, y int, ctx *Context) Result {
	x, y = clampToGrid(x, y, ctx.GridWidth, ctx.GridHeight)
	t.anchor = point{x, y}
	t.dragged = true
	return Result{}
}

func (t *ArrowTool) PointerMove(x, y int, ctx *Context) Result {
	if !t.dragged {
		return Result{}
	}
	x, y = clampToGrid(x, y, ctx.GridWidth, ctx.GridHeight)
	return withOps(arrowOps(t.anchor.x, t.anchor.y, x, y))
}

func (t *ArrowTool) PointerUp(x, y int, ctx *Context) Result {
	if !t.dragged {
		return Result{}
	}
	x, y = clampToGrid(x, y, ctx.GridWidth, ctx.GridHeight)
	ops := arrowOps(t.anchor.x, t.anchor.y, x, y)
	t.Reset()
	return finished(ops)
}

func (t *ArrowTool) Reset() {
	t.anchor = point{}
	t.dragged = false
}

func (t *ArrowTool) Active() bool { return t.dragged }

// arrowhead buckets the segment's direction by the ratio |dx|:|dy|
// (scaled by 10): below 3 counts as vertical, above 7 as horizontal, and
// the band between uses plain '<'/'>' for portability.
func arrowhead(dx, dy int) rune {
	if dx == 0 && dy == 0 {
		return '•'
	}
	absDX := abs(dx)
	absDY := abs(dy)

	switch {
	case absDX == 0:
		if dy > 0 {
			return '▼'
		}
		return '▲'
	case absDY == 0:
		if dx > 0 {
			return '►'
		}
		return '◄'
	}

	ratio := absDX * 10 / absDY
	switch {
	case ratio < 3:
		if (dx > 0) == (dy > 0) {
			return '╲'
		}
		return '╱'
	case ratio > 7:
		if dx > 0 {
			return '►'
		}
		return '◄'
	}
	if dx > 0 {
		return '>'
	}
	return '<'
}

// arrowShaft picks the shaft glyph for the cell at (x, y) from its
// remaining run toward the endpoint.
func arrowShaft(x, y, x2, y2 int) rune {
	dx := x2 - x
	dy := y2 - y
	switch {
	case dx == 0:
		return '│'
	case dy == 0:
		return '─'
	}
	ratio := abs(dx) * 10 / abs(dy)
	switch {
	case ratio < 3:
		return '│'
	case ratio > 7:
		return '─'
	}
	if (dx > 0 && dy < 0) || (dx < 0 && dy > 0) {
		return '/'
	}
	return '\\'
}

func arrowOps(x1, y1, x2, y2 int) []types.DrawOp {
	var ops []types.DrawOp
	bresenham(x1, y1, x2, y2, func(x, y int) {
		ops = append(ops, types.NewDrawOp(x, y, arrowShaft(x, y, x2, y2)))
	})
	ops = append(ops, types.NewDrawOp(x2, y2, arrowhead(x2-x1, y2-y1)))
	return ops
}

// internal/tools/line.go
package tools

import "github.com/bethropolis/sketch/internal/types"

// LineTool draws straight line segments. Idle -> Dragging -> Idle: the
// anchor is recorded on pointer-down, every move recomputes the full
// segment as a preview and pointer-up commits it.
type LineTool struct {
	noKeys
	noSelection

	anchor  point
	dragged bool
}

type point struct {
	x, y int
}

// NewLine creates a line tool.
func NewLine() *LineTool {
	return &LineTool{}
}

func (t *LineTool) ID() ID { return Line }

func (t *LineTool) PointerDown(x, y int, ctx *Context) Result {
	x, y = clampToGrid(x, y, ctx.GridWidth, ctx.GridHeight)
	t.anchor = point{x, y}
	t.dragged = true
	return Result{}
}

func (t *LineTool) PointerMove(x, y int, ctx *Context) Result {
	if !t.dragged {
		return Result{}
	}
	x, y = clampToGrid(x, y, ctx.GridWidth, ctx.GridHeight)
	return withOps(lineOps(t.anchor.x, t.anchor.y, x, y))
}

func (t *LineTool) PointerUp(x, y int, ctx *Context) Result {
	if !t.dragged {
		return Result{}
	}
	x, y = clampToGrid(x, y, ctx.GridWidth, ctx.GridHeight)
	ops := lineOps(t.anchor.x, t.anchor.y, x, y)
	t.Reset()
	return finished(ops)
}

func (t *LineTool) Reset() {
	t.anchor = point{}
	t.dragged = false
}

func (t *LineTool) Active() bool { return t.dragged }

// lineGlyph picks the glyph for a whole segment from its direction:
// horizontal and vertical runs get line-drawing glyphs, diagonals get a
// slash whose lean follows the sign of the slope.
func lineGlyph(sx, sy, dx, dy int) rune {
	switch {
	case dx == 0:
		return '│'
	case dy == 0:
		return '─'
	}
	if sx > 0 {
		if sy > 0 {
			return '\\'
		}
		return '/'
	}
	if sy > 0 {
		return '/'
	}
	return '\\'
}

func lineOps(x1, y1, x2, y2 int) []types.DrawOp {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 >= x2 {
		sx = -1
	}
	sy := 1
	if y1 >= y2 {
		sy = -1
	}
	ch := lineGlyph(sx, sy, dx, dy)

	var ops []types.DrawOp
	bresenham(x1, y1, x2, y2, func(x, y int) {
		ops = append(ops, types.NewDrawOp(x, y, ch))
	})
	return ops
}

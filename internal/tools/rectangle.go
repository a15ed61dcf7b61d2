// internal/tools/rectangle.go
package tools

import "github.com/bethropolis/sketch/internal/types"

// RectangleTool draws box outlines in the context's border style. A
// zero-size drag degenerates to a single corner glyph; a drag flat on one
// axis degenerates to a straight border run.
type RectangleTool struct {
	noKeys
	noSelection

	anchor  point
	dragged bool
}

// NewRectangle creates a rectangle tool.
func NewRectangle() *RectangleTool {
	return &RectangleTool{}
}

func (t *RectangleTool) ID() ID { return Rectangle }

func (t *RectangleTool) PointerDown(x, y int, ctx *Context) Result {
	x, y = clampToGrid(x, y, ctx.GridWidth, ctx.GridHeight)
	t.anchor = point{x, y}
	t.dragged = true
	return Result{}
}

func (t *RectangleTool) PointerMove(x, y int, ctx *Context) Result {
	if !t.dragged {
		return Result{}
	}
	x, y = clampToGrid(x, y, ctx.GridWidth, ctx.GridHeight)
	return withOps(rectangleOps(t.anchor.x, t.anchor.y, x, y, ctx.Border))
}

func (t *RectangleTool) PointerUp(x, y int, ctx *Context) Result {
	if !t.dragged {
		return Result{}
	}
	x, y = clampToGrid(x, y, ctx.GridWidth, ctx.GridHeight)
	ops := rectangleOps(t.anchor.x, t.anchor.y, x, y, ctx.Border)
	t.Reset()
	return finished(ops)
}

func (t *RectangleTool) Reset() {
	t.anchor = point{}
	t.dragged = false
}

func (t *RectangleTool) Active() bool { return t.dragged }

func rectangleOps(x1, y1, x2, y2 int, style BorderStyle) []types.DrawOp {
	minX, maxX := minMax(x1, x2)
	minY, maxY := minMax(y1, y2)

	corners := style.Corners()
	h := style.Horizontal()
	v := style.Vertical()

	if minX == maxX && minY == maxY {
		return []types.DrawOp{types.NewDrawOp(minX, minY, corners[0])}
	}

	var ops []types.DrawOp

	if minY == maxY {
		for x := minX; x <= maxX; x++ {
			ops = append(ops, types.NewDrawOp(x, minY, h))
		}
		return ops
	}
	if minX == maxX {
		for y := minY; y <= maxY; y++ {
			ops = append(ops, types.NewDrawOp(minX, y, v))
		}
		return ops
	}

	ops = append(ops,
		types.NewDrawOp(minX, minY, corners[0]),
		types.NewDrawOp(maxX, minY, corners[1]),
		types.NewDrawOp(minX, maxY, corners[2]),
		types.NewDrawOp(maxX, maxY, corners[3]),
	)
	// Border runs stay strictly between the corners.
	for x := minX + 1; x < maxX; x++ {
		ops = append(ops, types.NewDrawOp(x, minY, h))
		ops = append(ops, types.NewDrawOp(x, maxY, h))
	}
	for y := minY + 1; y < maxY; y++ {
		ops = append(ops, types.NewDrawOp(minX, y, v))
		ops = append(ops, types.NewDrawOp(maxX, y, v))
	}
	return ops
}

func minMax(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}

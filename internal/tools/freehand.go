// internal/tools/freehand.go
package tools

import "github.com/bethropolis/sketch/internal/types"

// DefaultFreehandGlyph is drawn when no glyph has been configured.
const DefaultFreehandGlyph = '*'

// FreehandTool draws a fixed glyph under the pointer, interpolating the
// path between move events so fast strokes stay connected. Ops accumulate
// in an internal buffer and flush as one batch on pointer-up.
type FreehandTool struct {
	noKeys
	noSelection

	drawing bool
	last    point
	hasLast bool
	glyph   rune
	buffer  []types.DrawOp
}

// NewFreehand creates a freehand tool drawing the default glyph.
func NewFreehand() *FreehandTool {
	return &FreehandTool{glyph: DefaultFreehandGlyph}
}

func (t *FreehandTool) ID() ID { return Freehand }

// SetGlyph changes the drawing glyph.
func (t *FreehandTool) SetGlyph(ch rune) {
	if ch != 0 {
		t.glyph = ch
	}
}

// Glyph returns the current drawing glyph.
func (t *FreehandTool) Glyph() rune { return t.glyph }

func (t *FreehandTool) PointerDown(x, y int, ctx *Context) Result {
	x, y = clampToGrid(x, y, ctx.GridWidth, ctx.GridHeight)

	t.drawing = true
	t.last = point{x, y}
	t.hasLast = true
	t.buffer = t.buffer[:0]

	op := types.NewDrawOp(x, y, t.glyph)
	t.buffer = append(t.buffer, op)
	return withOps([]types.DrawOp{op})
}

func (t *FreehandTool) PointerMove(x, y int, ctx *Context) Result {
	if !t.drawing {
		return Result{}
	}
	x, y = clampToGrid(x, y, ctx.GridWidth, ctx.GridHeight)
	if t.hasLast && t.last == (point{x, y}) {
		return Result{}
	}

	ops := t.interpolate(x, y)
	t.last = point{x, y}
	t.hasLast = true
	t.buffer = append(t.buffer, ops...)
	return withOps(ops)
}

func (t *FreehandTool) PointerUp(x, y int, ctx *Context) Result {
	if !t.drawing {
		return Result{}
	}
	t.drawing = false
	t.hasLast = false

	ops := make([]types.DrawOp, len(t.buffer))
	copy(ops, t.buffer)
	t.buffer = t.buffer[:0]
	return finished(ops)
}

func (t *FreehandTool) Reset() {
	t.drawing = false
	t.hasLast = false
	t.buffer = t.buffer[:0]
}

func (t *FreehandTool) Active() bool { return t.drawing }

func (t *FreehandTool) interpolate(x, y int) []types.DrawOp {
	var ops []types.DrawOp
	if !t.hasLast {
		return append(ops, types.NewDrawOp(x, y, t.glyph))
	}
	bresenham(t.last.x, t.last.y, x, y, func(cx, cy int) {
		ops = append(ops, types.NewDrawOp(cx, cy, t.glyph))
	})
	return ops
}

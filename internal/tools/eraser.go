// internal/tools/eraser.go
package tools

import "github.com/bethropolis/sketch/internal/types"

// EraserTool blanks a square patch under the pointer, interpolating
// between move events like the freehand tool. A size-n eraser covers a
// (2n-1) x (2n-1) square centered on each visited cell.
type EraserTool struct {
	noKeys
	noSelection

	erasing bool
	last    point
	hasLast bool
	size    int
	buffer  []types.DrawOp
}

// NewEraser creates an eraser of size 1 (a single cell).
func NewEraser() *EraserTool {
	return &EraserTool{size: 1}
}

func (t *EraserTool) ID() ID { return Eraser }

// SetSize sets the eraser radius; values below 1 clamp to 1.
func (t *EraserTool) SetSize(size int) {
	if size < 1 {
		size = 1
	}
	t.size = size
}

// Size returns the current eraser radius.
func (t *EraserTool) Size() int { return t.size }

func (t *EraserTool) PointerDown(x, y int, ctx *Context) Result {
	x, y = clampToGrid(x, y, ctx.GridWidth, ctx.GridHeight)

	t.erasing = true
	t.last = point{x, y}
	t.hasLast = true
	t.buffer = t.buffer[:0]

	ops := t.eraseAt(x, y)
	t.buffer = append(t.buffer, ops...)
	return withOps(ops)
}

func (t *EraserTool) PointerMove(x, y int, ctx *Context) Result {
	if !t.erasing {
		return Result{}
	}
	x, y = clampToGrid(x, y, ctx.GridWidth, ctx.GridHeight)
	if t.hasLast && t.last == (point{x, y}) {
		return Result{}
	}

	var ops []types.DrawOp
	if t.hasLast {
		bresenham(t.last.x, t.last.y, x, y, func(cx, cy int) {
			ops = append(ops, t.eraseAt(cx, cy)...)
		})
	} else {
		ops = t.eraseAt(x, y)
	}
	t.last = point{x, y}
	t.hasLast = true
	t.buffer = append(t.buffer, ops...)
	return withOps(ops)
}

func (t *EraserTool) PointerUp(x, y int, ctx *Context) Result {
	if !t.erasing {
		return Result{}
	}
	t.erasing = false
	t.hasLast = false

	ops := make([]types.DrawOp, len(t.buffer))
	copy(ops, t.buffer)
	t.buffer = t.buffer[:0]
	return finished(ops)
}

func (t *EraserTool) Reset() {
	t.erasing = false
	t.hasLast = false
	t.buffer = t.buffer[:0]
}

func (t *EraserTool) Active() bool { return t.erasing }

func (t *EraserTool) eraseAt(x, y int) []types.DrawOp {
	ops := make([]types.DrawOp, 0, (2*t.size-1)*(2*t.size-1))
	for dy := -t.size + 1; dy < t.size; dy++ {
		for dx := -t.size + 1; dx < t.size; dx++ {
			ops = append(ops, types.NewDrawOp(x+dx, y+dy, ' '))
		}
	}
	return ops
}

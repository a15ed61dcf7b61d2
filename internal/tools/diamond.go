// internal/tools/diamond.go
package tools

import (
	"sort"

	"github.com/bethropolis/sketch/internal/types"
)

// DiamondTool draws rhombus outlines: four interpolated half-diagonals
// from the bounding box's center to the four edge midpoints.
type DiamondTool struct {
	noKeys
	noSelection

	anchor  point
	dragged bool
}

// NewDiamond creates a diamond tool.
func NewDiamond() *DiamondTool {
	return &DiamondTool{}
}

func (t *DiamondTool) ID() ID { return Diamond }

func (t *DiamondTool) PointerDown(x, y int, ctx *Context) Result {
	x, y = clampToGrid(x, y, ctx.GridWidth, ctx.GridHeight)
	t.anchor = point{x, y}
	t.dragged = true
	return Result{}
}

func (t *DiamondTool) PointerMove(x, y int, ctx *Context) Result {
	if !t.dragged {
		return Result{}
	}
	x, y = clampToGrid(x, y, ctx.GridWidth, ctx.GridHeight)
	return withOps(diamondOps(t.anchor.x, t.anchor.y, x, y))
}

func (t *DiamondTool) PointerUp(x, y int, ctx *Context) Result {
	if !t.dragged {
		return Result{}
	}
	x, y = clampToGrid(x, y, ctx.GridWidth, ctx.GridHeight)
	ops := diamondOps(t.anchor.x, t.anchor.y, x, y)
	t.Reset()
	return finished(ops)
}

func (t *DiamondTool) Reset() {
	t.anchor = point{}
	t.dragged = false
}

func (t *DiamondTool) Active() bool { return t.dragged }

func diamondOps(x1, y1, x2, y2 int) []types.DrawOp {
	cx := (x1 + x2) / 2
	cy := (y1 + y2) / 2
	halfWidth := abs(x2-x1) / 2
	halfHeight := abs(y2-y1) / 2

	if halfWidth == 0 && halfHeight == 0 {
		return []types.DrawOp{types.NewDrawOp(cx, cy, '◆')}
	}

	var ops []types.DrawOp
	ops = append(ops, halfDiagonal(cx, cy, cx, cy-halfHeight, '/', '\\')...)
	ops = append(ops, halfDiagonal(cx, cy, cx+halfWidth, cy, '/', '\\')...)
	ops = append(ops, halfDiagonal(cx, cy, cx, cy+halfHeight, '\\', '/')...)
	ops = append(ops, halfDiagonal(cx, cy, cx-halfWidth, cy, '\\', '/')...)

	// Coincident cells near the center are collapsed: sort on (y, x) and
	// drop adjacent duplicates.
	sort.Slice(ops, func(i, j int) bool {
		if ops[i].Y != ops[j].Y {
			return ops[i].Y < ops[j].Y
		}
		return ops[i].X < ops[j].X
	})
	deduped := ops[:0]
	for i, op := range ops {
		if i > 0 && op.X == ops[i-1].X && op.Y == ops[i-1].Y {
			continue
		}
		deduped = append(deduped, op)
	}
	return deduped
}

// halfDiagonal steps both axes toward the target each iteration until each
// reaches it, writing upSlash on up-right/down-left movement and downSlash
// otherwise.
func halfDiagonal(x1, y1, x2, y2 int, upSlash, downSlash rune) []types.DrawOp {
	sx := 1
	if x1 >= x2 {
		sx = -1
	}
	sy := 1
	if y1 >= y2 {
		sy = -1
	}
	ch := downSlash
	if (sx > 0 && sy < 0) || (sx < 0 && sy > 0) {
		ch = upSlash
	}

	var ops []types.DrawOp
	x, y := x1, y1
	for {
		ops = append(ops, types.NewDrawOp(x, y, ch))
		if x == x2 && y == y2 {
			return ops
		}
		if x != x2 {
			x += sx
		}
		if y != y2 {
			y += sy
		}
	}
}

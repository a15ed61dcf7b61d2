// internal/tools/select.go
package tools

import (
	"github.com/bethropolis/sketch/internal/selection"
)

type selectState int

const (
	selectIdle selectState = iota
	selectSelecting
	selectMoving
)

// SelectTool marks rectangular regions and drags existing ones. It never
// touches the grid itself: it only maintains the selection rectangle and,
// after a drag inside an existing selection, reports the move delta for
// the session to turn into a command.
type SelectTool struct {
	noKeys

	state selectState
	sel   selection.Selection
	has   bool

	// drag-to-move bookkeeping
	grabX, grabY int
	moveDX       int
	moveDY       int
	moved        bool
}

// NewSelect creates a select tool with no active selection.
func NewSelect() *SelectTool {
	return &SelectTool{}
}

func (t *SelectTool) ID() ID { return Select }

func (t *SelectTool) PointerDown(x, y int, ctx *Context) Result {
	x, y = clampToGrid(x, y, ctx.GridWidth, ctx.GridHeight)

	if t.has && t.sel.Contains(x, y) {
		t.state = selectMoving
		t.grabX, t.grabY = x, y
		t.moveDX, t.moveDY = 0, 0
		t.moved = false
		return Result{}
	}

	t.state = selectSelecting
	t.sel = selection.New(x, y, x, y)
	t.has = true
	t.moved = false
	return Result{}
}

func (t *SelectTool) PointerMove(x, y int, ctx *Context) Result {
	x, y = clampToGrid(x, y, ctx.GridWidth, ctx.GridHeight)

	switch t.state {
	case selectSelecting:
		t.sel.X2, t.sel.Y2 = x, y
	case selectMoving:
		t.moveDX = x - t.grabX
		t.moveDY = y - t.grabY
		t.moved = t.moveDX != 0 || t.moveDY != 0
	}
	return Result{}
}

func (t *SelectTool) PointerUp(x, y int, ctx *Context) Result {
	x, y = clampToGrid(x, y, ctx.GridWidth, ctx.GridHeight)

	switch t.state {
	case selectSelecting:
		t.sel.X2, t.sel.Y2 = x, y
		t.state = selectIdle
		return Result{Finished: true}
	case selectMoving:
		t.moveDX = x - t.grabX
		t.moveDY = y - t.grabY
		t.moved = t.moveDX != 0 || t.moveDY != 0
		t.state = selectIdle
		return Result{Finished: true}
	}
	return Result{}
}

func (t *SelectTool) Selection() (selection.Selection, bool) {
	return t.sel, t.has
}

// SetSelection replaces the current selection. The session uses this after
// moving a region so the rectangle follows the content.
func (t *SelectTool) SetSelection(sel selection.Selection) {
	t.sel = sel
	t.has = true
}

// TakeMoveDelta reports the displacement of the last completed drag-move
// and clears it. ok is false when the last gesture was not a move.
func (t *SelectTool) TakeMoveDelta() (dx, dy int, ok bool) {
	if !t.moved {
		return 0, 0, false
	}
	dx, dy = t.moveDX, t.moveDY
	t.moveDX, t.moveDY = 0, 0
	t.moved = false
	return dx, dy, true
}

// ClearSelection drops the selection without resetting drag state.
func (t *SelectTool) ClearSelection() {
	t.has = false
	t.sel = selection.Selection{}
}

func (t *SelectTool) Reset() {
	t.state = selectIdle
	t.has = false
	t.sel = selection.Selection{}
	t.moved = false
	t.moveDX, t.moveDY = 0, 0
}

func (t *SelectTool) Active() bool { return t.state != selectIdle }

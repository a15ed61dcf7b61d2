// internal/tools/text.go
package tools

import (
	"unicode"

	"github.com/bethropolis/sketch/internal/types"
)

// TextTool types characters onto the canvas. Unlike the drag tools it has
// no pointer-up transition: a click places the caret and the tool stays in
// the editing state, driven by the keyboard. Typed glyphs are staged as a
// preview; the next pointer-down flushes the staged batch for commit and
// starts a fresh caret.
type TextTool struct {
	noSelection

	editing bool
	cursor  point
	start   point
	// chars typed on the caret's current line since the last newline
	line   []rune
	staged []types.DrawOp
}

// NewText creates a text tool.
func NewText() *TextTool {
	return &TextTool{}
}

func (t *TextTool) ID() ID { return Text }

func (t *TextTool) PointerDown(x, y int, ctx *Context) Result {
	x, y = clampToGrid(x, y, ctx.GridWidth, ctx.GridHeight)

	prev := t.TakeStaged()

	t.editing = true
	t.cursor = point{x, y}
	t.start = point{x, y}
	t.line = t.line[:0]

	return finished(prev)
}

func (t *TextTool) PointerMove(x, y int, ctx *Context) Result {
	return Result{}
}

func (t *TextTool) PointerUp(x, y int, ctx *Context) Result {
	// Text entry is keyboard driven; the tool stays active.
	return Result{}
}

func (t *TextTool) KeyPress(ch rune, ctx *Context) Result {
	if !t.editing {
		return Result{}
	}

	switch ch {
	case KeyNewline, '\r':
		t.cursor = point{t.start.x, t.cursor.y + 1}
		t.line = t.line[:0]
		return Result{}

	case KeyBackspace:
		if t.cursor.x <= t.start.x || len(t.line) == 0 {
			return Result{}
		}
		t.line = t.line[:len(t.line)-1]
		t.cursor.x--
		op := types.NewDrawOp(t.cursor.x, t.cursor.y, ' ')
		t.staged = append(t.staged, op)
		return withOps([]types.DrawOp{op})

	case KeyDelete:
		idx := t.cursor.x - t.start.x
		if idx < 0 || idx >= len(t.line) {
			return Result{}
		}
		t.line = append(t.line[:idx], t.line[idx+1:]...)
		op := types.NewDrawOp(t.cursor.x, t.cursor.y, ' ')
		t.staged = append(t.staged, op)
		return withOps([]types.DrawOp{op})
	}

	if unicode.IsControl(ch) {
		return Result{}
	}

	// Refuse input that would run off the right edge.
	if t.cursor.x >= ctx.GridWidth-1 || t.start.x >= ctx.GridWidth-1 {
		return Result{}
	}

	t.line = append(t.line, ch)
	op := types.NewDrawOp(t.cursor.x, t.cursor.y, ch)
	t.cursor.x++
	t.staged = append(t.staged, op)
	return withOps([]types.DrawOp{op})
}

// TakeStaged hands over the staged operations and empties the stage. The
// session uses this to flush typed text when switching away from the tool.
func (t *TextTool) TakeStaged() []types.DrawOp {
	if len(t.staged) == 0 {
		return nil
	}
	out := make([]types.DrawOp, len(t.staged))
	copy(out, t.staged)
	t.staged = t.staged[:0]
	return out
}

// Cursor returns the caret position; ok is false when not editing.
func (t *TextTool) Cursor() (x, y int, ok bool) {
	if !t.editing {
		return 0, 0, false
	}
	return t.cursor.x, t.cursor.y, true
}

func (t *TextTool) Reset() {
	t.editing = false
	t.cursor = point{}
	t.start = point{}
	t.line = t.line[:0]
	t.staged = t.staged[:0]
}

func (t *TextTool) Active() bool { return t.editing }

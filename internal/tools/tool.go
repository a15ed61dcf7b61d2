// Package tools implements the drawing-tool state machines. Each tool
// consumes pointer/key events in grid coordinates and emits ordered draw
// operations; it never touches the grid itself.
package tools

import (
	"github.com/bethropolis/sketch/internal/selection"
	"github.com/bethropolis/sketch/internal/types"
)

// ID identifies a drawing tool.
type ID int

const (
	Rectangle ID = iota
	Line
	Arrow
	Diamond
	Text
	Freehand
	Select
	Eraser
)

// Name returns the display name for the tool.
func (id ID) Name() string {
	switch id {
	case Rectangle:
		return "Rectangle"
	case Line:
		return "Line"
	case Arrow:
		return "Arrow"
	case Diamond:
		return "Diamond"
	case Text:
		return "Text"
	case Freehand:
		return "Freehand"
	case Select:
		return "Select"
	case Eraser:
		return "Eraser"
	}
	return "Unknown"
}

// Shortcut returns the keyboard shortcut for the tool.
func (id ID) Shortcut() rune {
	switch id {
	case Rectangle:
		return 'R'
	case Line:
		return 'L'
	case Arrow:
		return 'A'
	case Diamond:
		return 'D'
	case Text:
		return 'T'
	case Freehand:
		return 'F'
	case Select:
		return 'V'
	case Eraser:
		return 'E'
	}
	return 0
}

// FromShortcut maps a shortcut key (either case) to a tool ID.
func FromShortcut(ch rune) (ID, bool) {
	switch ch {
	case 'R', 'r':
		return Rectangle, true
	case 'L', 'l':
		return Line, true
	case 'A', 'a':
		return Arrow, true
	case 'D', 'd':
		return Diamond, true
	case 'T', 't':
		return Text, true
	case 'F', 'f':
		return Freehand, true
	case 'V', 'v':
		return Select, true
	case 'E', 'e':
		return Eraser, true
	}
	return 0, false
}

// Key values passed to KeyPress for non-printable input.
const (
	KeyNewline   rune = '\n'
	KeyBackspace rune = '\b'
	KeyDelete    rune = 0x7f
)

// BorderStyle selects the glyph set used by the rectangle tool.
type BorderStyle int

const (
	BorderSingle BorderStyle = iota
	BorderDouble
	BorderHeavy
	BorderRounded
	BorderASCII
	BorderDotted
)

// Corners returns the four corner glyphs: top-left, top-right,
// bottom-left, bottom-right.
func (b BorderStyle) Corners() [4]rune {
	switch b {
	case BorderDouble:
		return [4]rune{'╔', '╗', '╚', '╝'}
	case BorderHeavy:
		return [4]rune{'┏', '┓', '┗', '┛'}
	case BorderRounded:
		return [4]rune{'╭', '╮', '╰', '╯'}
	case BorderASCII:
		return [4]rune{'+', '+', '+', '+'}
	case BorderDotted:
		return [4]rune{'*', '*', '*', '*'}
	}
	return [4]rune{'┌', '┐', '└', '┘'}
}

// Horizontal returns the horizontal border glyph.
func (b BorderStyle) Horizontal() rune {
	switch b {
	case BorderDouble:
		return '═'
	case BorderHeavy:
		return '━'
	case BorderASCII:
		return '-'
	case BorderDotted:
		return '*'
	}
	return '─'
}

// Vertical returns the vertical border glyph.
func (b BorderStyle) Vertical() rune {
	switch b {
	case BorderDouble:
		return '║'
	case BorderHeavy:
		return '┃'
	case BorderASCII:
		return '|'
	case BorderDotted:
		return '*'
	}
	return '│'
}

// Name returns the config-string form of the border style.
func (b BorderStyle) Name() string {
	switch b {
	case BorderDouble:
		return "double"
	case BorderHeavy:
		return "heavy"
	case BorderRounded:
		return "rounded"
	case BorderASCII:
		return "ascii"
	case BorderDotted:
		return "dotted"
	}
	return "single"
}

// ParseBorderStyle maps a config string to a border style, defaulting to
// single lines.
func ParseBorderStyle(name string) BorderStyle {
	switch name {
	case "double":
		return BorderDouble
	case "heavy":
		return BorderHeavy
	case "rounded":
		return BorderRounded
	case "ascii":
		return BorderASCII
	case "dotted":
		return BorderDotted
	}
	return BorderSingle
}

// Context carries the grid dimensions and shared drawing preferences into
// each tool callback.
type Context struct {
	GridWidth  int
	GridHeight int
	Border     BorderStyle
}

// Result is what a tool hands back for one event: the ordered ops to
// apply, whether the grid content changed, and whether the gesture has
// concluded. Finished results are committed to history; unfinished ones
// are previews, shown but never committed.
type Result struct {
	Ops      []types.DrawOp
	Finished bool
	Modified bool
}

func withOps(ops []types.DrawOp) Result {
	return Result{Ops: ops, Modified: len(ops) > 0}
}

func finished(ops []types.DrawOp) Result {
	return Result{Ops: ops, Modified: len(ops) > 0, Finished: true}
}

// Tool is implemented by each drawing mode's state machine.
type Tool interface {
	ID() ID

	PointerDown(x, y int, ctx *Context) Result
	PointerMove(x, y int, ctx *Context) Result
	PointerUp(x, y int, ctx *Context) Result

	// KeyPress handles keyboard input; only the text tool consumes it.
	KeyPress(ch rune, ctx *Context) Result

	// Selection reports the current selection, if this tool maintains one.
	Selection() (selection.Selection, bool)

	// Reset abandons any in-progress gesture and its preview.
	Reset()

	// Active reports whether a gesture is in progress.
	Active() bool
}

// noKeys is embedded by tools that ignore keyboard input.
type noKeys struct{}

func (noKeys) KeyPress(rune, *Context) Result { return Result{} }

// noSelection is embedded by tools that do not maintain a selection.
type noSelection struct{}

func (noSelection) Selection() (selection.Selection, bool) {
	return selection.Selection{}, false
}

// clampToGrid clips a coordinate pair to [0,width-1] x [0,height-1].
func clampToGrid(x, y, width, height int) (int, int) {
	if x < 0 {
		x = 0
	} else if x > width-1 {
		x = width - 1
	}
	if y < 0 {
		y = 0
	} else if y > height-1 {
		y = height - 1
	}
	return x, y
}

// bresenham visits every cell on the straight path from (x1,y1) to
// (x2,y2) using integer error stepping.
func bresenham(x1, y1, x2, y2 int, visit func(x, y int)) {
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

	err := dx - dy
	x, y := x1, y1
	for {
		visit(x, y)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

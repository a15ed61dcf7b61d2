// Package history implements the undoable command set and the bounded
// undo/redo stacks operating on a grid.
package history

import (
	"fmt"

	"github.com/bethropolis/sketch/internal/grid"
	"github.com/bethropolis/sketch/internal/types"
)

// Kind tags each command type so callers can branch without type
// assertions.
type Kind int

const (
	KindSetCell Kind = iota
	KindClearCell
	KindClearGrid
	KindDrawBatch
	KindComposite
)

// Command is a reversible mutation of the grid. Apply captures whatever
// prior state it needs for Undo at apply time; both directions are
// idempotent via an applied flag.
type Command interface {
	Apply(g *grid.Grid)
	Undo(g *grid.Grid)
	Kind() Kind
	Description() string
}

// SetCellCommand writes one cell.
type SetCellCommand struct {
	x, y    int
	oldCell types.Cell
	hadOld  bool
	newCell types.Cell
	applied bool
}

// NewSetCell creates a command that writes cell at (x, y).
func NewSetCell(x, y int, cell types.Cell) *SetCellCommand {
	return &SetCellCommand{x: x, y: y, newCell: cell}
}

func (c *SetCellCommand) Apply(g *grid.Grid) {
	if c.applied {
		return
	}
	c.oldCell, c.hadOld = g.Get(c.x, c.y)
	g.Set(c.x, c.y, c.newCell)
	c.applied = true
}

func (c *SetCellCommand) Undo(g *grid.Grid) {
	if !c.applied {
		return
	}
	if c.hadOld {
		g.Set(c.x, c.y, c.oldCell)
	} else {
		g.ClearCell(c.x, c.y)
	}
	c.applied = false
}

func (c *SetCellCommand) Kind() Kind          { return KindSetCell }
func (c *SetCellCommand) Description() string { return "Set cell" }

// ClearCellCommand blanks one cell.
type ClearCellCommand struct {
	x, y    int
	oldCell types.Cell
	hadOld  bool
	applied bool
}

// NewClearCell creates a command that blanks the cell at (x, y).
func NewClearCell(x, y int) *ClearCellCommand {
	return &ClearCellCommand{x: x, y: y}
}

func (c *ClearCellCommand) Apply(g *grid.Grid) {
	if c.applied {
		return
	}
	c.oldCell, c.hadOld = g.Get(c.x, c.y)
	g.ClearCell(c.x, c.y)
	c.applied = true
}

func (c *ClearCellCommand) Undo(g *grid.Grid) {
	if !c.applied {
		return
	}
	if c.hadOld {
		g.Set(c.x, c.y, c.oldCell)
	}
	c.applied = false
}

func (c *ClearCellCommand) Kind() Kind          { return KindClearCell }
func (c *ClearCellCommand) Description() string { return "Clear cell" }

// ClearGridCommand blanks the whole canvas, snapshotting it for undo.
type ClearGridCommand struct {
	oldCells []types.Cell
	width    int
	height   int
	applied  bool
}

// NewClearGrid creates a command that clears the entire grid.
func NewClearGrid() *ClearGridCommand {
	return &ClearGridCommand{}
}

func (c *ClearGridCommand) Apply(g *grid.Grid) {
	if c.applied {
		return
	}
	c.oldCells = g.Snapshot()
	c.width = g.Width()
	c.height = g.Height()
	g.Clear()
	c.applied = true
}

func (c *ClearGridCommand) Undo(g *grid.Grid) {
	if !c.applied {
		return
	}
	// The snapshot only fits a grid of the same dimensions. If the canvas
	// was resized after the clear, leave it alone.
	if g.Width() == c.width && g.Height() == c.height {
		*g = *grid.FromCells(c.oldCells, c.width, c.height)
	}
	c.applied = false
}

func (c *ClearGridCommand) Kind() Kind          { return KindClearGrid }
func (c *ClearGridCommand) Description() string { return "Clear canvas" }

// DrawBatch applies a tool's ordered draw operations atomically.
type DrawBatch struct {
	ops         []types.DrawOp
	previous    []prevCell
	applied     bool
	description string
}

type prevCell struct {
	x, y int
	cell types.Cell
	had  bool
}

// maxMergedOps caps how large a batch can grow through merging.
const maxMergedOps = 1000

// NewDrawBatch creates a command from ordered draw operations.
func NewDrawBatch(ops []types.DrawOp) *DrawBatch {
	desc := "Draw"
	if len(ops) != 1 {
		desc = fmt.Sprintf("Draw %d cells", len(ops))
	}
	return &DrawBatch{ops: ops, description: desc}
}

// NewDrawBatchDescribed creates a batch with an explicit description.
func NewDrawBatchDescribed(ops []types.DrawOp, description string) *DrawBatch {
	return &DrawBatch{ops: ops, description: description}
}

// Len returns the number of operations.
func (c *DrawBatch) Len() int { return len(c.ops) }

// IsEmpty reports whether the batch has no operations.
func (c *DrawBatch) IsEmpty() bool { return len(c.ops) == 0 }

func (c *DrawBatch) Apply(g *grid.Grid) {
	if c.applied || len(c.ops) == 0 {
		return
	}
	c.previous = c.previous[:0]
	for _, op := range c.ops {
		cell, ok := g.Get(op.X, op.Y)
		c.previous = append(c.previous, prevCell{op.X, op.Y, cell, ok})
	}
	for _, op := range c.ops {
		g.Set(op.X, op.Y, op.Cell)
	}
	c.applied = true
}

func (c *DrawBatch) Undo(g *grid.Grid) {
	if !c.applied {
		return
	}
	for i := len(c.previous) - 1; i >= 0; i-- {
		p := c.previous[i]
		if p.had {
			g.Set(p.x, p.y, p.cell)
		} else {
			g.ClearCell(p.x, p.y)
		}
	}
	c.applied = false
}

func (c *DrawBatch) Kind() Kind          { return KindDrawBatch }
func (c *DrawBatch) Description() string { return c.description }

// CanMergeWith reports whether other can be folded into this batch.
// Merging requires the receiver to be unapplied, the other command to be
// a draw batch, and the combined operation count to stay under the cap.
func (c *DrawBatch) CanMergeWith(other Command) bool {
	if c.applied || other.Kind() != KindDrawBatch {
		return false
	}
	o, ok := other.(*DrawBatch)
	if !ok {
		return false
	}
	return len(c.ops)+len(o.ops) < maxMergedOps
}

// Merge folds another batch's operations onto the end of this one.
// Applied batches already captured prior state and cannot grow.
func (c *DrawBatch) Merge(other *DrawBatch) {
	if c.applied {
		return
	}
	c.ops = append(c.ops, other.ops...)
	c.description = fmt.Sprintf("Draw %d cells", len(c.ops))
}

// Composite groups commands into one atomic history entry.
type Composite struct {
	commands    []Command
	description string
	applied     bool
}

// NewComposite creates an empty composite with a description.
func NewComposite(description string) *Composite {
	return &Composite{description: description}
}

// Add appends a child command.
func (c *Composite) Add(cmd Command) {
	c.commands = append(c.commands, cmd)
}

// Len returns the number of child commands.
func (c *Composite) Len() int { return len(c.commands) }

// IsEmpty reports whether the composite has no children.
func (c *Composite) IsEmpty() bool { return len(c.commands) == 0 }

func (c *Composite) Apply(g *grid.Grid) {
	if c.applied {
		return
	}
	for _, cmd := range c.commands {
		cmd.Apply(g)
	}
	c.applied = true
}

func (c *Composite) Undo(g *grid.Grid) {
	if !c.applied {
		return
	}
	for i := len(c.commands) - 1; i >= 0; i-- {
		c.commands[i].Undo(g)
	}
	c.applied = false
}

func (c *Composite) Kind() Kind          { return KindComposite }
func (c *Composite) Description() string { return c.description }

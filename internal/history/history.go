package history

import "github.com/bethropolis/sketch/internal/grid"

// DefaultMaxDepth bounds the undo stack when no depth is configured.
const DefaultMaxDepth = 100

// History holds the undo and redo stacks. Both are bounded by maxDepth;
// pushing onto a full undo stack evicts the oldest entry.
type History struct {
	undoStack []Command
	redoStack []Command
	maxDepth  int
}

// New creates a history with the given maximum depth. Depths below 1
// fall back to the default.
func New(maxDepth int) *History {
	if maxDepth < 1 {
		maxDepth = DefaultMaxDepth
	}
	return &History{
		undoStack: make([]Command, 0, maxDepth),
		redoStack: make([]Command, 0, maxDepth),
		maxDepth:  maxDepth,
	}
}

// Push records an executed command. Any redoable future is discarded.
func (h *History) Push(cmd Command) {
	h.redoStack = h.redoStack[:0]

	if len(h.undoStack) >= h.maxDepth {
		copy(h.undoStack, h.undoStack[1:])
		h.undoStack = h.undoStack[:len(h.undoStack)-1]
	}
	h.undoStack = append(h.undoStack, cmd)
}

// Undo reverts the most recent command. It reports false when there is
// nothing to undo.
func (h *History) Undo(g *grid.Grid) bool {
	if len(h.undoStack) == 0 {
		return false
	}
	cmd := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	cmd.Undo(g)
	h.redoStack = append(h.redoStack, cmd)
	return true
}

// Redo reapplies the most recently undone command. It reports false
// when there is nothing to redo.
func (h *History) Redo(g *grid.Grid) bool {
	if len(h.redoStack) == 0 {
		return false
	}
	cmd := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	cmd.Apply(g)
	h.undoStack = append(h.undoStack, cmd)
	return true
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// UndoCount returns the number of undo steps available.
func (h *History) UndoCount() int { return len(h.undoStack) }

// RedoCount returns the number of redo steps available.
func (h *History) RedoCount() int { return len(h.redoStack) }

// UndoDescription returns the description of the next undo step.
func (h *History) UndoDescription() (string, bool) {
	if len(h.undoStack) == 0 {
		return "", false
	}
	return h.undoStack[len(h.undoStack)-1].Description(), true
}

// RedoDescription returns the description of the next redo step.
func (h *History) RedoDescription() (string, bool) {
	if len(h.redoStack) == 0 {
		return "", false
	}
	return h.redoStack[len(h.redoStack)-1].Description(), true
}

// Clear drops both stacks.
func (h *History) Clear() {
	h.undoStack = h.undoStack[:0]
	h.redoStack = h.redoStack[:0]
}

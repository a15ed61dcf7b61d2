// internal/core/clipboard.go
package core

import (
	"fmt"

	"github.com/bethropolis/sketch/internal/event"
	"github.com/bethropolis/sketch/internal/history"
	"github.com/bethropolis/sketch/internal/logger"
	"github.com/bethropolis/sketch/internal/selection"
	"github.com/bethropolis/sketch/internal/tools"
	"github.com/bethropolis/sketch/internal/types"
)

// CopySelection copies the selected region into the internal clipboard.
// It reports false when the select tool is not active or nothing is
// selected.
func (s *Session) CopySelection() bool {
	if s.toolID != tools.Select || !s.hasSelection {
		return false
	}

	minX, minY, maxX, maxY := s.sel.Bounds()
	cells := make([]selection.ClipboardCell, 0, s.sel.Area())
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			cell, ok := s.grid.Get(x, y)
			if !ok {
				continue
			}
			cells = append(cells, selection.ClipboardCell{
				DX:   x - minX,
				DY:   y - minY,
				Cell: cell,
			})
		}
	}

	s.clipboard = selection.Clipboard{
		Cells:  cells,
		Width:  s.sel.Width(),
		Height: s.sel.Height(),
	}
	logger.Debugf("Session: copied %dx%d region", s.clipboard.Width, s.clipboard.Height)
	s.dispatch(event.TypeClipboardChanged, event.ClipboardChangedData{
		Width:  s.clipboard.Width,
		Height: s.clipboard.Height,
	})
	return true
}

// CutSelection copies the selected region, then blanks it through
// history. The selection is dropped afterwards.
func (s *Session) CutSelection() bool {
	if !s.CopySelection() {
		return false
	}
	s.blankSelection("Cut selection")
	s.dropSelection()
	return true
}

// DeleteSelection blanks the selected region through history and drops
// the selection.
func (s *Session) DeleteSelection() bool {
	if s.toolID != tools.Select || !s.hasSelection {
		return false
	}
	s.blankSelection("Delete selection")
	s.dropSelection()
	return true
}

// dropSelection clears the session selection and the select tool's own
// rectangle so a later click cannot resurrect the cut region as a move.
func (s *Session) dropSelection() {
	if st, ok := s.tool.(*tools.SelectTool); ok {
		st.ClearSelection()
	}
	s.setSelection(selection.Selection{}, false)
}

func (s *Session) blankSelection(description string) {
	minX, minY, maxX, maxY := s.sel.Bounds()
	ops := blankRegionOps(minX, minY, maxX, maxY)
	if len(ops) == 0 {
		return
	}

	cmd := history.NewDrawBatchDescribed(ops, description)
	cmd.Apply(s.grid)
	s.history.Push(cmd)
	s.tracker.MarkRegion(minX, minY, maxX, maxY)
	s.dispatch(event.TypeCommandApplied, event.CommandAppliedData{
		Description: description,
		OpCount:     len(ops),
	})
	s.notifyHistory()
}

// Paste writes the clipboard content back onto the canvas at its
// recorded relative offsets, skipping cells outside the grid.
func (s *Session) Paste() bool {
	if s.clipboard.IsEmpty() {
		return false
	}
	return s.PasteAt(0, 0)
}

// PasteAt writes the clipboard content with its origin at (x, y).
func (s *Session) PasteAt(x, y int) bool {
	if s.clipboard.IsEmpty() {
		return false
	}

	ops := make([]types.DrawOp, 0, len(s.clipboard.Cells))
	for _, cc := range s.clipboard.Cells {
		tx, ty := x+cc.DX, y+cc.DY
		if !s.grid.InBounds(tx, ty) {
			continue
		}
		ops = append(ops, types.DrawOp{X: tx, Y: ty, Cell: cc.Cell})
	}
	if len(ops) == 0 {
		return false
	}
	s.commit(ops)
	return true
}

// moveSelection translates the selected region by (dx, dy) as one atomic
// history entry: blank the source, then write the content at the target.
func (s *Session) moveSelection(st *tools.SelectTool, dx, dy int) {
	minX, minY, maxX, maxY := s.sel.Bounds()

	content := make([]selection.ClipboardCell, 0, s.sel.Area())
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			cell, ok := s.grid.Get(x, y)
			if !ok {
				continue
			}
			content = append(content, selection.ClipboardCell{
				DX:   x - minX,
				DY:   y - minY,
				Cell: cell,
			})
		}
	}

	writeOps := make([]types.DrawOp, 0, len(content))
	for _, cc := range content {
		tx, ty := minX+dx+cc.DX, minY+dy+cc.DY
		if !s.grid.InBounds(tx, ty) {
			continue
		}
		writeOps = append(writeOps, types.DrawOp{X: tx, Y: ty, Cell: cc.Cell})
	}

	comp := history.NewComposite(fmt.Sprintf("Move %dx%d region", s.sel.Width(), s.sel.Height()))
	comp.Add(history.NewDrawBatchDescribed(blankRegionOps(minX, minY, maxX, maxY), "Blank source"))
	comp.Add(history.NewDrawBatchDescribed(writeOps, "Write target"))

	comp.Apply(s.grid)
	s.history.Push(comp)
	s.tracker.RequestFull()

	moved := s.sel.Translated(dx, dy)
	st.SetSelection(moved)
	s.setSelection(moved, true)

	logger.Debugf("Session: moved selection by (%d,%d)", dx, dy)
	s.dispatch(event.TypeCommandApplied, event.CommandAppliedData{
		Description: comp.Description(),
		OpCount:     len(writeOps),
	})
	s.notifyHistory()
}

func blankRegionOps(minX, minY, maxX, maxY int) []types.DrawOp {
	ops := make([]types.DrawOp, 0, (maxX-minX+1)*(maxY-minY+1))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			ops = append(ops, types.NewDrawOp(x, y, ' '))
		}
	}
	return ops
}

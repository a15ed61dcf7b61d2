// Package core ties the grid, tools, history and dirty tracking into a
// single editor session. A Session is single-threaded: it is mutated only
// in direct response to one delivered pointer or key event at a time.
package core

import (
	"github.com/bethropolis/sketch/internal/dirty"
	"github.com/bethropolis/sketch/internal/event"
	"github.com/bethropolis/sketch/internal/grid"
	"github.com/bethropolis/sketch/internal/history"
	"github.com/bethropolis/sketch/internal/logger"
	"github.com/bethropolis/sketch/internal/selection"
	"github.com/bethropolis/sketch/internal/tools"
	"github.com/bethropolis/sketch/internal/types"
)

// Options configures a new session.
type Options struct {
	Width         int
	Height        int
	HistoryDepth  int
	FreehandGlyph rune
	EraserSize    int
	Border        tools.BorderStyle
}

// Session owns the canvas and everything that edits it.
type Session struct {
	grid    *grid.Grid
	history *history.History
	tracker *dirty.Tracker

	tool   tools.Tool
	toolID tools.ID
	border tools.BorderStyle

	freehandGlyph rune
	eraserSize    int

	// previewOps is the visual overlay for the in-progress gesture. It is
	// never committed to history.
	previewOps []types.DrawOp

	sel          selection.Selection
	hasSelection bool
	clipboard    selection.Clipboard

	eventManager *event.Manager
}

// NewSession creates a session with a blank grid and the rectangle tool
// active.
func NewSession(opts Options) *Session {
	if opts.Width < 1 {
		opts.Width = 1
	}
	if opts.Height < 1 {
		opts.Height = 1
	}
	if opts.FreehandGlyph == 0 {
		opts.FreehandGlyph = tools.DefaultFreehandGlyph
	}
	if opts.EraserSize < 1 {
		opts.EraserSize = 1
	}

	s := &Session{
		grid:          grid.New(opts.Width, opts.Height),
		history:       history.New(opts.HistoryDepth),
		tracker:       dirty.NewTracker(),
		toolID:        tools.Rectangle,
		border:        opts.Border,
		freehandGlyph: opts.FreehandGlyph,
		eraserSize:    opts.EraserSize,
	}
	s.tool = s.newTool(tools.Rectangle)
	return s
}

// SetEventManager sets the event manager for dispatching session events.
func (s *Session) SetEventManager(mgr *event.Manager) {
	s.eventManager = mgr
}

func (s *Session) dispatch(eventType event.Type, data interface{}) {
	if s.eventManager != nil {
		s.eventManager.Dispatch(eventType, data)
	}
}

// Grid returns the canvas.
func (s *Session) Grid() *grid.Grid { return s.grid }

// Tracker returns the dirty-region tracker.
func (s *Session) Tracker() *dirty.Tracker { return s.tracker }

// PreviewOps returns the uncommitted overlay for the current gesture.
func (s *Session) PreviewOps() []types.DrawOp { return s.previewOps }

// ToolID returns the active tool's id.
func (s *Session) ToolID() tools.ID { return s.toolID }

// ToolActive reports whether a gesture is in progress.
func (s *Session) ToolActive() bool { return s.tool.Active() }

// BorderStyle returns the rectangle border style.
func (s *Session) BorderStyle() tools.BorderStyle { return s.border }

// SetBorderStyle changes the border style used by the rectangle tool.
func (s *Session) SetBorderStyle(style tools.BorderStyle) {
	s.border = style
}

// SetFreehandGlyph changes the freehand drawing glyph.
func (s *Session) SetFreehandGlyph(ch rune) {
	if ch == 0 {
		return
	}
	s.freehandGlyph = ch
	if ft, ok := s.tool.(*tools.FreehandTool); ok {
		ft.SetGlyph(ch)
	}
}

// SetEraserSize changes the eraser patch radius.
func (s *Session) SetEraserSize(size int) {
	if size < 1 {
		size = 1
	}
	s.eraserSize = size
	if et, ok := s.tool.(*tools.EraserTool); ok {
		et.SetSize(size)
	}
}

// CanUndo reports whether an undo step is available.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether a redo step is available.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// UndoDepth returns the number of undoable steps.
func (s *Session) UndoDepth() int { return s.history.UndoCount() }

// RedoDepth returns the number of redoable steps.
func (s *Session) RedoDepth() int { return s.history.RedoCount() }

func (s *Session) newTool(id tools.ID) tools.Tool {
	switch id {
	case tools.Line:
		return tools.NewLine()
	case tools.Arrow:
		return tools.NewArrow()
	case tools.Diamond:
		return tools.NewDiamond()
	case tools.Text:
		return tools.NewText()
	case tools.Freehand:
		ft := tools.NewFreehand()
		ft.SetGlyph(s.freehandGlyph)
		return ft
	case tools.Select:
		return tools.NewSelect()
	case tools.Eraser:
		et := tools.NewEraser()
		et.SetSize(s.eraserSize)
		return et
	}
	return tools.NewRectangle()
}

// SetTool replaces the active tool. Staged text is committed first, the
// outgoing tool is reset, and any selection is dropped unless switching
// to the select tool.
func (s *Session) SetTool(id tools.ID) {
	if tt, ok := s.tool.(*tools.TextTool); ok {
		if staged := tt.TakeStaged(); len(staged) > 0 {
			s.commit(staged)
		}
	}
	s.tool.Reset()
	s.previewOps = s.previewOps[:0]

	s.toolID = id
	s.tool = s.newTool(id)

	if id != tools.Select && s.hasSelection {
		s.setSelection(selection.Selection{}, false)
	}

	logger.Debugf("Session: tool switched to %s", id.Name())
	s.dispatch(event.TypeToolChanged, event.ToolChangedData{Tool: id})
}

// Cancel abandons the in-progress gesture and its preview without
// committing anything.
func (s *Session) Cancel() {
	s.tool.Reset()
	s.previewOps = s.previewOps[:0]
	s.tracker.RequestFull()
}

// Undo reverts the most recent command.
func (s *Session) Undo() bool {
	if !s.history.Undo(s.grid) {
		return false
	}
	s.tracker.RequestFull()
	logger.Debugf("Session: undo (depth %d)", s.history.UndoCount())
	s.notifyHistory()
	return true
}

// Redo reapplies the most recently undone command.
func (s *Session) Redo() bool {
	if !s.history.Redo(s.grid) {
		return false
	}
	s.tracker.RequestFull()
	logger.Debugf("Session: redo (depth %d)", s.history.RedoCount())
	s.notifyHistory()
	return true
}

// Clear blanks the canvas as an undoable command.
func (s *Session) Clear() {
	cmd := history.NewClearGrid()
	cmd.Apply(s.grid)
	s.history.Push(cmd)
	s.tracker.RequestFull()
	s.dispatch(event.TypeGridCleared, nil)
	s.notifyHistory()
}

// HardReset wipes the canvas, history and clipboard. Not undoable.
func (s *Session) HardReset() {
	s.grid.Clear()
	s.history.Clear()
	s.clipboard.Clear()
	s.previewOps = s.previewOps[:0]
	s.tool.Reset()
	s.setSelection(selection.Selection{}, false)
	s.tracker.RequestFull()
	s.dispatch(event.TypeGridCleared, nil)
	s.notifyHistory()
}

// Resize changes the canvas dimensions, dropping content outside the new
// bounds. The selection is dropped; history survives, though snapshots
// taken at the old size will refuse to restore across the boundary.
func (s *Session) Resize(width, height int) {
	if width < 1 || height < 1 {
		return
	}
	s.tool.Reset()
	s.previewOps = s.previewOps[:0]
	s.setSelection(selection.Selection{}, false)

	s.grid.Resize(width, height)
	s.tracker.RequestFull()
	logger.Infof("Session: canvas resized to %dx%d", width, height)
	s.dispatch(event.TypeGridResized, event.GridResizedData{Width: width, Height: height})
}

func (s *Session) toolContext() *tools.Context {
	return &tools.Context{
		GridWidth:  s.grid.Width(),
		GridHeight: s.grid.Height(),
		Border:     s.border,
	}
}

// commit turns ops into an applied DrawBatch on the undo stack and marks
// the touched cells dirty.
func (s *Session) commit(ops []types.DrawOp) {
	if len(ops) == 0 {
		return
	}

	cmd := history.NewDrawBatch(ops)
	cmd.Apply(s.grid)
	s.history.Push(cmd)

	for _, op := range ops {
		s.tracker.Mark(op.X, op.Y)
	}

	s.dispatch(event.TypeCommandApplied, event.CommandAppliedData{
		Description: cmd.Description(),
		OpCount:     len(ops),
	})
	s.notifyHistory()
}

// Stamp applies externally produced ops as a single undoable step.
// Ops outside the grid are dropped. Returns false when nothing landed.
func (s *Session) Stamp(ops []types.DrawOp, description string) bool {
	kept := make([]types.DrawOp, 0, len(ops))
	for _, op := range ops {
		if s.grid.InBounds(op.X, op.Y) {
			kept = append(kept, op)
		}
	}
	if len(kept) == 0 {
		return false
	}

	cmd := history.NewDrawBatchDescribed(kept, description)
	cmd.Apply(s.grid)
	s.history.Push(cmd)

	for _, op := range kept {
		s.tracker.Mark(op.X, op.Y)
	}

	s.dispatch(event.TypeCommandApplied, event.CommandAppliedData{
		Description: cmd.Description(),
		OpCount:     len(kept),
	})
	s.notifyHistory()
	return true
}

func (s *Session) notifyHistory() {
	s.dispatch(event.TypeHistoryChanged, event.HistoryChangedData{
		CanUndo:   s.history.CanUndo(),
		CanRedo:   s.history.CanRedo(),
		UndoDepth: s.history.UndoCount(),
		RedoDepth: s.history.RedoCount(),
	})
}

func (s *Session) setSelection(sel selection.Selection, active bool) {
	if s.hasSelection {
		x1, y1, x2, y2 := s.sel.Bounds()
		s.tracker.MarkRegion(x1, y1, x2, y2)
	}
	if active {
		x1, y1, x2, y2 := sel.Bounds()
		s.tracker.MarkRegion(x1, y1, x2, y2)
	}
	s.sel = sel
	s.hasSelection = active
	s.dispatch(event.TypeSelectionChanged, event.SelectionChangedData{
		Selection: sel,
		Active:    active,
	})
}

// Selection returns the current selection, if any.
func (s *Session) Selection() (selection.Selection, bool) {
	return s.sel, s.hasSelection
}

// HasClipboard reports whether the internal clipboard holds content.
func (s *Session) HasClipboard() bool { return !s.clipboard.IsEmpty() }

// TextCursor returns the text tool's insertion point while typing.
func (s *Session) TextCursor() (int, int, bool) {
	if tt, ok := s.tool.(*tools.TextTool); ok {
		return tt.Cursor()
	}
	return 0, 0, false
}

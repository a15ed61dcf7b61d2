package core

import (
	"testing"

	"github.com/bethropolis/sketch/internal/event"
	"github.com/bethropolis/sketch/internal/tools"
)

func newTestSession() *Session {
	return NewSession(Options{Width: 20, Height: 20})
}

func charAt(t *testing.T, s *Session, x, y int) rune {
	t.Helper()
	cell, ok := s.Grid().Get(x, y)
	if !ok {
		t.Fatalf("cell (%d,%d) out of bounds", x, y)
	}
	return cell.Ch
}

func TestGestureCommitsOnPointerUp(t *testing.T) {
	s := newTestSession()
	s.SetTool(tools.Line)

	s.PointerDown(1, 1)
	s.PointerMove(5, 1)

	if s.CanUndo() {
		t.Fatal("a live preview must not reach history")
	}
	if len(s.PreviewOps()) == 0 {
		t.Fatal("dragging should produce a preview overlay")
	}
	if charAt(t, s, 3, 1) != ' ' {
		t.Fatal("preview must not touch the grid")
	}

	s.PointerUp(5, 1)

	for x := 1; x <= 5; x++ {
		if charAt(t, s, x, 1) != '─' {
			t.Fatalf("cell (%d,1) = %q after commit", x, charAt(t, s, x, 1))
		}
	}
	if !s.CanUndo() || s.UndoDepth() != 1 {
		t.Fatal("commit should push exactly one history entry")
	}
	if len(s.PreviewOps()) != 0 {
		t.Fatal("preview should clear on pointer-up")
	}
}

func TestCancelDiscardsGesture(t *testing.T) {
	s := newTestSession()
	s.SetTool(tools.Rectangle)

	s.PointerDown(2, 2)
	s.PointerMove(8, 8)
	s.Cancel()

	if s.ToolActive() {
		t.Fatal("cancel should reset the tool")
	}
	if len(s.PreviewOps()) != 0 {
		t.Fatal("cancel should drop the preview")
	}
	if s.CanUndo() {
		t.Fatal("cancel must not commit anything")
	}

	s.PointerUp(8, 8)
	if s.CanUndo() {
		t.Fatal("pointer-up after cancel must not commit")
	}
}

func TestUndoRedoThroughSession(t *testing.T) {
	s := newTestSession()
	s.SetTool(tools.Freehand)

	s.PointerDown(4, 4)
	s.PointerUp(4, 4)
	if charAt(t, s, 4, 4) != '*' {
		t.Fatal("freehand gesture did not commit")
	}

	if !s.Undo() {
		t.Fatal("undo failed")
	}
	if charAt(t, s, 4, 4) != ' ' {
		t.Fatal("undo did not revert the stroke")
	}
	if !s.Redo() {
		t.Fatal("redo failed")
	}
	if charAt(t, s, 4, 4) != '*' {
		t.Fatal("redo did not restore the stroke")
	}
	if s.Redo() {
		t.Fatal("redo with an empty stack must report false")
	}
}

func TestTextStagingFlushesOnToolSwitch(t *testing.T) {
	s := newTestSession()
	s.SetTool(tools.Text)

	s.PointerDown(2, 2)
	s.KeyPress('H')
	s.KeyPress('i')

	if charAt(t, s, 2, 2) != ' ' {
		t.Fatal("staged text must stay off the grid")
	}
	if s.CanUndo() {
		t.Fatal("staged text must not reach history")
	}
	if len(s.PreviewOps()) != 2 {
		t.Fatalf("preview holds %d ops, want 2", len(s.PreviewOps()))
	}

	s.SetTool(tools.Line)

	if charAt(t, s, 2, 2) != 'H' || charAt(t, s, 3, 2) != 'i' {
		t.Fatal("tool switch should flush staged text to the grid")
	}
	if s.UndoDepth() != 1 {
		t.Fatalf("flush pushed %d entries, want 1", s.UndoDepth())
	}
}

func TestTextFlushOnSecondClick(t *testing.T) {
	s := newTestSession()
	s.SetTool(tools.Text)

	s.PointerDown(2, 2)
	s.KeyPress('A')
	s.PointerDown(10, 10)

	if charAt(t, s, 2, 2) != 'A' {
		t.Fatal("second click should commit the staged text")
	}
	if s.UndoDepth() != 1 {
		t.Fatalf("undo depth = %d, want 1", s.UndoDepth())
	}
}

func TestSelectionCopyPaste(t *testing.T) {
	s := newTestSession()
	s.SetTool(tools.Freehand)
	s.PointerDown(2, 2)
	s.PointerUp(2, 2)

	s.SetTool(tools.Select)
	s.PointerDown(2, 2)
	s.PointerMove(3, 3)
	s.PointerUp(3, 3)

	if _, ok := s.Selection(); !ok {
		t.Fatal("drag did not create a selection")
	}
	if !s.CopySelection() {
		t.Fatal("copy failed with an active selection")
	}
	if !s.HasClipboard() {
		t.Fatal("clipboard empty after copy")
	}

	if !s.PasteAt(10, 10) {
		t.Fatal("paste failed")
	}
	if charAt(t, s, 10, 10) != '*' {
		t.Fatal("pasted content missing at target origin")
	}
}

func TestSelectionTracksDrag(t *testing.T) {
	s := newTestSession()
	s.SetTool(tools.Select)
	s.PointerDown(1, 1)
	s.PointerMove(4, 6)

	sel, ok := s.Selection()
	if !ok {
		t.Fatal("selection should be live during the drag")
	}
	if _, _, x2, y2 := sel.Bounds(); x2 != 4 || y2 != 6 {
		t.Fatalf("selection corner at (%d,%d), want (4,6)", x2, y2)
	}

	s.PointerUp(4, 6)
	sel, ok = s.Selection()
	if !ok || sel.Width() != 4 || sel.Height() != 6 {
		t.Fatalf("final selection %dx%d, want 4x6", sel.Width(), sel.Height())
	}
}

func TestCutBlanksSource(t *testing.T) {
	s := newTestSession()
	s.SetTool(tools.Freehand)
	s.PointerDown(5, 5)
	s.PointerUp(5, 5)

	s.SetTool(tools.Select)
	s.PointerDown(5, 5)
	s.PointerUp(5, 5)

	if !s.CutSelection() {
		t.Fatal("cut failed")
	}
	if charAt(t, s, 5, 5) != ' ' {
		t.Fatal("cut did not blank the source")
	}
	if _, ok := s.Selection(); ok {
		t.Fatal("cut should drop the selection")
	}

	s.Undo()
	if charAt(t, s, 5, 5) != '*' {
		t.Fatal("undo should restore the cut content")
	}
}

func TestMoveSelectionIsAtomic(t *testing.T) {
	s := newTestSession()
	s.SetTool(tools.Freehand)
	s.PointerDown(2, 2)
	s.PointerUp(2, 2)

	s.SetTool(tools.Select)
	s.PointerDown(2, 2)
	s.PointerUp(2, 2)

	// Drag from inside the selection to move it.
	s.PointerDown(2, 2)
	s.PointerMove(5, 5)
	s.PointerUp(5, 5)

	if charAt(t, s, 5, 5) != '*' {
		t.Fatal("content did not move to the target")
	}
	if charAt(t, s, 2, 2) != ' ' {
		t.Fatal("source was not blanked")
	}
	sel, ok := s.Selection()
	if !ok {
		t.Fatal("selection dropped by move")
	}
	if x1, y1, _, _ := sel.Bounds(); x1 != 5 || y1 != 5 {
		t.Fatalf("selection at (%d,%d), want (5,5)", x1, y1)
	}

	if !s.Undo() {
		t.Fatal("undo failed")
	}
	if charAt(t, s, 2, 2) != '*' || charAt(t, s, 5, 5) != ' ' {
		t.Fatal("move must undo as one atomic step")
	}
}

func TestDeleteSelection(t *testing.T) {
	s := newTestSession()
	s.SetTool(tools.Freehand)
	s.PointerDown(3, 3)
	s.PointerUp(3, 3)

	s.SetTool(tools.Select)
	s.PointerDown(3, 3)
	s.PointerUp(3, 3)

	if !s.DeleteSelection() {
		t.Fatal("delete failed")
	}
	if charAt(t, s, 3, 3) != ' ' {
		t.Fatal("delete did not blank the region")
	}
}

func TestSwitchingToolDropsSelection(t *testing.T) {
	s := newTestSession()
	s.SetTool(tools.Select)
	s.PointerDown(1, 1)
	s.PointerUp(3, 3)

	s.SetTool(tools.Line)
	if _, ok := s.Selection(); ok {
		t.Fatal("selection should drop when leaving the select tool")
	}
}

func TestClearIsUndoable(t *testing.T) {
	s := newTestSession()
	s.SetTool(tools.Freehand)
	s.PointerDown(4, 4)
	s.PointerUp(4, 4)

	s.Clear()
	if charAt(t, s, 4, 4) != ' ' {
		t.Fatal("clear did not blank the canvas")
	}
	s.Undo()
	if charAt(t, s, 4, 4) != '*' {
		t.Fatal("clear should undo")
	}
}

func TestHardResetWipesEverything(t *testing.T) {
	s := newTestSession()
	s.SetTool(tools.Freehand)
	s.PointerDown(4, 4)
	s.PointerUp(4, 4)

	s.HardReset()
	if charAt(t, s, 4, 4) != ' ' {
		t.Fatal("hard reset did not blank the canvas")
	}
	if s.CanUndo() || s.HasClipboard() {
		t.Fatal("hard reset should wipe history and clipboard")
	}
}

func TestResizeDropsOutsideContent(t *testing.T) {
	s := newTestSession()
	s.SetTool(tools.Freehand)
	s.PointerDown(15, 15)
	s.PointerUp(15, 15)
	s.PointerDown(2, 2)
	s.PointerUp(2, 2)

	s.Resize(10, 10)
	if s.Grid().Width() != 10 || s.Grid().Height() != 10 {
		t.Fatal("resize did not change dimensions")
	}
	if charAt(t, s, 2, 2) != '*' {
		t.Fatal("resize lost content inside the new bounds")
	}
	if _, ok := s.Grid().Get(15, 15); ok {
		t.Fatal("resize kept cells outside the new bounds")
	}
}

func TestEraserGesture(t *testing.T) {
	s := newTestSession()
	s.SetTool(tools.Freehand)
	s.PointerDown(5, 5)
	s.PointerUp(5, 5)

	s.SetTool(tools.Eraser)
	s.SetEraserSize(2)
	s.PointerDown(5, 5)
	s.PointerUp(5, 5)

	if charAt(t, s, 5, 5) != ' ' {
		t.Fatal("eraser did not blank the cell")
	}
	s.Undo()
	if charAt(t, s, 5, 5) != '*' {
		t.Fatal("erase should undo")
	}
}

func TestSessionEvents(t *testing.T) {
	s := newTestSession()
	mgr := event.NewManager()
	s.SetEventManager(mgr)

	var toolChanges, commands, historyChanges int
	mgr.Subscribe(event.TypeToolChanged, func(e event.Event) bool {
		toolChanges++
		return false
	})
	mgr.Subscribe(event.TypeCommandApplied, func(e event.Event) bool {
		commands++
		return false
	})
	mgr.Subscribe(event.TypeHistoryChanged, func(e event.Event) bool {
		historyChanges++
		return false
	})

	s.SetTool(tools.Line)
	s.PointerDown(0, 0)
	s.PointerUp(4, 0)

	if toolChanges != 1 {
		t.Fatalf("tool change events = %d, want 1", toolChanges)
	}
	if commands != 1 {
		t.Fatalf("command events = %d, want 1", commands)
	}
	if historyChanges == 0 {
		t.Fatal("history change event missing")
	}
}

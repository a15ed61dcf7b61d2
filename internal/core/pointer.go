// internal/core/pointer.go
package core

import (
	"github.com/bethropolis/sketch/internal/logger"
	"github.com/bethropolis/sketch/internal/tools"
)

// PointerDown routes a pointer-down event to the active tool.
func (s *Session) PointerDown(x, y int) {
	ctx := s.toolContext()
	result := s.tool.PointerDown(x, y, ctx)

	s.setPreview(result, false)

	if result.Finished {
		s.previewOps = s.previewOps[:0]
		if result.Modified {
			s.commit(result.Ops)
		}
	}
	s.syncSelectGesture()
}

// PointerMove routes a pointer-move event to the active tool. Shape tools
// replace the preview wholesale; stroke tools emit deltas that accumulate
// so the whole stroke stays visible until commit.
func (s *Session) PointerMove(x, y int) {
	ctx := s.toolContext()
	result := s.tool.PointerMove(x, y, ctx)

	s.setPreview(result, s.accumulatesPreview())
	s.syncSelectGesture()
}

// PointerUp routes a pointer-up event to the active tool and commits the
// finished gesture, if any.
func (s *Session) PointerUp(x, y int) {
	ctx := s.toolContext()
	result := s.tool.PointerUp(x, y, ctx)

	s.previewOps = s.previewOps[:0]
	s.tracker.RequestFull()

	if st, ok := s.tool.(*tools.SelectTool); ok {
		s.finishSelectGesture(st)
		return
	}

	if result.Modified {
		s.commit(result.Ops)
	}
}

// KeyPress routes a typed character to the active tool. Only the text
// tool consumes keys; its results stay staged as preview until flushed.
func (s *Session) KeyPress(ch rune) {
	ctx := s.toolContext()
	result := s.tool.KeyPress(ch, ctx)

	if result.Finished && result.Modified {
		s.commit(result.Ops)
		return
	}
	if result.Modified {
		s.previewOps = append(s.previewOps, result.Ops...)
	}
}

// accumulatesPreview reports whether the active tool emits delta ops that
// must pile up in the overlay rather than replace it.
func (s *Session) accumulatesPreview() bool {
	switch s.toolID {
	case tools.Freehand, tools.Eraser, tools.Text:
		return true
	}
	return false
}

func (s *Session) setPreview(result tools.Result, accumulate bool) {
	if result.Finished {
		return
	}
	if accumulate {
		s.previewOps = append(s.previewOps, result.Ops...)
		if len(result.Ops) > 0 {
			for _, op := range result.Ops {
				s.tracker.Mark(op.X, op.Y)
			}
		}
		return
	}
	if len(result.Ops) > 0 || len(s.previewOps) > 0 {
		s.tracker.RequestFull()
	}
	s.previewOps = append(s.previewOps[:0], result.Ops...)
}

// syncSelectGesture mirrors the select tool's in-progress rectangle into
// the session so the highlight tracks the drag live.
func (s *Session) syncSelectGesture() {
	st, ok := s.tool.(*tools.SelectTool)
	if !ok {
		return
	}
	sel, has := st.Selection()
	if !has || (has == s.hasSelection && sel == s.sel) {
		return
	}
	s.setSelection(sel, true)
}

// finishSelectGesture reconciles the select tool's state after pointer-up:
// a completed drag-move translates the selected region through history, a
// plain drag just records the new selection.
func (s *Session) finishSelectGesture(st *tools.SelectTool) {
	if dx, dy, moved := st.TakeMoveDelta(); moved && s.hasSelection {
		s.moveSelection(st, dx, dy)
		return
	}

	sel, has := st.Selection()
	s.setSelection(sel, has)
	if has {
		logger.Debugf("Session: selection %dx%d", sel.Width(), sel.Height())
	}
}

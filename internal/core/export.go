// internal/core/export.go
package core

import (
	"github.com/bethropolis/sketch/internal/export"
)

// ExportAscii renders the canvas to text with the given options.
func (s *Session) ExportAscii(opts export.Options) string {
	return export.Grid(s.grid, opts)
}

// ExportSelection renders the selected region to text. ok is false when
// nothing is selected.
func (s *Session) ExportSelection() (string, bool) {
	if !s.hasSelection {
		return "", false
	}
	x1, y1, x2, y2 := s.sel.Bounds()
	return export.Region(s.grid, x1, y1, x2, y2), true
}

// ContentCount returns the number of visible cells on the canvas.
func (s *Session) ContentCount() int {
	return export.CountContent(s.grid)
}

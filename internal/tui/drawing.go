// internal/tui/drawing.go
package tui

import (
	"github.com/bethropolis/sketch/internal/core"
	"github.com/bethropolis/sketch/internal/dirty"
	"github.com/bethropolis/sketch/internal/theme"
	"github.com/bethropolis/sketch/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawCanvas renders the visible portion of the session's canvas,
// the in-flight preview overlay and the selection highlight.
func DrawCanvas(tuiManager *TUI, session *core.Session, activeTheme *theme.Theme) {
	g := session.Grid()
	DrawCanvasRegion(tuiManager, session, activeTheme, dirty.FromPoints(0, 0, g.Width()-1, g.Height()-1))
}

// DrawCanvasRegion repaints only the cells inside region, for redraws
// driven by the dirty tracker.
func DrawCanvasRegion(tuiManager *TUI, session *core.Session, activeTheme *theme.Theme, region dirty.Rect) {
	if activeTheme == nil {
		activeTheme = theme.GetCurrentTheme()
	}
	if region.IsEmpty() {
		return
	}

	canvasStyle := activeTheme.GetStyle("Canvas")
	previewStyle := activeTheme.GetStyle("Preview")
	selectionStyle := activeTheme.GetStyle("Selection")

	screen := tuiManager.GetScreen()
	width, height := tuiManager.Size()
	statusBarHeight := 1
	viewHeight := height - statusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	g := session.Grid()
	sel, selActive := session.Selection()

	drawW := g.Width()
	if drawW > width {
		drawW = width
	}
	drawH := g.Height()
	if drawH > viewHeight {
		drawH = viewHeight
	}

	region.Clamp(drawW, drawH)

	for y := region.Y1; y <= region.Y2; y++ {
		for x := region.X1; x <= region.X2; x++ {
			cell, ok := g.Get(x, y)
			if !ok {
				continue
			}
			style := canvasStyle
			if selActive && sel.Contains(x, y) {
				style = selectionStyle
			}
			drawCell(screen, x, y, cell, style, width)
		}
	}

	// Preview ops sit on top of committed content.
	for _, op := range session.PreviewOps() {
		if op.X < 0 || op.X >= drawW || op.Y < 0 || op.Y >= drawH {
			continue
		}
		style := previewStyle
		if selActive && sel.Contains(op.X, op.Y) {
			style = selectionStyle
		}
		drawCell(screen, op.X, op.Y, op.Cell, style, width)
	}
}

// drawCell paints a single canvas cell, padding the trailing column of
// wide glyphs so tcell does not smear neighbours.
func drawCell(screen tcell.Screen, x, y int, cell types.Cell, style tcell.Style, screenWidth int) {
	ch := cell.Ch
	if ch == 0 {
		ch = ' '
	}
	st := style
	if cell.Style.Has(types.StyleBold) {
		st = st.Bold(true)
	}
	if cell.Style.Has(types.StyleItalic) {
		st = st.Italic(true)
	}
	if cell.Style.Has(types.StyleUnderline) {
		st = st.Underline(true)
	}
	if cell.Style.Has(types.StyleHighlight) {
		st = st.Reverse(true)
	}

	screen.SetContent(x, y, ch, nil, st)
	if runewidth.RuneWidth(ch) > 1 && x+1 < screenWidth {
		screen.SetContent(x+1, y, ' ', nil, st)
	}
}

// DrawCursor positions the terminal cursor at the text tool's insertion
// point, hiding it for every other tool.
func DrawCursor(tuiManager *TUI, session *core.Session) {
	x, y, ok := session.TextCursor()
	if !ok {
		tuiManager.GetScreen().HideCursor()
		return
	}

	width, height := tuiManager.Size()
	statusBarHeight := 1
	if x < 0 || x >= width || y < 0 || y >= height-statusBarHeight {
		tuiManager.GetScreen().HideCursor()
		return
	}
	tuiManager.GetScreen().ShowCursor(x, y)
}

// internal/app/app.go
package app

import (
	"fmt"
	"os"

	"github.com/bethropolis/sketch/internal/clipboard"
	"github.com/bethropolis/sketch/internal/config"
	"github.com/bethropolis/sketch/internal/core"
	"github.com/bethropolis/sketch/internal/event"
	"github.com/bethropolis/sketch/internal/export"
	"github.com/bethropolis/sketch/internal/input"
	"github.com/bethropolis/sketch/internal/logger"
	"github.com/bethropolis/sketch/internal/statusbar"
	"github.com/bethropolis/sketch/internal/theme"
	"github.com/bethropolis/sketch/internal/tools"
	"github.com/bethropolis/sketch/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App wires the drawing session to the terminal: input translation,
// rendering, status reporting and file export.
type App struct {
	tuiManager     *tui.TUI
	session        *core.Session
	statusBar      *statusbar.StatusBar
	eventManager   *event.Manager
	inputProcessor *input.InputProcessor
	themeManager   *theme.Manager
	sysClipboard   *clipboard.Bridge
	exportPath     string

	quit          chan struct{}
	redrawRequest chan struct{}

	mouseDown  bool
	lastMouseX int
	lastMouseY int
}

// NewApp creates and initializes a new application instance.
func NewApp(cfg *config.Config, exportPath string) (*App, error) {
	themeManager := theme.NewManager()
	theme.SetCurrentTheme(themeManager.Current())

	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	glyph := []rune(cfg.Editor.FreehandGlyph)[0]
	session := core.NewSession(core.Options{
		Width:         cfg.Editor.GridWidth,
		Height:        cfg.Editor.GridHeight,
		HistoryDepth:  cfg.Editor.HistoryDepth,
		FreehandGlyph: glyph,
		EraserSize:    cfg.Editor.EraserSize,
		Border:        tools.ParseBorderStyle(cfg.Editor.BorderStyle),
	})

	eventManager := event.NewManager()
	session.SetEventManager(eventManager)

	if exportPath == "" {
		exportPath = "sketch.txt"
	}

	appInstance := &App{
		tuiManager:     tuiManager,
		session:        session,
		statusBar:      statusbar.New(statusbar.DefaultConfig()),
		eventManager:   eventManager,
		inputProcessor: input.NewInputProcessor(),
		themeManager:   themeManager,
		sysClipboard:   clipboard.NewBridge(cfg.Editor.SystemClipboard),
		exportPath:     exportPath,
		quit:           make(chan struct{}),
		redrawRequest:  make(chan struct{}, 1),
	}

	appInstance.subscribeEvents()

	return appInstance, nil
}

// Run starts the application's main event and drawing loops.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("Sketch - R/L/A/D/F/T/E/V tools | Ctrl+Z undo | Ctrl+S export | Ctrl+Q quit")
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("Exiting application.")
			return nil
		case <-a.redrawRequest:
			a.draw()
		}
	}
}

// eventLoop handles TUI events and translates them into session calls.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false

		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.GetScreen().Sync()
			a.session.Tracker().RequestFull()
			needsRedraw = true

		case *tcell.EventKey:
			needsRedraw = a.handleKeyEvent(eventData)

		case *tcell.EventMouse:
			needsRedraw = a.handleMouseEvent(eventData)
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// handleMouseEvent forwards left-button gestures to the session.
func (a *App) handleMouseEvent(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !a.mouseDown:
		a.mouseDown = true
		a.lastMouseX, a.lastMouseY = x, y
		a.session.PointerDown(x, y)
		return true
	case pressed && a.mouseDown:
		if x == a.lastMouseX && y == a.lastMouseY {
			return false
		}
		a.lastMouseX, a.lastMouseY = x, y
		a.session.PointerMove(x, y)
		return true
	case !pressed && a.mouseDown:
		a.mouseDown = false
		a.session.PointerUp(x, y)
		return true
	}
	return false
}

// handleKeyEvent translates a key event into a session operation.
func (a *App) handleKeyEvent(ev *tcell.EventKey) bool {
	action := a.inputProcessor.ProcessEvent(ev)

	switch action.Action {
	case input.ActionQuit:
		close(a.quit)
		return false

	case input.ActionCancel:
		a.session.Cancel()
		return true

	case input.ActionUndo:
		if a.session.Undo() {
			a.statusBar.SetTemporaryMessage("Undo")
		}
		return true

	case input.ActionRedo:
		if a.session.Redo() {
			a.statusBar.SetTemporaryMessage("Redo")
		}
		return true

	case input.ActionCopy:
		a.copySelectionOrCanvas()
		return true

	case input.ActionCut:
		if a.session.CutSelection() {
			a.statusBar.SetTemporaryMessage("Cut selection")
		}
		return true

	case input.ActionPaste:
		a.paste()
		return true

	case input.ActionClearCanvas:
		a.session.Clear()
		a.statusBar.SetTemporaryMessage("Canvas cleared")
		return true

	case input.ActionExport:
		a.exportToFile()
		return true

	case input.ActionBackspace:
		a.session.KeyPress(tools.KeyBackspace)
		return true

	case input.ActionDeleteForward:
		if _, ok := a.session.Selection(); ok && a.session.ToolID() == tools.Select {
			if a.session.DeleteSelection() {
				a.statusBar.SetTemporaryMessage("Selection deleted")
			}
			return true
		}
		a.session.KeyPress(tools.KeyDelete)
		return true

	case input.ActionInsertNewLine:
		a.session.KeyPress(tools.KeyNewline)
		return true

	case input.ActionTypeRune:
		return a.handleRune(action.Rune)
	}

	return false
}

// handleRune routes a plain rune either to the text tool or to tool
// shortcut switching.
func (a *App) handleRune(ch rune) bool {
	if a.session.ToolID() == tools.Text && a.session.ToolActive() {
		a.session.KeyPress(ch)
		return true
	}
	if a.session.ToolActive() || a.mouseDown {
		return false
	}
	if id, ok := tools.FromShortcut(ch); ok {
		a.session.SetTool(id)
		return true
	}
	return false
}

// copySelectionOrCanvas copies the selection when one exists, otherwise
// the trimmed canvas, mirroring both to the system clipboard.
func (a *App) copySelectionOrCanvas() {
	if _, ok := a.session.Selection(); ok && a.session.ToolID() == tools.Select {
		if a.session.CopySelection() {
			if text, ok := a.session.ExportSelection(); ok {
				if err := a.sysClipboard.Write(text); err == nil {
					a.statusBar.SetTemporaryMessage("Selection copied")
					return
				}
			}
			a.statusBar.SetTemporaryMessage("Selection copied (internal)")
		}
		return
	}

	text := a.session.ExportAscii(export.DefaultOptions())
	if text == "" {
		a.statusBar.SetTemporaryMessage("Nothing to copy")
		return
	}
	if err := a.sysClipboard.Write(text); err != nil {
		a.statusBar.SetTemporaryMessage("Copy failed: %v", err)
		return
	}
	a.statusBar.SetTemporaryMessage("Canvas copied")
}

// paste prefers the internal cell clipboard, falling back to importing
// plain text from the system clipboard.
func (a *App) paste() {
	// Anchor at the last selection's origin when one exists.
	anchorX, anchorY := 0, 0
	if sel, ok := a.session.Selection(); ok {
		anchorX, anchorY, _, _ = sel.Bounds()
	}

	if a.session.HasClipboard() {
		if a.session.PasteAt(anchorX, anchorY) {
			a.statusBar.SetTemporaryMessage("Pasted")
		}
		return
	}

	text, err := a.sysClipboard.Read()
	if err != nil || text == "" {
		a.statusBar.SetTemporaryMessage("Clipboard is empty")
		return
	}
	ops := clipboard.ImportText(text, anchorX, anchorY)
	if a.session.Stamp(ops, "Paste text") {
		a.statusBar.SetTemporaryMessage("Text pasted")
	} else {
		a.statusBar.SetTemporaryMessage("Nothing to paste")
	}
}

// exportToFile writes the trimmed canvas to the export path.
func (a *App) exportToFile() {
	text := a.session.ExportAscii(export.DefaultOptions())
	if text == "" {
		a.statusBar.SetTemporaryMessage("Canvas is empty, nothing exported")
		return
	}
	if err := os.WriteFile(a.exportPath, []byte(text+"\n"), 0644); err != nil {
		logger.Errorf("Export failed: %v", err)
		a.statusBar.SetTemporaryMessage("Export failed: %v", err)
		return
	}
	logger.Infof("Exported canvas to %s", a.exportPath)
	a.statusBar.SetTemporaryMessage("Exported to %s", a.exportPath)
}

// draw repaints the screen, restricted to the dirty rectangle when the
// tracker allows it.
func (a *App) draw() {
	a.updateStatusBarContent()

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	activeTheme := a.themeManager.Current()

	tracker := a.session.Tracker()
	if tracker.NeedsFull() {
		a.tuiManager.Clear()
		tui.DrawCanvas(a.tuiManager, a.session, activeTheme)
	} else {
		tui.DrawCanvasRegion(a.tuiManager, a.session, activeTheme, tracker.Rect())
	}
	a.statusBar.Draw(screen, width, height, activeTheme)
	tui.DrawCursor(a.tuiManager, a.session)
	a.tuiManager.Show()
	tracker.Clear()
}

// updateStatusBarContent pushes current session state to the status bar.
func (a *App) updateStatusBarContent() {
	g := a.session.Grid()
	a.statusBar.SetToolInfo(a.session.ToolID().Name())
	a.statusBar.SetBorderInfo(a.session.BorderStyle().Name())
	a.statusBar.SetCanvasInfo(g.Width(), g.Height())
	a.statusBar.SetHistoryInfo(a.session.UndoDepth(), a.session.RedoDepth())
	_, hasSel := a.session.Selection()
	a.statusBar.SetSelectionInfo(hasSel, a.session.HasClipboard())
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // a redraw is already pending
	}
}

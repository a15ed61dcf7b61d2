package app

import (
	"github.com/bethropolis/sketch/internal/event"
	"github.com/bethropolis/sketch/internal/logger"
)

// subscribeEvents wires the status bar and log to session events.
func (a *App) subscribeEvents() {
	a.eventManager.Subscribe(event.TypeToolChanged, a.handleToolChanged)
	a.eventManager.Subscribe(event.TypeHistoryChanged, a.handleHistoryChanged)
	a.eventManager.Subscribe(event.TypeSelectionChanged, a.handleSelectionChanged)
	a.eventManager.Subscribe(event.TypeClipboardChanged, a.handleClipboardChanged)
	a.eventManager.Subscribe(event.TypeGridResized, a.handleGridResized)
	a.eventManager.Subscribe(event.TypeGridCleared, a.handleGridCleared)
	a.eventManager.Subscribe(event.TypeCommandApplied, a.handleCommandApplied)
	a.eventManager.Subscribe(event.TypeStatusMessage, a.handleStatusMessage)
}

func (a *App) handleToolChanged(e event.Event) bool {
	if data, ok := e.Data.(event.ToolChangedData); ok {
		a.statusBar.SetToolInfo(data.Tool.Name())
		a.statusBar.SetTemporaryMessage("%s tool", data.Tool.Name())
	}
	return false
}

func (a *App) handleHistoryChanged(e event.Event) bool {
	if data, ok := e.Data.(event.HistoryChangedData); ok {
		a.statusBar.SetHistoryInfo(data.UndoDepth, data.RedoDepth)
	}
	return false
}

func (a *App) handleSelectionChanged(e event.Event) bool {
	if data, ok := e.Data.(event.SelectionChangedData); ok {
		a.statusBar.SetSelectionInfo(data.Active, a.session.HasClipboard())
	}
	return false
}

func (a *App) handleClipboardChanged(e event.Event) bool {
	if data, ok := e.Data.(event.ClipboardChangedData); ok {
		logger.DebugTagf("app", "Clipboard now holds %dx%d region", data.Width, data.Height)
		_, hasSel := a.session.Selection()
		a.statusBar.SetSelectionInfo(hasSel, true)
	}
	return false
}

func (a *App) handleGridResized(e event.Event) bool {
	if data, ok := e.Data.(event.GridResizedData); ok {
		a.statusBar.SetCanvasInfo(data.Width, data.Height)
		a.statusBar.SetTemporaryMessage("Canvas resized to %dx%d", data.Width, data.Height)
	}
	return false
}

func (a *App) handleGridCleared(e event.Event) bool {
	a.requestRedraw()
	return false
}

func (a *App) handleCommandApplied(e event.Event) bool {
	if data, ok := e.Data.(event.CommandAppliedData); ok {
		logger.DebugTagf("app", "Applied: %s (%d ops)", data.Description, data.OpCount)
	}
	return false
}

func (a *App) handleStatusMessage(e event.Event) bool {
	if data, ok := e.Data.(event.StatusMessageData); ok {
		a.statusBar.SetTemporaryMessage("%s", data.Message)
	}
	return false
}

// internal/event/event.go
package event

import (
	"github.com/bethropolis/sketch/internal/selection"
	"github.com/bethropolis/sketch/internal/tools"
)

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Core Session Events
	TypeCommandApplied   // Fired after a command mutates the grid
	TypeHistoryChanged   // Fired when undo/redo availability changes
	TypeToolChanged      // Fired when the active tool switches
	TypeSelectionChanged // Fired when the selection is created, moved or dropped
	TypeGridResized      // Fired after the canvas is resized
	TypeGridCleared      // Fired after the canvas is cleared wholesale
	TypeClipboardChanged // Fired when the internal clipboard content changes

	// Application Lifecycle Events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before application termination begins

	TypeStatusMessage // Fired to surface a transient message on the status bar
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// --- Specific Event Data Structures ---

// CommandAppliedData describes the mutation that just ran.
type CommandAppliedData struct {
	Description string
	OpCount     int
}

// HistoryChangedData carries the new undo/redo availability.
type HistoryChangedData struct {
	CanUndo   bool
	CanRedo   bool
	UndoDepth int
	RedoDepth int
}

// ToolChangedData carries the new active tool.
type ToolChangedData struct {
	Tool tools.ID
}

// SelectionChangedData carries the new selection; Active is false when the
// selection was dropped.
type SelectionChangedData struct {
	Selection selection.Selection
	Active    bool
}

// GridResizedData carries the new canvas dimensions.
type GridResizedData struct {
	Width  int
	Height int
}

// ClipboardChangedData reports the size of the copied region.
type ClipboardChangedData struct {
	Width  int
	Height int
}

// StatusMessageData carries a transient user-facing message.
type StatusMessageData struct {
	Message string
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}

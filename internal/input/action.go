// internal/input/action.go
package input

// Action represents an operation requested through the keyboard.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit
	ActionCancel

	// History
	ActionUndo
	ActionRedo

	// Selection and clipboard
	ActionCopy
	ActionCut
	ActionPaste
	ActionDeleteSelection

	// Canvas
	ActionClearCanvas
	ActionExport

	// Tool interaction
	ActionSelectTool    // Rune carries the tool shortcut
	ActionTypeRune      // Rune carries the character for the text tool
	ActionInsertNewLine // Enter while typing
	ActionBackspace
	ActionDeleteForward
)

// ActionEvent is a decoded input event. Rune carries payload data for
// actions that need it.
type ActionEvent struct {
	Action Action
	Rune   rune
}

// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to actions.
type Keymap map[tcell.Key]Action
type ModKeymap map[tcell.ModMask]Keymap // keys combined with modifiers

// InputProcessor translates tcell key events into ActionEvents.
// Plain runes come back as ActionTypeRune; the app decides whether they
// mean a tool shortcut or text input depending on the active tool.
type InputProcessor struct {
	keymap    Keymap
	modKeymap ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:    make(Keymap),
		modKeymap: make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the initial key mappings.
func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyEscape] = ActionCancel
	p.keymap[tcell.KeyBackspace] = ActionBackspace
	p.keymap[tcell.KeyBackspace2] = ActionBackspace
	p.keymap[tcell.KeyDelete] = ActionDeleteForward
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine

	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyCtrlQ] = ActionQuit
	ctrlMap[tcell.KeyCtrlZ] = ActionUndo
	ctrlMap[tcell.KeyCtrlY] = ActionRedo
	ctrlMap[tcell.KeyCtrlC] = ActionCopy
	ctrlMap[tcell.KeyCtrlX] = ActionCut
	ctrlMap[tcell.KeyCtrlV] = ActionPaste
	ctrlMap[tcell.KeyCtrlN] = ActionClearCanvas
	ctrlMap[tcell.KeyCtrlS] = ActionExport
	p.modKeymap[tcell.ModCtrl] = ctrlMap

	// Ctrl+Shift+Z is the common redo chord alongside Ctrl+Y.
	ctrlShiftMap := make(Keymap)
	ctrlShiftMap[tcell.KeyCtrlZ] = ActionRedo
	p.modKeymap[tcell.ModCtrl|tcell.ModShift] = ctrlShiftMap
}

// Bind overrides or adds a binding for a plain key.
func (p *InputProcessor) Bind(key tcell.Key, action Action) {
	p.keymap[key] = action
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	if modKeyMap, modOk := p.modKeymap[mod]; modOk {
		if action, keyOk := modKeyMap[key]; keyOk {
			return ActionEvent{Action: action}
		}
	}
	// tcell reports Ctrl+letter as a dedicated Key with ModCtrl set; strip
	// the modifier so the plain keymap check below still works.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	if key == tcell.KeyRune && (mod == tcell.ModNone || mod == tcell.ModShift) {
		return ActionEvent{Action: ActionTypeRune, Rune: ev.Rune()}
	}

	return ActionEvent{Action: ActionUnknown}
}

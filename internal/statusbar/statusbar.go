// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/sketch/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the behavior of the status bar.
type Config struct {
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar renders the bottom status line: active tool, canvas size,
// undo depth and transient messages.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	toolName     string
	borderName   string
	canvasWidth  int
	canvasHeight int
	undoDepth    int
	redoDepth    int
	hasSelection bool
	hasClipboard bool

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config}
}

// SetToolInfo updates the displayed tool name.
func (sb *StatusBar) SetToolInfo(name string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.toolName = name
}

// SetBorderInfo updates the displayed rectangle border style.
func (sb *StatusBar) SetBorderInfo(name string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.borderName = name
}

// SetCanvasInfo updates the displayed canvas dimensions.
func (sb *StatusBar) SetCanvasInfo(width, height int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.canvasWidth = width
	sb.canvasHeight = height
}

// SetHistoryInfo updates the undo and redo depths.
func (sb *StatusBar) SetHistoryInfo(undoDepth, redoDepth int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.undoDepth = undoDepth
	sb.redoDepth = redoDepth
}

// SetSelectionInfo updates the selection and clipboard indicators.
func (sb *StatusBar) SetSelectionInfo(hasSelection, hasClipboard bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.hasSelection = hasSelection
	sb.hasClipboard = hasClipboard
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// getDefaultDisplayText builds the default status line text.
func (sb *StatusBar) getDefaultDisplayText() string {
	tool := sb.toolName
	if tool == "" {
		tool = "none"
	}
	indicators := ""
	if sb.hasSelection {
		indicators += " [sel]"
	}
	if sb.hasClipboard {
		indicators += " [clip]"
	}
	border := ""
	if sb.borderName != "" {
		border = " | " + sb.borderName
	}
	return fmt.Sprintf(" %s%s | %dx%d | undo:%d redo:%d%s",
		tool, border, sb.canvasWidth, sb.canvasHeight, sb.undoDepth, sb.redoDepth, indicators)
}

// Draw renders the status bar onto the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int, activeTheme *theme.Theme) {
	if height <= 0 || width <= 0 {
		return
	}
	if activeTheme == nil {
		activeTheme = theme.GetCurrentTheme()
	}
	y := height - 1

	sb.mu.Lock()
	isTempMsgActive := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !isTempMsgActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	var style tcell.Style
	var text string
	if isTempMsgActive {
		text = sb.tempMessage
		style = activeTheme.GetStyle("StatusBarMessage")
	} else {
		text = sb.getDefaultDisplayText()
		style = activeTheme.GetStyle("StatusBar")
	}
	sb.mu.Unlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	// uniseg gives cluster-accurate visual widths.
	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			var combining []rune
			if len(runes) > 1 {
				combining = runes[1:]
			}
			screen.SetContent(currentX, y, runes[0], combining, style)
		}
		currentX += clusterWidth
	}
}

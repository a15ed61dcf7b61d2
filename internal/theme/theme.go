// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/sketch/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Theme maps UI element names to terminal styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle resolves a style by name, falling back to the base name
// before the first dot, then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	baseName := name
	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName = name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles["Default"]; ok {
		if name != "Default" {
			logger.Debugf("Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// --- Charcoal Dark Theme Definition ---

var CharcoalDark Theme

func init() {
	bg := tcell.NewHexColor(0x2a2f38)    // status bar background
	fg := tcell.NewHexColor(0xc5cdd9)    // soft off-white
	dim := tcell.NewHexColor(0x5c6370)   // muted grey
	amber := tcell.NewHexColor(0xd19a66) // preview strokes
	green := tcell.NewHexColor(0x98c379)
	cyan := tcell.NewHexColor(0x56b6c2)

	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(fg)

	CharcoalDark = Theme{
		Name:   "Charcoal Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			"Default":          baseStyle,
			"Canvas":           baseStyle,
			"CanvasEmpty":      baseStyle.Foreground(dim),
			"Preview":          baseStyle.Foreground(amber),
			"Selection":        baseStyle.Reverse(true),
			"SelectionBorder":  baseStyle.Foreground(cyan).Bold(true),
			"TextCursor":       baseStyle.Reverse(true).Bold(true),
			"StatusBar":        tcell.StyleDefault.Background(bg).Foreground(fg),
			"StatusBarTool":    tcell.StyleDefault.Background(bg).Foreground(cyan).Bold(true),
			"StatusBarMessage": tcell.StyleDefault.Background(bg).Foreground(fg).Bold(true),
			"StatusBarSaved":   tcell.StyleDefault.Background(bg).Foreground(green).Bold(true),
		},
	}

	CurrentTheme = &CharcoalDark
}

var CurrentTheme *Theme

func GetCurrentTheme() *Theme {
	if CurrentTheme == nil {
		CurrentTheme = &CharcoalDark
	}
	return CurrentTheme
}

func SetCurrentTheme(theme *Theme) {
	if theme != nil {
		CurrentTheme = theme
		logger.Infof("Theme switched to: %s", theme.Name)
	}
}

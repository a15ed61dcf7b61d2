// internal/clipboard/clipboard.go
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/sketch/internal/logger"
)

// Bridge moves exported text between the editor and the system clipboard.
// When the system clipboard is unavailable (headless terminals, missing
// xclip/xsel) it falls back to an in-process buffer so copy and paste of
// rendered text keep working inside the session.
type Bridge struct {
	mu       sync.Mutex
	useSys   bool
	fallback string
}

// NewBridge creates a bridge. useSystem requests the OS clipboard.
func NewBridge(useSystem bool) *Bridge {
	if useSystem && clipboard.Unsupported {
		logger.Warnf("System clipboard unsupported on this platform, using internal buffer")
		useSystem = false
	}
	return &Bridge{useSys: useSystem}
}

// Write stores text on the clipboard.
func (b *Bridge) Write(text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.useSys {
		if err := clipboard.WriteAll(text); err != nil {
			logger.Warnf("System clipboard write failed, keeping internal copy: %v", err)
			b.fallback = text
			return err
		}
		return nil
	}
	b.fallback = text
	return nil
}

// Read returns the current clipboard text.
func (b *Bridge) Read() (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.useSys {
		text, err := clipboard.ReadAll()
		if err != nil {
			logger.Warnf("System clipboard read failed, using internal copy: %v", err)
			return b.fallback, err
		}
		return text, nil
	}
	return b.fallback, nil
}

// UsingSystem reports whether the OS clipboard is in use.
func (b *Bridge) UsingSystem() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.useSys
}

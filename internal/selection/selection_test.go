package selection

import (
	"testing"

	"github.com/bethropolis/sketch/internal/types"
)

func TestBoundsNormalize(t *testing.T) {
	s := New(5, 6, 2, 3)
	x1, y1, x2, y2 := s.Bounds()
	if x1 != 2 || y1 != 3 || x2 != 5 || y2 != 6 {
		t.Fatalf("bounds = (%d,%d)-(%d,%d), want (2,3)-(5,6)", x1, y1, x2, y2)
	}
}

func TestSizeIsInclusive(t *testing.T) {
	s := New(2, 3, 5, 6)
	if s.Width() != 4 || s.Height() != 4 || s.Area() != 16 {
		t.Fatalf("size = %dx%d area %d, want 4x4 16", s.Width(), s.Height(), s.Area())
	}

	p := New(7, 7, 7, 7)
	if p.Width() != 1 || p.Height() != 1 || !p.IsPoint() {
		t.Fatal("a single-cell selection has size 1x1")
	}
}

func TestContains(t *testing.T) {
	s := New(5, 6, 2, 3)
	if !s.Contains(2, 3) || !s.Contains(5, 6) || !s.Contains(3, 4) {
		t.Fatal("selection should contain its corners and interior")
	}
	if s.Contains(1, 3) || s.Contains(6, 6) {
		t.Fatal("selection must not contain outside cells")
	}
}

func TestTranslated(t *testing.T) {
	s := New(2, 3, 5, 6).Translated(3, -2)
	x1, y1, x2, y2 := s.Bounds()
	if x1 != 5 || y1 != 1 || x2 != 8 || y2 != 4 {
		t.Fatalf("translated bounds = (%d,%d)-(%d,%d)", x1, y1, x2, y2)
	}
}

func TestClipboard(t *testing.T) {
	var c Clipboard
	if !c.IsEmpty() {
		t.Fatal("zero clipboard should be empty")
	}

	c.Cells = []ClipboardCell{{DX: 0, DY: 0, Cell: types.NewCell('A')}}
	c.Width, c.Height = 1, 1
	if c.IsEmpty() {
		t.Fatal("clipboard with cells should not be empty")
	}

	c.Clear()
	if !c.IsEmpty() || c.Width != 0 || c.Height != 0 {
		t.Fatal("clear should reset the clipboard")
	}
}

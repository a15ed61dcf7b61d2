package types

import "testing"

func TestCellEmptyAndVisible(t *testing.T) {
	if !DefaultCell().IsEmpty() {
		t.Fatal("default cell should be empty")
	}
	if DefaultCell().IsVisible() {
		t.Fatal("a space is not visible content")
	}
	if (Cell{}).IsVisible() {
		t.Fatal("the zero cell is not visible content")
	}
	if !NewCell('A').IsVisible() {
		t.Fatal("a letter is visible content")
	}
	if NewCell('\t').IsVisible() {
		t.Fatal("whitespace is not visible content")
	}
}

func TestCellClear(t *testing.T) {
	c := NewCell('X')
	c.Style = StyleBold | StyleUnderline
	c.Clear()
	if !c.IsEmpty() || c.Style != 0 {
		t.Fatal("clear should reset glyph and style")
	}
}

func TestStyleFlags(t *testing.T) {
	s := StyleBold | StyleHighlight
	if !s.Has(StyleBold) || !s.Has(StyleHighlight) {
		t.Fatal("set flags not reported")
	}
	if s.Has(StyleItalic) || s.Has(StyleUnderline) {
		t.Fatal("unset flags reported")
	}
}

package clipboard

import "testing"

func TestBridgeInternalRoundTrip(t *testing.T) {
	b := NewBridge(false)
	if b.UsingSystem() {
		t.Fatalf("bridge should use internal buffer")
	}
	if err := b.Write("┌──┐"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := b.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "┌──┐" {
		t.Errorf("Read = %q, want %q", got, "┌──┐")
	}
}

func TestImportTextPlacesVisibleCells(t *testing.T) {
	ops := ImportText("AB\n C", 2, 3)
	want := map[[2]int]rune{
		{2, 3}: 'A',
		{3, 3}: 'B',
		{3, 4}: 'C',
	}
	if len(ops) != len(want) {
		t.Fatalf("got %d ops, want %d", len(ops), len(want))
	}
	for _, op := range ops {
		ch, ok := want[[2]int{op.X, op.Y}]
		if !ok {
			t.Errorf("unexpected op at (%d,%d)", op.X, op.Y)
			continue
		}
		if op.Cell.Ch != ch {
			t.Errorf("cell at (%d,%d) = %q, want %q", op.X, op.Y, op.Cell.Ch, ch)
		}
	}
}

func TestImportTextSkipsBlankLines(t *testing.T) {
	ops := ImportText("X\n\nY", 0, 0)
	if len(ops) != 2 {
		t.Fatalf("got %d ops, want 2", len(ops))
	}
	if ops[1].Y != 2 {
		t.Errorf("second op Y = %d, want 2", ops[1].Y)
	}
}

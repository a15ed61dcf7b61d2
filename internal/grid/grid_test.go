package grid

import (
	"testing"

	"github.com/bethropolis/sketch/internal/types"
)

func TestNewGridIsBlank(t *testing.T) {
	g := New(8, 6)
	if g.Width() != 8 || g.Height() != 6 || g.Len() != 48 {
		t.Fatalf("dimensions = %dx%d len %d", g.Width(), g.Height(), g.Len())
	}
	cell, ok := g.Get(7, 5)
	if !ok || !cell.IsEmpty() {
		t.Fatal("fresh grid cells should be blank")
	}
}

func TestSetAndGet(t *testing.T) {
	g := New(10, 10)
	if !g.SetChar(3, 4, 'X') {
		t.Fatal("in-bounds set failed")
	}
	cell, ok := g.Get(3, 4)
	if !ok || cell.Ch != 'X' {
		t.Fatalf("got %q, want X", cell.Ch)
	}
}

func TestOutOfBoundsAccessIsInert(t *testing.T) {
	g := New(5, 5)
	g.SetChar(2, 2, 'A')
	before := g.Snapshot()

	coords := [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {100, 100}}
	for _, c := range coords {
		if _, ok := g.Get(c[0], c[1]); ok {
			t.Errorf("Get(%d,%d) should fail", c[0], c[1])
		}
		if g.SetChar(c[0], c[1], 'Z') {
			t.Errorf("Set(%d,%d) should fail", c[0], c[1])
		}
		if g.ClearCell(c[0], c[1]) {
			t.Errorf("ClearCell(%d,%d) should fail", c[0], c[1])
		}
	}

	after := g.Snapshot()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("out-of-bounds access mutated the grid")
		}
	}
}

func TestClearCellAndClear(t *testing.T) {
	g := New(5, 5)
	g.SetChar(1, 1, 'A')
	g.SetChar(2, 2, 'B')

	g.ClearCell(1, 1)
	if cell, _ := g.Get(1, 1); !cell.IsEmpty() {
		t.Fatal("cell not cleared")
	}

	g.Clear()
	if cell, _ := g.Get(2, 2); !cell.IsEmpty() {
		t.Fatal("grid not cleared")
	}
}

func TestIndexRoundTrip(t *testing.T) {
	g := New(7, 4)
	idx := g.IndexOf(5, 2)
	x, y := g.CoordsOf(idx)
	if x != 5 || y != 2 {
		t.Fatalf("round trip gave (%d,%d), want (5,2)", x, y)
	}
}

func TestResizePreservesOverlap(t *testing.T) {
	g := New(6, 4)
	g.SetChar(1, 1, 'A')
	g.SetChar(5, 3, 'B')

	g.Resize(4, 3)
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("dimensions after shrink = %dx%d", g.Width(), g.Height())
	}
	if cell, _ := g.Get(1, 1); cell.Ch != 'A' {
		t.Fatal("overlap content lost on shrink")
	}
	if _, ok := g.Get(5, 3); ok {
		t.Fatal("shrunk grid still exposes old cells")
	}

	g.Resize(10, 10)
	if cell, _ := g.Get(1, 1); cell.Ch != 'A' {
		t.Fatal("overlap content lost on grow")
	}
	if cell, _ := g.Get(9, 9); !cell.IsEmpty() {
		t.Fatal("grown area should be blank")
	}
}

func TestFromCellsMismatchGivesBlankGrid(t *testing.T) {
	cells := make([]types.Cell, 3)
	g := FromCells(cells, 4, 4)
	if g.Width() != 4 || g.Height() != 4 {
		t.Fatalf("dimensions = %dx%d", g.Width(), g.Height())
	}
	if cell, ok := g.Get(3, 3); !ok || !cell.IsEmpty() {
		t.Fatal("mismatched cell slice should produce a blank grid")
	}
}

func TestFillRect(t *testing.T) {
	g := New(10, 10)
	g.FillRect(4, 4, 2, 2, '#')

	for y := 2; y <= 4; y++ {
		for x := 2; x <= 4; x++ {
			if cell, _ := g.Get(x, y); cell.Ch != '#' {
				t.Fatalf("cell (%d,%d) not filled", x, y)
			}
		}
	}
	if cell, _ := g.Get(5, 5); cell.Ch == '#' {
		t.Fatal("fill leaked outside the rectangle")
	}
}

func TestRegionClips(t *testing.T) {
	g := New(10, 10)
	g.SetChar(8, 8, 'Z')

	cells, w, h := g.Region(8, 8, 20, 20)
	if w != 2 || h != 2 {
		t.Fatalf("region size = %dx%d, want 2x2", w, h)
	}
	if cells[0].Ch != 'Z' {
		t.Fatalf("region content %q, want Z", cells[0].Ch)
	}
}

func TestEachVisitsEveryCell(t *testing.T) {
	g := New(3, 2)
	count := 0
	g.Each(func(x, y int, cell types.Cell) { count++ })
	if count != 6 {
		t.Fatalf("visited %d cells, want 6", count)
	}
}

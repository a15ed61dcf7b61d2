package export

import (
	"strings"
	"testing"

	"github.com/bethropolis/sketch/internal/grid"
)

func TestExportEmptyGrid(t *testing.T) {
	g := grid.New(10, 10)
	if got := Grid(g, DefaultOptions()); got != "" {
		t.Fatalf("empty grid exported %q, want empty string", got)
	}
}

func TestExportTrimsToContent(t *testing.T) {
	g := grid.New(10, 10)
	g.SetChar(2, 2, 'H')
	g.SetChar(3, 2, 'i')

	if got := Grid(g, DefaultOptions()); got != "Hi" {
		t.Fatalf("exported %q, want %q", got, "Hi")
	}
}

func TestExportVerticalContent(t *testing.T) {
	g := grid.New(10, 10)
	g.SetChar(4, 3, 'A')
	g.SetChar(4, 4, 'B')

	if got := Grid(g, DefaultOptions()); got != "A\nB" {
		t.Fatalf("exported %q, want %q", got, "A\nB")
	}
}

func TestExportStripsTrailingSpaces(t *testing.T) {
	g := grid.New(10, 10)
	g.SetChar(1, 1, 'A')
	g.SetChar(5, 2, 'B')

	// Bounds are columns 1..5; row 1 is "A" plus four trailing blanks.
	want := "A\n    B"
	if got := Grid(g, DefaultOptions()); got != want {
		t.Fatalf("exported %q, want %q", got, want)
	}
}

func TestExportIdempotent(t *testing.T) {
	g := grid.New(20, 20)
	g.SetChar(3, 2, '┌')
	g.SetChar(4, 2, '─')
	g.SetChar(5, 2, '┐')
	g.SetChar(3, 3, '└')
	g.SetChar(4, 3, '─')
	g.SetChar(5, 3, '┘')

	first := Grid(g, DefaultOptions())

	re := grid.New(20, 20)
	for y, line := range strings.Split(first, "\n") {
		for x, ch := range []rune(line) {
			re.SetChar(x, y, ch)
		}
	}
	second := Grid(re, DefaultOptions())

	if first != second {
		t.Fatalf("re-export changed output:\nfirst  %q\nsecond %q", first, second)
	}
}

func TestExportLineNumbers(t *testing.T) {
	g := grid.New(10, 10)
	g.SetChar(0, 4, 'X')
	g.SetChar(0, 6, 'Y')

	got := Grid(g, Options{TrimBorders: true, LineNumbers: true})
	// Rows keep their absolute, 1-based numbers; the blank middle row's
	// prefix loses its trailing space to the trim.
	want := "   5 | X\n   6 |\n   7 | Y"
	if got != want {
		t.Fatalf("exported %q, want %q", got, want)
	}
}

func TestExportMaxWidth(t *testing.T) {
	g := grid.New(20, 5)
	for x := 0; x < 12; x++ {
		g.SetChar(x, 0, 'a')
	}

	got := Grid(g, Options{TrimBorders: true, MaxWidth: 6})
	if got != "aaaaaa" {
		t.Fatalf("exported %q, want %q", got, "aaaaaa")
	}
}

func TestExportUntrimmedKeepsDimensions(t *testing.T) {
	g := grid.New(5, 3)
	g.SetChar(0, 0, 'X')

	got := Grid(g, Options{TrimBorders: false})
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("%d lines, want 3", len(lines))
	}
	if lines[0] != "X    " {
		t.Fatalf("first line %q, want %q", lines[0], "X    ")
	}
}

func TestContentBounds(t *testing.T) {
	g := grid.New(20, 20)
	g.SetChar(5, 5, 'X')
	g.SetChar(10, 10, 'Y')

	minX, minY, maxX, maxY, ok := ContentBounds(g)
	if !ok {
		t.Fatal("bounds not found")
	}
	if minX != 5 || minY != 5 || maxX != 10 || maxY != 10 {
		t.Fatalf("bounds = (%d,%d)-(%d,%d), want (5,5)-(10,10)", minX, minY, maxX, maxY)
	}

	if _, _, _, _, ok := ContentBounds(grid.New(5, 5)); ok {
		t.Fatal("blank grid must report no bounds")
	}
}

func TestExportRegion(t *testing.T) {
	g := grid.New(20, 20)
	g.SetChar(5, 5, 'A')
	g.SetChar(6, 5, 'B')
	g.SetChar(5, 6, 'C')
	g.SetChar(6, 6, 'D')

	if got := Region(g, 5, 5, 6, 6); got != "AB\nCD" {
		t.Fatalf("region exported %q, want %q", got, "AB\nCD")
	}
	// Swapped corners and out-of-range coordinates normalize.
	if got := Region(g, 100, 100, 5, 5); !strings.Contains(got, "A") {
		t.Fatalf("clamped region %q missing content", got)
	}
}

func TestCountContent(t *testing.T) {
	g := grid.New(10, 10)
	if CountContent(g) != 0 {
		t.Fatal("blank grid should count zero")
	}
	g.SetChar(1, 1, 'A')
	g.SetChar(2, 2, 'B')
	if got := CountContent(g); got != 2 {
		t.Fatalf("count = %d, want 2", got)
	}
}

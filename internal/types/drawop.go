// internal/types/drawop.go
package types

// DrawOp is a single pending cell write produced by a tool. Ops are
// ephemeral: the command layer consumes them immediately and they are
// never persisted.
type DrawOp struct {
	X    int
	Y    int
	Cell Cell
}

// NewDrawOp creates an op that writes ch (unstyled) at (x, y).
func NewDrawOp(x, y int, ch rune) DrawOp {
	return DrawOp{X: x, Y: y, Cell: NewCell(ch)}
}

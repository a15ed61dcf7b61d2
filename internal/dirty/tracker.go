// Package dirty tracks the region of the canvas that changed since the
// last render pull, as the bounding union of all marked cells plus a
// sticky full-redraw flag.
package dirty

// Rect is an inclusive bounding rectangle. The zero-size "empty" state is
// encoded with inverted extremes so any union adopts the first real point.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)

// EmptyRect returns the rect covering nothing.
func EmptyRect() Rect {
	return Rect{X1: maxInt, Y1: maxInt, X2: minInt, Y2: minInt}
}

// SingleRect returns the rect covering exactly one cell.
func SingleRect(x, y int) Rect {
	return Rect{X1: x, Y1: y, X2: x, Y2: y}
}

// FromPoints returns the normalized rect spanning two corner points.
func FromPoints(x1, y1, x2, y2 int) Rect {
	r := Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
	if x2 < x1 {
		r.X1, r.X2 = x2, x1
	}
	if y2 < y1 {
		r.Y1, r.Y2 = y2, y1
	}
	return r
}

// IsEmpty reports whether the rect covers nothing.
func (r Rect) IsEmpty() bool {
	return r.X1 > r.X2 || r.Y1 > r.Y2
}

// Width returns the inclusive horizontal extent.
func (r Rect) Width() int {
	if r.IsEmpty() {
		return 0
	}
	return r.X2 - r.X1 + 1
}

// Height returns the inclusive vertical extent.
func (r Rect) Height() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Y2 - r.Y1 + 1
}

// Area returns the number of cells covered.
func (r Rect) Area() int {
	return r.Width() * r.Height()
}

// Contains reports whether (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Include grows the rect to cover (x, y).
func (r *Rect) Include(x, y int) {
	if x < r.X1 {
		r.X1 = x
	}
	if y < r.Y1 {
		r.Y1 = y
	}
	if x > r.X2 {
		r.X2 = x
	}
	if y > r.Y2 {
		r.Y2 = y
	}
}

// Union grows the rect to cover other. Unioning with an empty operand is a
// no-op; unioning an empty rect with a non-empty one adopts it.
func (r *Rect) Union(other Rect) {
	if other.IsEmpty() {
		return
	}
	if r.IsEmpty() {
		*r = other
		return
	}
	r.Include(other.X1, other.Y1)
	r.Include(other.X2, other.Y2)
}

// Clamp restricts the rect to [0,width) x [0,height).
func (r *Rect) Clamp(width, height int) {
	r.X1 = clamp(r.X1, 0, width-1)
	r.X2 = clamp(r.X2, 0, width-1)
	r.Y1 = clamp(r.Y1, 0, height-1)
	r.Y2 = clamp(r.Y2, 0, height-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Tracker accumulates dirty marks between render pulls.
type Tracker struct {
	rect Rect
	full bool
}

// NewTracker returns a tracker in the empty state.
func NewTracker() *Tracker {
	return &Tracker{rect: EmptyRect()}
}

// Mark records a single changed cell.
func (t *Tracker) Mark(x, y int) {
	t.rect.Include(x, y)
}

// MarkRegion records a changed rectangle spanning two corner points.
func (t *Tracker) MarkRegion(x1, y1, x2, y2 int) {
	t.rect.Union(FromPoints(x1, y1, x2, y2))
}

// RequestFull sets the sticky full-redraw flag. It stays set until Clear
// regardless of later rectangle unions.
func (t *Tracker) RequestFull() {
	t.full = true
}

// Rect returns the accumulated dirty rectangle.
func (t *Tracker) Rect() Rect {
	return t.rect
}

// NeedsFull reports whether the consumer should repaint everything. An
// empty rectangle with no marks is treated conservatively as full: the
// never-yet-rendered initial state must paint once.
func (t *Tracker) NeedsFull() bool {
	return t.full || t.rect.IsEmpty()
}

// Clear resets the tracker after the consumer has drained it.
func (t *Tracker) Clear() {
	t.rect = EmptyRect()
	t.full = false
}

package geometry

// DefaultSize is the width and height of one arena cell in pixels.
const DefaultSize = 60

// Grid carries the cell size. Every actor occupies exactly one Size x Size
// box, and static terrain sits on cell centers (multiples of Size).
type Grid struct {
	Size int
}

// Default returns the grid with DefaultSize cells.
func Default() Grid {
	return Grid{Size: DefaultSize}
}

// Cell converts cell coordinates to the aligned pixel position.
func (g Grid) Cell(cx, cy int) Point {
	return Pt(cx, cy).Mul(g.Size)
}

// Align snaps p to the nearest grid point using (v + Size/2) / Size * Size.
// Division truncates toward zero, so negative coordinates round
// asymmetrically; stage and spawn arithmetic rely on this exact behavior.
func (g Grid) Align(p Point) Point {
	return Point{X: g.align(p.X), Y: g.align(p.Y)}
}

func (g Grid) align(v int) int {
	return (v + g.Size/2) / g.Size * g.Size
}

// Collides reports whether the Size x Size boxes at a and b overlap.
// Touching edges do not collide.
func (g Grid) Collides(a, b Point) bool {
	return abs(a.X-b.X) < g.Size && abs(a.Y-b.Y) < g.Size
}

// TowardCenter is the vector from p to its nearest grid point.
func (g Grid) TowardCenter(p Point) Vector {
	return g.Align(p).Sub(p)
}

// AdjustVector steers the movement v made from pos toward the nearest grid
// center, so that players slide into corridors without pixel-exact timing.
//
// If v is zero or pos is already centered, v is returned as is. If v points
// within ±90° of the center (non-negative inner product), the vector to the
// center clipped per axis to the length of v is returned. Otherwise v is
// moving away from the center and is returned unchanged.
func (g Grid) AdjustVector(pos Point, v Vector) Vector {
	gv := g.TowardCenter(pos)
	if v.IsZero() || gv.IsZero() {
		return v
	}
	if gv.Dot(v) >= 0 {
		return gv.ClipLength(v.Length())
	}
	return v
}

// Package geometry provides the integer point arithmetic and grid alignment
// used by every actor in the arena. No floating point is involved.
package geometry

import "fmt"

// Point is an (x, y) pair in pixel units. It doubles as a displacement
// vector; the aliases below only document intent.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Vector is a Point used as a displacement.
type Vector = Point

// Direction is one of the four cardinal directions.
type Direction int

const (
	None Direction = iota
	North
	West
	South
	East
)

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul scales both coordinates by k.
func (p Point) Mul(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Dot returns the inner product of p and q.
func (p Point) Dot(q Point) int {
	return p.X*q.X + p.Y*q.Y
}

// IsZero reports whether p is (0, 0).
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Length is the Chebyshev length max(|x|, |y|).
func (p Point) Length() int {
	return max(abs(p.X), abs(p.Y))
}

// ClipLength clamps each axis independently to [-length, length].
func (p Point) ClipLength(length int) Vector {
	return Point{X: clip(p.X, length), Y: clip(p.Y, length)}
}

// Cardinal returns the dominant direction of the vector. Horizontal movement
// wins over vertical; a zero vector has no direction.
func (p Point) Cardinal() Direction {
	switch {
	case p.X < 0:
		return West
	case p.X > 0:
		return East
	case p.Y < 0:
		return North
	case p.Y > 0:
		return South
	default:
		return None
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Unit returns the one-cell step for d scaled to size.
func (d Direction) Unit(size int) Vector {
	switch d {
	case North:
		return Point{Y: -size}
	case South:
		return Point{Y: size}
	case West:
		return Point{X: -size}
	case East:
		return Point{X: size}
	default:
		return Point{}
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case West:
		return "west"
	case South:
		return "south"
	case East:
		return "east"
	default:
		return "none"
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func clip(v, length int) int {
	if abs(v) > length {
		return sign(v) * length
	}
	return v
}

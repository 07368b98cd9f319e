package faicon

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle. The zero Rect is empty.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// IsEmpty reports whether r has no area.
func (r Rect) IsEmpty() bool { return r.MaxX <= r.MinX || r.MaxY <= r.MinY }

// Size is a width and height in points.
type Size struct {
	Width, Height float64
}

// sizeEpsilon keeps values that are slightly too big, like 24.000001, from
// rounding up to the next integer.
const sizeEpsilon = 0.01

// RoundSize rounds v up to an integer, ignoring overshoot below 0.01.
func RoundSize(v float64) float64 {
	return math.Ceil(v - sizeEpsilon)
}

// EdgeInsets is padding added around the rendered glyph, in points.
type EdgeInsets struct {
	Top, Left, Bottom, Right float64
}

func (in EdgeInsets) finite() bool {
	for _, v := range [...]float64{in.Top, in.Left, in.Bottom, in.Right} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// UniformInsets returns insets of v on every side.
func UniformInsets(v float64) EdgeInsets {
	return EdgeInsets{Top: v, Left: v, Bottom: v, Right: v}
}

package stroke

import (
	"math"
	"testing"
)

// recorder collects emitted contours as polygons. Cubic segments
// contribute only their end point.
type recorder struct {
	contours [][]Point
	cubics   int
	closes   int
}

func (r *recorder) MoveTo(p Point) { r.contours = append(r.contours, []Point{p}) }
func (r *recorder) LineTo(p Point) { r.append(p) }
func (r *recorder) ClosePath()     { r.closes++ }

func (r *recorder) CubeTo(_, _, p Point) {
	r.cubics++
	r.append(p)
}

func (r *recorder) append(p Point) {
	n := len(r.contours) - 1
	r.contours[n] = append(r.contours[n], p)
}

func signedArea(pts []Point) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}

func square(x, y, size float64) []Segment {
	return []Segment{
		{Op: OpMoveTo, Args: [3]Point{{X: x, Y: y}}},
		{Op: OpLineTo, Args: [3]Point{{X: x + size, Y: y}}},
		{Op: OpLineTo, Args: [3]Point{{X: x + size, Y: y + size}}},
		{Op: OpLineTo, Args: [3]Point{{X: x, Y: y + size}}},
		{Op: OpClose},
	}
}

func TestExpandClosedSquare(t *testing.T) {
	var rec recorder
	NewExpander(Style{Width: 2, Join: JoinMiter, MiterLimit: 10}).Expand(square(10, 10, 10), &rec)

	if len(rec.contours) != 2 {
		t.Fatalf("contours = %d, want 2", len(rec.contours))
	}
	if rec.closes != 2 {
		t.Errorf("closes = %d, want 2", rec.closes)
	}

	a0 := signedArea(rec.contours[0])
	a1 := signedArea(rec.contours[1])
	if a0*a1 >= 0 {
		t.Errorf("contour areas %v and %v should have opposite signs", a0, a1)
	}

	// Outer side is the mitered 12x12 square. The inner 8x8 side carries a
	// unit loop at each corner that winds against it.
	if got := math.Abs(a0); math.Abs(got-144) > 1e-6 {
		t.Errorf("outer area = %v, want 144", got)
	}
	if got := math.Abs(a1); math.Abs(got-60) > 1e-6 {
		t.Errorf("inner area = %v, want 60", got)
	}
}

func TestExpandOpenLine(t *testing.T) {
	tests := []struct {
		name     string
		cap      Cap
		wantArea float64
	}{
		{"butt", CapButt, 20},
		{"square", CapSquare, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec recorder
			segs := []Segment{
				{Op: OpMoveTo, Args: [3]Point{{X: 0, Y: 0}}},
				{Op: OpLineTo, Args: [3]Point{{X: 10, Y: 0}}},
			}
			NewExpander(Style{Width: 2, Cap: tt.cap}).Expand(segs, &rec)

			if len(rec.contours) != 1 {
				t.Fatalf("contours = %d, want 1", len(rec.contours))
			}
			if got := math.Abs(signedArea(rec.contours[0])); math.Abs(got-tt.wantArea) > 1e-6 {
				t.Errorf("area = %v, want %v", got, tt.wantArea)
			}
		})
	}
}

func TestExpandRoundCapUsesCurves(t *testing.T) {
	var rec recorder
	segs := []Segment{
		{Op: OpMoveTo, Args: [3]Point{{X: 0, Y: 0}}},
		{Op: OpLineTo, Args: [3]Point{{X: 10, Y: 0}}},
	}
	NewExpander(Style{Width: 4, Cap: CapRound}).Expand(segs, &rec)

	if rec.cubics == 0 {
		t.Error("round caps should emit cubic segments")
	}
}

func TestExpandZeroWidth(t *testing.T) {
	var rec recorder
	NewExpander(Style{Width: 0}).Expand(square(0, 0, 5), &rec)
	if len(rec.contours) != 0 {
		t.Errorf("zero width stroke emitted %d contours", len(rec.contours))
	}
}

func TestExpandCurveFlattening(t *testing.T) {
	segs := []Segment{
		{Op: OpMoveTo, Args: [3]Point{{X: 0, Y: 0}}},
		{Op: OpCubeTo, Args: [3]Point{{X: 0, Y: 20}, {X: 20, Y: 20}, {X: 20, Y: 0}}},
		{Op: OpClose},
	}

	coarse, fine := recorder{}, recorder{}
	e := NewExpander(Style{Width: 1})
	e.SetTolerance(2)
	e.Expand(segs, &coarse)
	e.SetTolerance(0.05)
	e.Expand(segs, &fine)

	if len(fine.contours[0]) <= len(coarse.contours[0]) {
		t.Errorf("finer tolerance produced %d points, coarse %d",
			len(fine.contours[0]), len(coarse.contours[0]))
	}
}

// Package stroke expands stroked outlines into closed contours that can be
// filled with the non-zero rule.
//
// Each subpath is offset by half the stroke width on both sides. For an
// open subpath the forward side, the end cap, the reversed backward side and
// the start cap form one contour. A closed subpath produces two contours of
// opposite winding, so only the band between them is covered.
package stroke

import "math"

// Point is a 2D point in device space.
type Point struct {
	X, Y float64
}

func (p Point) add(v vec) Point { return Point{X: p.X + v.x, Y: p.Y + v.y} }
func (p Point) sub(q Point) vec { return vec{x: p.X - q.X, y: p.Y - q.Y} }
func (p Point) lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

type vec struct {
	x, y float64
}

func (v vec) scale(s float64) vec { return vec{x: v.x * s, y: v.y * s} }
func (v vec) neg() vec            { return vec{x: -v.x, y: -v.y} }
func (v vec) dot(w vec) float64   { return v.x*w.x + v.y*w.y }
func (v vec) cross(w vec) float64 { return v.x*w.y - v.y*w.x }
func (v vec) length() float64     { return math.Hypot(v.x, v.y) }
func (v vec) lengthSq() float64   { return v.x*v.x + v.y*v.y }
func (v vec) perp() vec           { return vec{x: -v.y, y: v.x} }
func (v vec) angle() float64      { return math.Atan2(v.y, v.x) }

// Cap is the shape of open subpath endpoints.
type Cap int

const (
	// CapButt ends the stroke flat at the endpoint.
	CapButt Cap = iota
	// CapRound ends the stroke with a half circle.
	CapRound
	// CapSquare extends the stroke by half its width past the endpoint.
	CapSquare
)

// Join is the shape of corners between segments.
type Join int

const (
	// JoinMiter extends the outer edges to a point, falling back to a bevel
	// past the miter limit.
	JoinMiter Join = iota
	// JoinRound fills the corner with an arc.
	JoinRound
	// JoinBevel cuts the corner with a straight line.
	JoinBevel
)

// Style describes the stroke geometry.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

// Op identifies a segment kind.
type Op uint8

const (
	// OpMoveTo starts a subpath at Args[0].
	OpMoveTo Op = iota
	// OpLineTo draws a line to Args[0].
	OpLineTo
	// OpQuadTo draws a quadratic curve with control Args[0] to Args[1].
	OpQuadTo
	// OpCubeTo draws a cubic curve with controls Args[0], Args[1] to Args[2].
	OpCubeTo
	// OpClose closes the current subpath.
	OpClose
)

// Segment is one path command. Args holds, in order, the control points
// followed by the end point; unused entries are zero.
type Segment struct {
	Op   Op
	Args [3]Point
}

// Sink receives the expanded contours.
type Sink interface {
	MoveTo(p Point)
	LineTo(p Point)
	CubeTo(c1, c2, p Point)
	ClosePath()
}

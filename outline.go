package faicon

// SegmentOp is the kind of an outline segment.
type SegmentOp uint8

const (
	// SegmentMoveTo starts a new contour at Args[0].
	SegmentMoveTo SegmentOp = iota
	// SegmentLineTo draws a line to Args[0].
	SegmentLineTo
	// SegmentQuadTo draws a quadratic Bezier with control Args[0] to Args[1].
	SegmentQuadTo
	// SegmentCubeTo draws a cubic Bezier with controls Args[0], Args[1] to Args[2].
	SegmentCubeTo
	// SegmentClose closes the current contour.
	SegmentClose
)

// String returns a string representation of the operation.
func (op SegmentOp) String() string {
	switch op {
	case SegmentMoveTo:
		return "MoveTo"
	case SegmentLineTo:
		return "LineTo"
	case SegmentQuadTo:
		return "QuadTo"
	case SegmentCubeTo:
		return "CubeTo"
	case SegmentClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// pointCount returns how many entries of Args the operation uses.
func (op SegmentOp) pointCount() int {
	switch op {
	case SegmentMoveTo, SegmentLineTo:
		return 1
	case SegmentQuadTo:
		return 2
	case SegmentCubeTo:
		return 3
	default:
		return 0
	}
}

// Segment is a single outline command.
type Segment struct {
	Op   SegmentOp
	Args [3]Point
}

// Outline is an immutable glyph outline. Coordinates are y-up, like the
// font's native space. Every contour is explicitly closed.
//
// Bounds covers all on-curve and control points.
type Outline struct {
	segments []Segment
	bounds   Rect
}

// NewOutline builds an outline from segments. Contours that are not
// explicitly closed are closed, and the bounds are computed from the
// segment points.
func NewOutline(segs []Segment) *Outline {
	o := &Outline{segments: closeContours(segs)}
	o.bounds = segmentBounds(o.segments)
	return o
}

// Segments returns a copy of the outline segments.
func (o *Outline) Segments() []Segment {
	out := make([]Segment, len(o.segments))
	copy(out, o.segments)
	return out
}

// Bounds returns the bounding box of the outline's points.
func (o *Outline) Bounds() Rect {
	return o.bounds
}

// IsEmpty returns true if the outline has no segments.
func (o *Outline) IsEmpty() bool {
	return len(o.segments) == 0
}

// Transform returns a new outline with every point mapped through m.
func (o *Outline) Transform(m Matrix) *Outline {
	out := &Outline{segments: make([]Segment, len(o.segments))}
	for i, seg := range o.segments {
		out.segments[i] = Segment{Op: seg.Op}
		for j := 0; j < seg.Op.pointCount(); j++ {
			out.segments[i].Args[j] = m.TransformPoint(seg.Args[j])
		}
	}
	out.bounds = segmentBounds(out.segments)
	return out
}

// closeContours appends a SegmentClose to every contour that lacks one.
func closeContours(segs []Segment) []Segment {
	out := make([]Segment, 0, len(segs)+4)
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case SegmentMoveTo:
			if open {
				out = append(out, Segment{Op: SegmentClose})
			}
			open = true
		case SegmentClose:
			if !open {
				continue
			}
			open = false
		}
		out = append(out, seg)
	}
	if open {
		out = append(out, Segment{Op: SegmentClose})
	}
	return out
}

func segmentBounds(segs []Segment) Rect {
	first := true
	var r Rect
	for _, seg := range segs {
		for j := 0; j < seg.Op.pointCount(); j++ {
			p := seg.Args[j]
			if first {
				r = Rect{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
				first = false
				continue
			}
			r.MinX = min(r.MinX, p.X)
			r.MinY = min(r.MinY, p.Y)
			r.MaxX = max(r.MaxX, p.X)
			r.MaxY = max(r.MaxY, p.Y)
		}
	}
	return r
}

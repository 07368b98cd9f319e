package stroke

import "math"

// Expander converts a stroked path into fillable contours.
// An Expander is not safe for concurrent use but may be reused.
type Expander struct {
	style     Style
	tolerance float64

	forward  side
	backward side
	out      Sink

	startPt   Point
	startNorm vec
	startTan  vec
	lastPt    Point
	lastTan   vec
	lastNorm  vec

	joinThresh float64
}

// NewExpander returns an expander for the given style. A non-positive
// miter limit defaults to 10.
func NewExpander(style Style) *Expander {
	if style.MiterLimit <= 0 {
		style.MiterLimit = 10
	}
	return &Expander{style: style, tolerance: 0.25}
}

// SetTolerance sets the curve flattening tolerance in device units.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand writes the expanded stroke of segs to out.
func (e *Expander) Expand(segs []Segment, out Sink) {
	if e.style.Width <= 0 {
		return
	}
	e.out = out
	e.forward.reset()
	e.backward.reset()
	e.joinThresh = 2.0 * e.tolerance / e.style.Width

	for _, s := range segs {
		switch s.Op {
		case OpMoveTo:
			e.finishOpen()
			e.startPt = s.Args[0]
			e.lastPt = s.Args[0]
		case OpLineTo:
			e.lineTo(s.Args[0])
		case OpQuadTo:
			e.quadTo(s.Args[0], s.Args[1])
		case OpCubeTo:
			e.cubeTo(s.Args[0], s.Args[1], s.Args[2])
		case OpClose:
			e.lineTo(e.startPt)
			e.finishClosed()
		}
	}
	e.finishOpen()
	e.out = nil
}

func (e *Expander) lineTo(p Point) {
	if p == e.lastPt {
		return
	}
	tan := p.sub(e.lastPt)
	e.join(tan)
	e.lastTan = tan
	e.line(tan, p)
}

func (e *Expander) quadTo(c, p Point) {
	if c == e.lastPt && p == e.lastPt {
		return
	}
	pts := []Point{e.lastPt}
	e.flattenQuad(e.lastPt, c, p, &pts)
	e.polyline(pts)
}

func (e *Expander) cubeTo(c1, c2, p Point) {
	if c1 == e.lastPt && c2 == e.lastPt && p == e.lastPt {
		return
	}
	pts := []Point{e.lastPt}
	e.flattenCubic(e.lastPt, c1, c2, p, &pts)
	e.polyline(pts)
}

func (e *Expander) polyline(pts []Point) {
	for i := 1; i < len(pts); i++ {
		tan := pts[i].sub(pts[i-1])
		if tan.lengthSq() > 1e-10 {
			e.join(tan)
			e.lastTan = tan
			e.line(tan, pts[i])
		}
	}
}

func (e *Expander) normal(tan vec) vec {
	return tan.perp().scale(0.5 * e.style.Width / tan.length())
}

func (e *Expander) join(tan vec) {
	norm := e.normal(tan)
	p0 := e.lastPt

	if e.forward.empty() {
		e.forward.moveTo(p0.add(norm.neg()))
		e.backward.moveTo(p0.add(norm))
		e.startTan = tan
		e.startNorm = norm
		return
	}

	ab, cd := e.lastTan, tan
	cross := ab.cross(cd)
	dot := ab.dot(cd)
	hypot := math.Hypot(cross, dot)

	// Nearly collinear: connect both sides without a join.
	if dot > 0 && math.Abs(cross) < hypot*e.joinThresh {
		e.forward.lineTo(p0.add(norm.neg()))
		e.backward.lineTo(p0.add(norm))
		return
	}

	switch e.style.Join {
	case JoinMiter:
		limitSq := e.style.MiterLimit * e.style.MiterLimit
		if 2*hypot < (hypot+dot)*limitSq {
			e.miter(p0, norm, ab, cd, cross)
		}
		e.forward.lineTo(p0.add(norm.neg()))
		e.backward.lineTo(p0.add(norm))
	case JoinRound:
		lastNorm := e.normal(ab)
		if angle := math.Atan2(cross, dot); angle > 0 {
			e.backward.lineTo(p0.add(norm))
			arc(&e.forward, p0, lastNorm.neg(), angle)
		} else {
			e.forward.lineTo(p0.add(norm.neg()))
			arc(&e.backward, p0, lastNorm, angle)
		}
	default:
		e.forward.lineTo(p0.add(norm.neg()))
		e.backward.lineTo(p0.add(norm))
	}
}

func (e *Expander) miter(p0 Point, norm, ab, cd vec, cross float64) {
	lastNorm := e.normal(ab)
	switch {
	case cross > 0:
		last := p0.add(lastNorm.neg())
		this := p0.add(norm.neg())
		h := ab.cross(this.sub(last)) / cross
		e.forward.lineTo(this.add(cd.scale(-h)))
		e.backward.lineTo(p0)
	case cross < 0:
		last := p0.add(lastNorm)
		this := p0.add(norm)
		h := ab.cross(this.sub(last)) / cross
		e.backward.lineTo(this.add(cd.scale(-h)))
		e.forward.lineTo(p0)
	}
}

func (e *Expander) line(tan vec, p Point) {
	norm := e.normal(tan)
	e.forward.lineTo(p.add(norm.neg()))
	e.backward.lineTo(p.add(norm))
	e.lastPt = p
	e.lastNorm = norm
}

func (e *Expander) finishOpen() {
	if e.forward.empty() {
		return
	}
	e.emit(&e.forward)
	e.cap(e.lastPt, e.lastNorm.neg(), false)
	e.emitReversed(&e.backward, false)
	e.cap(e.startPt, e.startNorm, true)

	e.forward.reset()
	e.backward.reset()
}

func (e *Expander) finishClosed() {
	if e.forward.empty() {
		e.lastPt = e.startPt
		return
	}
	e.join(e.startTan)

	e.emit(&e.forward)
	e.out.ClosePath()
	e.emitReversed(&e.backward, true)
	e.out.ClosePath()

	e.forward.reset()
	e.backward.reset()
	e.lastPt = e.startPt
}

func (e *Expander) cap(center Point, norm vec, closing bool) {
	switch e.style.Cap {
	case CapRound:
		var b side
		b.moveTo(center.add(norm))
		arc(&b, center, norm, math.Pi)
		e.emitTail(&b)
		if closing {
			e.out.ClosePath()
		}
	case CapSquare:
		e.out.LineTo(capPoint(center, norm, 1, 1))
		e.out.LineTo(capPoint(center, norm, -1, 1))
		if closing {
			e.out.ClosePath()
		} else {
			e.out.LineTo(capPoint(center, norm, -1, 0))
		}
	default:
		if closing {
			e.out.ClosePath()
		} else {
			e.out.LineTo(center.add(norm.neg()))
		}
	}
}

// capPoint maps (x, y) through the frame spanned by norm and its
// perpendicular, centered on center.
func capPoint(center Point, norm vec, x, y float64) Point {
	return Point{
		X: norm.x*x - norm.y*y + center.X,
		Y: norm.y*x + norm.x*y + center.Y,
	}
}

// emit sends a side to the sink, starting a new contour.
func (e *Expander) emit(s *side) {
	for _, seg := range s.segs {
		switch seg.Op {
		case OpMoveTo:
			e.out.MoveTo(seg.Args[0])
		case OpLineTo:
			e.out.LineTo(seg.Args[0])
		case OpCubeTo:
			e.out.CubeTo(seg.Args[0], seg.Args[1], seg.Args[2])
		}
	}
}

// emitTail sends every segment of s except its leading MoveTo.
func (e *Expander) emitTail(s *side) {
	for _, seg := range s.segs[1:] {
		switch seg.Op {
		case OpLineTo:
			e.out.LineTo(seg.Args[0])
		case OpCubeTo:
			e.out.CubeTo(seg.Args[0], seg.Args[1], seg.Args[2])
		}
	}
}

// emitReversed sends s back to front.
func (e *Expander) emitReversed(s *side, start bool) {
	n := len(s.segs)
	if n == 0 {
		return
	}
	if start {
		e.out.MoveTo(s.segs[n-1].end())
	}
	for i := n - 1; i >= 1; i-- {
		to := s.segs[i-1].end()
		seg := s.segs[i]
		switch seg.Op {
		case OpLineTo:
			e.out.LineTo(to)
		case OpCubeTo:
			e.out.CubeTo(seg.Args[1], seg.Args[0], to)
		}
	}
}

// arc appends a circular arc around center starting at center+norm and
// sweeping angle radians. Each piece spans at most a quarter turn.
func arc(s *side, center Point, norm vec, angle float64) {
	n := int(math.Ceil(math.Abs(angle) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := angle / float64(n)
	a := norm.angle()
	r := norm.length()

	for i := 0; i < n; i++ {
		a0, a1 := a, a+step
		k := math.Sin(a1-a0) * (math.Sqrt(4+3*math.Tan((a1-a0)/2)*math.Tan((a1-a0)/2)) - 1) / 3

		cos0, sin0 := math.Cos(a0), math.Sin(a0)
		cos1, sin1 := math.Cos(a1), math.Sin(a1)
		p1 := Point{X: center.X + r*cos0, Y: center.Y + r*sin0}
		p2 := Point{X: center.X + r*cos1, Y: center.Y + r*sin1}
		c1 := Point{X: p1.X - k*r*sin0, Y: p1.Y + k*r*cos0}
		c2 := Point{X: p2.X + k*r*sin1, Y: p2.Y - k*r*cos1}
		s.cubeTo(c1, c2, p2)
		a = a1
	}
}

func (e *Expander) flattenQuad(p0, p1, p2 Point, pts *[]Point) {
	if distanceToLine(p1, p0, p2) < e.tolerance {
		*pts = append(*pts, p2)
		return
	}
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := q0.lerp(q1, 0.5)
	e.flattenQuad(p0, q0, q2, pts)
	e.flattenQuad(q2, q1, p2, pts)
}

func (e *Expander) flattenCubic(p0, p1, p2, p3 Point, pts *[]Point) {
	if math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3)) < e.tolerance {
		*pts = append(*pts, p3)
		return
	}
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := p2.lerp(p3, 0.5)
	r0 := q0.lerp(q1, 0.5)
	r1 := q1.lerp(q2, 0.5)
	s := r0.lerp(r1, 0.5)
	e.flattenCubic(p0, q0, r0, s, pts)
	e.flattenCubic(s, r1, q2, p3, pts)
}

// distanceToLine returns the distance from p to the segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.sub(a)
	l := ab.length()
	if l < 1e-10 {
		return p.sub(a).length()
	}
	t := p.sub(a).dot(ab) / (l * l)
	switch {
	case t < 0:
		return p.sub(a).length()
	case t > 1:
		return p.sub(b).length()
	}
	return p.sub(a.add(ab.scale(t))).length()
}

// side accumulates one offset side of the current subpath.
type side struct {
	segs []Segment
}

func (s *side) reset()      { s.segs = s.segs[:0] }
func (s *side) empty() bool { return len(s.segs) == 0 }

func (s *side) moveTo(p Point) {
	s.segs = append(s.segs, Segment{Op: OpMoveTo, Args: [3]Point{p}})
}

func (s *side) lineTo(p Point) {
	s.segs = append(s.segs, Segment{Op: OpLineTo, Args: [3]Point{p}})
}

func (s *side) cubeTo(c1, c2, p Point) {
	s.segs = append(s.segs, Segment{Op: OpCubeTo, Args: [3]Point{c1, c2, p}})
}

func (seg Segment) end() Point {
	switch seg.Op {
	case OpQuadTo:
		return seg.Args[1]
	case OpCubeTo:
		return seg.Args[2]
	}
	return seg.Args[0]
}

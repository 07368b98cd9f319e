package faicon

import "math"

// BuildPath returns the outline of gid scaled to height points. The glyph
// is scaled uniformly by height/UnitsPerEm after being lifted by the
// font's descent, so the baseline sits at descent*scale and the em box
// spans [0, height] when ascent+descent equals the em size.
func BuildPath(f *Font, gid GlyphIndex, height float64) (*Outline, error) {
	if f == nil {
		return nil, ErrNilFont
	}
	if height <= 0 || math.IsNaN(height) || math.IsInf(height, 0) {
		return nil, ErrInvalidSize
	}
	native, err := f.Outline(gid)
	if err != nil {
		return nil, err
	}
	m := f.Metrics()
	s := height / float64(m.UnitsPerEm)
	return native.Transform(Scale(s, s).Multiply(Translate(0, m.Descent))), nil
}

// FitToWidth scales o uniformly so its width is at most maxWidth. An
// outline that already fits is returned unchanged.
func FitToWidth(o *Outline, maxWidth float64) *Outline {
	w := o.Bounds().Width()
	if w <= maxWidth || w <= 0 {
		return o
	}
	s := maxWidth / w
	return o.Transform(Scale(s, s))
}

// OutlineBuilder provides a fluent interface for outline construction.
// All methods return the builder for chaining.
//
//	o := faicon.NewOutlineBuilder().Rect(0, 0, 10, 10).Build()
type OutlineBuilder struct {
	segs []Segment
}

// NewOutlineBuilder starts a new outline builder.
func NewOutlineBuilder() *OutlineBuilder {
	return &OutlineBuilder{}
}

// MoveTo starts a new contour.
func (b *OutlineBuilder) MoveTo(x, y float64) *OutlineBuilder {
	b.segs = append(b.segs, Segment{Op: SegmentMoveTo, Args: [3]Point{{x, y}}})
	return b
}

// LineTo draws a line to a position.
func (b *OutlineBuilder) LineTo(x, y float64) *OutlineBuilder {
	b.segs = append(b.segs, Segment{Op: SegmentLineTo, Args: [3]Point{{x, y}}})
	return b
}

// QuadTo draws a quadratic Bezier curve.
func (b *OutlineBuilder) QuadTo(cx, cy, x, y float64) *OutlineBuilder {
	b.segs = append(b.segs, Segment{Op: SegmentQuadTo, Args: [3]Point{{cx, cy}, {x, y}}})
	return b
}

// CubicTo draws a cubic Bezier curve.
func (b *OutlineBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *OutlineBuilder {
	b.segs = append(b.segs, Segment{Op: SegmentCubeTo, Args: [3]Point{{c1x, c1y}, {c2x, c2y}, {x, y}}})
	return b
}

// Close closes the current contour.
func (b *OutlineBuilder) Close() *OutlineBuilder {
	b.segs = append(b.segs, Segment{Op: SegmentClose})
	return b
}

// Rect adds a rectangle contour with its corner at (x, y).
func (b *OutlineBuilder) Rect(x, y, w, h float64) *OutlineBuilder {
	return b.MoveTo(x, y).LineTo(x+w, y).LineTo(x+w, y+h).LineTo(x, y+h).Close()
}

// Circle adds a circle contour approximated by four cubic curves.
func (b *OutlineBuilder) Circle(cx, cy, r float64) *OutlineBuilder {
	k := 0.5522847498 * r // control point distance for a quarter circle
	b.MoveTo(cx+r, cy)
	b.CubicTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	b.CubicTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	b.CubicTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	b.CubicTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	return b.Close()
}

// Build returns the constructed outline.
func (b *OutlineBuilder) Build() *Outline {
	return NewOutline(b.segs)
}

package faicon

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gogpu/faicon/internal/stroke"
)

// strokeMiterLimit matches the CoreGraphics default.
const strokeMiterLimit = 10

// addOutline feeds o to z. Coordinates must already be in device space.
func addOutline(z *vector.Rasterizer, o *Outline) {
	for _, seg := range o.segments {
		a := seg.Args
		switch seg.Op {
		case SegmentMoveTo:
			z.MoveTo(float32(a[0].X), float32(a[0].Y))
		case SegmentLineTo:
			z.LineTo(float32(a[0].X), float32(a[0].Y))
		case SegmentQuadTo:
			z.QuadTo(float32(a[0].X), float32(a[0].Y), float32(a[1].X), float32(a[1].Y))
		case SegmentCubeTo:
			z.CubeTo(float32(a[0].X), float32(a[0].Y), float32(a[1].X), float32(a[1].Y), float32(a[2].X), float32(a[2].Y))
		case SegmentClose:
			z.ClosePath()
		}
	}
}

// fillOutline composites src through the coverage of o onto dst with the
// non-zero rule.
func fillOutline(dst draw.Image, o *Outline, src image.Image) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	addOutline(z, o)
	z.Draw(dst, b, src, b.Min)
}

// strokeOutline strokes o with a miter join and butt caps and composites
// src through the stroke coverage.
func strokeOutline(dst draw.Image, o *Outline, width float64, src image.Image) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	e := stroke.NewExpander(stroke.Style{
		Width:      width,
		Cap:        stroke.CapButt,
		Join:       stroke.JoinMiter,
		MiterLimit: strokeMiterLimit,
	})
	e.Expand(strokeSegments(o), rasterSink{z})
	z.Draw(dst, b, src, b.Min)
}

func strokeSegments(o *Outline) []stroke.Segment {
	out := make([]stroke.Segment, len(o.segments))
	for i, seg := range o.segments {
		s := stroke.Segment{}
		switch seg.Op {
		case SegmentMoveTo:
			s.Op = stroke.OpMoveTo
		case SegmentLineTo:
			s.Op = stroke.OpLineTo
		case SegmentQuadTo:
			s.Op = stroke.OpQuadTo
		case SegmentCubeTo:
			s.Op = stroke.OpCubeTo
		case SegmentClose:
			s.Op = stroke.OpClose
		}
		for j := 0; j < seg.Op.pointCount(); j++ {
			s.Args[j] = stroke.Point{X: seg.Args[j].X, Y: seg.Args[j].Y}
		}
		out[i] = s
	}
	return out
}

// rasterSink adapts a vector.Rasterizer to stroke.Sink.
type rasterSink struct {
	z *vector.Rasterizer
}

func (r rasterSink) MoveTo(p stroke.Point) { r.z.MoveTo(float32(p.X), float32(p.Y)) }
func (r rasterSink) LineTo(p stroke.Point) { r.z.LineTo(float32(p.X), float32(p.Y)) }
func (r rasterSink) ClosePath()            { r.z.ClosePath() }

func (r rasterSink) CubeTo(c1, c2, p stroke.Point) {
	r.z.CubeTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(p.X), float32(p.Y))
}

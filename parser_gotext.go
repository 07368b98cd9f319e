package faicon

import (
	"bytes"
	"errors"
	"math"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

// goTextSource implements glyphSource with github.com/go-text/typesetting.
// The face is never varied after parsing, so it is read-only.
type goTextSource struct {
	face *gotext.Face
}

func newGoTextSource(data []byte) (*goTextSource, error) {
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, &FontError{Parser: ParserGoText, Op: "parse", Err: err}
	}
	return &goTextSource{face: face}, nil
}

func (s *goTextSource) glyphIndex(r rune) (GlyphIndex, bool) {
	gid, ok := s.face.NominalGlyph(r)
	if !ok || gid == 0 || gid > math.MaxUint16 {
		return 0, false
	}
	return GlyphIndex(gid), true
}

func (s *goTextSource) metrics() (FontMetrics, error) {
	ext, ok := s.face.FontHExtents()
	if !ok {
		return FontMetrics{}, &FontError{Parser: ParserGoText, Op: "metrics", Err: errors.New("no horizontal extents")}
	}
	return FontMetrics{
		UnitsPerEm: int(s.face.Upem()),
		Ascent:     float64(ext.Ascender),
		Descent:    -float64(ext.Descender),
	}, nil
}

func (s *goTextSource) outline(gid GlyphIndex) ([]Segment, error) {
	data := s.face.GlyphData(gotext.GID(gid))
	g, ok := data.(gotext.GlyphOutline)
	if !ok {
		// Bitmap and SVG glyphs have no outline to trace.
		return nil, nil
	}

	segs := make([]Segment, 0, len(g.Segments))
	for _, r := range g.Segments {
		seg := Segment{}
		switch r.Op {
		case opentype.SegmentOpMoveTo:
			seg.Op = SegmentMoveTo
		case opentype.SegmentOpLineTo:
			seg.Op = SegmentLineTo
		case opentype.SegmentOpQuadTo:
			seg.Op = SegmentQuadTo
		case opentype.SegmentOpCubeTo:
			seg.Op = SegmentCubeTo
		default:
			continue
		}
		for i := 0; i < seg.Op.pointCount(); i++ {
			seg.Args[i] = Point{X: float64(r.Args[i].X), Y: float64(r.Args[i].Y)}
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

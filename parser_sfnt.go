package faicon

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// sfntSource implements glyphSource with golang.org/x/image/font/sfnt.
// sfnt.Buffer is not safe for concurrent use, so it is guarded by mu.
type sfntSource struct {
	font *opentype.Font
	upem fixed.Int26_6

	mu  sync.Mutex
	buf sfnt.Buffer
}

func newSFNTSource(data []byte) (*sfntSource, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, &FontError{Parser: ParserSFNT, Op: "parse", Err: err}
	}
	// Loading at ppem == unitsPerEm yields outlines in font units.
	return &sfntSource{font: f, upem: fixed.I(int(f.UnitsPerEm()))}, nil
}

func (s *sfntSource) glyphIndex(r rune) (GlyphIndex, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, err := s.font.GlyphIndex(&s.buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return GlyphIndex(idx), true
}

func (s *sfntSource) metrics() (FontMetrics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.font.Metrics(&s.buf, s.upem, font.HintingNone)
	if err != nil {
		return FontMetrics{}, &FontError{Parser: ParserSFNT, Op: "metrics", Err: err}
	}
	return FontMetrics{
		UnitsPerEm: int(s.font.UnitsPerEm()),
		Ascent:     fixedToFloat(m.Ascent),
		Descent:    fixedToFloat(m.Descent),
	}, nil
}

func (s *sfntSource) outline(gid GlyphIndex) ([]Segment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := s.font.LoadGlyph(&s.buf, sfnt.GlyphIndex(gid), s.upem, nil)
	if err != nil {
		return nil, &FontError{Parser: ParserSFNT, Op: "glyph", Err: err}
	}

	segs := make([]Segment, 0, len(raw))
	for _, r := range raw {
		seg := Segment{}
		switch r.Op {
		case sfnt.SegmentOpMoveTo:
			seg.Op = SegmentMoveTo
		case sfnt.SegmentOpLineTo:
			seg.Op = SegmentLineTo
		case sfnt.SegmentOpQuadTo:
			seg.Op = SegmentQuadTo
		case sfnt.SegmentOpCubeTo:
			seg.Op = SegmentCubeTo
		default:
			continue
		}
		for i := 0; i < seg.Op.pointCount(); i++ {
			// sfnt is y-down.
			seg.Args[i] = Point{X: fixedToFloat(r.Args[i].X), Y: -fixedToFloat(r.Args[i].Y)}
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

func familyName(f *opentype.Font) string {
	var buf sfnt.Buffer
	for _, id := range []sfnt.NameID{sfnt.NameIDFamily, sfnt.NameIDFull} {
		if name, err := f.Name(&buf, id); err == nil && name != "" {
			return name
		}
	}
	return ""
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

package faicon

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// GlyphIndex identifies a glyph within a font. Index 0 is .notdef.
type GlyphIndex uint16

// FontMetrics holds font-wide vertical metrics in font units.
type FontMetrics struct {
	// UnitsPerEm is the size of the em square.
	UnitsPerEm int

	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font
	// (positive, unlike the OS/2 table).
	Descent float64
}

// glyphSource is a font parser backend.
type glyphSource interface {
	glyphIndex(r rune) (GlyphIndex, bool)
	metrics() (FontMetrics, error)
	// outline returns the glyph outline in font units, y-up.
	outline(gid GlyphIndex) ([]Segment, error)
}

// Font is a loaded icon font. It is read-only after LoadFont returns and
// may be shared across goroutines.
//
// Font is an explicit handle: create it once at startup and pass it to
// NewGenerator and the control adapters.
type Font struct {
	data    []byte
	parser  Parser
	src     glyphSource
	metrics FontMetrics

	// sfnt backs Face and Name for both parsers. With ParserGoText it is
	// parsed on first use.
	sfntOnce sync.Once
	sfnt     *opentype.Font
	sfntErr  error
}

// LoadFont parses TTF or OTF data. The data slice is copied and can be
// reused after the call.
func LoadFont(data []byte, opts ...FontOption) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	cfg := defaultFontConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	buf := make([]byte, len(data))
	copy(buf, data)
	f := &Font{data: buf, parser: cfg.parser}

	switch cfg.parser {
	case ParserGoText:
		src, err := newGoTextSource(buf)
		if err != nil {
			return nil, err
		}
		f.src = src
	default:
		src, err := newSFNTSource(buf)
		if err != nil {
			return nil, err
		}
		f.src = src
		f.sfntOnce.Do(func() { f.sfnt = src.font })
	}

	m, err := f.src.metrics()
	if err != nil {
		return nil, err
	}
	if m.UnitsPerEm <= 0 {
		return nil, &FontError{Parser: f.parser, Op: "metrics", Err: errors.New("units per em must be positive")}
	}
	f.metrics = m

	Logger().Debug("faicon: font loaded",
		"parser", f.parser.String(),
		"bytes", len(buf),
		"upem", m.UnitsPerEm)
	return f, nil
}

// LoadFontFile loads a font from a file path.
func LoadFontFile(path string, opts ...FontOption) (*Font, error) {
	// #nosec G304 -- font path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("faicon: read font file: %w", err)
	}
	return LoadFont(data, opts...)
}

// LoadFontFS loads a font bundled in fsys, typically an embed.FS.
func LoadFontFS(fsys fs.FS, name string, opts ...FontOption) (*Font, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("faicon: read bundled font %q: %w", name, err)
	}
	return LoadFont(data, opts...)
}

// MustLoadFontFS is like LoadFontFS but panics on error. It is intended
// for package-level variables where a missing icon font is fatal.
func MustLoadFontFS(fsys fs.FS, name string, opts ...FontOption) *Font {
	f, err := LoadFontFS(fsys, name, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// GlyphIndex returns the glyph for r, or 0 (.notdef) when r is unmapped.
func (f *Font) GlyphIndex(r rune) GlyphIndex {
	gid, _ := f.src.glyphIndex(r)
	return gid
}

// LookupGlyph returns the glyph for r and whether the font maps r at all.
func (f *Font) LookupGlyph(r rune) (GlyphIndex, bool) {
	return f.src.glyphIndex(r)
}

// Metrics returns the font's vertical metrics in font units.
func (f *Font) Metrics() FontMetrics {
	return f.metrics
}

// Parser returns the backend the font was parsed with.
func (f *Font) Parser() Parser {
	return f.parser
}

// Outline returns the native outline of gid, in font units with y pointing
// up. Most callers want BuildPath instead.
func (f *Font) Outline(gid GlyphIndex) (*Outline, error) {
	segs, err := f.src.outline(gid)
	if err != nil {
		return nil, err
	}
	return NewOutline(segs), nil
}

// Face returns an x/image face at size points (72 DPI). Control adapters
// use it to show icons as text.
func (f *Font) Face(size float64) (font.Face, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	sf, err := f.sfntFont()
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(sf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("faicon: new face: %w", err)
	}
	return face, nil
}

// Name returns the family name, or "" when the font has none.
func (f *Font) Name() string {
	sf, err := f.sfntFont()
	if err != nil {
		return ""
	}
	return familyName(sf)
}

func (f *Font) sfntFont() (*opentype.Font, error) {
	f.sfntOnce.Do(func() {
		sf, err := opentype.Parse(f.data)
		if err != nil {
			f.sfntErr = &FontError{Parser: ParserSFNT, Op: "parse", Err: err}
			return
		}
		f.sfnt = sf
	})
	return f.sfnt, f.sfntErr
}

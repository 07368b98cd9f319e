package faicon

import (
	"fmt"
	"unicode/utf8"
)

// ImageCreator renders icons to bitmaps. *Generator implements it; the
// control and richtext packages accept the interface.
type ImageCreator interface {
	CreateImage(icon string) (*Bitmap, error)
	CreateImageSize(icon string, size float64) (*Bitmap, error)
}

// Generator pairs a font with a rendering configuration. A Generator is
// immutable and safe for concurrent use; With derives a modified copy.
type Generator struct {
	font *Font
	cfg  Config
}

var _ ImageCreator = (*Generator)(nil)

// NewGenerator returns a generator for f starting from DefaultConfig.
func NewGenerator(f *Font, opts ...Option) (*Generator, error) {
	if f == nil {
		return nil, ErrNilFont
	}
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg = cfg.clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{font: f, cfg: cfg}, nil
}

// With returns a new generator with opts applied on top of g's
// configuration. g is not modified.
func (g *Generator) With(opts ...Option) (*Generator, error) {
	cfg := g.cfg.clone()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg = cfg.clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{font: g.font, cfg: cfg}, nil
}

// Config returns a copy of the configuration.
func (g *Generator) Config() Config {
	return g.cfg.clone()
}

// Font returns the generator's font.
func (g *Generator) Font() *Font {
	return g.font
}

// CreateImage renders icon at the configured size.
func (g *Generator) CreateImage(icon string) (*Bitmap, error) {
	o, err := g.CreatePath(icon, g.cfg.Size)
	if err != nil {
		return nil, err
	}
	return composite(g.cfg, o)
}

// CreateImageSize renders icon with a glyph of height size on the canvas
// of the configured Size. A glyph taller than the canvas is clipped; use
// With(WithSize(size)) to resize the canvas too.
func (g *Generator) CreateImageSize(icon string, size float64) (*Bitmap, error) {
	o, err := g.CreatePath(icon, size)
	if err != nil {
		return nil, err
	}
	return composite(g.cfg, o)
}

// CreatePath returns the outline of icon for an image of height size.
// The stroke width is taken off the height, and with Square the glyph is
// narrowed to fit the same width. Only the first rune of icon is used.
func (g *Generator) CreatePath(icon string, size float64) (*Outline, error) {
	padded := size - g.cfg.StrokeWidth
	if !(padded > 0) {
		return nil, fmt.Errorf("%w: stroke %v leaves no room at size %v", ErrInvalidSize, g.cfg.StrokeWidth, size)
	}
	gid, err := g.glyphFor(icon)
	if err != nil {
		return nil, err
	}
	o, err := BuildPath(g.font, gid, padded)
	if err != nil {
		return nil, err
	}
	if g.cfg.Square {
		o = FitToWidth(o, padded)
	}
	return o, nil
}

// CreateImageFromPath renders an outline built by CreatePath or BuildPath.
func (g *Generator) CreateImageFromPath(o *Outline) (*Bitmap, error) {
	if o == nil {
		o = NewOutline(nil)
	}
	return composite(g.cfg, o)
}

func (g *Generator) glyphFor(icon string) (GlyphIndex, error) {
	if icon == "" {
		if g.cfg.Strict {
			return 0, fmt.Errorf("%w: empty icon", ErrUnmappedIcon)
		}
		return 0, nil
	}
	r, _ := utf8.DecodeRuneInString(icon)
	gid, ok := g.font.LookupGlyph(r)
	if ok {
		return gid, nil
	}
	if g.cfg.Strict {
		return 0, fmt.Errorf("%w: %U", ErrUnmappedIcon, r)
	}
	Logger().Warn("faicon: icon not mapped, using .notdef", "rune", fmt.Sprintf("%U", r))
	return 0, nil
}

package faicon

import (
	"fmt"
	"math"
)

// Config holds the styling of rendered icons. The zero Config is not
// valid; start from DefaultConfig.
type Config struct {
	// Size is the icon height in points.
	Size float64

	// Insets adds transparent padding around the glyph.
	Insets EdgeInsets

	// StrokeWidth is the outline width in points. Zero disables the stroke.
	StrokeWidth float64

	// Square forces equal width and height.
	Square bool

	// Padded keeps the font's line box vertically. When false the canvas
	// is cropped to the glyph bounds.
	Padded bool

	// Colors is the fill. More than one color produces a vertical
	// gradient from the first (top) to the last (bottom). The legacy
	// renderer put the first color at the bottom.
	Colors []RGBA

	// StrokeColor is used when StrokeWidth is positive.
	StrokeColor RGBA

	// RenderingMode tags every rendered bitmap.
	RenderingMode RenderingMode

	// Scale is the number of pixels per point.
	Scale float64

	// Strict makes icons the font does not map an error instead of
	// rendering the .notdef glyph.
	Strict bool
}

// DefaultConfig returns the default styling: 32pt, dark gray, square and
// padded, with no stroke.
func DefaultConfig() Config {
	return Config{
		Size:          32,
		Square:        true,
		Padded:        true,
		Colors:        []RGBA{DarkGray},
		StrokeColor:   Black,
		RenderingMode: RenderingModeAutomatic,
		Scale:         1,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case !(c.Size > 0) || math.IsInf(c.Size, 0):
		return fmt.Errorf("%w: got %v", ErrInvalidSize, c.Size)
	case len(c.Colors) == 0:
		return ErrNoColors
	case c.StrokeWidth < 0 || math.IsNaN(c.StrokeWidth):
		return fmt.Errorf("%w: got %v", ErrInvalidStroke, c.StrokeWidth)
	case !(c.Scale > 0) || math.IsInf(c.Scale, 0):
		return fmt.Errorf("%w: got %v", ErrInvalidScale, c.Scale)
	case !c.Insets.finite():
		return fmt.Errorf("%w: got %+v", ErrInvalidInsets, c.Insets)
	}
	return nil
}

// clone returns c with its own copy of Colors.
func (c Config) clone() Config {
	c.Colors = append([]RGBA(nil), c.Colors...)
	return c
}

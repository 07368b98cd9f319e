package faicon

import (
	"errors"
	"fmt"
)

// Errors returned by the font loader and the generator.
var (
	// ErrEmptyFontData is returned when LoadFont gets no bytes.
	ErrEmptyFontData = errors.New("faicon: empty font data")

	// ErrInvalidSize is returned for a non-positive render size.
	ErrInvalidSize = errors.New("faicon: size must be positive")

	// ErrNoColors is returned when a configuration has an empty color list.
	ErrNoColors = errors.New("faicon: at least one fill color is required")

	// ErrInvalidStroke is returned for a negative stroke width.
	ErrInvalidStroke = errors.New("faicon: stroke width must not be negative")

	// ErrInvalidScale is returned for a non-positive pixel scale.
	ErrInvalidScale = errors.New("faicon: scale must be positive")

	// ErrInvalidInsets is returned for a NaN or infinite inset.
	ErrInvalidInsets = errors.New("faicon: insets must be finite")

	// ErrUnmappedIcon is returned in strict mode when the font has no glyph
	// for the requested character.
	ErrUnmappedIcon = errors.New("faicon: icon not mapped by font")

	// ErrCanvasTooLarge is returned when the offscreen canvas would exceed
	// MaxCanvasDimension pixels on either side.
	ErrCanvasTooLarge = errors.New("faicon: canvas too large")

	// ErrNilFont is returned when a generator is built without a font.
	ErrNilFont = errors.New("faicon: nil font")
)

// MaxCanvasDimension is the largest canvas side, in pixels, the compositor
// will allocate.
const MaxCanvasDimension = 16384

// FontError reports a failure in a font parser backend.
type FontError struct {
	Parser Parser // backend that failed
	Op     string // "parse", "glyph", "metrics"
	Err    error
}

func (e *FontError) Error() string {
	return fmt.Sprintf("faicon: %s %s: %v", e.Parser, e.Op, e.Err)
}

func (e *FontError) Unwrap() error {
	return e.Err
}

package faicon

// Option configures a Generator.
//
// Example:
//
//	gen, err := faicon.NewGenerator(font,
//	    faicon.WithSize(24),
//	    faicon.WithColors(faicon.Red, faicon.Blue),
//	    faicon.WithStroke(1, faicon.Black))
type Option func(*Config)

// WithConfig replaces the whole configuration.
func WithConfig(c Config) Option {
	return func(dst *Config) {
		*dst = c.clone()
	}
}

// WithSize sets the icon height in points.
func WithSize(size float64) Option {
	return func(c *Config) {
		c.Size = size
	}
}

// WithInsets sets the padding around the glyph.
func WithInsets(in EdgeInsets) Option {
	return func(c *Config) {
		c.Insets = in
	}
}

// WithStrokeWidth sets the stroke width in points.
func WithStrokeWidth(w float64) Option {
	return func(c *Config) {
		c.StrokeWidth = w
	}
}

// WithStroke sets the stroke width and color.
func WithStroke(w float64, col RGBA) Option {
	return func(c *Config) {
		c.StrokeWidth = w
		c.StrokeColor = col
	}
}

// WithStrokeColor sets the stroke color.
func WithStrokeColor(col RGBA) Option {
	return func(c *Config) {
		c.StrokeColor = col
	}
}

// WithSquare sets whether the canvas is forced square.
func WithSquare(square bool) Option {
	return func(c *Config) {
		c.Square = square
	}
}

// WithPadded sets whether the canvas keeps the font's line height.
func WithPadded(padded bool) Option {
	return func(c *Config) {
		c.Padded = padded
	}
}

// WithColors sets the fill colors. The slice is copied.
func WithColors(colors ...RGBA) Option {
	return func(c *Config) {
		c.Colors = append([]RGBA(nil), colors...)
	}
}

// WithRenderingMode sets the rendering mode of produced bitmaps.
func WithRenderingMode(m RenderingMode) Option {
	return func(c *Config) {
		c.RenderingMode = m
	}
}

// WithScale sets the number of pixels per point.
func WithScale(scale float64) Option {
	return func(c *Config) {
		c.Scale = scale
	}
}

// WithStrict enables or disables strict glyph lookup.
func WithStrict(strict bool) Option {
	return func(c *Config) {
		c.Strict = strict
	}
}

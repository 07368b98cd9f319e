package faicon

import (
	"fmt"
	"image"
)

// canvasLayout is where an outline lands on the canvas, in points.
type canvasLayout struct {
	size   Size
	offset Point // added to outline coordinates, y-up
}

// layoutCanvas computes the canvas size and outline offset for bounds.
func layoutCanvas(cfg Config, bounds Rect) canvasLayout {
	var l canvasLayout
	l.size = Size{Width: bounds.Width(), Height: bounds.Height()}

	if cfg.Padded {
		l.size.Height = cfg.Size
		l.size.Width += cfg.StrokeWidth
	} else {
		l.offset = Point{X: -bounds.MinX, Y: -bounds.MinY}
		// Some glyphs (sun, linux) are taller than the em box.
		l.size.Height = min(l.size.Height, cfg.Size)
	}
	l.size.Width = RoundSize(l.size.Width)
	l.size.Height = RoundSize(l.size.Height)

	if cfg.Square {
		diff := l.size.Height - l.size.Width
		if diff > 0 {
			l.offset.X += diff / 2
			l.size.Width = l.size.Height
		} else {
			l.offset.Y += -diff / 2
			l.size.Height = l.size.Width
		}
	}

	pad := cfg.StrokeWidth / 2
	l.offset.X += pad + cfg.Insets.Left
	l.offset.Y += pad + cfg.Insets.Bottom
	l.size.Width += cfg.Insets.Left + cfg.Insets.Right
	l.size.Height += cfg.Insets.Top + cfg.Insets.Bottom
	return l
}

// deviceTransform maps y-up outline points to top-left origin pixels.
func (l canvasLayout) deviceTransform(scale float64) Matrix {
	return Scale(scale, -scale).Multiply(Translate(l.offset.X, l.offset.Y-l.size.Height))
}

// pixelSize returns the canvas dimensions in pixels, at least 1x1.
func (l canvasLayout) pixelSize(scale float64) (w, h int, err error) {
	fw := max(RoundSize(l.size.Width*scale), 1)
	fh := max(RoundSize(l.size.Height*scale), 1)
	// NaN fails both comparisons.
	if !(fw <= MaxCanvasDimension && fh <= MaxCanvasDimension) {
		return 0, 0, fmt.Errorf("%w: %vx%v pixels", ErrCanvasTooLarge, fw, fh)
	}
	return int(fw), int(fh), nil
}

// composite renders o into a new bitmap using cfg.
func composite(cfg Config, o *Outline) (*Bitmap, error) {
	l := layoutCanvas(cfg, o.Bounds())
	w, h, err := l.pixelSize(cfg.Scale)
	if err != nil {
		return nil, err
	}
	Logger().Debug("faicon: composite",
		"points", fmt.Sprintf("%gx%g", l.size.Width, l.size.Height),
		"pixels", fmt.Sprintf("%dx%d", w, h),
		"colors", len(cfg.Colors),
		"stroke", cfg.StrokeWidth)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	dev := o.Transform(l.deviceTransform(cfg.Scale))

	if !dev.IsEmpty() {
		fillOutline(img, dev, fillSource(img.Rect, dev.Bounds(), cfg.Colors))
		if cfg.StrokeWidth > 0 && cfg.StrokeColor.A > 0 {
			strokeOutline(img, dev, cfg.StrokeWidth*cfg.Scale, image.NewUniform(cfg.StrokeColor.Color()))
		}
	}

	return &Bitmap{
		img:   img,
		size:  l.size,
		scale: cfg.Scale,
		mode:  cfg.RenderingMode,
	}, nil
}

// fillSource returns a flat color for one color and a top-to-bottom
// gradient across the outline bounds otherwise. bounds is in device space,
// so MinY is the visual top.
func fillSource(rect image.Rectangle, bounds Rect, colors []RGBA) image.Image {
	if len(colors) == 1 {
		return image.NewUniform(colors[0].Color())
	}
	return newVerticalGradient(rect, bounds.MinY, bounds.MaxY, EvenStops(colors))
}

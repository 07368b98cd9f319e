package faicon

import (
	"image"
	"image/color"

	icolor "github.com/gogpu/faicon/internal/color"
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// EvenStops spreads colors evenly over [0, 1], the first at 0 and the last
// at 1. A single color yields one stop at 0.
func EvenStops(colors []RGBA) []ColorStop {
	stops := make([]ColorStop, len(colors))
	for i, c := range colors {
		off := 0.0
		if len(colors) > 1 {
			off = float64(i) / float64(len(colors)-1)
		}
		stops[i] = ColorStop{Offset: off, Color: c}
	}
	return stops
}

// colorAtOffset returns the color at t, clamped to [0, 1]. Stops must be
// sorted by offset. Blending happens in linear sRGB.
func colorAtOffset(stops []ColorStop, t float64) RGBA {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}
	t = clamp01(t)
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if t > stops[i].Offset {
			continue
		}
		if t == stops[i].Offset {
			return stops[i].Color
		}
		a, b := stops[i-1], stops[i]
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		return interpolateColorLinear(a.Color, b.Color, (t-a.Offset)/span)
	}
	return last.Color
}

// interpolateColorLinear blends c1 and c2 in linear sRGB space.
func interpolateColorLinear(c1, c2 RGBA, t float64) RGBA {
	l := icolor.Mix(icolor.FromSRGB(c1.R, c1.G, c1.B, c1.A), icolor.FromSRGB(c2.R, c2.G, c2.B, c2.A), t)
	r, g, b, a := l.SRGB()
	return RGBA{R: r, G: g, B: b, A: a}
}

// verticalGradient is a vertical linear gradient laid out over a canvas.
// Colors are precomputed per pixel row. Rows above top take the first
// stop, rows below bottom the last.
type verticalGradient struct {
	rect image.Rectangle
	rows []color.NRGBA
}

// newVerticalGradient returns a gradient over rect running from device
// y top (offset 0) to device y bottom (offset 1).
func newVerticalGradient(rect image.Rectangle, top, bottom float64, stops []ColorStop) *verticalGradient {
	g := &verticalGradient{rect: rect, rows: make([]color.NRGBA, rect.Dy())}
	span := bottom - top
	for i := range g.rows {
		y := float64(rect.Min.Y+i) + 0.5 // sample at the pixel center
		t := 0.0
		if span > 0 {
			t = (y - top) / span
		}
		g.rows[i] = colorAtOffset(stops, t).Color()
	}
	return g
}

func (g *verticalGradient) ColorModel() color.Model { return color.NRGBAModel }

func (g *verticalGradient) Bounds() image.Rectangle { return g.rect }

func (g *verticalGradient) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(g.rect)) {
		return color.NRGBA{}
	}
	return g.rows[y-g.rect.Min.Y]
}

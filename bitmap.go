package faicon

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
)

// Bitmap is a rendered icon. It is immutable: pixels are never written
// after the compositor returns it.
type Bitmap struct {
	img   *image.RGBA
	size  Size
	scale float64
	mode  RenderingMode
}

// Width returns the width in pixels.
func (b *Bitmap) Width() int {
	return b.img.Rect.Dx()
}

// Height returns the height in pixels.
func (b *Bitmap) Height() int {
	return b.img.Rect.Dy()
}

// Size returns the logical size in points.
func (b *Bitmap) Size() Size {
	return b.size
}

// Scale returns the number of pixels per point.
func (b *Bitmap) Scale() float64 {
	return b.scale
}

// RenderingMode returns how the host should draw the bitmap.
func (b *Bitmap) RenderingMode() RenderingMode {
	return b.mode
}

// WithRenderingMode returns the same pixels tagged with m.
func (b *Bitmap) WithRenderingMode(m RenderingMode) *Bitmap {
	if m == b.mode {
		return b
	}
	out := *b
	out.mode = m
	return &out
}

// Image returns a copy of the pixels as premultiplied RGBA.
func (b *Bitmap) Image() *image.RGBA {
	img := image.NewRGBA(b.img.Rect)
	copy(img.Pix, b.img.Pix)
	return img
}

// Pixel returns the non-premultiplied color at (x, y).
func (b *Bitmap) Pixel(x, y int) RGBA {
	return FromColor(b.img.RGBAAt(x, y))
}

// At implements the image.Image interface.
func (b *Bitmap) At(x, y int) color.Color {
	return b.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return b.img.Rect
}

// ColorModel implements the image.Image interface.
func (b *Bitmap) ColorModel() color.Model {
	return color.RGBAModel
}

// Tint returns a copy painted in c, keeping only the coverage of b. This is
// how a host draws a RenderingModeAlwaysTemplate bitmap.
func (b *Bitmap) Tint(c RGBA) *Bitmap {
	img := image.NewRGBA(b.img.Rect)
	for i := 0; i+3 < len(b.img.Pix); i += 4 {
		a := float64(b.img.Pix[i+3]) / 255 * clamp01(c.A)
		img.Pix[i+0] = uint8(math.Round(clamp01(c.R) * a * 255))
		img.Pix[i+1] = uint8(math.Round(clamp01(c.G) * a * 255))
		img.Pix[i+2] = uint8(math.Round(clamp01(c.B) * a * 255))
		img.Pix[i+3] = uint8(math.Round(a * 255))
	}
	out := *b
	out.img = img
	return &out
}

// EncodePNG writes the bitmap to w as PNG.
func (b *Bitmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, b.img)
}

// SavePNG saves the bitmap to a PNG file.
func (b *Bitmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

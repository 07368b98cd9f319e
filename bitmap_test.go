package faicon

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"
)

func testBitmap(t *testing.T) *Bitmap {
	t.Helper()
	o := NewOutlineBuilder().Rect(0, 0, 8, 8).Build()
	bm, err := composite(unpaddedConfig(), o)
	if err != nil {
		t.Fatal(err)
	}
	return bm
}

func TestBitmapWithRenderingModeSharesPixels(t *testing.T) {
	bm := testBitmap(t)
	tmpl := bm.WithRenderingMode(RenderingModeAlwaysTemplate)
	if tmpl.RenderingMode() != RenderingModeAlwaysTemplate {
		t.Errorf("mode = %v", tmpl.RenderingMode())
	}
	if bm.RenderingMode() != RenderingModeAutomatic {
		t.Error("WithRenderingMode modified the receiver")
	}
	if &tmpl.img.Pix[0] != &bm.img.Pix[0] {
		t.Error("WithRenderingMode should not copy pixels")
	}
	if bm.WithRenderingMode(RenderingModeAutomatic) != bm {
		t.Error("same mode should return the receiver")
	}
}

func TestBitmapImageIsCopy(t *testing.T) {
	bm := testBitmap(t)
	img := bm.Image()
	img.Pix[3] = 0
	if bm.img.Pix[3] != 255 {
		t.Error("Image must return a copy")
	}
}

func TestBitmapTint(t *testing.T) {
	bm := testBitmap(t)
	red := bm.Tint(Red)
	c := red.img.RGBAAt(4, 4)
	if c.R != 255 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Errorf("tinted pixel = %v, want opaque red", c)
	}
	if bm.img.RGBAAt(4, 4).R != 0 {
		t.Error("Tint modified the receiver")
	}

	half := bm.Tint(RGBA{R: 1, A: 0.5})
	if a := half.img.RGBAAt(4, 4).A; a < 127 || a > 128 {
		t.Errorf("half alpha tint A = %d, want ~128", a)
	}
}

func TestBitmapPNG(t *testing.T) {
	bm := testBitmap(t)
	var buf bytes.Buffer
	if err := bm.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != bm.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", img.Bounds(), bm.Bounds())
	}

	path := filepath.Join(t.TempDir(), "icon.png")
	if err := bm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
}

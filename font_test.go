package faicon

import (
	"errors"
	"io/fs"
	"math"
	"strings"
	"testing"
	"testing/fstest"

	"golang.org/x/image/font/gofont/goregular"
)

func loadTestFont(t *testing.T, opts ...FontOption) *Font {
	t.Helper()
	f, err := LoadFont(goregular.TTF, opts...)
	if err != nil {
		t.Fatalf("LoadFont() error = %v", err)
	}
	return f
}

func TestLoadFontErrors(t *testing.T) {
	if _, err := LoadFont(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("LoadFont(nil) error = %v, want ErrEmptyFontData", err)
	}

	for _, p := range []Parser{ParserSFNT, ParserGoText} {
		_, err := LoadFont([]byte("not a font at all"), WithParser(p))
		var fe *FontError
		if !errors.As(err, &fe) {
			t.Errorf("%v: LoadFont(garbage) error = %v, want *FontError", p, err)
			continue
		}
		if fe.Parser != p || fe.Op != "parse" {
			t.Errorf("%v: FontError = %+v", p, fe)
		}
	}
}

func TestLoadFontCopiesData(t *testing.T) {
	data := append([]byte(nil), goregular.TTF...)
	f, err := LoadFont(data)
	if err != nil {
		t.Fatal(err)
	}
	for i := range data {
		data[i] = 0
	}
	if _, ok := f.LookupGlyph('A'); !ok {
		t.Error("font should not depend on the caller's buffer")
	}
}

func TestLoadFontFS(t *testing.T) {
	fsys := fstest.MapFS{
		"fonts/icons.ttf": &fstest.MapFile{Data: goregular.TTF},
	}

	f, err := LoadFontFS(fsys, "fonts/icons.ttf")
	if err != nil {
		t.Fatalf("LoadFontFS() error = %v", err)
	}
	if f.Metrics().UnitsPerEm <= 0 {
		t.Error("UnitsPerEm should be positive")
	}

	if _, err := LoadFontFS(fsys, "fonts/missing.ttf"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing font error = %v, want fs.ErrNotExist", err)
	}
}

func TestMustLoadFontFSPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLoadFontFS should panic for a missing font")
		}
	}()
	MustLoadFontFS(fstest.MapFS{}, "nope.ttf")
}

func TestLoadFontFileMissing(t *testing.T) {
	_, err := LoadFontFile(t.TempDir() + "/missing.ttf")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadFontFile() error = %v, want fs.ErrNotExist", err)
	}
}

func TestFontGlyphLookup(t *testing.T) {
	for _, p := range []Parser{ParserSFNT, ParserGoText} {
		t.Run(p.String(), func(t *testing.T) {
			f := loadTestFont(t, WithParser(p))

			gid, ok := f.LookupGlyph('A')
			if !ok || gid == 0 {
				t.Errorf("LookupGlyph('A') = %d, %v; want mapped", gid, ok)
			}
			if got := f.GlyphIndex('A'); got != gid {
				t.Errorf("GlyphIndex('A') = %d, want %d", got, gid)
			}

			// Go fonts have no private-use icons.
			if gid, ok := f.LookupGlyph('\uf015'); ok || gid != 0 {
				t.Errorf("LookupGlyph(U+F015) = %d, %v; want 0, false", gid, ok)
			}
			if got := f.GlyphIndex('\uf015'); got != 0 {
				t.Errorf("GlyphIndex(U+F015) = %d, want 0", got)
			}
		})
	}
}

func TestFontMetrics(t *testing.T) {
	f := loadTestFont(t)
	m := f.Metrics()
	if m.UnitsPerEm != 2048 {
		t.Errorf("UnitsPerEm = %d, want 2048", m.UnitsPerEm)
	}
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("Ascent, Descent = %v, %v; want both positive", m.Ascent, m.Descent)
	}
}

func TestParserParity(t *testing.T) {
	sf := loadTestFont(t, WithParser(ParserSFNT))
	gt := loadTestFont(t, WithParser(ParserGoText))

	if sf.Metrics().UnitsPerEm != gt.Metrics().UnitsPerEm {
		t.Fatalf("UnitsPerEm differ: %d vs %d", sf.Metrics().UnitsPerEm, gt.Metrics().UnitsPerEm)
	}

	for _, r := range "AHgo@" {
		if sf.GlyphIndex(r) != gt.GlyphIndex(r) {
			t.Errorf("GlyphIndex(%q) differs: %d vs %d", r, sf.GlyphIndex(r), gt.GlyphIndex(r))
			continue
		}
		a, err := sf.Outline(sf.GlyphIndex(r))
		if err != nil {
			t.Fatal(err)
		}
		b, err := gt.Outline(gt.GlyphIndex(r))
		if err != nil {
			t.Fatal(err)
		}
		ab, bb := a.Bounds(), b.Bounds()
		const tol = 1.0 // font units
		if math.Abs(ab.MinX-bb.MinX) > tol || math.Abs(ab.MinY-bb.MinY) > tol ||
			math.Abs(ab.MaxX-bb.MaxX) > tol || math.Abs(ab.MaxY-bb.MaxY) > tol {
			t.Errorf("%q bounds differ: sfnt %+v, gotext %+v", r, ab, bb)
		}
	}
}

func TestFontOutlineIsYUp(t *testing.T) {
	f := loadTestFont(t)
	o, err := f.Outline(f.GlyphIndex('H'))
	if err != nil {
		t.Fatal(err)
	}
	b := o.Bounds()
	// 'H' sits on the baseline and rises above it.
	if math.Abs(b.MinY) > 1 {
		t.Errorf("H MinY = %v, want 0", b.MinY)
	}
	if b.MaxY <= 0 {
		t.Errorf("H MaxY = %v, want positive", b.MaxY)
	}
}

func TestFontFaceAndName(t *testing.T) {
	for _, p := range []Parser{ParserSFNT, ParserGoText} {
		f := loadTestFont(t, WithParser(p))
		if name := f.Name(); !strings.HasPrefix(name, "Go") {
			t.Errorf("%v: Name() = %q, want Go...", p, name)
		}
		face, err := f.Face(16)
		if err != nil {
			t.Fatalf("%v: Face() error = %v", p, err)
		}
		if _, ok := face.GlyphAdvance('A'); !ok {
			t.Errorf("%v: face has no advance for 'A'", p)
		}
		_ = face.Close()
	}

	f := loadTestFont(t)
	if _, err := f.Face(0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Face(0) error = %v, want ErrInvalidSize", err)
	}
}

func TestParseParser(t *testing.T) {
	tests := []struct {
		in      string
		want    Parser
		wantErr bool
	}{
		{"", ParserSFNT, false},
		{"sfnt", ParserSFNT, false},
		{"GoText", ParserGoText, false},
		{"freetype", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseParser(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseParser(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseParser(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/faicon"
)

func TestParseColors(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"#ff0000", 1, false},
		{"#ff0000, #00ff00,#0000ff", 3, false},
		{"", 0, true},
		{" , ", 0, true},
		{"#zzzzzz", 0, true},
	}
	for _, tt := range tests {
		got, err := parseColors(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseColors(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if len(got) != tt.want {
			t.Errorf("parseColors(%q) = %d colors, want %d", tt.in, len(got), tt.want)
		}
	}
}

func TestParseInsets(t *testing.T) {
	in, err := parseInsets("2")
	if err != nil || in != faicon.UniformInsets(2) {
		t.Errorf("parseInsets(2) = %v, %v", in, err)
	}
	in, err = parseInsets("1,2,3,4")
	if err != nil {
		t.Fatal(err)
	}
	if want := (faicon.EdgeInsets{Top: 1, Left: 2, Bottom: 3, Right: 4}); in != want {
		t.Errorf("parseInsets = %+v, want %+v", in, want)
	}
	for _, bad := range []string{"1,2", "x", "1,2,3,y"} {
		if _, err := parseInsets(bad); err == nil {
			t.Errorf("parseInsets(%q) expected error", bad)
		}
	}
}

func TestResolveIcon(t *testing.T) {
	tests := []struct {
		name, code string
		want       string
		wantErr    bool
	}{
		{"home", "", "\uf015", false},
		{"fa-home", "", "\uf015", false},
		{"", "f015", "\uf015", false},
		{"", "U+F015", "\uf015", false},
		{"home", "0048", "H", false},
		{"", "", "", true},
		{"no-such-icon", "", "", true},
		{"", "zz", "", true},
		{"", "110000", "", true},
	}
	for _, tt := range tests {
		got, err := resolveIcon(tt.name, tt.code)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolveIcon(%q, %q) error = %v, wantErr %v", tt.name, tt.code, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("resolveIcon(%q, %q) = %q, want %q", tt.name, tt.code, got, tt.want)
		}
	}
}

func TestRunList(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-list", "-icon", "home"}, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), "home") || !strings.Contains(stdout.String(), "U+F015") {
		t.Errorf("list output missing home: %q", stdout.String())
	}
	if strings.Contains(stdout.String(), "camera") {
		t.Errorf("filter not applied: %q", stdout.String())
	}
}

func TestRunRender(t *testing.T) {
	dir := t.TempDir()
	fontPath := filepath.Join(dir, "goregular.ttf")
	if err := os.WriteFile(fontPath, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "h.png")

	var stdout, stderr bytes.Buffer
	args := []string{"-font", fontPath, "-code", "0048", "-size", "24", "-scale", "2", "-out", out}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 48 {
		t.Errorf("image size = %v, want 48x48", b.Size())
	}
}

func TestRunRenderToPipe(t *testing.T) {
	dir := t.TempDir()
	fontPath := filepath.Join(dir, "goregular.ttf")
	if err := os.WriteFile(fontPath, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	args := []string{"-font", fontPath, "-code", "48", "-parser", "gotext", "-out", "-"}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&stdout)
	if err != nil {
		t.Fatalf("decode stdout: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("image size = %v, want 32x32", b.Size())
	}
}

func TestRunErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	tests := [][]string{
		{"-icon", "home"},
		{"-font", "/does/not/exist.ttf", "-icon", "home"},
		{"-font", "x.ttf", "-icon", "no-such-icon"},
		{"-bogus"},
	}
	for _, args := range tests {
		t.Setenv("FAICON_FONT", "")
		if err := run(args, &stdout, &stderr); err == nil {
			t.Errorf("run(%v) expected error", args)
		}
	}
}

func TestRunStrict(t *testing.T) {
	dir := t.TempDir()
	fontPath := filepath.Join(dir, "goregular.ttf")
	if err := os.WriteFile(fontPath, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "home.png")

	// Go Regular has no FontAwesome glyphs.
	var stdout, stderr bytes.Buffer
	args := []string{"-font", fontPath, "-icon", "home", "-out", out}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("lenient render: %v", err)
	}
	err := run(append([]string{"-strict"}, args...), &stdout, &stderr)
	if !errors.Is(err, faicon.ErrUnmappedIcon) {
		t.Errorf("strict render error = %v, want ErrUnmappedIcon", err)
	}
}

// Command faicon renders a single icon font glyph to an image file.
//
// Usage:
//
//	faicon -font fontawesome-webfont.ttf -icon home -size 64 -colors "#e74c3c,#8e44ad" -out home.png
//	faicon -font fontawesome-webfont.ttf -code f015 -out - > home.png
//	faicon -list
//
// The font path, size and output default to $FAICON_FONT, $FAICON_SIZE and
// $FAICON_OUT. The output format follows the file extension.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/disintegration/imaging"
	"golang.org/x/term"

	"github.com/gogpu/faicon"
	"github.com/gogpu/faicon/icons"
)

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// Colors used across the CLI.
const (
	defaultColor = "\x1b[0m"
	successColor = "\x1b[32m"
	errorColor   = "\x1b[31m"
)

// envConfig holds defaults read from the environment.
type envConfig struct {
	Font string  `env:"FAICON_FONT"`
	Size float64 `env:"FAICON_SIZE" envDefault:"32"`
	Out  string  `env:"FAICON_OUT" envDefault:"icon.png"`
}

// options are the parsed command line flags.
type options struct {
	font        string
	icon        string
	code        string
	size        float64
	colors      string
	stroke      float64
	strokeColor string
	square      bool
	padded      bool
	inset       string
	scale       float64
	mode        string
	parser      string
	out         string
	strict      bool
	list        bool
	verbose     bool
}

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(decorate(err.Error(), errorColor))
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	opts, err := parseFlags(args, ec, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	faicon.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	if opts.list {
		return listIcons(stdout, opts.icon)
	}
	return render(opts, stdout, stderr)
}

func parseFlags(args []string, ec envConfig, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("faicon", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.font, "font", ec.Font, "Icon font file (TTF/OTF)")
	fs.StringVar(&o.icon, "icon", "", "FontAwesome icon name, or a filter with -list")
	fs.StringVar(&o.code, "code", "", "Hex code point, e.g. f015")
	fs.Float64Var(&o.size, "size", ec.Size, "Icon height in points")
	fs.StringVar(&o.colors, "colors", "#555555", "Comma separated fill colors; more than one makes a gradient")
	fs.Float64Var(&o.stroke, "stroke", 0, "Stroke width in points")
	fs.StringVar(&o.strokeColor, "stroke-color", "#000000", "Stroke color")
	fs.BoolVar(&o.square, "square", true, "Force a square image")
	fs.BoolVar(&o.padded, "padded", true, "Keep the font line height")
	fs.StringVar(&o.inset, "inset", "0", "Insets: one value or top,left,bottom,right")
	fs.Float64Var(&o.scale, "scale", 1, "Pixels per point")
	fs.StringVar(&o.mode, "mode", "automatic", "Rendering mode: automatic, original or template")
	fs.StringVar(&o.parser, "parser", "sfnt", "Font parser: sfnt or gotext")
	fs.StringVar(&o.out, "out", ec.Out, "Destination file, or - for stdout")
	fs.BoolVar(&o.strict, "strict", false, "Fail when the font does not map the icon")
	fs.BoolVar(&o.list, "list", false, "List icon names and exit")
	fs.BoolVar(&o.verbose, "v", false, "Verbose logging")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	return o, nil
}

func listIcons(w io.Writer, filter string) error {
	for _, name := range icons.Names() {
		if filter != "" && !strings.Contains(name, filter) {
			continue
		}
		icon, _ := icons.Lookup(name)
		if _, err := fmt.Fprintf(w, "%-28s U+%04X\n", name, []rune(icon)[0]); err != nil {
			return err
		}
	}
	return nil
}

func render(o options, stdout, stderr io.Writer) error {
	if o.font == "" {
		return errors.New("no font given: use -font or $FAICON_FONT")
	}
	icon, err := resolveIcon(o.icon, o.code)
	if err != nil {
		return err
	}
	gen, err := newGenerator(o)
	if err != nil {
		return err
	}

	bm, err := gen.CreateImage(icon)
	if err != nil {
		return err
	}

	if o.out == pipeName {
		if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		return imaging.Encode(stdout, bm, imaging.PNG)
	}
	if err := imaging.Save(bm, o.out); err != nil {
		return fmt.Errorf("save %s: %w", o.out, err)
	}
	fmt.Fprintf(stderr, "%s %dx%d -> %s\n",
		decorate("rendered", successColor), bm.Width(), bm.Height(), o.out)
	return nil
}

func newGenerator(o options) (*faicon.Generator, error) {
	parser, err := faicon.ParseParser(o.parser)
	if err != nil {
		return nil, err
	}
	font, err := faicon.LoadFontFile(o.font, faicon.WithParser(parser))
	if err != nil {
		return nil, err
	}
	colors, err := parseColors(o.colors)
	if err != nil {
		return nil, err
	}
	strokeColor, err := faicon.ParseHex(o.strokeColor)
	if err != nil {
		return nil, err
	}
	insets, err := parseInsets(o.inset)
	if err != nil {
		return nil, err
	}
	mode, err := faicon.ParseRenderingMode(o.mode)
	if err != nil {
		return nil, err
	}
	return faicon.NewGenerator(font,
		faicon.WithSize(o.size),
		faicon.WithColors(colors...),
		faicon.WithStroke(o.stroke, strokeColor),
		faicon.WithSquare(o.square),
		faicon.WithPadded(o.padded),
		faicon.WithInsets(insets),
		faicon.WithScale(o.scale),
		faicon.WithRenderingMode(mode),
		faicon.WithStrict(o.strict))
}

// resolveIcon returns the icon for a name or a hex code point. The code
// point wins when both are set.
func resolveIcon(name, code string) (string, error) {
	if code != "" {
		code = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(code), "u+"), "0x")
		v, err := strconv.ParseUint(code, 16, 32)
		if err != nil || v > 0x10ffff {
			return "", fmt.Errorf("invalid code point %q", code)
		}
		return string(rune(v)), nil
	}
	if name == "" {
		return "", errors.New("no icon given: use -icon or -code")
	}
	icon, ok := icons.Lookup(name)
	if !ok {
		return "", fmt.Errorf("unknown icon %q (see -list)", name)
	}
	return icon, nil
}

func parseColors(s string) ([]faicon.RGBA, error) {
	var colors []faicon.RGBA
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		c, err := faicon.ParseHex(part)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	if len(colors) == 0 {
		return nil, faicon.ErrNoColors
	}
	return colors, nil
}

func parseInsets(s string) (faicon.EdgeInsets, error) {
	parts := strings.Split(s, ",")
	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return faicon.EdgeInsets{}, fmt.Errorf("invalid inset %q: %w", p, err)
		}
		vals[i] = v
	}
	switch len(vals) {
	case 1:
		return faicon.UniformInsets(vals[0]), nil
	case 4:
		return faicon.EdgeInsets{Top: vals[0], Left: vals[1], Bottom: vals[2], Right: vals[3]}, nil
	}
	return faicon.EdgeInsets{}, fmt.Errorf("insets need 1 or 4 values, got %d", len(vals))
}

// decorate wraps s in a terminal color.
func decorate(s, color string) string {
	return color + s + defaultColor
}

// Package faicon renders icon font glyphs, such as FontAwesome, into
// bitmaps.
//
// # Overview
//
// An icon is a single character of an icon font. faicon maps the
// character to a glyph, builds its vector outline, fits it into a target
// box and rasterizes it with an optional gradient fill and stroke.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/faicon"
//	    "github.com/gogpu/faicon/icons"
//	)
//
//	font, err := faicon.LoadFontFile("fontawesome-webfont.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	gen, err := faicon.NewGenerator(font,
//	    faicon.WithSize(32),
//	    faicon.WithColors(faicon.Hex("#e74c3c"), faicon.Hex("#8e44ad")))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	bm, err := gen.CreateImage(icons.Home)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	bm.SavePNG("home.png")
//
// # Pipeline
//
//   - Font: loads TTF/OTF data with x/image/font/sfnt or go-text/typesetting
//   - BuildPath: scales the glyph outline to a height, baseline at the descent
//   - Generator: sizes the canvas (padding, square, insets) and composites
//     the fill and stroke with x/image/vector
//
// # Coordinate System
//
// Outlines are y-up like the font's own space. Bitmaps have the origin at
// the top-left. Sizes are in points; Config.Scale converts them to pixels.
//
// Sub-packages:
//   - icons: FontAwesome 4 code points
//   - control: setters for GUI labels, buttons, bar items and tabs
//   - richtext: attributed strings with inline icon images
package faicon

package faicon

import (
	"fmt"
	"strings"
)

// RenderingMode tells the host toolkit how to treat a rendered bitmap.
type RenderingMode int

const (
	// RenderingModeAutomatic lets the host decide from context.
	RenderingModeAutomatic RenderingMode = iota

	// RenderingModeAlwaysOriginal draws the bitmap with its own colors.
	RenderingModeAlwaysOriginal

	// RenderingModeAlwaysTemplate uses only the bitmap's alpha and draws
	// it in the host's tint color. See Bitmap.Tint.
	RenderingModeAlwaysTemplate
)

// String returns the name of the rendering mode.
func (m RenderingMode) String() string {
	switch m {
	case RenderingModeAutomatic:
		return "automatic"
	case RenderingModeAlwaysOriginal:
		return "original"
	case RenderingModeAlwaysTemplate:
		return "template"
	default:
		return fmt.Sprintf("RenderingMode(%d)", int(m))
	}
}

// ParseRenderingMode parses a rendering mode name as returned by String.
func ParseRenderingMode(s string) (RenderingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "automatic", "auto":
		return RenderingModeAutomatic, nil
	case "original", "alwaysoriginal":
		return RenderingModeAlwaysOriginal, nil
	case "template", "alwaystemplate":
		return RenderingModeAlwaysTemplate, nil
	}
	return 0, fmt.Errorf("faicon: unknown rendering mode %q", s)
}

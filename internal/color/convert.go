// Package color holds the sRGB transfer functions used when blending
// gradient stops.
package color

import "math"

// Linear is a color with linear-light RGB components in [0,1].
// Alpha is never gamma-encoded.
type Linear struct {
	R, G, B, A float64
}

// SRGBToLinear converts an sRGB component to linear light.
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear-light component to sRGB.
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// FromSRGB converts sRGB components to a Linear color.
func FromSRGB(r, g, b, a float64) Linear {
	return Linear{
		R: SRGBToLinear(r),
		G: SRGBToLinear(g),
		B: SRGBToLinear(b),
		A: a,
	}
}

// SRGB converts c back to sRGB components.
func (c Linear) SRGB() (r, g, b, a float64) {
	return LinearToSRGB(c.R), LinearToSRGB(c.G), LinearToSRGB(c.B), c.A
}

// Mix interpolates between a and b at t in linear light.
func Mix(a, b Linear, t float64) Linear {
	return Linear{
		R: a.R + t*(b.R-a.R),
		G: a.G + t*(b.G-a.G),
		B: a.B + t*(b.B-a.B),
		A: a.A + t*(b.A-a.A),
	}
}

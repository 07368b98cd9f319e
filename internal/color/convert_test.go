package color

import (
	"math"
	"testing"
)

func TestSRGBToLinearEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"mid gray", 0.5, math.Pow((0.5+0.055)/1.055, 2.4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SRGBToLinear(tt.input)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoundTripSRGBLinear(t *testing.T) {
	const maxError = 1.0 / 255.0

	for i := 0; i <= 255; i++ {
		srgb := float64(i) / 255.0
		roundTrip := LinearToSRGB(SRGBToLinear(srgb))
		if diff := math.Abs(roundTrip - srgb); diff > maxError {
			t.Errorf("round trip %d/255: got %v, diff %v", i, roundTrip, diff)
		}
	}
}

func TestMixEndpoints(t *testing.T) {
	a := FromSRGB(1, 0, 0, 1)
	b := FromSRGB(0, 0, 1, 0.5)

	if got := Mix(a, b, 0); got != a {
		t.Errorf("Mix(t=0) = %+v, want %+v", got, a)
	}
	if got := Mix(a, b, 1); got != b {
		t.Errorf("Mix(t=1) = %+v, want %+v", got, b)
	}

	mid := Mix(a, b, 0.5)
	if mid.A != 0.75 {
		t.Errorf("Mix(t=0.5).A = %v, want 0.75", mid.A)
	}
	r, _, bl, _ := mid.SRGB()
	// Linear-light blending keeps the midpoint brighter than a naive sRGB mix.
	if r <= 0.5 || bl <= 0.5 {
		t.Errorf("Mix(t=0.5) sRGB = (%v, _, %v), want both > 0.5", r, bl)
	}
}

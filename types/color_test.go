package types

import (
	"math"
	"testing"
)

func TestHSVToRGB(t *testing.T) {
	specs := []struct {
		hue, sat, val float64
		r, g, b       float64
	}{
		{hue: 0, sat: 1, val: 1, r: 1, g: 0, b: 0},
		{hue: 120, sat: 1, val: 1, r: 0, g: 1, b: 0},
		{hue: 240, sat: 1, val: 1, r: 0, g: 0, b: 1},
		{hue: 60, sat: 1, val: 1, r: 1, g: 1, b: 0},
		// Zero saturation yields gray at the value level.
		{hue: 33, sat: 0, val: 0.5, r: 0.5, g: 0.5, b: 0.5},
		// Negative hues wrap around the circle.
		{hue: -120, sat: 1, val: 1, r: 0, g: 0, b: 1},
		// Out-of-range saturation and value are clamped.
		{hue: 0, sat: 2, val: 5, r: 1, g: 0, b: 0},
	}

	for specIndex, spec := range specs {
		r, g, b := HSVToRGB(spec.hue, spec.sat, spec.val)
		if math.Abs(r-spec.r) > 1e-9 || math.Abs(g-spec.g) > 1e-9 || math.Abs(b-spec.b) > 1e-9 {
			t.Errorf("[spec %d] expected (%g, %g, %g); got (%g, %g, %g)",
				specIndex, spec.r, spec.g, spec.b, r, g, b)
		}
	}
}

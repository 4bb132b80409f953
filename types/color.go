package types

import "math"

// Convert an HSV triple to RGB. Hue is given in the [0, 360) range; the hue
// wraps, saturation and value are clamped to [0, 1].
func HSVToRGB(h, s, v float64) (float64, float64, float64) {
	h = math.Mod(h, 360.0)
	if h < 0 {
		h += 360.0
	}
	s = math.Min(math.Max(s, 0), 1)
	v = math.Min(math.Max(v, 0), 1)

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60.0, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}

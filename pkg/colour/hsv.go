package colour

import (
	"math"

	"github.com/jmylchreest/colorprism/pkg/geometry"
)

// HSV converts the colour to hue (degrees, [0, 360)), saturation and value
// (both [0, 1]). Channels are clamped first. Greys report hue 0 and black
// reports saturation 0, since neither is recoverable from the channels.
func (c RGBA) HSV() (h, s, v float64) {
	r := geometry.Clamp01(c.R)
	g := geometry.Clamp01(c.G)
	b := geometry.Clamp01(c.B)

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	switch {
	case delta == 0:
		h = 0
	case maxVal == r:
		h = 60*((g-b)/delta) + 360
	case maxVal == g:
		h = 60*((b-r)/delta) + 120
	default:
		h = 60*((r-g)/delta) + 240
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	if maxVal > 0 {
		s = delta / maxVal
	}
	v = maxVal

	return h, geometry.Clamp01(s), geometry.Clamp01(v)
}

// FromHSV creates a colour from hue in degrees (any value, normalised into
// [0, 360)), saturation, value and alpha in [0, 1]. A NaN or infinite hue
// is treated as 0.
func FromHSV(h, s, v, a float64) RGBA {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		h = 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = geometry.Clamp01(s)
	v = geometry.Clamp01(v)

	chroma := v * s
	sector := h / 60
	x := chroma * (1 - math.Abs(math.Mod(sector, 2)-1))
	m := v - chroma

	var r, g, b float64
	switch {
	case sector < 1:
		r, g, b = chroma, x, 0
	case sector < 2:
		r, g, b = x, chroma, 0
	case sector < 3:
		r, g, b = 0, chroma, x
	case sector < 4:
		r, g, b = 0, x, chroma
	case sector < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGBA{R: r + m, G: g + m, B: b + m, A: geometry.Clamp01(a)}
}

// Package colour provides the colour value type used by the pickers together
// with HSV conversion, hex formatting and gradient sampling.
package colour

import (
	"image/color"
	"math"

	"github.com/jmylchreest/colorprism/pkg/geometry"
)

// RGBA is a non-premultiplied colour with each channel in [0, 1].
type RGBA struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Common colours.
var (
	Black       = RGBA{R: 0, G: 0, B: 0, A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
	Red         = RGBA{R: 1, G: 0, B: 0, A: 1}
	Green       = RGBA{R: 0, G: 1, B: 0, A: 1}
	Blue        = RGBA{R: 0, G: 0, B: 1, A: 1}
	Yellow      = RGBA{R: 1, G: 1, B: 0, A: 1}
	Cyan        = RGBA{R: 0, G: 1, B: 1, A: 1}
	Magenta     = RGBA{R: 1, G: 0, B: 1, A: 1}
	Transparent = RGBA{R: 0, G: 0, B: 0, A: 0}
)

// RGB creates an opaque colour from channels in [0, 1].
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// WithAlpha returns the colour with its alpha replaced by a, clamped to [0, 1].
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = geometry.Clamp01(a)
	return c
}

// Lerp interpolates every channel, alpha included, towards other.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: geometry.Lerp(c.R, other.R, t),
		G: geometry.Lerp(c.G, other.G, t),
		B: geometry.Lerp(c.B, other.B, t),
		A: geometry.Lerp(c.A, other.A, t),
	}
}

// Clamped returns the colour with every channel restricted to [0, 1].
func (c RGBA) Clamped() RGBA {
	return RGBA{
		R: geometry.Clamp01(c.R),
		G: geometry.Clamp01(c.G),
		B: geometry.Clamp01(c.B),
		A: geometry.Clamp01(c.A),
	}
}

// NRGBA converts to an 8-bit non-premultiplied colour, rounding each channel.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// RGBA implements color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// FromColor converts any color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	if rgba, ok := c.(RGBA); ok {
		return rgba
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// to8 maps a [0, 1] channel to a rounded byte.
func to8(v float64) uint8 {
	return uint8(math.Round(geometry.Clamp01(v) * 255))
}

// NullRGBA is a colour that may be unspecified, for example the colour of a
// knob whose container has not been measured yet. The zero value is
// unspecified and is distinct from Transparent.
type NullRGBA struct {
	RGBA
	Valid bool
}

// Unspecified is the "no colour yet" value.
var Unspecified = NullRGBA{}

// Specified wraps c as a known colour.
func Specified(c RGBA) NullRGBA {
	return NullRGBA{RGBA: c, Valid: true}
}

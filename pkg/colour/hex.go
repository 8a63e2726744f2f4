package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// ARGB packs the colour into a 32-bit 0xAARRGGBB value, rounding each channel
// to 8 bits.
func (c RGBA) ARGB() uint32 {
	n := c.NRGBA()
	return uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}

// FromARGB unpacks a 0xAARRGGBB value.
func FromARGB(argb uint32) RGBA {
	return RGBA{
		R: float64(argb>>16&0xff) / 255,
		G: float64(argb>>8&0xff) / 255,
		B: float64(argb&0xff) / 255,
		A: float64(argb>>24&0xff) / 255,
	}
}

// Hex formats the colour as "#RRGGBB", or "#AARRGGBB" with alpha first when
// withAlpha is set. Digits are upper case.
func (c RGBA) Hex(withAlpha bool) string {
	argb := c.ARGB()
	if withAlpha {
		return fmt.Sprintf("#%08X", argb)
	}
	return fmt.Sprintf("#%06X", argb&0xffffff)
}

// String returns the colour as "#AARRGGBB".
func (c RGBA) String() string {
	return c.Hex(true)
}

// ParseHex parses "#RGB", "#RRGGBB" or "#AARRGGBB" (the leading '#' is
// optional). Colours without an alpha byte are opaque.
func ParseHex(s string) (RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		fallthrough
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return RGBA{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
		}
		return FromARGB(0xff000000 | uint32(v)), nil
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return RGBA{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
		}
		return FromARGB(uint32(v)), nil
	default:
		return RGBA{}, fmt.Errorf("invalid hex colour %q: expected 3, 6 or 8 hex digits", s)
	}
}

// Package wheel implements the geometry of the wheel picker: a hue ring
// around an inscribed square panel where x selects saturation and y selects
// value, full value at the top.
package wheel

import (
	"math"

	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
)

// UnsetSaturation replaces a saturation of exactly zero when placing the
// panel knob or colouring an unplaced knob, so the hue stays visible.
const UnsetSaturation = 0.001

// Region identifies the part of the wheel a pointer landed on.
type Region int

const (
	RegionUnknown Region = iota
	RegionRing
	RegionSquare
)

func (r Region) String() string {
	switch r {
	case RegionRing:
		return "ring"
	case RegionSquare:
		return "square"
	default:
		return "unknown"
	}
}

// RingRadius is the centre-line radius of the hue ring. An unmeasured
// container yields 0.
func RingRadius(container geometry.Size, thickness float64) float64 {
	if container.IsZero() {
		return 0
	}
	minDim := container.MinDimension()
	if minDim == 0 {
		return 0
	}
	return minDim/2 - thickness/2
}

// PanelBounds is the square panel inscribed in the ring's inner edge, scaled
// by scale and centred on center.
func PanelBounds(ringRadius, thickness float64, center geometry.Point, scale float64) geometry.Rect {
	side := (ringRadius - thickness/2) * geometry.Sqrt2 * scale
	half := side / 2
	return geometry.Rect{
		Left:   center.X - half,
		Top:    center.Y - half,
		Right:  center.X + half,
		Bottom: center.Y + half,
	}
}

// ConstrainPanelKnob clamps a knob position to the panel. An unspecified
// position starts at the top-right corner: full saturation and value.
func ConstrainPanelKnob(pos geometry.NullPoint, bounds geometry.Rect) geometry.Point {
	if !pos.Valid {
		return geometry.Pt(bounds.Right, bounds.Top)
	}
	return bounds.Clamp(pos.Point)
}

// PanelSaturationValue reads saturation and value from a panel position. A
// degenerate panel yields saturation 0 and value 1.
func PanelSaturationValue(pos geometry.Point, bounds geometry.Rect) (s, v float64) {
	s = geometry.Fraction(pos.X-bounds.Left, bounds.Width())
	v = 1 - geometry.Fraction(pos.Y-bounds.Top, bounds.Height())
	return s, v
}

// PanelColor is the opaque colour at pos for the given hue in degrees.
func PanelColor(pos geometry.Point, hue float64, bounds geometry.Rect) colour.RGBA {
	s, v := PanelSaturationValue(pos, bounds)
	return colour.FromHSV(hue, s, v, 1)
}

// PanelKnobPosition is the inverse of PanelSaturationValue.
func PanelKnobPosition(s, v float64, bounds geometry.Rect) geometry.Point {
	return geometry.Pt(
		bounds.Left+s*bounds.Width(),
		bounds.Bottom-v*bounds.Height(),
	)
}

// DetectRegion classifies p for a wheel filling container. The square is
// tested before the ring.
func DetectRegion(p geometry.Point, container geometry.Size, thickness, squareScale float64) Region {
	center := container.Center()
	ringRadius := container.MinDimension()/2 - thickness/2

	switch {
	case PanelBounds(ringRadius, thickness, center, squareScale).Contains(p):
		return RegionSquare
	case geometry.InRing(p, center, ringRadius, thickness):
		return RegionRing
	default:
		return RegionUnknown
	}
}

// OppositeAngle is the angle of the complementary hue knob.
func OppositeAngle(angle float64) float64 {
	return geometry.NormalizeAngle(angle + math.Pi)
}

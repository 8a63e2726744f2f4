// Package orbit implements the geometry of the orbit picker: an inner hue
// ring surrounded by two half-circle arcs, value on the left and saturation
// on the right, separated by a gap at the top and bottom.
//
// Angles follow screen coordinates: 0 points right and angles grow
// clockwise, so 90 degrees is straight down.
package orbit

import (
	"math"

	"github.com/jmylchreest/colorprism/pkg/geometry"
)

// SpacingAngleDeg converts the gap between the two arcs into degrees of arc
// on a circle of the given radius. The gap covers the spacing plus one stroke
// thickness so the rounded caps do not touch. A non-positive radius yields 0.
func SpacingAngleDeg(spacing, thickness, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return (spacing + thickness) / (geometry.TwoPi * radius) * geometry.FullCircleDeg
}

// Radius is the centre-line radius of the outer arcs for a container of the
// given size. An unmeasured container yields 0.
func Radius(container geometry.Size, thickness float64) float64 {
	if container.IsZero() {
		return 0
	}
	minDim := container.MinDimension()
	if minDim == 0 {
		return 0
	}
	return minDim/2 - thickness/2
}

// DegToRadWithSpacing converts baseDeg shifted by half of spacingDeg into
// radians. A negative spacing shifts backwards, which is how arc ends are
// pulled in.
func DegToRadWithSpacing(baseDeg, spacingDeg float64) float64 {
	return geometry.DegToRad(baseDeg + spacingDeg/2)
}

// ValueStartAngleDeg is where the value arc starts, just past the bottom gap.
func ValueStartAngleDeg(spacingAngleDeg float64) float64 {
	return 90 + spacingAngleDeg/2
}

// ValueSweepAngleDeg is the angular length of the value arc.
func ValueSweepAngleDeg(spacingAngleDeg float64) float64 {
	return 180 - spacingAngleDeg
}

// SaturationStartAngleDeg is where the saturation arc starts, just past the
// top gap.
func SaturationStartAngleDeg(spacingAngleDeg float64) float64 {
	return 270 + spacingAngleDeg/2
}

// SaturationSweepAngleDeg is the angular length of the saturation arc.
func SaturationSweepAngleDeg(spacingAngleDeg float64) float64 {
	return 180 - spacingAngleDeg
}

// MapAngleToFractionOfArc returns how far angle lies along the arc from
// start to end, in [0, 1]. All three angles are normalised first and the
// arc may wrap through 0. Any angle outside the arc maps to 1, since it is
// measured forwards from start; a zero-length arc yields 0.
func MapAngleToFractionOfArc(angle, start, end float64) float64 {
	start = geometry.NormalizeAngle(start)
	end = geometry.NormalizeAngle(end)
	angle = geometry.NormalizeAngle(angle)

	if end < start {
		end += geometry.TwoPi
	}
	if angle < start {
		angle += geometry.TwoPi
	}

	arc := end - start
	if arc == 0 {
		return 0
	}
	return geometry.Clamp01((angle - start) / arc)
}

// MapFractionToAngleOnArc is the angle at fraction along the arc from start
// to end. It does not normalise.
func MapFractionToAngleOnArc(fraction, start, end float64) float64 {
	return start + (end-start)*fraction
}

// arcRange returns the radian bounds of an arc given in degrees, pulled in
// by half the spacing at each end.
func arcRange(baseDeg, spacingAngleDeg float64) (start, end float64) {
	start = DegToRadWithSpacing(baseDeg, spacingAngleDeg)
	end = DegToRadWithSpacing(baseDeg+180, -spacingAngleDeg)
	return start, end
}

// ValueRange is the value arc in radians, from the bottom (value 0) to the
// top (value 1).
func ValueRange(spacingAngleDeg float64) (start, end float64) {
	return arcRange(90, spacingAngleDeg)
}

// SaturationRange is the saturation arc in radians, from the top to the
// bottom. The end lies beyond 2π.
func SaturationRange(spacingAngleDeg float64) (start, end float64) {
	return arcRange(270, spacingAngleDeg)
}

// HueRingRadius is the centre-line radius of the inner hue ring.
func HueRingRadius(radius, thickness, spacing float64) float64 {
	return radius - thickness - spacing
}

// PreviewRadius is the radius of the preview disc inside the hue ring.
func PreviewRadius(radius, thickness, spacing float64) float64 {
	return math.Max(0, radius-thickness*1.5-spacing*2)
}

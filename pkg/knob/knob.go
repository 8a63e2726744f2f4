// Package knob keeps picker knobs inside the tracks and panels they slide on.
//
// All functions are total: unmeasured containers and unspecified positions
// resolve to a fixed default rather than an error.
package knob

import (
	"math"

	"github.com/jmylchreest/colorprism/pkg/geometry"
)

// ConstrainHorizontal keeps a knob of the given radius on a horizontal
// track. The centre's x is clamped to [radius, width-radius] and y is pinned
// to radius, the track's centre line. An unspecified position starts at the
// left end. A track narrower than two radii pins x to radius.
func ConstrainHorizontal(pos geometry.NullPoint, container geometry.Size, radius float64) geometry.Point {
	if !pos.Valid {
		return geometry.Pt(radius, radius)
	}
	return geometry.Pt(geometry.Clamp(pos.X, radius, container.Width-radius), radius)
}

// PositionForFraction is the x coordinate of a knob at fraction along a
// track of the given width. Fraction is clamped to [0, 1]. A non-positive
// width yields radius.
func PositionForFraction(fraction, width, radius float64) float64 {
	if width <= 0 {
		return radius
	}
	return radius + geometry.Clamp01(fraction)*math.Max(0, width-2*radius)
}

// FractionForPosition is the inverse of PositionForFraction: how far along
// the track the knob centre at x sits, in [0, 1].
func FractionForPosition(x, width, radius float64) float64 {
	return geometry.Fraction(x-radius, width-2*radius)
}

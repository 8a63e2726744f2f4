package knob

import (
	"math"

	"github.com/jmylchreest/colorprism/pkg/geometry"
)

// PaddedArea is the usable area of a container inset by padding on every
// side. Negative extents collapse to zero.
func PaddedArea(container geometry.Size, padding float64) geometry.Size {
	return geometry.Sz(
		math.Max(0, container.Width-2*padding),
		math.Max(0, container.Height-2*padding),
	)
}

// ConstrainPadded maps a pointer position in container coordinates into the
// padded area and clamps it there. The result is in padded-area coordinates,
// so (0, 0) is the padded area's top-left corner. An unspecified position
// starts at the bottom-left corner.
func ConstrainPadded(pos geometry.NullPoint, container geometry.Size, padding float64) geometry.Point {
	area := PaddedArea(container, padding)
	if !pos.Valid {
		return geometry.Pt(0, area.Height)
	}
	return geometry.Pt(
		geometry.Clamp(pos.X-padding, 0, area.Width),
		geometry.Clamp(pos.Y-padding, 0, area.Height),
	)
}

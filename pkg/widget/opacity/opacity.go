// Package opacity maps the knob of a horizontal opacity slider to an alpha
// value and back. The knob radius is half the track height, so the knob
// centre travels between radius and width-radius.
package opacity

import (
	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
	"github.com/jmylchreest/colorprism/pkg/knob"
)

// KnobRadius is the radius of the knob on a track of the given size.
func KnobRadius(container geometry.Size) float64 {
	return container.Height / 2
}

// DeriveKnobColor returns target with its alpha set from the knob's x
// position. An unmeasured or degenerate track yields colour.Transparent.
func DeriveKnobColor(knobPos geometry.Point, container geometry.Size, target colour.RGBA) colour.RGBA {
	if container.Width <= 0 || container.Height <= 0 {
		return colour.Transparent
	}
	return target.WithAlpha(Alpha(knobPos, container))
}

// Alpha is the opacity in [0, 1] selected by the knob at knobPos.
func Alpha(knobPos geometry.Point, container geometry.Size) float64 {
	if container.Width <= 0 || container.Height <= 0 {
		return 0
	}
	return knob.FractionForPosition(knobPos.X, container.Width, KnobRadius(container))
}

// Constrain keeps a pointer position on the track.
func Constrain(pos geometry.NullPoint, container geometry.Size) geometry.Point {
	return knob.ConstrainHorizontal(pos, container, KnobRadius(container))
}

// InitialKnobPosition places the knob at the right end of the track, fully
// opaque.
func InitialKnobPosition(container geometry.Size) geometry.Point {
	r := KnobRadius(container)
	return geometry.Pt(container.Width-r, r)
}

// KnobPositionForAlpha places the knob for the given alpha.
func KnobPositionForAlpha(alpha float64, container geometry.Size) geometry.Point {
	r := KnobRadius(container)
	return geometry.Pt(knob.PositionForFraction(alpha, container.Width, r), r)
}

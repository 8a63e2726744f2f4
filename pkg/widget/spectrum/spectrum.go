// Package spectrum implements the geometry of the spectrum picker: a
// rectangular panel with hue along x and saturation along y (white at the
// top), above a horizontal value slider.
//
// Panel knob positions are in padded-area coordinates: the panel is inset by
// the knob padding on every side and (0, 0) is the inset area's top-left.
package spectrum

import (
	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
	"github.com/jmylchreest/colorprism/pkg/knob"
)

// KnobPadding is the inset of the panel's usable area: the knob radius plus
// its border width when a border is drawn.
func KnobPadding(knobRadius, borderWidth float64, bordered bool) float64 {
	if bordered {
		return knobRadius + borderWidth
	}
	return knobRadius
}

// DeriveHueSaturationColor is the opaque colour under the panel knob. The
// knob's x fraction samples hueColors and its y fraction blends from white
// at the top to that hue at the bottom. An unmeasured panel, an empty
// gradient or an unplaced knob yields colour.Transparent. The knob is
// measured at its centre, so knobRadius does not shift the result.
func DeriveHueSaturationColor(knobPos geometry.NullPoint, container geometry.Size, knobRadius, padding float64, hueColors []colour.RGBA) colour.RGBA {
	if container.IsZero() || len(hueColors) == 0 {
		return colour.Transparent
	}
	if !knobPos.Valid {
		return colour.Transparent
	}

	area := knob.PaddedArea(container, padding)
	xFraction := geometry.Fraction(knobPos.X, area.Width)
	yFraction := geometry.Fraction(knobPos.Y, area.Height)

	hue := colour.InterpolateGradient(hueColors, xFraction)
	return colour.RGBA{
		R: geometry.Lerp(1, hue.R, yFraction),
		G: geometry.Lerp(1, hue.G, yFraction),
		B: geometry.Lerp(1, hue.B, yFraction),
		A: 1,
	}
}

// DeriveValueColor applies the value slider knob to hsColour. The slider's
// knob radius is half its height. An unmeasured slider yields colour.Black.
func DeriveValueColor(knobPos geometry.Point, container geometry.Size, hsColour colour.RGBA) colour.RGBA {
	if container.Width <= 0 || container.Height <= 0 {
		return colour.Black
	}
	value := knob.FractionForPosition(knobPos.X, container.Width, container.Height/2)
	h, s, _ := hsColour.HSV()
	return colour.FromHSV(h, s, value, 1)
}

// HueSaturationToOffset is the container position of the panel knob for hue
// in degrees and saturation. Pass it through ConstrainHueSaturationKnob to
// obtain a knob position.
func HueSaturationToOffset(hue, saturation float64, container geometry.Size, padding float64) geometry.Point {
	area := knob.PaddedArea(container, padding)
	return geometry.Pt(
		padding+hue/geometry.FullCircleDeg*area.Width,
		padding+saturation*area.Height,
	)
}

// ConstrainHueSaturationKnob converts a pointer position to a panel knob
// position. An unplaced knob starts at the bottom-left.
func ConstrainHueSaturationKnob(pos geometry.NullPoint, container geometry.Size, padding float64) geometry.Point {
	return knob.ConstrainPadded(pos, container, padding)
}

// PositionForValueFraction is the x position of the value knob.
func PositionForValueFraction(fraction, width, knobRadius float64) float64 {
	return knob.PositionForFraction(fraction, width, knobRadius)
}

package render

import (
	"github.com/jmylchreest/colorprism/internal/picker"
	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
	"github.com/jmylchreest/colorprism/pkg/widget/wheel"
)

type wheelSampler struct {
	w *picker.Wheel
}

func (s wheelSampler) Sample(p geometry.Point) (colour.RGBA, bool) {
	layout := s.w.Layout()
	hueAngle := s.w.HueAngle()
	current := s.w.Colour()

	if knobPos := s.w.PanelKnob(); knobPos.Valid {
		if c, ok := drawKnob(p, knobPos.Point, s.w.PanelKnobRadius(), current, KnobFill); ok {
			return c, true
		}
	}

	opposite := wheel.OppositeAngle(hueAngle)
	if c, ok := drawKnob(p, layout.RingKnobPoint(opposite), s.w.OppositeKnobRadius(), hueColour(opposite), KnobFill); ok {
		return c, true
	}
	if c, ok := drawKnob(p, layout.RingKnobPoint(hueAngle), s.w.RingKnobRadius(), hueColour(hueAngle), KnobFill); ok {
		return c, true
	}

	switch layout.DetectRegion(p) {
	case wheel.RegionSquare:
		return wheel.PanelColor(p, geometry.RadToHueDeg(hueAngle), layout.Panel), true
	case wheel.RegionRing:
		return hueColour(layout.HueAngle(p)), true
	default:
		return colour.RGBA{}, false
	}
}

func hueColour(angle float64) colour.RGBA {
	return colour.FromHSV(geometry.RadToHueDeg(angle), 1, 1, 1)
}

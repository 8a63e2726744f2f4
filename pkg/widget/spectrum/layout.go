package spectrum

import (
	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
	"github.com/jmylchreest/colorprism/pkg/knob"
)

// Layout is the measured geometry of a spectrum picker.
type Layout struct {
	Panel      geometry.Size
	Slider     geometry.Size
	KnobRadius float64
	Padding    float64
}

// SliderKnobRadius is the radius of the value knob.
func (l Layout) SliderKnobRadius() float64 {
	return l.Slider.Height / 2
}

// InitialPanelKnob places the panel knob for c, or leaves it unplaced while
// the panel is unmeasured.
func (l Layout) InitialPanelKnob(c colour.RGBA) geometry.NullPoint {
	if l.Panel.IsZero() {
		return geometry.UnspecifiedPoint
	}
	h, s, _ := c.HSV()
	raw := HueSaturationToOffset(h, s, l.Panel, l.Padding)
	return geometry.Some(ConstrainHueSaturationKnob(geometry.Some(raw), l.Panel, l.Padding))
}

// InitialSliderKnob places the value knob for c. An unmeasured slider puts
// it at the origin.
func (l Layout) InitialSliderKnob(c colour.RGBA) geometry.Point {
	if l.Slider.IsZero() {
		return geometry.Point{}
	}
	_, _, v := c.HSV()
	r := l.SliderKnobRadius()
	return geometry.Pt(PositionForValueFraction(v, l.Slider.Width, r), r)
}

// MovePanelKnob converts a pointer in panel coordinates to a knob position.
func (l Layout) MovePanelKnob(p geometry.Point) geometry.Point {
	return ConstrainHueSaturationKnob(geometry.Some(p), l.Panel, l.Padding)
}

// MoveSliderKnob converts a pointer in slider coordinates to a knob position.
func (l Layout) MoveSliderKnob(p geometry.Point) geometry.Point {
	return knob.ConstrainHorizontal(geometry.Some(p), l.Slider, l.SliderKnobRadius())
}

// HueSaturationColour is the colour under the panel knob.
func (l Layout) HueSaturationColour(panelKnob geometry.NullPoint) colour.RGBA {
	return DeriveHueSaturationColor(panelKnob, l.Panel, l.KnobRadius, l.Padding, colour.HueColors())
}

// Colour is the colour selected by both knobs.
func (l Layout) Colour(panelKnob geometry.NullPoint, sliderKnob geometry.Point) colour.RGBA {
	return DeriveValueColor(sliderKnob, l.Slider, l.HueSaturationColour(panelKnob))
}

// PanelKnobCenter converts a panel knob position back to panel coordinates.
func (l Layout) PanelKnobCenter(panelKnob geometry.Point) geometry.Point {
	return panelKnob.Add(geometry.Pt(l.Padding, l.Padding))
}

package picker

import (
	"github.com/jmylchreest/colorprism/internal/config"
	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
	"github.com/jmylchreest/colorprism/pkg/widget/wheel"
)

// Wheel is the state of a wheel picker.
type Wheel struct {
	style     config.WheelStyle
	initial   colour.RGBA
	layout    wheel.Layout
	hueAngle  float64
	panelKnob geometry.NullPoint
	active    wheel.Region
	// Saturation and value of the panel knob, held while the panel is
	// collapsed.
	sat, val float64
	placed   bool
}

// NewWheel creates an unmeasured wheel picker starting on initial.
func NewWheel(style config.WheelStyle, initial colour.RGBA) *Wheel {
	w := &Wheel{style: style, initial: initial}
	w.layout = wheel.NewLayout(geometry.Size{}, style.RingThickness, style.PanelScale)
	w.hueAngle, w.panelKnob = w.layout.Initial(initial)
	_, w.sat, w.val = initial.HSV()
	if w.sat == 0 {
		w.sat = wheel.UnsetSaturation
	}
	return w
}

func (w *Wheel) Style() Style { return StyleWheel }

// Resize moves the panel knob to the same saturation and value in the new
// panel. The ring knob keeps its angle. A collapsed container holds the
// colour until the next usable size.
func (w *Wheel) Resize(size geometry.Size) {
	if w.layout.Measured() && w.panelKnob.Valid {
		w.sat, w.val = wheel.PanelSaturationValue(w.panelKnob.Point, w.layout.Panel)
	}

	w.layout = wheel.NewLayout(size, w.style.RingThickness, w.style.PanelScale)
	if w.layout.Measured() {
		w.panelKnob = geometry.Some(wheel.PanelKnobPosition(w.sat, w.val, w.layout.Panel))
		w.placed = true
	} else {
		w.panelKnob = geometry.UnspecifiedPoint
	}
}

func (w *Wheel) Down(p geometry.Point) bool {
	if !w.layout.Measured() {
		return false
	}
	region := w.layout.DetectRegion(p)
	if region == wheel.RegionUnknown {
		return false
	}
	w.active = region
	w.Move(p)
	return true
}

func (w *Wheel) Move(p geometry.Point) {
	switch w.active {
	case wheel.RegionRing:
		w.hueAngle = w.layout.HueAngle(p)
	case wheel.RegionSquare:
		w.panelKnob = geometry.Some(w.layout.ConstrainPanelKnob(geometry.Some(p)))
	}
}

func (w *Wheel) Up() { w.active = wheel.RegionUnknown }

func (w *Wheel) Region() string {
	if w.active == wheel.RegionUnknown {
		return ""
	}
	return w.active.String()
}

func (w *Wheel) Colour() colour.RGBA {
	if w.placed && !w.layout.Measured() {
		return colour.FromHSV(geometry.RadToHueDeg(w.hueAngle), w.sat, w.val, 1)
	}
	return w.layout.Colour(w.hueAngle, w.panelKnob)
}

// Layout is the current geometry.
func (w *Wheel) Layout() wheel.Layout { return w.layout }

// HueAngle is the ring knob angle in radians.
func (w *Wheel) HueAngle() float64 { return w.hueAngle }

// PanelKnob is the panel knob position, unspecified until measured.
func (w *Wheel) PanelKnob() geometry.NullPoint { return w.panelKnob }

// RingKnobRadius is the radius of the ring knob, larger while dragging it.
func (w *Wheel) RingKnobRadius() float64 {
	if w.active == wheel.RegionRing {
		return w.style.RingThickness / 2 * 1.2
	}
	return w.style.RingThickness / 2 * w.style.RingKnobScale
}

// OppositeKnobRadius is the radius of the complementary hue knob.
func (w *Wheel) OppositeKnobRadius() float64 {
	return w.style.RingThickness / 2 * w.style.OppositeKnobScale
}

// PanelKnobRadius is the radius of the panel knob, larger while dragging it.
func (w *Wheel) PanelKnobRadius() float64 {
	if w.active == wheel.RegionSquare {
		return w.style.PanelKnobRadius * geometry.Sqrt2
	}
	return w.style.PanelKnobRadius
}

package wheel

import (
	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
)

// Layout is the measured geometry of a wheel picker in a container.
type Layout struct {
	Container  geometry.Size
	Center     geometry.Point
	RingRadius float64
	Thickness  float64
	PanelScale float64
	// Panel is the zero Rect until the container is measured.
	Panel geometry.Rect
}

// NewLayout measures a wheel picker.
func NewLayout(container geometry.Size, thickness, panelScale float64) Layout {
	l := Layout{
		Container:  container,
		Center:     container.Center(),
		RingRadius: RingRadius(container, thickness),
		Thickness:  thickness,
		PanelScale: panelScale,
	}
	if !container.IsZero() {
		l.Panel = PanelBounds(l.RingRadius, thickness, l.Center, panelScale)
	}
	return l
}

// Measured reports whether the panel has a positive area to work with. A
// container collapsed in either dimension leaves it unmeasured.
func (l Layout) Measured() bool {
	return l.Panel.Width() > 0 && l.Panel.Height() > 0
}

// DetectRegion classifies a pointer position in container coordinates.
func (l Layout) DetectRegion(p geometry.Point) Region {
	return DetectRegion(p, l.Container, l.Thickness, l.PanelScale)
}

// HueAngle is the ring knob angle for a pointer at p.
func (l Layout) HueAngle(p geometry.Point) float64 {
	return geometry.CalculateAngle(p, l.Container)
}

// ConstrainPanelKnob clamps a pointer to the panel.
func (l Layout) ConstrainPanelKnob(pos geometry.NullPoint) geometry.Point {
	return ConstrainPanelKnob(pos, l.Panel)
}

// Initial places both knobs for c. Greys start on hue 0 and a zero
// saturation is nudged to UnsetSaturation. The panel knob is unspecified
// until the container is measured.
func (l Layout) Initial(c colour.RGBA) (hueAngle float64, panelKnob geometry.NullPoint) {
	h, s, v := c.HSV()
	if s == 0 {
		h = 0
		s = UnsetSaturation
	}
	hueAngle = geometry.HueDegToRad(h)
	if !l.Measured() {
		return hueAngle, geometry.UnspecifiedPoint
	}
	return hueAngle, geometry.Some(PanelKnobPosition(s, v, l.Panel))
}

// Colour is the selected colour. Without a placed knob or a measured panel
// it is the hue at UnsetSaturation and full value.
func (l Layout) Colour(hueAngle float64, panelKnob geometry.NullPoint) colour.RGBA {
	hue := geometry.RadToHueDeg(hueAngle)
	if !l.Measured() || !panelKnob.Valid {
		return colour.FromHSV(hue, UnsetSaturation, 1, 1)
	}
	return PanelColor(panelKnob.Point, hue, l.Panel)
}

// RingKnobPoint is the centre of the ring knob at angle.
func (l Layout) RingKnobPoint(angle float64) geometry.Point {
	return geometry.PointOnCircle(l.Center, l.RingRadius, angle)
}

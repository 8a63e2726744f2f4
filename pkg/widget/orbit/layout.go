package orbit

import (
	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
)

// Arc is an arc in degrees, measured clockwise from the positive x axis.
type Arc struct {
	StartDeg float64
	SweepDeg float64
}

// Angles holds the three knob angles of an orbit picker in radians.
type Angles struct {
	Hue        float64
	Saturation float64
	Value      float64
}

// Layout is the measured geometry of an orbit picker in a container.
type Layout struct {
	Container       geometry.Size
	Center          geometry.Point
	Radius          float64
	Thickness       float64
	Spacing         float64
	SpacingAngleDeg float64
	Cap             geometry.StrokeCap
}

// NewLayout measures an orbit picker with round arc caps.
func NewLayout(container geometry.Size, thickness, spacing float64) Layout {
	radius := Radius(container, thickness)
	return Layout{
		Container:       container,
		Center:          container.Center(),
		Radius:          radius,
		Thickness:       thickness,
		Spacing:         spacing,
		SpacingAngleDeg: SpacingAngleDeg(spacing, thickness, radius),
		Cap:             geometry.CapRound,
	}
}

// HueRingRadius is the radius of the inner hue ring.
func (l Layout) HueRingRadius() float64 {
	return HueRingRadius(l.Radius, l.Thickness, l.Spacing)
}

// PreviewRadius is the radius of the preview disc.
func (l Layout) PreviewRadius() float64 {
	return PreviewRadius(l.Radius, l.Thickness, l.Spacing)
}

// Arcs returns the value and saturation arcs.
func (l Layout) Arcs() (value, saturation Arc) {
	value = Arc{StartDeg: ValueStartAngleDeg(l.SpacingAngleDeg), SweepDeg: ValueSweepAngleDeg(l.SpacingAngleDeg)}
	saturation = Arc{StartDeg: SaturationStartAngleDeg(l.SpacingAngleDeg), SweepDeg: SaturationSweepAngleDeg(l.SpacingAngleDeg)}
	return value, saturation
}

// DetectRegion classifies a pointer position in container coordinates.
func (l Layout) DetectRegion(p geometry.Point) Region {
	return DetectRegion(p, l.Center, l.Radius, l.Thickness, l.SpacingAngleDeg, l.Spacing, l.Cap)
}

// Constrain snaps p onto the control for region. Arc regions clamp to the
// arc; the hue ring accepts any angle. RegionUnknown returns p unchanged.
func (l Layout) Constrain(region Region, p geometry.Point) geometry.Point {
	value, saturation := l.Arcs()
	switch region {
	case RegionValue:
		return geometry.ConstrainToArc(p, l.Center, l.Radius, value.StartDeg, value.SweepDeg)
	case RegionSaturation:
		return geometry.ConstrainToArc(p, l.Center, l.Radius, saturation.StartDeg, saturation.SweepDeg)
	case RegionHue:
		return geometry.PointOnCircle(l.Center, l.HueRingRadius(), geometry.CalculateAngle(p, l.Container))
	default:
		return p
	}
}

// AngleAt is the angle of p around the centre, in (-π, π].
func (l Layout) AngleAt(p geometry.Point) float64 {
	return geometry.CalculateAngle(p, l.Container)
}

// Drag applies a pointer position to the knob for region and returns the
// updated angles. Arc knobs are clamped to their arc; RegionUnknown leaves
// the angles untouched.
func (l Layout) Drag(region Region, p geometry.Point, angles Angles) Angles {
	value, saturation := l.Arcs()
	angle := l.AngleAt(p)
	switch region {
	case RegionHue:
		angles.Hue = angle
	case RegionSaturation:
		angles.Saturation = geometry.ConstrainAngleToArc(angle, saturation.StartDeg, saturation.SweepDeg)
	case RegionValue:
		angles.Value = geometry.ConstrainAngleToArc(angle, value.StartDeg, value.SweepDeg)
	}
	return angles
}

// KnobAngles places the three knobs for c. Black puts the saturation knob at
// the start of its arc since its saturation is unrecoverable.
func (l Layout) KnobAngles(c colour.RGBA) Angles {
	h, s, v := c.HSV()

	satStart, satEnd := SaturationRange(l.SpacingAngleDeg)
	valStart, valEnd := ValueRange(l.SpacingAngleDeg)

	satFraction := 1 - s
	if v <= 0 {
		satFraction = 0
	}

	return Angles{
		Hue:        geometry.HueDegToRad(h),
		Saturation: MapFractionToAngleOnArc(satFraction, satStart, satEnd),
		Value:      MapFractionToAngleOnArc(v, valStart, valEnd),
	}
}

// HSV converts knob angles to hue in degrees, saturation and value.
// Saturation is full at the top of its arc and value is full at the top of
// its arc.
func (l Layout) HSV(angles Angles) (h, s, v float64) {
	satStart, satEnd := SaturationRange(l.SpacingAngleDeg)
	valStart, valEnd := ValueRange(l.SpacingAngleDeg)

	h = geometry.RadToHueDeg(angles.Hue)
	s = 1 - MapAngleToFractionOfArc(angles.Saturation, satStart, satEnd)
	v = MapAngleToFractionOfArc(angles.Value, valStart, valEnd)
	return h, s, v
}

// Colour is the opaque colour selected by the knob angles.
func (l Layout) Colour(angles Angles) colour.RGBA {
	h, s, v := l.HSV(angles)
	return colour.FromHSV(h, s, v, 1)
}

// KnobPoint is the centre of the knob for region at angle.
func (l Layout) KnobPoint(region Region, angle float64) geometry.Point {
	if region == RegionHue {
		return geometry.PointOnCircle(l.Center, l.HueRingRadius(), angle)
	}
	return geometry.PointOnCircle(l.Center, l.Radius, angle)
}

package render

import (
	"github.com/jmylchreest/colorprism/internal/picker"
	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
	"github.com/jmylchreest/colorprism/pkg/widget/orbit"
)

type orbitSampler struct {
	o *picker.Orbit
}

func (s orbitSampler) Sample(p geometry.Point) (colour.RGBA, bool) {
	layout := s.o.Layout()
	angles := s.o.Angles()
	r := s.o.KnobRadius()

	knobs := []struct {
		region orbit.Region
		angle  float64
	}{
		{orbit.RegionValue, angles.Value},
		{orbit.RegionSaturation, angles.Saturation},
		{orbit.RegionHue, angles.Hue},
	}
	for _, k := range knobs {
		if c, ok := drawKnob(p, layout.KnobPoint(k.region, k.angle), r, KnobFill, KnobBorder); ok {
			return c, true
		}
	}

	if s.o.ShowPreview() && p.Distance(layout.Center) <= layout.PreviewRadius() {
		return s.o.Colour(), true
	}

	h, sat, _ := layout.HSV(angles)
	value, saturation := layout.Arcs()
	angle := layout.AngleAt(p)

	switch layout.DetectRegion(p) {
	case orbit.RegionValue:
		angles.Value = geometry.ConstrainAngleToArc(angle, value.StartDeg, value.SweepDeg)
		_, _, v := layout.HSV(angles)
		return colour.FromHSV(h, sat, v, 1), true
	case orbit.RegionSaturation:
		angles.Saturation = geometry.ConstrainAngleToArc(angle, saturation.StartDeg, saturation.SweepDeg)
		_, arcSat, _ := layout.HSV(angles)
		return colour.FromHSV(h, arcSat, 1, 1), true
	case orbit.RegionHue:
		return colour.HueAt(geometry.RadToHueDeg(angle) / geometry.FullCircleDeg), true
	default:
		return colour.RGBA{}, false
	}
}

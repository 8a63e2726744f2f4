package orbit

import "github.com/jmylchreest/colorprism/pkg/geometry"

// Region identifies the part of the orbit a pointer landed on.
type Region int

const (
	// RegionUnknown is outside every control; pointer downs there are ignored.
	RegionUnknown Region = iota
	RegionHue
	RegionSaturation
	RegionValue
)

func (r Region) String() string {
	switch r {
	case RegionHue:
		return "hue"
	case RegionSaturation:
		return "saturation"
	case RegionValue:
		return "value"
	default:
		return "unknown"
	}
}

// DetectRegion classifies p. The value arc is tested first, then the
// saturation arc, both on the outer radius, then the inner hue ring.
func DetectRegion(p, center geometry.Point, radius, thickness, spacingAngleDeg, spacing float64, cap geometry.StrokeCap) Region {
	switch {
	case geometry.InArc(p, center, radius, thickness,
		ValueStartAngleDeg(spacingAngleDeg), ValueSweepAngleDeg(spacingAngleDeg), cap):
		return RegionValue
	case geometry.InArc(p, center, radius, thickness,
		SaturationStartAngleDeg(spacingAngleDeg), SaturationSweepAngleDeg(spacingAngleDeg), cap):
		return RegionSaturation
	case geometry.InRing(p, center, HueRingRadius(radius, thickness, spacing), thickness):
		return RegionHue
	default:
		return RegionUnknown
	}
}

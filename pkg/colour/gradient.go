package colour

import (
	"slices"
	"sync"

	"github.com/jmylchreest/colorprism/pkg/geometry"
)

// HueStops is the number of entries in the hue gradient: one per whole
// degree from 0 to 360 inclusive, so the gradient closes on red.
const HueStops = 361

// hueTable is built on first use and never modified afterwards.
var hueTable = sync.OnceValue(func() []RGBA {
	colours := make([]RGBA, HueStops)
	for deg := range colours {
		colours[deg] = FromHSV(float64(deg), 1, 1, 1)
	}
	return colours
})

// HueColors returns the fully saturated, full value hue gradient from 0 to
// 360 degrees. The slice is a copy and may be modified by the caller.
func HueColors() []RGBA {
	return slices.Clone(hueTable())
}

// HueAt samples the shared hue gradient at fraction in [0, 1] without copying it.
func HueAt(fraction float64) RGBA {
	return InterpolateGradient(hueTable(), fraction)
}

// InterpolateGradient samples an evenly spaced gradient at fraction, which is
// clamped to [0, 1]. The two neighbouring stops are blended channel by
// channel, alpha included. A single stop is returned as is for any fraction
// and an empty gradient yields Transparent.
func InterpolateGradient(colours []RGBA, fraction float64) RGBA {
	switch len(colours) {
	case 0:
		return Transparent
	case 1:
		return colours[0]
	}

	last := len(colours) - 1
	scaled := geometry.Clamp01(fraction) * float64(last)
	index := int(scaled)
	next := min(index+1, last)
	local := scaled - float64(index)

	return colours[index].Lerp(colours[next], local)
}

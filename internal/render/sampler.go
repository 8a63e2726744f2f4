// Package render rasterises picker widgets. Each widget is described by a
// Sampler that reports the colour drawn at a point in the widget's own
// coordinate space; the rasteriser samples it on a supersampled grid and
// scales the result down.
package render

import (
	"fmt"

	"github.com/jmylchreest/colorprism/internal/picker"
	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
)

// Knob colours shared by every widget.
var (
	KnobFill   = colour.White
	KnobBorder = colour.FromARGB(0xFFD6D6D6)
)

// knobBorderWidth is the border drawn around knobs, in widget units.
const knobBorderWidth = 2.0

// Sampler reports the colour drawn at p, or false where the widget draws
// nothing.
type Sampler interface {
	Sample(p geometry.Point) (colour.RGBA, bool)
}

// SamplerFunc adapts a function to Sampler.
type SamplerFunc func(p geometry.Point) (colour.RGBA, bool)

// Sample calls f(p).
func (f SamplerFunc) Sample(p geometry.Point) (colour.RGBA, bool) { return f(p) }

// Solid draws c everywhere.
func Solid(c colour.RGBA) Sampler {
	return SamplerFunc(func(geometry.Point) (colour.RGBA, bool) { return c, true })
}

// ForPicker returns the sampler drawing p in its current state.
func ForPicker(p picker.Picker) (Sampler, error) {
	switch p := p.(type) {
	case *picker.Orbit:
		return orbitSampler{p}, nil
	case *picker.Wheel:
		return wheelSampler{p}, nil
	case *picker.Spectrum:
		return spectrumSampler{p}, nil
	case *picker.Swatches:
		return swatchesSampler{p}, nil
	default:
		return nil, fmt.Errorf("no renderer for picker %T", p)
	}
}

// drawKnob draws a circular knob of the given fill with a border.
func drawKnob(p, center geometry.Point, radius float64, fill, border colour.RGBA) (colour.RGBA, bool) {
	d := p.Distance(center)
	switch {
	case d <= radius-knobBorderWidth:
		return fill, true
	case d <= radius:
		return border, true
	default:
		return colour.RGBA{}, false
	}
}

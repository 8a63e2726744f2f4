package picker

import (
	"github.com/jmylchreest/colorprism/internal/config"
	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
	"github.com/jmylchreest/colorprism/pkg/widget/orbit"
)

// Orbit is the state of an orbit picker.
type Orbit struct {
	style  config.OrbitStyle
	layout orbit.Layout
	angles orbit.Angles
	active orbit.Region
}

// NewOrbit creates an unmeasured orbit picker starting on initial.
func NewOrbit(style config.OrbitStyle, initial colour.RGBA) *Orbit {
	o := &Orbit{style: style}
	o.layout = orbit.NewLayout(geometry.Size{}, style.Thickness, style.Spacing)
	o.angles = o.layout.KnobAngles(initial)
	return o
}

func (o *Orbit) Style() Style { return StyleOrbit }

// Resize re-derives the arc knobs for the new spacing angle. The hue knob
// keeps its angle so greys do not lose their hue.
func (o *Orbit) Resize(size geometry.Size) {
	current := o.Colour()
	hue := o.angles.Hue

	o.layout = orbit.NewLayout(size, o.style.Thickness, o.style.Spacing)
	o.angles = o.layout.KnobAngles(current)
	o.angles.Hue = hue
}

func (o *Orbit) Down(p geometry.Point) bool {
	if o.layout.Radius <= 0 {
		return false
	}
	region := o.layout.DetectRegion(p)
	if region == orbit.RegionUnknown {
		return false
	}
	o.active = region
	o.angles = o.layout.Drag(region, p, o.angles)
	return true
}

func (o *Orbit) Move(p geometry.Point) {
	if o.active == orbit.RegionUnknown {
		return
	}
	o.angles = o.layout.Drag(o.active, p, o.angles)
}

func (o *Orbit) Up() { o.active = orbit.RegionUnknown }

func (o *Orbit) Region() string {
	if o.active == orbit.RegionUnknown {
		return ""
	}
	return o.active.String()
}

func (o *Orbit) Colour() colour.RGBA { return o.layout.Colour(o.angles) }

// Layout is the current geometry.
func (o *Orbit) Layout() orbit.Layout { return o.layout }

// Angles are the current knob angles.
func (o *Orbit) Angles() orbit.Angles { return o.angles }

// KnobRadius is the radius of the knobs.
func (o *Orbit) KnobRadius() float64 {
	return o.style.Thickness / 2 * o.style.KnobScale
}

// ShowPreview reports whether the centre preview disc is drawn.
func (o *Orbit) ShowPreview() bool { return o.style.ShowPreview }

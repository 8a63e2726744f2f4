package picker

import (
	"github.com/jmylchreest/colorprism/internal/config"
	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
	"github.com/jmylchreest/colorprism/pkg/widget/opacity"
)

// Opacity is the state of an opacity slider. It starts fully opaque.
type Opacity struct {
	style  config.OpacityStyle
	size   geometry.Size
	alpha  float64
	knob   geometry.Point
	active bool
}

// NewOpacity creates an unmeasured opacity slider at the given alpha.
func NewOpacity(style config.OpacityStyle, alpha float64) *Opacity {
	return &Opacity{style: style, alpha: geometry.Clamp01(alpha)}
}

// Resize lays the slider out on a track of the given size, keeping alpha.
func (o *Opacity) Resize(size geometry.Size) {
	o.size = size
	o.knob = opacity.KnobPositionForAlpha(o.alpha, size)
}

func (o *Opacity) measured() bool {
	return o.size.Width > 0 && o.size.Height > 0
}

func (o *Opacity) Down(p geometry.Point) bool {
	if !o.measured() || !geometry.RectFromSize(geometry.Point{}, o.size).Contains(p) {
		return false
	}
	o.active = true
	o.Move(p)
	return true
}

func (o *Opacity) Move(p geometry.Point) {
	if !o.active {
		return
	}
	o.knob = opacity.Constrain(geometry.Some(p), o.size)
	o.alpha = opacity.Alpha(o.knob, o.size)
}

func (o *Opacity) Up() { o.active = false }

// Active reports whether the knob is being dragged.
func (o *Opacity) Active() bool { return o.active }

// Alpha is the selected opacity.
func (o *Opacity) Alpha() float64 { return o.alpha }

// Knob is the knob centre in track coordinates.
func (o *Opacity) Knob() geometry.Point { return o.knob }

// Size is the track size.
func (o *Opacity) Size() geometry.Size { return o.size }

// CheckerBoxes is the number of checkerboard squares across the track height.
func (o *Opacity) CheckerBoxes() int { return max(1, o.style.CheckerBoxes) }

// Apply returns c with the selected opacity.
func (o *Opacity) Apply(c colour.RGBA) colour.RGBA {
	if !o.measured() {
		return c.WithAlpha(o.alpha)
	}
	return opacity.DeriveKnobColor(o.knob, o.size, c)
}

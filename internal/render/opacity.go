package render

import (
	"math"

	"github.com/jmylchreest/colorprism/internal/picker"
	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
	"github.com/jmylchreest/colorprism/pkg/knob"
	"github.com/jmylchreest/colorprism/pkg/widget/opacity"
)

// Checkerboard colours behind the opacity ramp.
var (
	CheckerLight = colour.FromARGB(0xFFFFFFFF)
	CheckerDark  = colour.FromARGB(0xFFCCCCCC)
)

// ForOpacity draws an opacity slider for target: a ramp from transparent to
// opaque over a checkerboard, with the knob showing the selected opacity.
func ForOpacity(o *picker.Opacity, target colour.RGBA) Sampler {
	return SamplerFunc(func(p geometry.Point) (colour.RGBA, bool) {
		size := o.Size()
		if size.Width <= 0 || size.Height <= 0 {
			return colour.RGBA{}, false
		}

		if c, ok := drawKnob(p, o.Knob(), opacity.KnobRadius(size), Over(o.Apply(target), checker(p, size, o.CheckerBoxes())), KnobFill); ok {
			return c, true
		}
		if !geometry.RectFromSize(geometry.Point{}, size).Contains(p) {
			return colour.RGBA{}, false
		}

		alpha := knob.FractionForPosition(p.X, size.Width, opacity.KnobRadius(size))
		return Over(target.WithAlpha(alpha), checker(p, size, o.CheckerBoxes())), true
	})
}

func checker(p geometry.Point, size geometry.Size, boxes int) colour.RGBA {
	box := size.Height / float64(boxes)
	if (int(math.Floor(p.X/box))+int(math.Floor(p.Y/box)))%2 == 0 {
		return CheckerLight
	}
	return CheckerDark
}

// Over composites c onto an opaque background.
func Over(c, background colour.RGBA) colour.RGBA {
	return background.Lerp(c.WithAlpha(1), geometry.Clamp01(c.A)).WithAlpha(1)
}

package render

import (
	"github.com/jmylchreest/colorprism/internal/picker"
	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
	"github.com/jmylchreest/colorprism/pkg/widget/swatches"
)

type swatchesSampler struct {
	s *picker.Swatches
}

func (s swatchesSampler) Sample(p geometry.Point) (colour.RGBA, bool) {
	size := s.s.Size()

	if cell, ok := s.s.Selected(); ok && !size.IsZero() {
		bounds := swatches.SelectedBounds(cell, size, s.s.SelectedScale())
		if bounds.Contains(p) {
			inner := geometry.Rect{
				Left:   bounds.Left + knobBorderWidth,
				Top:    bounds.Top + knobBorderWidth,
				Right:  bounds.Right - knobBorderWidth,
				Bottom: bounds.Bottom - knobBorderWidth,
			}
			if !inner.Contains(p) {
				return KnobFill, true
			}
			return s.s.Colour(), true
		}
	}

	cell, ok := swatches.CellAt(p, size)
	if !ok {
		return colour.RGBA{}, false
	}
	return swatches.Colour(cell)
}

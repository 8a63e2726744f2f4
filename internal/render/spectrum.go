package render

import (
	"github.com/jmylchreest/colorprism/internal/picker"
	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
	"github.com/jmylchreest/colorprism/pkg/widget/spectrum"
)

type spectrumSampler struct {
	s *picker.Spectrum
}

func (s spectrumSampler) Sample(p geometry.Point) (colour.RGBA, bool) {
	layout := s.s.Layout()
	border := KnobFill
	if bordered, _ := s.s.Bordered(); !bordered {
		border = s.s.HueSaturation()
	}

	if knobPos := s.s.PanelKnob(); knobPos.Valid {
		if c, ok := drawKnob(p, knobPos.Point, layout.KnobRadius, s.s.HueSaturation(), border); ok {
			return c, true
		}
	}
	if !layout.Slider.IsZero() {
		if c, ok := drawKnob(p, s.s.SliderKnob(), layout.SliderKnobRadius(), s.s.Colour(), border); ok {
			return c, true
		}
	}

	panel := s.s.PanelBounds()
	slider := s.s.SliderBounds()
	switch {
	case layout.Panel.IsZero():
		return colour.RGBA{}, false
	case panel.Contains(p):
		pos := layout.MovePanelKnob(p.Sub(panel.TopLeft()))
		return layout.HueSaturationColour(geometry.Some(pos)), true
	case slider.Contains(p):
		pos := layout.MoveSliderKnob(p.Sub(slider.TopLeft()))
		return spectrum.DeriveValueColor(pos, layout.Slider, s.s.HueSaturation()), true
	default:
		return colour.RGBA{}, false
	}
}

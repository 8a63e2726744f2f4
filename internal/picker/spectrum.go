package picker

import (
	"github.com/jmylchreest/colorprism/internal/config"
	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
	"github.com/jmylchreest/colorprism/pkg/widget/spectrum"
)

const (
	regionPanel = "panel"
	regionValue = "value"
)

// Spectrum is the state of a spectrum picker: a hue/saturation panel above
// a value slider.
type Spectrum struct {
	style      config.SpectrumStyle
	initial    colour.RGBA
	size       geometry.Size
	layout     spectrum.Layout
	panelKnob  geometry.NullPoint
	sliderKnob geometry.Point
	active     string
}

// NewSpectrum creates an unmeasured spectrum picker starting on initial.
func NewSpectrum(style config.SpectrumStyle, initial colour.RGBA) *Spectrum {
	return &Spectrum{
		style:   style,
		initial: initial,
		layout: spectrum.Layout{
			KnobRadius: style.KnobRadius,
			Padding:    spectrum.KnobPadding(style.KnobRadius, style.KnobBorderWidth, style.KnobBordered),
		},
		panelKnob: geometry.UnspecifiedPoint,
	}
}

func (s *Spectrum) Style() Style { return StyleSpectrum }

// Resize splits the container into the panel and the slider below it and
// re-places both knobs for the current colour.
func (s *Spectrum) Resize(size geometry.Size) {
	current := s.Colour()

	s.size = size
	s.layout.Panel = s.PanelBounds().Size()
	s.layout.Slider = s.SliderBounds().Size()
	if collapsed(s.layout.Panel) || collapsed(s.layout.Slider) {
		s.layout.Panel = geometry.Size{}
		s.layout.Slider = geometry.Size{}
		// Held until the next usable size.
		s.initial = current
	}
	s.panelKnob = s.layout.InitialPanelKnob(current)
	s.sliderKnob = s.layout.InitialSliderKnob(current)
}

// PanelBounds is the hue/saturation panel in container coordinates.
func (s *Spectrum) PanelBounds() geometry.Rect {
	h := max(0, s.size.Height-s.style.ValueHeight-s.style.KnobRadius/2)
	return geometry.RectFromSize(geometry.Point{}, geometry.Sz(s.size.Width, h))
}

// SliderBounds is the value slider in container coordinates. It is inset
// horizontally by the panel knob radius.
func (s *Spectrum) SliderBounds() geometry.Rect {
	panel := s.PanelBounds()
	w := max(0, s.size.Width-2*s.style.KnobRadius)
	h := min(s.style.ValueHeight, max(0, s.size.Height-panel.Height()))
	return geometry.RectFromSize(geometry.Pt(s.style.KnobRadius, panel.Bottom+s.style.KnobRadius/2), geometry.Sz(w, h))
}

func (s *Spectrum) measured() bool {
	return !collapsed(s.layout.Panel) && !collapsed(s.layout.Slider)
}

func collapsed(size geometry.Size) bool {
	return size.Width <= 0 || size.Height <= 0
}

func (s *Spectrum) Down(p geometry.Point) bool {
	if !s.measured() {
		return false
	}
	switch {
	case s.PanelBounds().Contains(p):
		s.active = regionPanel
	case s.SliderBounds().Contains(p):
		s.active = regionValue
	default:
		return false
	}
	s.Move(p)
	return true
}

func (s *Spectrum) Move(p geometry.Point) {
	switch s.active {
	case regionPanel:
		s.panelKnob = geometry.Some(s.layout.MovePanelKnob(p.Sub(s.PanelBounds().TopLeft())))
	case regionValue:
		s.sliderKnob = s.layout.MoveSliderKnob(p.Sub(s.SliderBounds().TopLeft()))
	}
}

func (s *Spectrum) Up() { s.active = "" }

func (s *Spectrum) Region() string { return s.active }

// Colour is the selected colour. Until the picker is measured it is the
// initial colour, or the colour held from before a collapse.
func (s *Spectrum) Colour() colour.RGBA {
	if !s.measured() {
		return s.initial.WithAlpha(1)
	}
	return s.layout.Colour(s.panelKnob, s.sliderKnob)
}

// HueSaturation is the colour under the panel knob at full value.
func (s *Spectrum) HueSaturation() colour.RGBA {
	if !s.measured() {
		h, sat, _ := s.initial.HSV()
		return colour.FromHSV(h, sat, 1, 1)
	}
	return s.layout.HueSaturationColour(s.panelKnob)
}

// Layout is the current geometry.
func (s *Spectrum) Layout() spectrum.Layout { return s.layout }

// PanelKnob is the panel knob centre in container coordinates.
func (s *Spectrum) PanelKnob() geometry.NullPoint {
	if !s.panelKnob.Valid {
		return geometry.UnspecifiedPoint
	}
	return geometry.Some(s.layout.PanelKnobCenter(s.panelKnob.Point).Add(s.PanelBounds().TopLeft()))
}

// SliderKnob is the value knob centre in container coordinates.
func (s *Spectrum) SliderKnob() geometry.Point {
	return s.sliderKnob.Add(s.SliderBounds().TopLeft())
}

// Bordered reports whether knobs are drawn with a border, and its width.
func (s *Spectrum) Bordered() (bool, float64) {
	return s.style.KnobBordered, s.style.KnobBorderWidth
}

package cli

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/colorprism/internal/config"
	"github.com/jmylchreest/colorprism/internal/picker"
	"github.com/jmylchreest/colorprism/internal/render"
	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
	"github.com/jmylchreest/colorprism/pkg/widget/orbit"
	"github.com/jmylchreest/colorprism/pkg/widget/wheel"
)

const opacityStyle = "opacity"

// widgetStyles lists every widget a command can lay out.
func widgetStyles() []string {
	return append(picker.StyleNames(), opacityStyle)
}

func widgetStylesHelp() string {
	return strings.Join(widgetStyles(), ", ")
}

// session is one widget laid out in a container: a picker or the opacity
// slider.
type session struct {
	name    string
	picker  picker.Picker
	opacity *picker.Opacity
	target  colour.RGBA
}

func newSession(name string, cfg *config.Config, size geometry.Size, initial colour.RGBA) (*session, error) {
	if strings.EqualFold(strings.TrimSpace(name), opacityStyle) {
		o := picker.NewOpacity(cfg.Opacity, initial.A)
		o.Resize(size)
		return &session{name: opacityStyle, opacity: o, target: initial.WithAlpha(1)}, nil
	}

	style, err := picker.ParseStyle(name)
	if err != nil {
		return nil, fmt.Errorf("unknown widget %q (valid widgets: %s)", name, widgetStylesHelp())
	}
	p, err := picker.New(style, cfg, initial)
	if err != nil {
		return nil, err
	}
	p.Resize(size)
	return &session{name: style.String(), picker: p}, nil
}

func (s *session) down(p geometry.Point) bool {
	if s.opacity != nil {
		return s.opacity.Down(p)
	}
	return s.picker.Down(p)
}

func (s *session) move(p geometry.Point) {
	if s.opacity != nil {
		s.opacity.Move(p)
		return
	}
	s.picker.Move(p)
}

func (s *session) up() {
	if s.opacity != nil {
		s.opacity.Up()
		return
	}
	s.picker.Up()
}

func (s *session) region() string {
	if s.opacity != nil {
		if s.opacity.Active() {
			return "track"
		}
		return ""
	}
	return s.picker.Region()
}

func (s *session) colour() colour.RGBA {
	if s.opacity != nil {
		return s.opacity.Apply(s.target)
	}
	return s.picker.Colour()
}

func (s *session) withAlpha() bool { return s.opacity != nil }

func (s *session) sampler() (render.Sampler, error) {
	if s.opacity != nil {
		return render.ForOpacity(s.opacity, s.target), nil
	}
	return render.ForPicker(s.picker)
}

// gesture replays a press at at, drags through each point and releases. It
// returns the region the press landed on, or "" when it missed.
func (s *session) gesture(at geometry.Point, drags []geometry.Point) string {
	if !s.down(at) {
		return ""
	}
	region := s.region()
	for _, p := range drags {
		s.move(p)
	}
	s.up()
	return region
}

type knobPosition struct {
	name  string
	value string
}

// knobs reports where each knob of the widget is drawn.
func (s *session) knobs() []knobPosition {
	if s.opacity != nil {
		return []knobPosition{{"knob", formatPoint(s.opacity.Knob())}}
	}

	switch p := s.picker.(type) {
	case *picker.Orbit:
		layout, angles := p.Layout(), p.Angles()
		return []knobPosition{
			{"hue knob", formatPoint(layout.KnobPoint(orbit.RegionHue, angles.Hue))},
			{"saturation knob", formatPoint(layout.KnobPoint(orbit.RegionSaturation, angles.Saturation))},
			{"value knob", formatPoint(layout.KnobPoint(orbit.RegionValue, angles.Value))},
		}
	case *picker.Wheel:
		layout := p.Layout()
		panel := "unplaced"
		if knob := p.PanelKnob(); knob.Valid {
			panel = formatPoint(knob.Point)
		}
		return []knobPosition{
			{"ring knob", formatPoint(layout.RingKnobPoint(p.HueAngle()))},
			{"opposite knob", formatPoint(layout.RingKnobPoint(wheel.OppositeAngle(p.HueAngle())))},
			{"panel knob", panel},
		}
	case *picker.Spectrum:
		panel := "unplaced"
		if knob := p.PanelKnob(); knob.Valid {
			panel = formatPoint(knob.Point)
		}
		return []knobPosition{
			{"panel knob", panel},
			{"value knob", formatPoint(p.SliderKnob())},
		}
	case *picker.Swatches:
		cell := "none"
		if c, ok := p.Selected(); ok {
			cell = c.String()
		}
		return []knobPosition{{"selected cell", cell}}
	default:
		return nil
	}
}

func formatHSV(c colour.RGBA) string {
	h, s, v := c.HSV()
	return fmt.Sprintf("%.1f° %.3f %.3f", h, s, v)
}

// describe writes the widget state as property rows.
func (s *session) describe(table *Table, preview bool) {
	for _, k := range s.knobs() {
		table.AddRow([]string{k.name, k.value})
	}
	c := s.colour()
	table.AddRow([]string{"colour", colourCell(c, s.withAlpha(), preview)})
	table.AddRow([]string{"hsv", formatHSV(c)})
}

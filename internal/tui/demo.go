// Package tui is an interactive terminal demo of the colour pickers. Widgets
// are drawn with half-block characters so every cell shows two vertically
// stacked samples, and the mouse drives the pickers.
package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-runewidth"

	"github.com/jmylchreest/colorprism/internal/config"
	"github.com/jmylchreest/colorprism/internal/picker"
	"github.com/jmylchreest/colorprism/internal/render"
	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
)

// Widget units covered by one terminal cell.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

const (
	upperHalf    = '▀'
	lowerHalf    = '▄'
	previewCells = 4
)

type capture int

const (
	captureNone capture = iota
	capturePicker
	captureOpacity
)

// Options configures a Demo.
type Options struct {
	Style       picker.Style
	Config      *config.Config
	Initial     colour.RGBA
	ShowOpacity bool
	Logger      hclog.Logger
}

// Demo is the state of the interactive demo. It is driven from a single
// event loop.
type Demo struct {
	cfg    *config.Config
	logger hclog.Logger

	picker  picker.Picker
	opacity *picker.Opacity
	sampler render.Sampler

	width, height int
	prevButtons   tcell.ButtonMask
	capture       capture
}

// NewDemo creates a demo. Call Resize before drawing.
func NewDemo(opts Options) (*Demo, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	d := &Demo{cfg: cfg, logger: logger}
	if opts.ShowOpacity {
		d.opacity = picker.NewOpacity(cfg.Opacity, geometry.Clamp01(opts.Initial.A))
	}
	if err := d.setStyle(opts.Style, opts.Initial.WithAlpha(1)); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Demo) setStyle(style picker.Style, initial colour.RGBA) error {
	p, err := picker.New(style, d.cfg, initial)
	if err != nil {
		return err
	}
	sampler, err := render.ForPicker(p)
	if err != nil {
		return err
	}
	d.picker, d.sampler = p, sampler
	d.capture = captureNone
	d.layout()
	d.logger.Debug("style changed", "style", style, "colour", initial.Hex(false))
	return nil
}

// Style is the active picker style.
func (d *Demo) Style() picker.Style { return d.picker.Style() }

// Colour is the selected colour, including opacity when the slider is shown.
func (d *Demo) Colour() colour.RGBA {
	c := d.picker.Colour()
	if d.opacity != nil {
		return d.opacity.Apply(c)
	}
	return c
}

// Resize lays the demo out on a width x height cell screen.
func (d *Demo) Resize(width, height int) {
	d.width, d.height = max(0, width), max(0, height)
	d.layout()
	d.logger.Trace("resized", "width", d.width, "height", d.height)
}

func (d *Demo) opacityRows() int {
	if d.opacity == nil {
		return 0
	}
	return max(1, int(math.Ceil(d.cfg.Opacity.Height/CellHeight)))
}

// pickerRows excludes the opacity slider, the gap above it and the status
// line.
func (d *Demo) pickerRows() int {
	rows := d.height - 1
	if d.opacity != nil {
		rows -= d.opacityRows() + 1
	}
	return max(0, rows)
}

func (d *Demo) opacityTop() int { return d.pickerRows() + 1 }

func (d *Demo) layout() {
	if d.picker == nil {
		return
	}
	d.picker.Resize(geometry.Sz(float64(d.width)*CellWidth, float64(d.pickerRows())*CellHeight))
	if d.opacity != nil {
		d.opacity.Resize(geometry.Sz(float64(d.width)*CellWidth, float64(d.opacityRows())*CellHeight))
	}
}

// cellPoint is the centre of a cell in widget units, relative to the row at
// originRow.
func cellPoint(x, y, originRow int) geometry.Point {
	return geometry.Pt((float64(x)+0.5)*CellWidth, (float64(y-originRow)+0.5)*CellHeight)
}

// HandleKey applies a key press and reports whether the demo should exit.
func (d *Demo) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyTab:
		d.cycle()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case ' ':
			d.cycle()
		}
	}
	return false
}

func (d *Demo) cycle() {
	next := d.picker.Style().Next()
	if err := d.setStyle(next, d.picker.Colour()); err != nil {
		d.logger.Error("failed to switch style", "style", next, "error", err)
	}
}

// HandleMouse applies a mouse event. Button 1 presses start a gesture on the
// control under the pointer, drags continue it and releases end it.
func (d *Demo) HandleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	prev := d.prevButtons
	d.prevButtons = buttons

	pressed := buttons&tcell.Button1 != 0 && prev&tcell.Button1 == 0
	released := buttons&tcell.Button1 == 0 && prev&tcell.Button1 != 0
	dragging := buttons&tcell.Button1 != 0 && prev&tcell.Button1 != 0

	switch {
	case pressed:
		d.press(x, y)
	case dragging:
		d.drag(x, y)
	case released:
		d.drag(x, y)
		d.release()
	}
}

func (d *Demo) press(x, y int) {
	switch {
	case y < d.pickerRows():
		if d.picker.Down(cellPoint(x, y, 0)) {
			d.capture = capturePicker
			d.logger.Debug("gesture started", "region", d.picker.Region())
		}
	case d.opacity != nil && y >= d.opacityTop() && y < d.opacityTop()+d.opacityRows():
		if d.opacity.Down(cellPoint(x, y, d.opacityTop())) {
			d.capture = captureOpacity
		}
	}
}

func (d *Demo) drag(x, y int) {
	switch d.capture {
	case capturePicker:
		d.picker.Move(cellPoint(x, y, 0))
	case captureOpacity:
		d.opacity.Move(cellPoint(x, y, d.opacityTop()))
	}
}

func (d *Demo) release() {
	switch d.capture {
	case capturePicker:
		d.picker.Up()
	case captureOpacity:
		d.opacity.Up()
	}
	if d.capture != captureNone {
		d.logger.Debug("gesture ended", "colour", d.Colour().Hex(true))
	}
	d.capture = captureNone
}

// Draw paints the demo onto screen without calling Show.
func (d *Demo) Draw(screen tcell.Screen) {
	screen.Clear()
	d.drawSampler(screen, d.sampler, 0, d.pickerRows())
	if d.opacity != nil {
		d.drawSampler(screen, render.ForOpacity(d.opacity, d.picker.Colour()), d.opacityTop(), d.opacityRows())
	}
	if d.height > 0 {
		d.drawStatus(screen, d.height-1)
	}
}

func (d *Demo) drawSampler(screen tcell.Screen, s render.Sampler, top, rows int) {
	for row := range rows {
		for x := range d.width {
			px := (float64(x) + 0.5) * CellWidth
			upper, upperOK := s.Sample(geometry.Pt(px, float64(row)*CellHeight+CellHeight/4))
			lower, lowerOK := s.Sample(geometry.Pt(px, float64(row)*CellHeight+3*CellHeight/4))

			style := tcell.StyleDefault
			ch := ' '
			switch {
			case upperOK && lowerOK:
				ch = upperHalf
				style = style.Foreground(toTcell(upper)).Background(toTcell(lower))
			case upperOK:
				ch = upperHalf
				style = style.Foreground(toTcell(upper))
			case lowerOK:
				ch = lowerHalf
				style = style.Foreground(toTcell(lower))
			}
			screen.SetContent(x, top+row, ch, nil, style)
		}
	}
}

// Status is the text of the status line.
func (d *Demo) Status() string {
	c := d.Colour()
	parts := []string{
		d.picker.Style().String(),
		c.Hex(d.opacity != nil),
	}
	if d.opacity != nil {
		parts = append(parts, fmt.Sprintf("alpha %d%%", int(math.Round(d.opacity.Alpha()*100))))
	}
	if region := d.picker.Region(); region != "" {
		parts = append(parts, region)
	}
	parts = append(parts, "tab: style", "q: quit")
	return strings.Join(parts, "  ")
}

func (d *Demo) drawStatus(screen tcell.Screen, y int) {
	swatch := tcell.StyleDefault.Background(toTcell(render.Over(d.Colour(), render.CheckerDark)))
	n := min(previewCells, d.width)
	for x := range n {
		screen.SetContent(x, y, ' ', nil, swatch)
	}

	x := n + 1
	text := runewidth.Truncate(d.Status(), max(0, d.width-x), "…")
	for _, r := range text {
		screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x += runewidth.RuneWidth(r)
	}
}

func toTcell(c colour.RGBA) tcell.Color {
	n := c.NRGBA()
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

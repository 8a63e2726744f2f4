package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/colorprism/internal/config"
	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
)

// widgetFlags are the flags shared by commands that lay out a widget.
type widgetFlags struct {
	size   string
	colour string
}

func (f *widgetFlags) flagSet(defaultSize string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("widget", pflag.ContinueOnError)
	fs.StringVarP(&f.size, "size", "s", defaultSize, "widget size as WIDTHxHEIGHT, or a single number for a square")
	fs.StringVar(&f.colour, "colour", "", "initial colour as #RRGGBB or #AARRGGBB (default: config initial_colour)")
	return fs
}

// resolve parses the flags, falling back to the configured initial colour.
func (f *widgetFlags) resolve(cfg *config.Config) (geometry.Size, colour.RGBA, error) {
	size, err := parseSize(f.size)
	if err != nil {
		return geometry.Size{}, colour.RGBA{}, err
	}
	if f.colour == "" {
		return size, cfg.Initial(), nil
	}
	c, err := colour.ParseHex(f.colour)
	if err != nil {
		return geometry.Size{}, colour.RGBA{}, err
	}
	return size, c, nil
}

// parseSize parses "WxH" or "N".
func parseSize(s string) (geometry.Size, error) {
	w, h, found := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !found {
		h = w
	}
	width, errW := strconv.ParseFloat(w, 64)
	height, errH := strconv.ParseFloat(h, 64)
	if errW != nil || errH != nil || !finite(width) || !finite(height) {
		return geometry.Size{}, fmt.Errorf("invalid size %q: expected WIDTHxHEIGHT", s)
	}
	if width <= 0 || height <= 0 {
		return geometry.Size{}, fmt.Errorf("invalid size %q: both dimensions must be positive", s)
	}
	return geometry.Sz(width, height), nil
}

// parsePoint parses "X,Y".
func parsePoint(s string) (geometry.Point, error) {
	xs, ys, found := strings.Cut(s, ",")
	if !found {
		return geometry.Point{}, fmt.Errorf("invalid point %q: expected X,Y", s)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if errX != nil || errY != nil || !finite(x) || !finite(y) {
		return geometry.Point{}, fmt.Errorf("invalid point %q: expected X,Y", s)
	}
	return geometry.Pt(x, y), nil
}

// finite rejects the NaN and Inf spellings strconv accepts.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func parsePoints(values []string) ([]geometry.Point, error) {
	points := make([]geometry.Point, 0, len(values))
	for _, v := range values {
		p, err := parsePoint(v)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

func formatPoint(p geometry.Point) string {
	return fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
}

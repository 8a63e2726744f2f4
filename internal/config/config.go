// Package config loads widget style presets for colorprism.
//
// A preset file is YAML (or JSON, which YAML accepts) and only needs to name
// the values it overrides; everything else keeps its default.
package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/colorprism/pkg/colour"
)

// EnvConfigPath names the environment variable consulted when no --config
// flag is given.
const EnvConfigPath = "COLORPRISM_CONFIG"

// Config is the full set of widget presets.
type Config struct {
	// InitialColour is the hex colour the pickers start on.
	InitialColour string        `yaml:"initial_colour" json:"initial_colour"`
	Orbit         OrbitStyle    `yaml:"orbit" json:"orbit"`
	Wheel         WheelStyle    `yaml:"wheel" json:"wheel"`
	Spectrum      SpectrumStyle `yaml:"spectrum" json:"spectrum"`
	Opacity       OpacityStyle  `yaml:"opacity" json:"opacity"`
	Swatches      SwatchesStyle `yaml:"swatches" json:"swatches"`
	Demo          DemoStyle     `yaml:"demo" json:"demo"`
}

// OrbitStyle configures the orbit picker.
type OrbitStyle struct {
	Thickness   float64 `yaml:"thickness" json:"thickness"`
	Spacing     float64 `yaml:"spacing" json:"spacing"`
	KnobScale   float64 `yaml:"knob_scale" json:"knob_scale"`
	ShowPreview bool    `yaml:"show_preview" json:"show_preview"`
}

// WheelStyle configures the wheel picker.
type WheelStyle struct {
	RingThickness     float64 `yaml:"ring_thickness" json:"ring_thickness"`
	RingKnobScale     float64 `yaml:"ring_knob_scale" json:"ring_knob_scale"`
	OppositeKnobScale float64 `yaml:"opposite_knob_scale" json:"opposite_knob_scale"`
	PanelScale        float64 `yaml:"panel_scale" json:"panel_scale"`
	PanelKnobRadius   float64 `yaml:"panel_knob_radius" json:"panel_knob_radius"`
}

// SpectrumStyle configures the spectrum picker.
type SpectrumStyle struct {
	KnobRadius      float64 `yaml:"knob_radius" json:"knob_radius"`
	KnobBorderWidth float64 `yaml:"knob_border_width" json:"knob_border_width"`
	KnobBordered    bool    `yaml:"knob_bordered" json:"knob_bordered"`
	ValueHeight     float64 `yaml:"value_height" json:"value_height"`
}

// OpacityStyle configures the opacity slider.
type OpacityStyle struct {
	Height       float64 `yaml:"height" json:"height"`
	CheckerBoxes int     `yaml:"checker_boxes" json:"checker_boxes"`
}

// SwatchesStyle configures the swatch grid.
type SwatchesStyle struct {
	SelectedScale float64 `yaml:"selected_scale" json:"selected_scale"`
}

// DemoStyle configures the interactive demo.
type DemoStyle struct {
	Style       string `yaml:"style" json:"style"`
	ShowOpacity bool   `yaml:"show_opacity" json:"show_opacity"`
}

// DemoStyles are the picker styles demo.style may name.
var DemoStyles = []string{"wheel", "orbit", "spectrum", "swatches"}

// Default returns the built-in presets.
func Default() *Config {
	return &Config{
		InitialColour: "#FF0000",
		Orbit: OrbitStyle{
			Thickness:   50,
			Spacing:     16,
			KnobScale:   0.75,
			ShowPreview: true,
		},
		Wheel: WheelStyle{
			RingThickness:     60,
			RingKnobScale:     0.8,
			OppositeKnobScale: 0.55,
			PanelScale:        0.95,
			PanelKnobRadius:   14,
		},
		Spectrum: SpectrumStyle{
			KnobRadius:      16,
			KnobBorderWidth: 2,
			KnobBordered:    true,
			ValueHeight:     36,
		},
		Opacity: OpacityStyle{
			Height:       36,
			CheckerBoxes: 3,
		},
		Swatches: SwatchesStyle{
			SelectedScale: 1.15,
		},
		Demo: DemoStyle{
			Style:       "orbit",
			ShowOpacity: true,
		},
	}
}

// ResolvePath picks the preset file to load: the flag value if set,
// otherwise $COLORPRISM_CONFIG. An empty result means defaults only.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvConfigPath)
}

// Load reads a preset file over the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	path = expandPath(path)
	data, err := os.ReadFile(path) // #nosec G304 - User-specified config file, intended to be read
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every preset is usable.
func (c *Config) Validate() error {
	var errs []error

	if _, err := colour.ParseHex(c.InitialColour); err != nil {
		errs = append(errs, fmt.Errorf("initial_colour: %w", err))
	}

	nonNegative := map[string]float64{
		"orbit.thickness":            c.Orbit.Thickness,
		"orbit.spacing":              c.Orbit.Spacing,
		"wheel.ring_thickness":       c.Wheel.RingThickness,
		"wheel.panel_knob_radius":    c.Wheel.PanelKnobRadius,
		"spectrum.knob_radius":       c.Spectrum.KnobRadius,
		"spectrum.knob_border_width": c.Spectrum.KnobBorderWidth,
		"spectrum.value_height":      c.Spectrum.ValueHeight,
		"opacity.height":             c.Opacity.Height,
	}
	for _, name := range sortedKeys(nonNegative) {
		if nonNegative[name] < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %g", name, nonNegative[name]))
		}
	}

	unit := map[string]float64{
		"orbit.knob_scale":          c.Orbit.KnobScale,
		"wheel.ring_knob_scale":     c.Wheel.RingKnobScale,
		"wheel.opposite_knob_scale": c.Wheel.OppositeKnobScale,
		"wheel.panel_scale":         c.Wheel.PanelScale,
	}
	for _, name := range sortedKeys(unit) {
		if v := unit[name]; v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be between 0 and 1, got %g", name, v))
		}
	}

	if !slices.Contains(DemoStyles, strings.ToLower(strings.TrimSpace(c.Demo.Style))) {
		errs = append(errs, fmt.Errorf("demo.style %q is not one of %s", c.Demo.Style, strings.Join(DemoStyles, ", ")))
	}

	if c.Opacity.CheckerBoxes < 1 {
		errs = append(errs, fmt.Errorf("opacity.checker_boxes must be at least 1, got %d", c.Opacity.CheckerBoxes))
	}
	if c.Swatches.SelectedScale < 1 {
		errs = append(errs, fmt.Errorf("swatches.selected_scale must be at least 1, got %g", c.Swatches.SelectedScale))
	}

	return errors.Join(errs...)
}

// Initial returns the parsed initial colour, falling back to red.
func (c *Config) Initial() colour.RGBA {
	col, err := colour.ParseHex(c.InitialColour)
	if err != nil {
		return colour.Red
	}
	return col
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

func sortedKeys(m map[string]float64) []string {
	return slices.Sorted(maps.Keys(m))
}

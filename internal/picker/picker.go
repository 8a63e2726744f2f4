package picker

import (
	"fmt"

	"github.com/jmylchreest/colorprism/internal/config"
	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
)

// Picker is a colour picker driven by pointer events in its own coordinate
// space, (0, 0) being the top-left of the container passed to Resize.
type Picker interface {
	Style() Style
	// Resize lays the picker out in a container, keeping the current colour.
	Resize(size geometry.Size)
	// Down starts a gesture. It reports false, and starts nothing, when p
	// misses every control.
	Down(p geometry.Point) bool
	// Move continues the current gesture. Without one it does nothing.
	Move(p geometry.Point)
	// Up ends the current gesture.
	Up()
	// Region names the control under the current gesture, or "" when idle.
	Region() string
	// Colour is the currently selected opaque colour.
	Colour() colour.RGBA
}

// New builds a picker of the given style starting on initial.
func New(style Style, cfg *config.Config, initial colour.RGBA) (Picker, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	switch style {
	case StyleWheel:
		return NewWheel(cfg.Wheel, initial), nil
	case StyleOrbit:
		return NewOrbit(cfg.Orbit, initial), nil
	case StyleSpectrum:
		return NewSpectrum(cfg.Spectrum, initial), nil
	case StyleSwatches:
		return NewSwatches(cfg.Swatches, initial), nil
	default:
		return nil, fmt.Errorf("unsupported style %v", style)
	}
}

package picker

import (
	"github.com/jmylchreest/colorprism/internal/config"
	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
	"github.com/jmylchreest/colorprism/pkg/widget/swatches"
)

// Swatches is the state of a swatch grid picker.
type Swatches struct {
	style    config.SwatchesStyle
	initial  colour.RGBA
	size     geometry.Size
	selected swatches.Cell
	hasCell  bool
	active   bool
}

// NewSwatches creates a swatch picker. If initial is one of the palette
// colours its cell starts selected.
func NewSwatches(style config.SwatchesStyle, initial colour.RGBA) *Swatches {
	s := &Swatches{style: style, initial: initial.WithAlpha(1)}
	s.selected, s.hasCell = swatches.Find(s.initial)
	return s
}

func (s *Swatches) Style() Style { return StyleSwatches }

func (s *Swatches) Resize(size geometry.Size) { s.size = size }

func (s *Swatches) Down(p geometry.Point) bool {
	cell, ok := swatches.CellAt(p, s.size)
	if !ok {
		return false
	}
	s.selected, s.hasCell, s.active = cell, true, true
	return true
}

// Move drags the selection across cells. Leaving the grid keeps the last
// cell selected.
func (s *Swatches) Move(p geometry.Point) {
	if !s.active {
		return
	}
	if cell, ok := swatches.CellAt(p, s.size); ok {
		s.selected = cell
	}
}

func (s *Swatches) Up() { s.active = false }

func (s *Swatches) Region() string {
	if !s.active {
		return ""
	}
	return s.selected.String()
}

// Colour is the selected swatch, or the initial colour when nothing is
// selected.
func (s *Swatches) Colour() colour.RGBA {
	if !s.hasCell {
		return s.initial
	}
	c, ok := swatches.Colour(s.selected)
	if !ok {
		return s.initial
	}
	return c
}

// Selected is the selected cell, if any.
func (s *Swatches) Selected() (swatches.Cell, bool) { return s.selected, s.hasCell }

// Size is the grid's container.
func (s *Swatches) Size() geometry.Size { return s.size }

// SelectedScale is how much the selected cell is enlarged when drawn.
func (s *Swatches) SelectedScale() float64 { return s.style.SelectedScale }

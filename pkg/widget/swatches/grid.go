package swatches

import (
	"fmt"
	"math"

	"github.com/jmylchreest/colorprism/pkg/geometry"
)

// Cell addresses one swatch: Column selects the family, Row the shade.
type Cell struct {
	Column int
	Row    int
}

func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.Column, c.Row)
}

func (c Cell) valid() bool {
	return c.Column >= 0 && c.Column < Columns && c.Row >= 0 && c.Row < Shades
}

// CellSize is the size of one swatch when the grid fills container.
func CellSize(container geometry.Size) geometry.Size {
	return geometry.Sz(container.Width/float64(Columns), container.Height/Shades)
}

// CellAt returns the swatch under p. Points outside the grid, or any point on
// an unmeasured grid, report false.
func CellAt(p geometry.Point, container geometry.Size) (Cell, bool) {
	if container.Width <= 0 || container.Height <= 0 {
		return Cell{}, false
	}
	if !geometry.RectFromSize(geometry.Point{}, container).Contains(p) {
		return Cell{}, false
	}

	size := CellSize(container)
	cell := Cell{
		Column: min(int(math.Floor(p.X/size.Width)), Columns-1),
		Row:    min(int(math.Floor(p.Y/size.Height)), Shades-1),
	}
	return cell, true
}

// CellBounds is the rectangle of cell in a grid filling container.
func CellBounds(cell Cell, container geometry.Size) geometry.Rect {
	size := CellSize(container)
	topLeft := geometry.Pt(float64(cell.Column)*size.Width, float64(cell.Row)*size.Height)
	return geometry.RectFromSize(topLeft, size)
}

// SelectedBounds is the bounds of a selected cell enlarged by scale about
// its centre.
func SelectedBounds(cell Cell, container geometry.Size, scale float64) geometry.Rect {
	b := CellBounds(cell, container)
	growX := b.Width() * (scale - 1) / 2
	growY := b.Height() * (scale - 1) / 2
	return geometry.Rect{
		Left:   b.Left - growX,
		Top:    b.Top - growY,
		Right:  b.Right + growX,
		Bottom: b.Bottom + growY,
	}
}

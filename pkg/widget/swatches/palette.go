// Package swatches holds the fixed swatch palette and the grid geometry used
// to pick from it. Families are columns, shades are rows from light to dark.
package swatches

import (
	"slices"

	"github.com/jmylchreest/colorprism/pkg/colour"
)

// Shades is the number of shades in every family.
const Shades = 10

// Family is a named column of shades.
type Family struct {
	Name    string
	Colours []colour.RGBA
}

type familyDef struct {
	name   string
	shades [Shades]uint32
}

var palette = [...]familyDef{
	{"grey", [Shades]uint32{
		0xFFFFFFFF, 0xFFCCCCCC, 0xFFB3B3B3, 0xFF999999, 0xFF808080,
		0xFF666666, 0xFF4D4D4D, 0xFF333333, 0xFF1A1A1A, 0xFF000000,
	}},
	{"red", [Shades]uint32{
		0xFFFFCDCC, 0xFFFF9896, 0xFFFF6461, 0xFFFF3029, 0xFFFF0000,
		0xFFF70000, 0xFFD90000, 0xFFA60000, 0xFF5C0000, 0xFF330000,
	}},
	{"orange", [Shades]uint32{
		0xFFFFE6CC, 0xFFFFCC96, 0xFFFFB45E, 0xFFFF9A1F, 0xFFFF8000,
		0xFFF77C00, 0xFFD96C00, 0xFFA65300, 0xFF5C2C00, 0xFF331900,
	}},
	{"yellow", [Shades]uint32{
		0xFFFFFFC9, 0xFFFFFF94, 0xFFFFFF59, 0xFFFFFF00, 0xFFFCFC00,
		0xFFF7F700, 0xFFD5D900, 0xFFA3A300, 0xFF5A5C00, 0xFF323300,
	}},
	{"green", [Shades]uint32{
		0xFFCCFFCC, 0xFF96FF94, 0xFF5FFF5C, 0xFF1BFF0F, 0xFF00FF00,
		0xFF00F700, 0xFF00D900, 0xFF00A300, 0xFF005C00, 0xFF003300,
	}},
	{"spring green", [Shades]uint32{
		0xFFC9FFE5, 0xFF94FFCB, 0xFF5EFFB1, 0xFF1AFF94, 0xFF00FF7B,
		0xFF00F576, 0xFF00D969, 0xFF00A34F, 0xFF005C2B, 0xFF003017,
	}},
	{"cyan", [Shades]uint32{
		0xFFCCFFFF, 0xFF94FFFF, 0xFF5CFFFF, 0xFF17FFFF, 0xFF00FFFF,
		0xFF00F5F5, 0xFF00D9D9, 0xFF00A3A3, 0xFF005C5C, 0xFF003333,
	}},
	{"azure radiance", [Shades]uint32{
		0xFFCCE6FF, 0xFF96CBFF, 0xFF63B1FF, 0xFF2994FF, 0xFF007BFF,
		0xFF0078F7, 0xFF0069D9, 0xFF0050A6, 0xFF002E5E, 0xFF001933,
	}},
	{"blue", [Shades]uint32{
		0xFFCDCCFF, 0xFF9A96FF, 0xFF645EFF, 0xFF3021FF, 0xFF0800FF,
		0xFF0800FA, 0xFF0400D9, 0xFF0300A6, 0xFF02005E, 0xFF010033,
	}},
	{"violet", [Shades]uint32{
		0xFFE6CCFF, 0xFFCC96FF, 0xFFB45EFF, 0xFF9721FF, 0xFF8000FF,
		0xFF7C00F7, 0xFF6C00D9, 0xFF5300A6, 0xFF2E005C, 0xFF1A0033,
	}},
	{"magenta", [Shades]uint32{
		0xFFFFCCFF, 0xFFFF94FF, 0xFFFF5EFF, 0xFFFF1CFF, 0xFFFF00FF,
		0xFFFA00FA, 0xFFD900D9, 0xFFA600A6, 0xFF5E005E, 0xFF330033,
	}},
}

// Columns is the number of families.
const Columns = len(palette)

// Families returns the palette in display order. The result is freshly
// built and may be modified.
func Families() []Family {
	families := make([]Family, 0, len(palette))
	for _, def := range palette {
		colours := make([]colour.RGBA, 0, Shades)
		for _, argb := range def.shades {
			colours = append(colours, colour.FromARGB(argb))
		}
		families = append(families, Family{Name: def.name, Colours: colours})
	}
	return families
}

// FamilyNames returns the family names in display order.
func FamilyNames() []string {
	names := make([]string, 0, len(palette))
	for _, def := range palette {
		names = append(names, def.name)
	}
	return names
}

// Colour returns the swatch at cell, or false when cell is off the grid.
func Colour(cell Cell) (colour.RGBA, bool) {
	if !cell.valid() {
		return colour.RGBA{}, false
	}
	return colour.FromARGB(palette[cell.Column].shades[cell.Row]), true
}

// Find locates the swatch whose 8-bit value equals c, scanning families in
// order. Colours not on the palette report false.
func Find(c colour.RGBA) (Cell, bool) {
	argb := c.ARGB()
	for col, def := range palette {
		if row := slices.Index(def.shades[:], argb); row >= 0 {
			return Cell{Column: col, Row: row}, true
		}
	}
	return Cell{}, false
}

// Package picker holds the interactive state of each colour picker style and
// applies pointer events to it through the geometry packages.
//
// Pickers are not safe for concurrent use; a single event loop owns each one
// and applies events in arrival order.
package picker

import (
	"fmt"
	"strings"
)

// Style selects a picker.
type Style int

const (
	StyleWheel Style = iota
	StyleOrbit
	StyleSpectrum
	StyleSwatches
)

var styleNames = map[Style]string{
	StyleWheel:    "wheel",
	StyleOrbit:    "orbit",
	StyleSpectrum: "spectrum",
	StyleSwatches: "swatches",
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// Styles lists every style in display order.
func Styles() []Style {
	return []Style{StyleWheel, StyleOrbit, StyleSpectrum, StyleSwatches}
}

// StyleNames lists every style name in display order.
func StyleNames() []string {
	names := make([]string, 0, len(styleNames))
	for _, s := range Styles() {
		names = append(names, s.String())
	}
	return names
}

// ParseStyle parses a style name, ignoring case.
func ParseStyle(name string) (Style, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Styles() {
		if s.String() == needle {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown style %q (valid styles: %s)", name, strings.Join(StyleNames(), ", "))
}

// Next returns the style after s, wrapping around.
func (s Style) Next() Style {
	styles := Styles()
	return styles[(int(s)+1)%len(styles)]
}

package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for truecolour terminals.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns a solid block of width cells painted in c.
// Alpha is ignored; terminals have no notion of it.
func Preview(c RGBA, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return background(c) + strings.Repeat(" ", width) + ansiReset
}

// PreviewWithText returns a block painted in c with text centred on it in
// whichever of black or white reads better.
func PreviewWithText(c RGBA, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		display = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return background(c) + foreground(ReadableOn(c)) + display + ansiReset
}

// FormatWithPreview formats a colour as its preview block followed by its hex code.
func FormatWithPreview(c RGBA, width int, withAlpha bool) string {
	return fmt.Sprintf("%s %s", Preview(c, width), c.Hex(withAlpha))
}

func background(c RGBA) string {
	n := c.NRGBA()
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, n.R, n.G, n.B, ansiSuffix)
}

func foreground(c RGBA) string {
	n := c.NRGBA()
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, n.R, n.G, n.B, ansiSuffix)
}

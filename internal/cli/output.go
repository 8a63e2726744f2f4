package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jmylchreest/colorprism/pkg/colour"
)

const defaultTerminalWidth = 80

// isTerminal reports whether w is a terminal, which enables colour previews.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth is the column count of w, or defaultTerminalWidth when w is
// not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultTerminalWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}

// previewMode decides whether colour previews are drawn.
type previewMode string

const (
	previewAuto   previewMode = "auto"
	previewAlways previewMode = "always"
	previewNever  previewMode = "never"
)

func (m previewMode) enabled(w io.Writer) bool {
	switch m {
	case previewAlways:
		return true
	case previewNever:
		return false
	default:
		return isTerminal(w)
	}
}

// colourCell is the hex code of c, prefixed with a preview block when
// previews are enabled.
func colourCell(c colour.RGBA, withAlpha, preview bool) string {
	if preview {
		return colour.FormatWithPreview(c, 4, withAlpha)
	}
	return c.Hex(withAlpha)
}

func (m *previewMode) String() string { return string(*m) }

func (m *previewMode) Set(v string) error {
	switch previewMode(v) {
	case previewAuto, previewAlways, previewNever:
		*m = previewMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of %s, %s or %s", previewAuto, previewAlways, previewNever)
	}
}

func (m *previewMode) Type() string { return "mode" }

// addPreviewFlag registers --preview on fs.
func addPreviewFlag(fs *pflag.FlagSet, m *previewMode) {
	*m = previewAuto
	fs.Var(m, "preview", "colour previews: auto (when stdout is a terminal), always or never")
}

// colorprism - colour picker geometry and widget toolkit
//
// colorprism maps pointer events on wheel, orbit, spectrum, swatch and
// opacity pickers to knob positions and colours, renders the widgets and
// runs them interactively in the terminal.
package main

import (
	"os"

	"github.com/jmylchreest/colorprism/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

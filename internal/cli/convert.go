package cli

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorprism/pkg/colour"
)

func newConvertCmd(opts *globalOptions) *cobra.Command {
	var preview previewMode

	cmd := &cobra.Command{
		Use:   "convert <colour>...",
		Short: "Show colours in hex, RGB, HSV, HSL and Lab",
		Long: `Convert one or more hex colours (#RGB, #RRGGBB or #AARRGGBB) to the other
colour models.

Examples:
  colorprism convert '#FF8000'
  colorprism convert f00 '#800000FF' --preview always`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			show := preview.enabled(cmd.OutOrStdout())
			headers := []string{"Input", "Hex", "RGB", "HSV", "HSL", "Lab"}
			if show {
				headers = append(headers, "Preview")
			}
			table := NewTable(headers)

			for _, arg := range args {
				c, err := colour.ParseHex(arg)
				if err != nil {
					return err
				}
				opts.logger.Trace("converting", "input", arg, "argb", fmt.Sprintf("%08X", c.ARGB()))

				cf := colorful.Color{R: c.R, G: c.G, B: c.B}
				hh, hs, hl := cf.Hsl()
				l, a, b := cf.Lab()
				n := c.NRGBA()

				row := []string{
					arg,
					c.Hex(c.A < 1),
					fmt.Sprintf("%d %d %d", n.R, n.G, n.B),
					formatHSV(c),
					fmt.Sprintf("%.1f° %.3f %.3f", hh, hs, hl),
					fmt.Sprintf("%.2f %.2f %.2f", l*100, a*100, b*100),
				}
				if show {
					row = append(row, colour.PreviewWithText(c, c.Hex(false), 9))
				}
				table.AddRow(row)
			}
			return table.Write(cmd.OutOrStdout())
		},
	}

	addPreviewFlag(cmd.Flags(), &preview)
	return cmd
}

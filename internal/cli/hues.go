package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorprism/pkg/colour"
)

func newHuesCmd(opts *globalOptions) *cobra.Command {
	var (
		steps   int
		preview previewMode
	)

	cmd := &cobra.Command{
		Use:   "hues",
		Short: "Sample the hue gradient",
		Long: `Sample the fully saturated hue gradient used by the hue ring and the
spectrum panel at evenly spaced points from 0 to 360 degrees.

Examples:
  colorprism hues
  colorprism hues --steps 13`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 || steps > colour.HueStops {
				return fmt.Errorf("--steps must be between 1 and %d", colour.HueStops)
			}

			show := preview.enabled(cmd.OutOrStdout())
			table := NewTable([]string{"Fraction", "Degrees", "Colour"})
			for i := range steps {
				fraction := 0.0
				if steps > 1 {
					fraction = float64(i) / float64(steps-1)
				}
				c := colour.HueAt(fraction)
				table.AddRow([]string{
					fmt.Sprintf("%.3f", fraction),
					fmt.Sprintf("%.1f", fraction*360),
					colourCell(c, false, show),
				})
			}
			opts.logger.Debug("sampled hue gradient", "steps", steps)
			return table.Write(cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 7, "number of samples")
	addPreviewFlag(cmd.Flags(), &preview)

	return cmd
}

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/widget/swatches"
)

func newSwatchesCmd(opts *globalOptions) *cobra.Command {
	var (
		family  string
		grid    bool
		preview previewMode
	)

	cmd := &cobra.Command{
		Use:   "swatches",
		Short: "List the swatch palette",
		Long: `List the swatch palette: ` + strconv.Itoa(swatches.Columns) + ` colour families of ` + strconv.Itoa(swatches.Shades) + ` shades each,
from light to dark.

Examples:
  colorprism swatches
  colorprism swatches --family "spring green"
  colorprism swatches --grid`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			families := swatches.Families()

			if family != "" {
				var matched []swatches.Family
				for _, f := range families {
					if strings.EqualFold(f.Name, family) {
						matched = append(matched, f)
					}
				}
				if len(matched) == 0 {
					return fmt.Errorf("unknown family %q (valid families: %s)", family, strings.Join(swatches.FamilyNames(), ", "))
				}
				families = matched
			}

			if grid {
				opts.logger.Debug("drawing swatch grid", "width", terminalWidth(out))
				return writeSwatchGrid(out, families, terminalWidth(out))
			}

			show := preview.enabled(out)
			table := NewTable([]string{"Family", "Shade", "Colour"})
			for _, f := range families {
				for row, c := range f.Colours {
					table.AddRow([]string{f.Name, strconv.Itoa(row), colourCell(c, false, show)})
				}
			}
			return table.Write(out)
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "only list one family")
	cmd.Flags().BoolVar(&grid, "grid", false, "draw the palette as a grid of colour blocks")
	addPreviewFlag(cmd.Flags(), &preview)

	return cmd
}

// writeSwatchGrid draws one column per family and one line per shade, sized
// to fit width terminal columns.
func writeSwatchGrid(w io.Writer, families []swatches.Family, width int) error {
	if len(families) == 0 {
		return nil
	}
	cell := max(2, min(8, width/len(families)-1))

	var b strings.Builder
	for row := range swatches.Shades {
		parts := make([]string, len(families))
		for i, f := range families {
			parts[i] = colour.Preview(f.Colours[row], cell)
		}
		b.WriteString(strings.Join(parts, " "))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

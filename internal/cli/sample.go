package cli

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorprism/internal/image"
	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/widget/swatches"
)

func newSampleCmd(opts *globalOptions) *cobra.Command {
	var (
		at      string
		preview previewMode
	)

	cmd := &cobra.Command{
		Use:   "sample <image>",
		Short: "Read a colour from an image and find the nearest swatch",
		Long: `Read the colour of one pixel of an image (the centre by default) and find the
closest swatch on the palette by CIEDE2000 distance. The hex code can be
passed to --colour of the other commands.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  colorprism sample wallpaper.jpg
  colorprism sample logo.png --at 12,40`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := image.NewFileLoader().Load(args[0])
			if err != nil {
				return fmt.Errorf("failed to load image: %w", err)
			}
			bounds := img.Bounds()
			opts.logger.Debug("image loaded", "path", args[0], "width", bounds.Dx(), "height", bounds.Dy())

			x, y := image.Centre(img)
			if at != "" {
				p, err := parsePoint(at)
				if err != nil {
					return err
				}
				x, y = int(math.Floor(p.X)), int(math.Floor(p.Y))
			}

			c, err := image.ColourAt(img, x, y)
			if err != nil {
				return err
			}
			cell, nearest, distance := nearestSwatch(c)

			show := preview.enabled(cmd.OutOrStdout())
			table := NewTable([]string{"Property", "Value"})
			table.AddRow([]string{"pixel", fmt.Sprintf("%d,%d", x, y)})
			table.AddRow([]string{"colour", colourCell(c, c.A < 1, show)})
			table.AddRow([]string{"hsv", formatHSV(c)})
			table.AddRow([]string{"nearest swatch", fmt.Sprintf("%s (%s)", swatches.FamilyNames()[cell.Column], cell)})
			table.AddRow([]string{"swatch colour", colourCell(nearest, false, show)})
			table.AddRow([]string{"distance", fmt.Sprintf("%.4f", distance)})
			return table.Write(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "pixel to read as X,Y (default: image centre)")
	addPreviewFlag(cmd.Flags(), &preview)

	return cmd
}

// nearestSwatch finds the palette colour closest to c, ignoring alpha. Ties
// go to the first family and the lightest shade.
func nearestSwatch(c colour.RGBA) (swatches.Cell, colour.RGBA, float64) {
	target := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()

	var (
		best     swatches.Cell
		bestC    colour.RGBA
		bestDist = math.Inf(1)
	)
	for col, f := range swatches.Families() {
		for row, s := range f.Colours {
			d := target.DistanceCIEDE2000(colorful.Color{R: s.R, G: s.G, B: s.B})
			if d < bestDist {
				best, bestC, bestDist = swatches.Cell{Column: col, Row: row}, s, d
			}
		}
	}
	return best, bestC, bestDist
}

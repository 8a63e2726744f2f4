package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorprism/internal/image"
	"github.com/jmylchreest/colorprism/pkg/widget/swatches"
)

func newPaletteCmd(opts *globalOptions) *cobra.Command {
	var (
		count   int
		seed    uint64
		preview previewMode
	)

	cmd := &cobra.Command{
		Use:   "palette <image>",
		Short: "Extract the dominant colours of an image",
		Long: `Cluster the pixels of an image into its dominant colours (k-means in CIE
L*a*b* space) and match each to the nearest swatch on the palette. Fully
transparent pixels are ignored.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  colorprism palette wallpaper.jpg
  colorprism palette logo.png --count 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := image.NewFileLoader().Load(args[0])
			if err != nil {
				return fmt.Errorf("failed to load image: %w", err)
			}

			clusterer := image.NewClusterer()
			clusterer.Seed = seed
			dominant, err := clusterer.Dominant(img, count)
			if err != nil {
				return fmt.Errorf("failed to extract colours: %w", err)
			}
			opts.logger.Debug("extracted dominant colours", "path", args[0], "requested", count, "found", len(dominant))

			show := preview.enabled(cmd.OutOrStdout())
			names := swatches.FamilyNames()
			table := NewTable([]string{"Weight", "Colour", "Nearest swatch", "Swatch colour"})
			for _, d := range dominant {
				cell, nearest, _ := nearestSwatch(d.Colour)
				table.AddRow([]string{
					fmt.Sprintf("%.1f%%", d.Weight*100),
					colourCell(d.Colour, false, show),
					fmt.Sprintf("%s (%s)", names[cell.Column], cell),
					colourCell(nearest, false, show),
				})
			}
			return table.Write(cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 5, "number of colours to extract")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "seed for cluster initialisation")
	addPreviewFlag(cmd.Flags(), &preview)

	return cmd
}

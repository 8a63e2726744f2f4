package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPickCmd(opts *globalOptions) *cobra.Command {
	var (
		widget  widgetFlags
		at      string
		drags   []string
		preview previewMode
	)

	cmd := &cobra.Command{
		Use:   "pick <widget> --at X,Y",
		Short: "Replay a pointer gesture on a widget",
		Long: `Lay a widget out, press the pointer at --at, drag through every --drag point
and release, then report the region that was hit, where every knob ended up
and the selected colour.

Widgets: ` + widgetStylesHelp() + `

Coordinates are in the widget's own space: (0,0) is the top-left corner of a
container of the given --size.

Examples:
  # Press the centre of the orbit value arc
  colorprism pick orbit --size 400 --at 25,200

  # Drag the wheel panel knob from the centre to the top-left
  colorprism pick wheel --size 300x300 --at 150,150 --drag 0,0

  # Pick the opacity of a blue swatch
  colorprism pick opacity --size 236x36 --colour '#0000FF' --at 118,18`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, initial, err := widget.resolve(opts.cfg)
			if err != nil {
				return err
			}
			pointer, err := parsePoint(at)
			if err != nil {
				return err
			}
			path, err := parsePoints(drags)
			if err != nil {
				return err
			}

			s, err := newSession(args[0], opts.cfg, size, initial)
			if err != nil {
				return err
			}

			region := s.gesture(pointer, path)
			opts.logger.Debug("gesture replayed", "widget", s.name, "at", formatPoint(pointer), "drags", len(path), "region", region)
			if region == "" {
				region = "none"
			}

			table := NewTable([]string{"Property", "Value"})
			table.AddRow([]string{"widget", s.name})
			table.AddRow([]string{"size", fmt.Sprintf("%gx%g", size.Width, size.Height)})
			table.AddRow([]string{"pointer", formatPoint(pointer)})
			table.AddRow([]string{"region", region})
			s.describe(table, preview.enabled(cmd.OutOrStdout()))
			return table.Write(cmd.OutOrStdout())
		},
	}

	cmd.Flags().AddFlagSet(widget.flagSet("400"))
	cmd.Flags().StringVar(&at, "at", "", "pointer press position as X,Y")
	cmd.Flags().StringArrayVar(&drags, "drag", nil, "drag through X,Y after the press (repeatable)")
	addPreviewFlag(cmd.Flags(), &preview)
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func newKnobCmd(opts *globalOptions) *cobra.Command {
	var (
		widget  widgetFlags
		preview previewMode
	)

	cmd := &cobra.Command{
		Use:   "knob <widget>",
		Short: "Show where a widget places its knobs for a colour",
		Long: `Lay a widget out for --colour and report where every knob is drawn
before any pointer event.

Widgets: ` + widgetStylesHelp() + `

Examples:
  colorprism knob wheel --size 300 --colour '#3366CC'
  colorprism knob spectrum --size 400x300`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, initial, err := widget.resolve(opts.cfg)
			if err != nil {
				return err
			}
			s, err := newSession(args[0], opts.cfg, size, initial)
			if err != nil {
				return err
			}

			table := NewTable([]string{"Property", "Value"})
			table.AddRow([]string{"widget", s.name})
			table.AddRow([]string{"initial", colourCell(initial, true, false)})
			s.describe(table, preview.enabled(cmd.OutOrStdout()))
			return table.Write(cmd.OutOrStdout())
		},
	}

	cmd.Flags().AddFlagSet(widget.flagSet("400"))
	addPreviewFlag(cmd.Flags(), &preview)

	return cmd
}

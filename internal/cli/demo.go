package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorprism/internal/picker"
	"github.com/jmylchreest/colorprism/internal/tui"
	"github.com/jmylchreest/colorprism/pkg/colour"
)

func newDemoCmd(opts *globalOptions) *cobra.Command {
	var (
		style     string
		initial   string
		noOpacity bool
		logFile   string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive picker demo in the terminal",
		Long: `Run the pickers interactively in the terminal. Drag with the left mouse
button to move knobs; the selected colour is printed on exit.

Keys:
  tab, space   switch to the next picker style
  q, esc       quit

Examples:
  colorprism demo
  colorprism demo --style wheel --colour '#3366CC'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if style == "" {
				style = opts.cfg.Demo.Style
			}
			s, err := picker.ParseStyle(style)
			if err != nil {
				return err
			}

			start := opts.cfg.Initial()
			if initial != "" {
				if start, err = colour.ParseHex(initial); err != nil {
					return err
				}
			}

			// The screen owns the terminal, so logs only go to a file.
			logger := hclog.NewNullLogger()
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) // #nosec G304 - User-specified log path
				if err != nil {
					return fmt.Errorf("failed to open log file: %w", err)
				}
				defer f.Close()
				logger = hclog.New(&hclog.LoggerOptions{
					Name:   "colorprism.tui",
					Output: f,
					Level:  opts.logger.GetLevel(),
				})
			}

			d, err := tui.NewDemo(tui.Options{
				Style:       s,
				Config:      opts.cfg,
				Initial:     start,
				ShowOpacity: opts.cfg.Demo.ShowOpacity && !noOpacity,
				Logger:      logger,
			})
			if err != nil {
				return err
			}

			selected, err := tui.Run(d)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), selected)
			return nil
		},
	}

	cmd.Flags().StringVar(&style, "style", "", "initial picker style (default: config demo.style)")
	cmd.Flags().StringVar(&initial, "colour", "", "initial colour (default: config initial_colour)")
	cmd.Flags().BoolVar(&noOpacity, "no-opacity", false, "hide the opacity slider")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while the demo runs")

	return cmd
}

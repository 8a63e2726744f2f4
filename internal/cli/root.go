// Package cli provides the command-line interface for colorprism.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorprism/internal/config"
	"github.com/jmylchreest/colorprism/internal/version"
)

// globalOptions holds the persistent flags and what PersistentPreRunE builds
// from them.
type globalOptions struct {
	verbose    bool
	quiet      bool
	configPath string

	cfg    *config.Config
	logger hclog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   version.Name,
		Short: "Colour picker geometry and widget toolkit",
		Long: `colorprism answers the questions an interactive colour picker asks on every
pointer event: which control is under the pointer, where the knob should be
drawn, and which colour that selects.

Four picker styles are supported (wheel, orbit, spectrum and swatches) plus an
opacity slider. Pointer events can be replayed from the command line, widgets
can be rendered to PNG, and an interactive mouse-driven demo runs in the
terminal.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"widget preset file (default: $"+config.EnvConfigPath+")")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.SetVersionTemplate(version.String() + "\n")

	cmd.AddCommand(
		newVersionCmd(),
		newPickCmd(opts),
		newKnobCmd(opts),
		newConvertCmd(opts),
		newSwatchesCmd(opts),
		newHuesCmd(opts),
		newRenderCmd(opts),
		newDemoCmd(opts),
		newSampleCmd(opts),
		newPaletteCmd(opts),
	)

	return cmd
}

func (o *globalOptions) init(logOutput io.Writer) error {
	level := hclog.Info
	switch {
	case o.verbose:
		level = hclog.Debug
	case o.quiet:
		level = hclog.Error
	}
	o.logger = hclog.New(&hclog.LoggerOptions{
		Name:   version.Name,
		Output: logOutput,
		Level:  level,
	})

	path := config.ResolvePath(o.configPath)
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if path != "" {
		o.logger.Debug("loaded config", "path", path)
	}
	o.cfg = cfg
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

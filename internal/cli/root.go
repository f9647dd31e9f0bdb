// Package cli wires the oklabby subcommands onto cobra.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/oklabby/internal/config"
	"github.com/ironsheep/oklabby/internal/logging"
	"github.com/ironsheep/oklabby/internal/render"
)

// BuildInfo carries the values set by ldflags in main.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// app holds state shared by every subcommand of one invocation.
type app struct {
	info BuildInfo
	cfg  config.Config

	configPath string
	output     string
	color      string
	logLevel   string
	showLab    bool
}

// NewRootCmd builds the oklabby command tree.
func NewRootCmd(info BuildInfo) *cobra.Command {
	a := &app{info: info}

	rootCmd := &cobra.Command{
		Use:   "oklabby",
		Short: "Average and blend colors in the Oklab perceptual color space",
		Long: `oklabby converts colors between hex, sRGB and Oklab, averages them and
generates interpolation steps between them. All blending happens in Oklab,
so results follow perceived lightness rather than raw sRGB values.

Colors are given as hex codes (#rgb or #rrggbb, '#' optional) or as Oklab
triplets such as "[0.5, 0.1, -0.05]".`,
		Version: info.Version,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. malformed colors)
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetVersionTemplate(`{{printf "oklabby version %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default is $HOME/.config/oklabby/config.yaml)")
	flags.StringVarP(&a.output, "output", "o", "", "output format: text or json")
	flags.StringVar(&a.color, "color", "", "swatch colors: auto, always or never")
	flags.BoolVar(&a.showLab, "lab", false, "also print the Oklab triplet of each color")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(newAverageCmd(a))
	rootCmd.AddCommand(newQuantizeCmd(a))
	rootCmd.AddCommand(newConvertCmd(a))
	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))

	return rootCmd
}

// Execute runs the command tree against the process arguments.
func Execute(info BuildInfo) error {
	return NewRootCmd(info).Execute()
}

// setup loads configuration, applies flag overrides and starts logging.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if flags.Changed("color") {
		cfg.Color = a.color
	}
	if flags.Changed("lab") {
		cfg.ShowLab = a.showLab
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.Init(level, cmd.ErrOrStderr())
	logging.Debug("CLI", "Running %s with output=%s color=%s steps=%d", cmd.Name(), cfg.Output, cfg.Color, cfg.Steps)

	a.cfg = cfg
	return nil
}

func (a *app) printer(cmd *cobra.Command) *render.Printer {
	return render.New(cmd.OutOrStdout(), render.OptionsFromConfig(a.cfg))
}

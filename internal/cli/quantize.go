package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/oklabby/internal/logging"
	"github.com/ironsheep/oklabby/internal/oklab"
)

func newQuantizeCmd(a *app) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "quantize <color>... [--steps N]",
		Short: "Quantize steps between each pair of colors (in order)",
		Long: `Quantize interpolates in Oklab between every consecutive pair of colors.
Each pair yields N colors including both endpoints, so the color shared by
two pairs is printed twice. Every line starts with its position in the pair,
from 0.00 to 1.00.`,
		Example: `  oklabby quantize '#000' '#fff'
  oklabby quantize -s 5 ff0000 00ff00 0000ff`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("steps") {
				steps = a.cfg.Steps
			}
			colors, err := oklab.ParseAll(args)
			if err != nil {
				return err
			}

			quantized, err := oklab.QuantizeAll(colors, steps)
			if err != nil {
				return err
			}
			logging.Debug("Quantize", "Generated %d steps across %d pairs", len(quantized), len(colors)-1)

			return a.printer(cmd).PrintSteps(quantized)
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "s", 8, "colors per pair, including both endpoints (minimum 2)")
	return cmd
}

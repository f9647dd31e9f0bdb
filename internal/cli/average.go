package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/oklabby/internal/logging"
	"github.com/ironsheep/oklabby/internal/oklab"
)

func newAverageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "average <color>...",
		Short: "Average a list of colors together",
		Long: `Average computes the mean of the given colors in Oklab, component by
component, and prints the resulting color. Order does not matter.`,
		Example: `  oklabby average '#000' '#fff'
  oklabby average ff0000 00ff00 '[0.6, 0, 0]'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("average: %w: at least one color is required", oklab.ErrEmptyInput)
			}

			colors, err := oklab.ParseAll(args)
			if err != nil {
				return err
			}

			avg, err := oklab.Average(colors)
			if err != nil {
				return err
			}
			logging.Debug("Average", "Averaged %d colors to %s", len(colors), avg)

			return a.printer(cmd).PrintColor(avg)
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/oklabby/internal/oklab"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <color>...",
		Short: "Print each color as hex, sRGB and Oklab",
		Example: `  oklabby convert '#abc' '[0.7, 0.1, 0.1]'
  oklabby convert --output json ff8040`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("convert: %w: at least one color is required", oklab.ErrEmptyInput)
			}

			colors, err := oklab.ParseAll(args)
			if err != nil {
				return err
			}

			return a.printer(cmd).PrintColors(colors)
		},
	}
}

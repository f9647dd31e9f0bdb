package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of oklabby",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "oklabby %s\n", a.info.Version)
			fmt.Fprintf(out, "  Build time: %s\n", a.info.BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", a.info.GitCommit)
		},
	}
}

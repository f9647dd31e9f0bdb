package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/oklabby/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run an MCP server on stdin/stdout",
		Long: `Serve exposes convert, average and quantize as MCP tools over stdio.
Configure it in an MCP client as a command server. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.New(a.info.Version, a.cfg.Steps).Run()
		},
	}
}

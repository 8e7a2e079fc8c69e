package commands

import (
	"github.com/spf13/cobra"

	"mc-forecast/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as an MCP server over stdio",
	Long: `Exposes the forecast_how_many and forecast_when tools to MCP clients over
standard input/output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mcp.Serve(cmd.Context(), Version)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

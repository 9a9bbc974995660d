package cmd

import (
	"fmt"

	mcpserver "github.com/mtlaird/steam-db/mcp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP server (stdio by default)",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Bool("http", false, "Serve MCP over HTTP instead of stdio")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	deps := &mcpserver.Deps{
		Fetcher:     buildFetcher(),
		CountryCode: cfg.CountryCode,
	}

	if useHTTP, _ := cmd.Flags().GetBool("http"); useHTTP {
		return mcpserver.ServeHTTP(":"+cfg.HTTPPort, cfg.MCPAPIKey, deps)
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "Starting steam-db MCP server on stdio...")
	return mcpserver.Serve(deps)
}

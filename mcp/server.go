package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/mtlaird/steam-db/internal/httpdoc"
)

// Deps carries the capabilities the tool handlers need.
type Deps struct {
	Fetcher     httpdoc.Fetcher
	CountryCode string
}

func newServer(deps *Deps) *server.MCPServer {
	s := server.NewMCPServer(
		"steam-db",
		"1.0.0",
		server.WithToolCapabilities(true),
	)
	registerTools(s, deps)
	return s
}

// Serve starts the MCP stdio server with all tools registered.
func Serve(deps *Deps) error {
	return server.ServeStdio(newServer(deps))
}

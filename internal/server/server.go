package server

import (
	"log/slog"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/ironsheep/oklabby/internal/logging"
)

// Server exposes the oklab operations as MCP tools.
type Server struct {
	mcp          *mcpserver.MCPServer
	defaultSteps int
}

// New creates a new MCP server instance.
//
// defaultSteps is used by color_quantize when a call omits "steps".
func New(version string, defaultSteps int) *Server {
	s := &Server{defaultSteps: defaultSteps}
	s.mcp = mcpserver.NewMCPServer(
		"oklabby",
		version,
		mcpserver.WithToolCapabilities(false),
	)

	s.mcp.AddTools(s.tools()...)
	return s
}

// Run serves MCP over stdin/stdout until stdin closes or the process is
// signalled.
func (s *Server) Run() error {
	logging.Info("Server", "Serving %d tools over stdio", len(GetToolDefinitions()))

	errLog := slog.NewLogLogger(logging.Logger().Handler(), slog.LevelError)
	return mcpserver.ServeStdio(s.mcp, mcpserver.WithErrorLogger(errLog))
}

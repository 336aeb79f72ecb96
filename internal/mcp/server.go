// ABOUTME: MCP server setup for the SportRadar MLB proxy.
// ABOUTME: Wraps the MCP server with the API client and logger.

package mcp

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/harperreed/mlb/internal/sportradar"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with SportRadar API access.
type Server struct {
	mcpServer *mcp.Server
	api       *sportradar.Client
	log       *log.Logger
}

// NewServer creates an MCP server exposing the MLB tools.
func NewServer(api *sportradar.Client, logger *log.Logger) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "mlb-sportradar",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		api:       api,
		log:       logger,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

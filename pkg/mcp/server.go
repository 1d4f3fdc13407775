package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"homenet/pkg/api/handlers"
	"homenet/pkg/discovery"
	"homenet/pkg/registry"
)

// Server wraps the MCP server with HomeNet's panel functionality, so an LLM
// client can browse the inventory, toggle devices and run the discovery
// wizard through tools.
type Server struct {
	mcpServer  *server.MCPServer
	store      *registry.Store
	discoverer discovery.Discoverer
	assistant  handlers.Assistant
}

// NewServer creates a new MCP server for the panel
func NewServer(store *registry.Store, discoverer discovery.Discoverer, asst handlers.Assistant) *Server {
	s := &Server{
		store:      store,
		discoverer: discoverer,
		assistant:  asst,
	}

	s.mcpServer = server.NewMCPServer(
		"homenet",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s.registerTools()

	return s
}

// ServeStdio starts the MCP server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

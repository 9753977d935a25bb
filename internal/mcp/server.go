package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/Velesio/velesio-aiserver/internal/search"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes documentation search tools.
type Server struct {
	svc     *search.Service
	baseURL string
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server over svc. Result URLs are resolved
// against baseURL when it is set.
func NewServer(svc *search.Service, baseURL string) *Server {
	s := &Server{
		svc:     svc,
		baseURL: baseURL,
	}

	s.mcp = server.NewMCPServer(
		"docsite",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchDocsTool, s.handleSearchDocs)
	s.mcp.AddTool(indexStatsTool, s.handleIndexStats)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}

// Package mcp exposes the solver over the Model Context Protocol so agent
// clients can call it as a set of tools.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewSolverMCPServer creates a new MCP server with all solver tools.
func NewSolverMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		"quantumin-solver",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	registerSolveTool(s)
	registerDifferentiateTool(s)
	registerIntegrateTool(s)
	registerClassifyTool(s)
	registerSimplifyTool(s)
	registerHistoryTool(s)

	return s
}

// Serve starts the MCP server using stdio transport.
func Serve() error {
	s := NewSolverMCPServer()
	return server.ServeStdio(s)
}

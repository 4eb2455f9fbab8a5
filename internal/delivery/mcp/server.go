package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// New builds the MCP server with every Sessionize tool and prompt
// registered, backed by d.
func New(d *Dispatcher) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "sessionize-mcp",
		Title:   "Sessionize Event Data Server",
		Version: "v1.0.0",
	}, nil)
	AddTools(server, d)
	AddPrompts(server)
	return server
}

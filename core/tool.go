// Package core holds the contract every MCP tool of the server implements.
package core

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool is a named MCP tool: its declared schema and the handler serving it.
type Tool interface {
	Handle() mcp.Tool
	Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

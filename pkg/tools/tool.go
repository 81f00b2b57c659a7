// Package tools provides shared building blocks for MCP tools
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tidwall/pretty"
)

var prettyOptions = &pretty.Options{Width: 0, Indent: "  "}

// BaseTool provides common functionality for all tools
type BaseTool struct {
	handle mcp.Tool
}

// NewBaseTool creates a new BaseTool from its MCP definition
func NewBaseTool(handle mcp.Tool) *BaseTool {
	return &BaseTool{handle: handle}
}

// Handle returns the MCP Tool definition
func (b *BaseTool) Handle() mcp.Tool {
	return b.handle
}

// HandleError formats a failed operation as a tool error result
func HandleError(err error, message string) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", message, err))
}

// NewTextResult creates a standard text result
func NewTextResult(text string) *mcp.CallToolResult {
	return mcp.NewToolResultText(text)
}

// NewJSONResult renders v as two-space indented JSON text
func NewJSONResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "serialize result")
	}
	return NewTextResult(string(out)), nil
}

// NewRawJSONResult re-indents an already encoded JSON document without
// touching key order or values
func NewRawJSONResult(raw string) *mcp.CallToolResult {
	out := pretty.PrettyOptions([]byte(raw), prettyOptions)
	if n := len(out); n > 0 && out[n-1] == '\n' {
		out = out[:n-1]
	}
	return NewTextResult(string(out))
}

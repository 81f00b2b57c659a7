// Package middleware provides middleware components wrapping MCP tool handlers
package middleware

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Logging tags every tool call with a call id, stores a child logger in the
// context for downstream code, and logs the outcome of the call.
func Logging(logger *log.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			callLogger := logger.With("tool", request.Params.Name, "call_id", uuid.New().String())
			ctx = log.WithContext(ctx, callLogger)

			start := time.Now()
			callLogger.Debug("Tool call started", "arguments", request.GetArguments())

			result, err := next(ctx, request)

			elapsed := time.Since(start)
			switch {
			case err != nil:
				callLogger.Error("Tool call failed", "duration", elapsed, "error", err)
			case result != nil && result.IsError:
				callLogger.Warn("Tool call returned an error result", "duration", elapsed, "message", firstText(result))
			default:
				callLogger.Info("Tool call completed", "duration", elapsed)
			}

			return result, err
		}
	}
}

func firstText(result *mcp.CallToolResult) string {
	for _, content := range result.Content {
		if text, ok := mcp.AsTextContent(content); ok {
			return text.Text
		}
	}
	return ""
}

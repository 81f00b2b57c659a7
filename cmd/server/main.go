// Command server is the main entry point for the Open Library MCP server
package main

import (
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"
	"github.com/theapemachine/mcp-server-openlibrary/core"
	"github.com/theapemachine/mcp-server-openlibrary/core/middleware"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/config"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/openlibrary"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/tools/library"
)

func main() {
	// stdout carries the protocol stream, so everything else goes to stderr
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "openlibrary",
		ReportTimestamp: true,
	})
	log.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Fatal: could not load configuration", "error", err)
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Fatal: invalid configuration", "error", err)
	}

	logger.SetLevel(cfg.Level())
	logger.Info("Starting MCP server", "name", cfg.Server.Name, "version", cfg.Server.Version)

	registry := newRegistry(cfg, logger)

	logger.Info("Server started, waiting for requests...", "tools", len(registry.tools))
	if err := server.ServeStdio(registry.server, server.WithErrorLogger(logger.StandardLog())); err != nil {
		logger.Fatal("Fatal: server error", "error", err)
	}

	logger.Info("Server shutdown complete")
}

// newRegistry wires the Open Library client into an MCP server and registers
// every tool on it.
func newRegistry(cfg *config.Config, logger *log.Logger) *ToolRegistry {
	fetcher := openlibrary.NewFetcher(
		openlibrary.WithHTTPClient(&http.Client{Timeout: cfg.OpenLibrary.HTTPTimeout}),
		openlibrary.WithUserAgent(cfg.OpenLibrary.UserAgent),
		openlibrary.WithMinInterval(cfg.OpenLibrary.MinInterval),
	)
	client := openlibrary.NewClient(fetcher, cfg.OpenLibrary.BaseURL)

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		cfg.Server.Version,
		server.WithToolCapabilities(false),
		server.WithLogging(),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(middleware.Logging(logger)),
	)

	registry := NewToolRegistry(mcpServer)
	for name, tool := range library.NewProvider(client).Tools {
		registry.RegisterTool(name, tool)
	}

	return registry
}

// ToolRegistry manages tool registration and lifecycle
type ToolRegistry struct {
	server *server.MCPServer
	tools  map[string]core.Tool
}

// NewToolRegistry creates a new tool registry
func NewToolRegistry(mcpServer *server.MCPServer) *ToolRegistry {
	return &ToolRegistry{
		server: mcpServer,
		tools:  make(map[string]core.Tool),
	}
}

// RegisterTool registers a tool with the server
func (r *ToolRegistry) RegisterTool(name string, tool core.Tool) {
	r.tools[name] = tool
	r.server.AddTool(tool.Handle(), tool.Handler)
}

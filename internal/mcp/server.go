package mcp

import (
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"ideaboard/internal/auth"
	"ideaboard/internal/board"
)

// Config contains server configuration.
type Config struct {
	Boards        *board.Manager
	Auth          auth.Authenticator
	AuthEnabled   bool
	TransportMode string // "stdio" or "http"
	LocalUser     auth.User
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "ideaboard",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	// Stdio mode is local only, so auth is always off there.
	if cfg.TransportMode == "stdio" || !cfg.AuthEnabled {
		server.AddReceivingMiddleware(noAuthMiddleware(cfg.LocalUser))
	} else {
		server.AddReceivingMiddleware(authMiddleware(cfg.Auth))
	}
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Boards)

	return server
}

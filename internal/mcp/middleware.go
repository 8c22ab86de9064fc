package mcp

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"ideaboard/internal/auth"
	"ideaboard/internal/board"
)

type contextKey int

const sessionKey contextKey = iota

// getSession extracts the caller's board session from context.
func getSession(ctx context.Context) board.Session {
	v, _ := ctx.Value(sessionKey).(board.Session)
	return v
}

// authMiddleware implements bearer token authentication as MCP middleware.
func authMiddleware(authn auth.Authenticator) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			// Skip auth for protocol methods
			if method == "initialize" || method == "ping" {
				return next(ctx, method, req)
			}

			extra := req.GetExtra()
			if extra == nil || extra.Header == nil {
				return nil, fmt.Errorf("unauthorized: missing headers")
			}

			header := extra.Header.Get("Authorization")
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if token == "" {
				return nil, fmt.Errorf("unauthorized: missing bearer token")
			}

			user, err := authn.CurrentUser(ctx, token)
			if err != nil {
				return nil, fmt.Errorf("unauthorized: %w", err)
			}

			ctx = context.WithValue(ctx, sessionKey, board.Session{User: *user, Token: token})
			return next(ctx, method, req)
		}
	}
}

// noAuthMiddleware injects a fixed local session when auth is disabled.
func noAuthMiddleware(user auth.User) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			ctx = context.WithValue(ctx, sessionKey, board.Session{User: user})
			return next(ctx, method, req)
		}
	}
}

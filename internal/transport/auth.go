package transport

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"ideaboard/internal/auth"
	"ideaboard/internal/board"
)

// ErrUnauthorized indicates invalid or missing credentials.
var ErrUnauthorized = errors.New("unauthorized")

type sessionKey struct{}

// SessionFromContext returns the authenticated board session from context,
// if present.
func SessionFromContext(ctx context.Context) (board.Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(board.Session)
	return sess, ok
}

// TokenFromRequest extracts the bearer token from a request.
func TokenFromRequest(r *http.Request) string {
	header := r.Header.Get("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// AuthMiddleware enforces bearer token authentication and stores the
// resolved session in the request context.
func AuthMiddleware(authn auth.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r)
			if token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			user, err := authn.CurrentUser(r.Context(), token)
			if err != nil || user == nil {
				http.Error(w, "invalid bearer token", http.StatusUnauthorized)
				return
			}

			sess := board.Session{User: *user, Token: token}
			ctx := context.WithValue(r.Context(), sessionKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// StaticSessionMiddleware injects a fixed session when auth is disabled.
func StaticSessionMiddleware(user auth.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := board.Session{User: user, Token: TokenFromRequest(r)}
			ctx := context.WithValue(r.Context(), sessionKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

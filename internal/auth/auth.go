// Package auth resolves bearer tokens to board users.
package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ErrUnauthorized indicates invalid, missing, or revoked credentials.
var ErrUnauthorized = errors.New("unauthorized")

// User identifies an authenticated board owner.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Authenticator resolves the current user from a bearer token and supports
// signing out (revoking the token).
type Authenticator interface {
	CurrentUser(ctx context.Context, token string) (*User, error)
	SignOut(ctx context.Context, token string) error
}

// TokenRepository provides token persistence. Tokens are stored hashed.
type TokenRepository interface {
	Resolve(ctx context.Context, tokenHash string) (*User, error)
	Revoke(ctx context.Context, tokenHash string) error
	Insert(ctx context.Context, tokenHash string, user User) error
}

// TokenAuthenticator authenticates against stored token hashes.
type TokenAuthenticator struct {
	tokens TokenRepository
}

// NewTokenAuthenticator creates a token-backed authenticator.
func NewTokenAuthenticator(tokens TokenRepository) *TokenAuthenticator {
	return &TokenAuthenticator{tokens: tokens}
}

// CurrentUser resolves a bearer token to its user.
func (a *TokenAuthenticator) CurrentUser(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	user, err := a.tokens.Resolve(ctx, HashToken(token))
	if err != nil {
		return nil, ErrUnauthorized
	}
	return user, nil
}

// SignOut revokes the token so it no longer resolves.
func (a *TokenAuthenticator) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return ErrUnauthorized
	}
	return a.tokens.Revoke(ctx, HashToken(token))
}

// HashToken returns the hex SHA-256 digest under which a token is stored.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// StaticAuthenticator always resolves to one fixed user. It backs stdio
// mode, where the process serves a single local board owner.
type StaticAuthenticator struct {
	User User
}

// CurrentUser returns the fixed user regardless of token.
func (a *StaticAuthenticator) CurrentUser(_ context.Context, _ string) (*User, error) {
	u := a.User
	return &u, nil
}

// SignOut is a no-op for the fixed local user.
func (a *StaticAuthenticator) SignOut(_ context.Context, _ string) error {
	return nil
}

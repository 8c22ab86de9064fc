package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ideaboard/internal/auth"
	"ideaboard/internal/repository"
)

// TokenRepository implements auth.TokenRepository for SQLite
type TokenRepository struct {
	db *DB
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Resolve looks up the user for a token hash. Revoked tokens do not resolve.
func (r *TokenRepository) Resolve(ctx context.Context, tokenHash string) (*auth.User, error) {
	query := `
		SELECT user_id, email
		FROM auth_tokens
		WHERE token_hash = ? AND revoked_at IS NULL
	`

	var user auth.User
	err := r.db.QueryRowContext(ctx, query, tokenHash).Scan(&user.ID, &user.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}

	return &user, nil
}

// Revoke marks a token revoked
func (r *TokenRepository) Revoke(ctx context.Context, tokenHash string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE auth_tokens SET revoked_at = ? WHERE token_hash = ? AND revoked_at IS NULL`,
		time.Now(), tokenHash,
	)
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return requireRow(result)
}

// Insert stores a token hash for a user
func (r *TokenRepository) Insert(ctx context.Context, tokenHash string, user auth.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO auth_tokens (token_hash, user_id, email, created_at) VALUES (?, ?, ?, ?)`,
		tokenHash, user.ID, user.Email, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert token: %w", err)
	}
	return nil
}

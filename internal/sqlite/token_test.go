package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"ideaboard/internal/auth"
	"ideaboard/internal/repository"
)

func TestTokenRepository_ResolveAndRevoke(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()

	hash := auth.HashToken("secret-token")
	user := auth.User{ID: "u1", Email: "u1@example.com"}
	require.NoError(t, repo.Insert(ctx, hash, user))

	resolved, err := repo.Resolve(ctx, hash)
	require.NoError(t, err)
	require.Equal(t, "u1", resolved.ID)
	require.Equal(t, "u1@example.com", resolved.Email)

	require.NoError(t, repo.Revoke(ctx, hash))

	_, err = repo.Resolve(ctx, hash)
	require.ErrorIs(t, err, repository.ErrNotFound)

	// Revoking an already revoked token reports not found
	err = repo.Revoke(ctx, hash)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTokenRepository_Resolve_Unknown(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()

	_, err := repo.Resolve(ctx, auth.HashToken("never-issued"))
	require.ErrorIs(t, err, repository.ErrNotFound)
}

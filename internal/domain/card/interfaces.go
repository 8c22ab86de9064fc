package card

import (
	"context"
	"time"
)

// Repository provides persistence for cards. Update methods write partial
// field sets; the store never holds a partially written record because each
// update covers a complete, self-contained field group.
type Repository interface {
	Create(ctx context.Context, userID string, c *Card) error
	Get(ctx context.Context, userID, id string) (*Card, error)
	UpdateContent(ctx context.Context, userID, id, title, description string, updatedAt time.Time) error
	UpdatePlacement(ctx context.Context, userID, id, columnID string, position int, updatedAt time.Time) error
	UpdateCluster(ctx context.Context, userID, id, clusterID string) error
	Delete(ctx context.Context, userID, id string) error
	List(ctx context.Context, userID string, opts ListOptions) ([]Card, error)
}

// SearchRepository performs full-text search over cards.
type SearchRepository interface {
	Search(ctx context.Context, userID, query string, opts SearchOptions) ([]SearchResult, error)
}

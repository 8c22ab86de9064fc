package column

import "context"

// Repository provides persistence for columns.
type Repository interface {
	Create(ctx context.Context, userID string, col *Column) error
	CreateMany(ctx context.Context, userID string, cols []*Column) error
	Get(ctx context.Context, userID, id string) (*Column, error)
	List(ctx context.Context, userID string) ([]Column, error)
}

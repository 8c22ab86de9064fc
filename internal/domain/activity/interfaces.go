package activity

import "context"

// Repository manages activity log persistence.
type Repository interface {
	Log(ctx context.Context, userID string, entry *Entry) error
	List(ctx context.Context, userID string, opts ListOptions) ([]Entry, error)
}

// ListOptions provides filtering options for listing activity.
type ListOptions struct {
	CardID *string
	Types  []Type
	Limit  int
}

package insight

import "context"

// SuggestionRepository provides persistence for suggestions.
type SuggestionRepository interface {
	Create(ctx context.Context, userID string, sug *Suggestion) error
	Get(ctx context.Context, userID, id string) (*Suggestion, error)
	SetAccepted(ctx context.Context, userID, id string) error
	ListRecent(ctx context.Context, userID string, limit int) ([]Suggestion, error)
}

// SummaryRepository provides persistence for board summaries.
type SummaryRepository interface {
	Create(ctx context.Context, userID string, sum *Summary) error
	Latest(ctx context.Context, userID string) (*Summary, error)
}

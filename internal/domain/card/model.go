package card

import "time"

// Card is a single idea owned by exactly one column at a time. Position is
// unique within its column and defines vertical order; gaps are permitted.
// ClusterID is an opaque grouping tag, nil when ungrouped.
type Card struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ColumnID    string    `json:"column_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Position    int       `json:"position"`
	ClusterID   *string   `json:"cluster_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DefaultTitle is assigned to cards created without an explicit title.
const DefaultTitle = "New idea"

// SearchResult is a search hit with relevance.
type SearchResult struct {
	Card    Card    `json:"card"`
	Rank    float64 `json:"rank"`
	Snippet string  `json:"snippet,omitempty"`
}

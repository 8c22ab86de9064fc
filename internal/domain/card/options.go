package card

// ListOptions provides filtering options for listing cards.
type ListOptions struct {
	ColumnID  string
	ClusterID string
	Limit     int
}

// SearchOptions provides options for full-text card search.
type SearchOptions struct {
	Limit int
}

package sqlite

import (
	"context"
	"fmt"

	"ideaboard/internal/domain/card"
)

// SearchRepository implements card.SearchRepository for SQLite
type SearchRepository struct {
	db *DB
}

// NewSearchRepository creates a new SearchRepository
func NewSearchRepository(db *DB) *SearchRepository {
	return &SearchRepository{db: db}
}

// Search performs a full-text search over card titles and descriptions
func (r *SearchRepository) Search(ctx context.Context, userID, query string, opts card.SearchOptions) ([]card.SearchResult, error) {
	baseQuery := `
		SELECT
			c.id, c.user_id, c.column_id, c.title, c.description, c.position,
			c.cluster_id, c.created_at, c.updated_at,
			bm25(cards_fts) as rank,
			snippet(cards_fts, 1, '[', ']', '…', 8) as snip
		FROM cards_fts
		JOIN idea_cards c ON c.rowid = cards_fts.rowid
		WHERE c.user_id = ? AND cards_fts MATCH ?
		ORDER BY rank
	`

	args := []any{userID, query}
	if opts.Limit > 0 {
		baseQuery += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, baseQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search cards: %w", err)
	}
	defer rows.Close()

	var results []card.SearchResult
	for rows.Next() {
		var result card.SearchResult
		if err := rows.Scan(
			&result.Card.ID,
			&result.Card.UserID,
			&result.Card.ColumnID,
			&result.Card.Title,
			&result.Card.Description,
			&result.Card.Position,
			&result.Card.ClusterID,
			&result.Card.CreatedAt,
			&result.Card.UpdatedAt,
			&result.Rank,
			&result.Snippet,
		); err != nil {
			return nil, fmt.Errorf("failed to scan search result: %w", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating search results: %w", err)
	}

	return results, nil
}

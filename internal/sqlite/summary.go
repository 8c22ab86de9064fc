package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"ideaboard/internal/domain/insight"
	"ideaboard/internal/repository"
)

// SummaryRepository implements insight.SummaryRepository for SQLite.
// Theme and idea lists are stored as JSON text columns.
type SummaryRepository struct {
	db *DB
}

// NewSummaryRepository creates a new SummaryRepository
func NewSummaryRepository(db *DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// Create creates a new board summary
func (r *SummaryRepository) Create(ctx context.Context, userID string, sum *insight.Summary) error {
	themes, err := json.Marshal(sum.KeyThemes)
	if err != nil {
		return fmt.Errorf("failed to encode key themes: %w", err)
	}
	ideas, err := json.Marshal(sum.TopIdeas)
	if err != nil {
		return fmt.Errorf("failed to encode top ideas: %w", err)
	}

	query := `
		INSERT INTO board_summaries (id, user_id, summary_text, key_themes, top_ideas, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if _, err := r.db.ExecContext(ctx, query,
		sum.ID,
		userID,
		sum.Text,
		string(themes),
		string(ideas),
		sum.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to create summary: %w", err)
	}

	return nil
}

// Latest returns the most recent summary for the user
func (r *SummaryRepository) Latest(ctx context.Context, userID string) (*insight.Summary, error) {
	query := `
		SELECT id, user_id, summary_text, key_themes, top_ideas, created_at
		FROM board_summaries
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var (
		sum    insight.Summary
		themes string
		ideas  string
	)
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&sum.ID,
		&sum.UserID,
		&sum.Text,
		&themes,
		&ideas,
		&sum.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}

	if err := json.Unmarshal([]byte(themes), &sum.KeyThemes); err != nil {
		return nil, fmt.Errorf("failed to decode key themes: %w", err)
	}
	if err := json.Unmarshal([]byte(ideas), &sum.TopIdeas); err != nil {
		return nil, fmt.Errorf("failed to decode top ideas: %w", err)
	}

	return &sum, nil
}

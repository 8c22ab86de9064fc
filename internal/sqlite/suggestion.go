package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ideaboard/internal/domain/insight"
	"ideaboard/internal/repository"
)

// SuggestionRepository implements insight.SuggestionRepository for SQLite
type SuggestionRepository struct {
	db *DB
}

// NewSuggestionRepository creates a new SuggestionRepository
func NewSuggestionRepository(db *DB) *SuggestionRepository {
	return &SuggestionRepository{db: db}
}

// Create creates a new suggestion
func (r *SuggestionRepository) Create(ctx context.Context, userID string, sug *insight.Suggestion) error {
	query := `
		INSERT INTO ai_suggestions (
			id, user_id, parent_card_id, suggestion_text, suggestion_type,
			is_accepted, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		sug.ID,
		userID,
		sug.ParentCardID,
		sug.Text,
		sug.Type,
		sug.IsAccepted,
		sug.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create suggestion: %w", err)
	}

	return nil
}

// Get retrieves a suggestion by ID
func (r *SuggestionRepository) Get(ctx context.Context, userID, id string) (*insight.Suggestion, error) {
	query := `
		SELECT id, user_id, parent_card_id, suggestion_text, suggestion_type,
		       is_accepted, created_at
		FROM ai_suggestions
		WHERE id = ? AND user_id = ?
	`

	var sug insight.Suggestion
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&sug.ID,
		&sug.UserID,
		&sug.ParentCardID,
		&sug.Text,
		&sug.Type,
		&sug.IsAccepted,
		&sug.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get suggestion: %w", err)
	}

	return &sug, nil
}

// SetAccepted marks a suggestion accepted. The write never clears the flag,
// so accepting twice leaves it accepted.
func (r *SuggestionRepository) SetAccepted(ctx context.Context, userID, id string) error {
	query := `
		UPDATE ai_suggestions
		SET is_accepted = 1
		WHERE id = ? AND user_id = ?
	`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to accept suggestion: %w", err)
	}
	return requireRow(result)
}

// ListRecent returns the newest suggestions first
func (r *SuggestionRepository) ListRecent(ctx context.Context, userID string, limit int) ([]insight.Suggestion, error) {
	query := `
		SELECT id, user_id, parent_card_id, suggestion_text, suggestion_type,
		       is_accepted, created_at
		FROM ai_suggestions
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	defer rows.Close()

	var sugs []insight.Suggestion
	for rows.Next() {
		var sug insight.Suggestion
		if err := rows.Scan(
			&sug.ID,
			&sug.UserID,
			&sug.ParentCardID,
			&sug.Text,
			&sug.Type,
			&sug.IsAccepted,
			&sug.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan suggestion: %w", err)
		}
		sugs = append(sugs, sug)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate suggestions: %w", err)
	}

	return sugs, nil
}

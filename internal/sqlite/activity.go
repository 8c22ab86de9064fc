package sqlite

import (
	"context"
	"fmt"
	"strings"

	"ideaboard/internal/domain/activity"
)

// ActivityRepository implements activity.Repository for SQLite
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Log appends an activity entry
func (r *ActivityRepository) Log(ctx context.Context, userID string, entry *activity.Entry) error {
	query := `
		INSERT INTO activity_log (user_id, card_id, activity_type, summary, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		userID,
		entry.CardID,
		entry.Type,
		entry.Summary,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		entry.ID = id
	}
	return nil
}

// List returns activity entries, newest first
func (r *ActivityRepository) List(ctx context.Context, userID string, opts activity.ListOptions) ([]activity.Entry, error) {
	query := `
		SELECT id, user_id, card_id, activity_type, summary, created_at
		FROM activity_log
		WHERE user_id = ?
	`
	args := []any{userID}

	if opts.CardID != nil {
		query += " AND card_id = ?"
		args = append(args, *opts.CardID)
	}
	if len(opts.Types) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(opts.Types)), ", ")
		query += " AND activity_type IN (" + placeholders + ")"
		for _, t := range opts.Types {
			args = append(args, t)
		}
	}
	query += " ORDER BY created_at DESC, id DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var entries []activity.Entry
	for rows.Next() {
		var entry activity.Entry
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.CardID,
			&entry.Type,
			&entry.Summary,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activity: %w", err)
	}

	return entries, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ideaboard/internal/domain/card"
	"ideaboard/internal/repository"
)

// CardRepository implements card.Repository for SQLite
type CardRepository struct {
	db *DB
}

// NewCardRepository creates a new CardRepository
func NewCardRepository(db *DB) *CardRepository {
	return &CardRepository{db: db}
}

// Create creates a new card
func (r *CardRepository) Create(ctx context.Context, userID string, c *card.Card) error {
	query := `
		INSERT INTO idea_cards (
			id, user_id, column_id, title, description, position,
			cluster_id, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		userID,
		c.ColumnID,
		c.Title,
		c.Description,
		c.Position,
		c.ClusterID,
		c.CreatedAt,
		c.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create card: %w", err)
	}

	return nil
}

// Get retrieves a card by ID
func (r *CardRepository) Get(ctx context.Context, userID, id string) (*card.Card, error) {
	query := `
		SELECT id, user_id, column_id, title, description, position,
		       cluster_id, created_at, updated_at
		FROM idea_cards
		WHERE id = ? AND user_id = ?
	`

	var c card.Card
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&c.ID,
		&c.UserID,
		&c.ColumnID,
		&c.Title,
		&c.Description,
		&c.Position,
		&c.ClusterID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	return &c, nil
}

// UpdateContent writes title, description, and the update timestamp only
func (r *CardRepository) UpdateContent(ctx context.Context, userID, id, title, description string, updatedAt time.Time) error {
	query := `
		UPDATE idea_cards
		SET title = ?, description = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := r.db.ExecContext(ctx, query, title, description, updatedAt, id, userID)
	if err != nil {
		return fmt.Errorf("failed to update card content: %w", err)
	}
	return requireRow(result)
}

// UpdatePlacement writes column, position, and the update timestamp only
func (r *CardRepository) UpdatePlacement(ctx context.Context, userID, id, columnID string, position int, updatedAt time.Time) error {
	query := `
		UPDATE idea_cards
		SET column_id = ?, position = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := r.db.ExecContext(ctx, query, columnID, position, updatedAt, id, userID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to update card placement: %w", err)
	}
	return requireRow(result)
}

// UpdateCluster writes the cluster tag only
func (r *CardRepository) UpdateCluster(ctx context.Context, userID, id, clusterID string) error {
	query := `
		UPDATE idea_cards
		SET cluster_id = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := r.db.ExecContext(ctx, query, clusterID, id, userID)
	if err != nil {
		return fmt.Errorf("failed to update card cluster: %w", err)
	}
	return requireRow(result)
}

// Delete removes a card
func (r *CardRepository) Delete(ctx context.Context, userID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM idea_cards WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}
	return requireRow(result)
}

// List returns cards ordered by position, optionally filtered
func (r *CardRepository) List(ctx context.Context, userID string, opts card.ListOptions) ([]card.Card, error) {
	query := `
		SELECT id, user_id, column_id, title, description, position,
		       cluster_id, created_at, updated_at
		FROM idea_cards
		WHERE user_id = ?
	`
	args := []any{userID}

	if opts.ColumnID != "" {
		query += " AND column_id = ?"
		args = append(args, opts.ColumnID)
	}
	if opts.ClusterID != "" {
		query += " AND cluster_id = ?"
		args = append(args, opts.ClusterID)
	}
	query += " ORDER BY position"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	var cards []card.Card
	for rows.Next() {
		var c card.Card
		if err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.ColumnID,
			&c.Title,
			&c.Description,
			&c.Position,
			&c.ClusterID,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cards: %w", err)
	}

	return cards, nil
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

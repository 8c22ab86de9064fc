package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ideaboard/internal/domain/column"
	"ideaboard/internal/repository"
)

// ColumnRepository implements column.Repository for SQLite
type ColumnRepository struct {
	db *DB
}

// NewColumnRepository creates a new ColumnRepository
func NewColumnRepository(db *DB) *ColumnRepository {
	return &ColumnRepository{db: db}
}

// Create creates a new column
func (r *ColumnRepository) Create(ctx context.Context, userID string, col *column.Column) error {
	query := `
		INSERT INTO columns (id, user_id, name, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		col.ID,
		userID,
		col.Name,
		col.Position,
		col.CreatedAt,
		col.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrInvalidInput
		}
		return fmt.Errorf("failed to create column: %w", err)
	}

	return nil
}

// CreateMany inserts columns in a single transaction so a user never ends
// up with a partial default set.
func (r *ColumnRepository) CreateMany(ctx context.Context, userID string, cols []*column.Column) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO columns (id, user_id, name, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for _, col := range cols {
		if _, err := tx.ExecContext(ctx, query,
			col.ID, userID, col.Name, col.Position, col.CreatedAt, col.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to create column %q: %w", col.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit columns: %w", err)
	}
	return nil
}

// Get retrieves a column by ID
func (r *ColumnRepository) Get(ctx context.Context, userID, id string) (*column.Column, error) {
	query := `
		SELECT id, user_id, name, position, created_at, updated_at
		FROM columns
		WHERE id = ? AND user_id = ?
	`

	var col column.Column
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&col.ID,
		&col.UserID,
		&col.Name,
		&col.Position,
		&col.CreatedAt,
		&col.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get column: %w", err)
	}

	return &col, nil
}

// List returns the user's columns ordered by position
func (r *ColumnRepository) List(ctx context.Context, userID string) ([]column.Column, error) {
	query := `
		SELECT id, user_id, name, position, created_at, updated_at
		FROM columns
		WHERE user_id = ?
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}
	defer rows.Close()

	var cols []column.Column
	for rows.Next() {
		var col column.Column
		if err := rows.Scan(
			&col.ID,
			&col.UserID,
			&col.Name,
			&col.Position,
			&col.CreatedAt,
			&col.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan column: %w", err)
		}
		cols = append(cols, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate columns: %w", err)
	}

	return cols, nil
}

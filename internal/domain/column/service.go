package column

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"ideaboard/internal/repository"
)

// Service handles column operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new column service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines column creation inputs.
type CreateRequest struct {
	Name     string
	Position int
}

// Create creates a new column.
func (s *Service) Create(ctx context.Context, userID string, req CreateRequest) (*Column, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}

	now := time.Now()
	col := &Column{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      req.Name,
		Position:  req.Position,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, userID, col); err != nil {
		return nil, fmt.Errorf("creating column: %w", err)
	}

	return col, nil
}

// Get fetches a column by ID.
func (s *Service) Get(ctx context.Context, userID, id string) (*Column, error) {
	col, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrColumnNotFound
		}
		return nil, fmt.Errorf("getting column: %w", err)
	}
	return col, nil
}

// List returns the user's columns ordered by position.
func (s *Service) List(ctx context.Context, userID string) ([]Column, error) {
	return s.repo.List(ctx, userID)
}

// EnsureDefaults returns the user's columns, creating the default set at
// positions 0..2 when the user has none. Cards can only be added once at
// least one column exists.
func (s *Service) EnsureDefaults(ctx context.Context, userID string) ([]Column, error) {
	cols, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing columns: %w", err)
	}
	if len(cols) > 0 {
		return cols, nil
	}

	now := time.Now()
	defaults := make([]*Column, 0, len(DefaultNames))
	for i, name := range DefaultNames {
		defaults = append(defaults, &Column{
			ID:        uuid.NewString(),
			UserID:    userID,
			Name:      name,
			Position:  i,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if err := s.repo.CreateMany(ctx, userID, defaults); err != nil {
		return nil, fmt.Errorf("creating default columns: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("initialized default columns", "user_id", userID, "count", len(defaults))
	}

	created := make([]Column, 0, len(defaults))
	for _, col := range defaults {
		created = append(created, *col)
	}
	return created, nil
}

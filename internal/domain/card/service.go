package card

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ideaboard/internal/repository"
)

// Service handles card persistence logic. Position allocation happens at
// the board layer against the locally known column contents; the service
// only performs the writes.
type Service struct {
	repo   Repository
	search SearchRepository
	logger *slog.Logger
}

// NewService creates a new card service.
func NewService(repo Repository, search SearchRepository, logger *slog.Logger) *Service {
	return &Service{repo: repo, search: search, logger: logger}
}

// CreateRequest describes a card creation request.
type CreateRequest struct {
	ColumnID    string
	Title       string
	Description string
	Position    int
}

// Create creates a new card. An empty title falls back to DefaultTitle.
func (s *Service) Create(ctx context.Context, userID string, req CreateRequest) (*Card, error) {
	if strings.TrimSpace(req.ColumnID) == "" {
		return nil, ErrInvalidInput
	}

	title := req.Title
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}

	now := time.Now()
	c := &Card{
		ID:          uuid.NewString(),
		UserID:      userID,
		ColumnID:    req.ColumnID,
		Title:       title,
		Description: req.Description,
		Position:    req.Position,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, userID, c); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, ErrInvalidInput
		}
		return nil, fmt.Errorf("creating card: %w", err)
	}

	return c, nil
}

// Get returns a card by ID.
func (s *Service) Get(ctx context.Context, userID, id string) (*Card, error) {
	c, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("getting card: %w", err)
	}
	return c, nil
}

// Update writes a card's title and description. A title that trims to the
// empty string is rejected before any write with ErrEmptyTitle; the title
// is stored as given, not trimmed.
func (s *Service) Update(ctx context.Context, userID, id, title, description string) (time.Time, error) {
	if strings.TrimSpace(title) == "" {
		return time.Time{}, ErrEmptyTitle
	}

	now := time.Now()
	if err := s.repo.UpdateContent(ctx, userID, id, title, description, now); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return time.Time{}, ErrCardNotFound
		}
		return time.Time{}, fmt.Errorf("updating card: %w", err)
	}
	return now, nil
}

// Delete removes a card.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCardNotFound
		}
		return fmt.Errorf("deleting card: %w", err)
	}
	return nil
}

// Move writes a card's column and position.
func (s *Service) Move(ctx context.Context, userID, id, columnID string, position int) (time.Time, error) {
	now := time.Now()
	if err := s.repo.UpdatePlacement(ctx, userID, id, columnID, position, now); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return time.Time{}, ErrCardNotFound
		}
		return time.Time{}, fmt.Errorf("moving card: %w", err)
	}
	return now, nil
}

// ClusterWrite is the outcome of one cluster-tag write.
type ClusterWrite struct {
	CardID string
	Err    error
}

// AssignCluster writes the cluster tag onto each card as independent
// concurrent writes. Each write succeeds or fails on its own; there is no
// rollback of the others when one fails.
func (s *Service) AssignCluster(ctx context.Context, userID string, cardIDs []string, clusterID string) []ClusterWrite {
	results := make([]ClusterWrite, len(cardIDs))

	var wg sync.WaitGroup
	for i, id := range cardIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			err := s.repo.UpdateCluster(ctx, userID, id, clusterID)
			if err != nil && s.logger != nil {
				s.logger.Warn("cluster tag write failed", "card_id", id, "error", err)
			}
			results[i] = ClusterWrite{CardID: id, Err: err}
		}(i, id)
	}
	wg.Wait()

	return results
}

// List returns cards filtered by options, ordered by position.
func (s *Service) List(ctx context.Context, userID string, opts ListOptions) ([]Card, error) {
	return s.repo.List(ctx, userID, opts)
}

// Search runs full-text search over card titles and descriptions.
func (s *Service) Search(ctx context.Context, userID, query string, opts SearchOptions) ([]SearchResult, error) {
	if s.search == nil {
		return nil, fmt.Errorf("search repository not configured")
	}
	return s.search.Search(ctx, userID, query, opts)
}

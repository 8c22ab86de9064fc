package insight

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"ideaboard/internal/domain/card"
	"ideaboard/internal/domain/column"
	"ideaboard/internal/repository"
)

// Service persists generated insights.
type Service struct {
	suggestions SuggestionRepository
	summaries   SummaryRepository
	gen         Generator
	logger      *slog.Logger
}

// NewService creates a new insight service.
func NewService(suggestions SuggestionRepository, summaries SummaryRepository, gen Generator, logger *slog.Logger) *Service {
	return &Service{
		suggestions: suggestions,
		summaries:   summaries,
		gen:         gen,
		logger:      logger,
	}
}

// GenerateForCard writes one related-idea suggestion per generated variant
// as independent concurrent inserts and returns the ones that persisted,
// newest-first ordering preserved from the generator. A failed insert is
// logged and skipped rather than failing the batch.
func (s *Service) GenerateForCard(ctx context.Context, userID string, c card.Card) ([]Suggestion, error) {
	texts := s.gen.SuggestionsFor(c.Title)
	now := time.Now()

	drafts := make([]*Suggestion, len(texts))
	errs := make([]error, len(texts))

	var wg sync.WaitGroup
	for i, text := range texts {
		parentID := c.ID
		sug := &Suggestion{
			ID:           uuid.NewString(),
			UserID:       userID,
			ParentCardID: &parentID,
			Text:         text,
			Type:         TypeRelatedIdea,
			CreatedAt:    now,
		}
		drafts[i] = sug

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.suggestions.Create(ctx, userID, drafts[i])
		}(i)
	}
	wg.Wait()

	created := make([]Suggestion, 0, len(drafts))
	var failed error
	for i, err := range errs {
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("suggestion insert failed", "card_id", c.ID, "error", err)
			}
			failed = errors.Join(failed, err)
			continue
		}
		created = append(created, *drafts[i])
	}

	return created, failed
}

// RecordCluster writes one cluster suggestion describing how many cards
// were grouped.
func (s *Service) RecordCluster(ctx context.Context, userID string, count int) (*Suggestion, error) {
	sug := &Suggestion{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      fmt.Sprintf("Clustered %d similar ideas together", count),
		Type:      TypeCluster,
		CreatedAt: time.Now(),
	}

	if err := s.suggestions.Create(ctx, userID, sug); err != nil {
		return nil, fmt.Errorf("recording cluster suggestion: %w", err)
	}
	return sug, nil
}

// Summarize composes a summary from the current cards and columns and
// persists it as the new current summary.
func (s *Service) Summarize(ctx context.Context, userID string, cards []card.Card, columns []column.Column) (*Summary, error) {
	draft := s.gen.Summarize(cards, columns)

	sum := &Summary{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      draft.Text,
		KeyThemes: draft.KeyThemes,
		TopIdeas:  draft.TopIdeas,
		CreatedAt: time.Now(),
	}

	if err := s.summaries.Create(ctx, userID, sum); err != nil {
		return nil, fmt.Errorf("saving summary: %w", err)
	}
	return sum, nil
}

// Accept marks a suggestion accepted. The transition only goes false to
// true; accepting an already-accepted suggestion leaves it accepted.
func (s *Service) Accept(ctx context.Context, userID, id string) (*Suggestion, error) {
	if err := s.suggestions.SetAccepted(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSuggestionNotFound
		}
		return nil, fmt.Errorf("accepting suggestion: %w", err)
	}

	sug, err := s.suggestions.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSuggestionNotFound
		}
		return nil, fmt.Errorf("loading suggestion: %w", err)
	}
	return sug, nil
}

// Get returns a suggestion by ID.
func (s *Service) Get(ctx context.Context, userID, id string) (*Suggestion, error) {
	sug, err := s.suggestions.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSuggestionNotFound
		}
		return nil, fmt.Errorf("getting suggestion: %w", err)
	}
	return sug, nil
}

// Recent returns the newest suggestions, capped at RecentSuggestionLimit
// when limit is zero or larger.
func (s *Service) Recent(ctx context.Context, userID string, limit int) ([]Suggestion, error) {
	if limit <= 0 || limit > RecentSuggestionLimit {
		limit = RecentSuggestionLimit
	}
	return s.suggestions.ListRecent(ctx, userID, limit)
}

// LatestSummary returns the current summary for a user.
func (s *Service) LatestSummary(ctx context.Context, userID string) (*Summary, error) {
	sum, err := s.summaries.Latest(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoSummary
		}
		return nil, fmt.Errorf("loading summary: %w", err)
	}
	return sum, nil
}

package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"ideaboard/internal/auth"
	"ideaboard/internal/domain/activity"
	"ideaboard/internal/domain/card"
	"ideaboard/internal/domain/column"
	"ideaboard/internal/domain/insight"
)

// ColumnRepository is a mock for column.Repository.
type ColumnRepository struct {
	mock.Mock
}

func (m *ColumnRepository) Create(ctx context.Context, userID string, col *column.Column) error {
	args := m.Called(ctx, userID, col)
	return args.Error(0)
}

func (m *ColumnRepository) CreateMany(ctx context.Context, userID string, cols []*column.Column) error {
	args := m.Called(ctx, userID, cols)
	return args.Error(0)
}

func (m *ColumnRepository) Get(ctx context.Context, userID, id string) (*column.Column, error) {
	args := m.Called(ctx, userID, id)
	if col, ok := args.Get(0).(*column.Column); ok {
		return col, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ColumnRepository) List(ctx context.Context, userID string) ([]column.Column, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]column.Column); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// CardRepository is a mock for card.Repository.
type CardRepository struct {
	mock.Mock
}

func (m *CardRepository) Create(ctx context.Context, userID string, c *card.Card) error {
	args := m.Called(ctx, userID, c)
	return args.Error(0)
}

func (m *CardRepository) Get(ctx context.Context, userID, id string) (*card.Card, error) {
	args := m.Called(ctx, userID, id)
	if c, ok := args.Get(0).(*card.Card); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CardRepository) UpdateContent(ctx context.Context, userID, id, title, description string, updatedAt time.Time) error {
	args := m.Called(ctx, userID, id, title, description, updatedAt)
	return args.Error(0)
}

func (m *CardRepository) UpdatePlacement(ctx context.Context, userID, id, columnID string, position int, updatedAt time.Time) error {
	args := m.Called(ctx, userID, id, columnID, position, updatedAt)
	return args.Error(0)
}

func (m *CardRepository) UpdateCluster(ctx context.Context, userID, id, clusterID string) error {
	args := m.Called(ctx, userID, id, clusterID)
	return args.Error(0)
}

func (m *CardRepository) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *CardRepository) List(ctx context.Context, userID string, opts card.ListOptions) ([]card.Card, error) {
	args := m.Called(ctx, userID, opts)
	if list, ok := args.Get(0).([]card.Card); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// SuggestionRepository is a mock for insight.SuggestionRepository.
type SuggestionRepository struct {
	mock.Mock
}

func (m *SuggestionRepository) Create(ctx context.Context, userID string, sug *insight.Suggestion) error {
	args := m.Called(ctx, userID, sug)
	return args.Error(0)
}

func (m *SuggestionRepository) Get(ctx context.Context, userID, id string) (*insight.Suggestion, error) {
	args := m.Called(ctx, userID, id)
	if sug, ok := args.Get(0).(*insight.Suggestion); ok {
		return sug, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SuggestionRepository) SetAccepted(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *SuggestionRepository) ListRecent(ctx context.Context, userID string, limit int) ([]insight.Suggestion, error) {
	args := m.Called(ctx, userID, limit)
	if list, ok := args.Get(0).([]insight.Suggestion); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// SummaryRepository is a mock for insight.SummaryRepository.
type SummaryRepository struct {
	mock.Mock
}

func (m *SummaryRepository) Create(ctx context.Context, userID string, sum *insight.Summary) error {
	args := m.Called(ctx, userID, sum)
	return args.Error(0)
}

func (m *SummaryRepository) Latest(ctx context.Context, userID string) (*insight.Summary, error) {
	args := m.Called(ctx, userID)
	if sum, ok := args.Get(0).(*insight.Summary); ok {
		return sum, args.Error(1)
	}
	return nil, args.Error(1)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, userID string, entry *activity.Entry) error {
	args := m.Called(ctx, userID, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, userID string, opts activity.ListOptions) ([]activity.Entry, error) {
	args := m.Called(ctx, userID, opts)
	if list, ok := args.Get(0).([]activity.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// SearchRepository is a mock for card.SearchRepository.
type SearchRepository struct {
	mock.Mock
}

func (m *SearchRepository) Search(ctx context.Context, userID, query string, opts card.SearchOptions) ([]card.SearchResult, error) {
	args := m.Called(ctx, userID, query, opts)
	if list, ok := args.Get(0).([]card.SearchResult); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// TokenRepository is a mock for auth.TokenRepository.
type TokenRepository struct {
	mock.Mock
}

func (m *TokenRepository) Resolve(ctx context.Context, tokenHash string) (*auth.User, error) {
	args := m.Called(ctx, tokenHash)
	if user, ok := args.Get(0).(*auth.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TokenRepository) Revoke(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *TokenRepository) Insert(ctx context.Context, tokenHash string, user auth.User) error {
	args := m.Called(ctx, tokenHash, user)
	return args.Error(0)
}

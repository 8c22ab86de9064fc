package board

import (
	"sync"

	"ideaboard/internal/domain/card"
	"ideaboard/internal/domain/column"
	"ideaboard/internal/domain/insight"
)

// Store holds the locally reconciled board state: columns ordered by
// position, cards in load-then-insertion order, the most recent
// suggestions, and the current summary. It performs no I/O; the controller
// is its only writer. An upsert always replaces the full record, so readers
// never observe a partially written entity. The mutex guards memory safety
// for concurrent readers, not operation ordering.
type Store struct {
	mu          sync.RWMutex
	columns     []column.Column
	cards       []card.Card
	cardIdx     map[string]int
	suggestions []insight.Suggestion
	summary     *insight.Summary
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{cardIdx: make(map[string]int)}
}

// Reset replaces the entire board state, typically after the initial load.
func (s *Store) Reset(cols []column.Column, cards []card.Card, sugs []insight.Suggestion, sum *insight.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.columns = append([]column.Column(nil), cols...)
	s.cards = append([]card.Card(nil), cards...)
	s.cardIdx = make(map[string]int, len(cards))
	for i, c := range s.cards {
		s.cardIdx[c.ID] = i
	}
	s.suggestions = capSuggestions(append([]insight.Suggestion(nil), sugs...))
	s.summary = sum
}

// Columns returns the columns in position order.
func (s *Store) Columns() []column.Column {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]column.Column(nil), s.columns...)
}

// FirstColumn returns the leftmost column, if any.
func (s *Store) FirstColumn() (column.Column, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.columns) == 0 {
		return column.Column{}, false
	}
	return s.columns[0], true
}

// Cards returns all cards in store order.
func (s *Store) Cards() []card.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]card.Card(nil), s.cards...)
}

// Card returns a card by ID.
func (s *Store) Card(id string) (card.Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.cardIdx[id]
	if !ok {
		return card.Card{}, false
	}
	return s.cards[i], true
}

// CardsByColumn returns the cards belonging to a column, in store order.
func (s *Store) CardsByColumn(columnID string) []card.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []card.Card
	for _, c := range s.cards {
		if c.ColumnID == columnID {
			out = append(out, c)
		}
	}
	return out
}

// UpsertCard inserts a card or replaces the full stored record.
func (s *Store) UpsertCard(c card.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.cardIdx[c.ID]; ok {
		s.cards[i] = c
		return
	}
	s.cards = append(s.cards, c)
	s.cardIdx[c.ID] = len(s.cards) - 1
}

// RemoveCard drops a card from the store.
func (s *Store) RemoveCard(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.cardIdx[id]
	if !ok {
		return
	}
	s.cards = append(s.cards[:i], s.cards[i+1:]...)
	delete(s.cardIdx, id)
	for j := i; j < len(s.cards); j++ {
		s.cardIdx[s.cards[j].ID] = j
	}
}

// PrependSuggestions adds suggestions at the front of the recency order,
// keeping at most the display cap.
func (s *Store) PrependSuggestions(sugs ...insight.Suggestion) {
	if len(sugs) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suggestions = capSuggestions(append(append([]insight.Suggestion(nil), sugs...), s.suggestions...))
}

// Suggestions returns the retained suggestions, newest first.
func (s *Store) Suggestions() []insight.Suggestion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]insight.Suggestion(nil), s.suggestions...)
}

// MarkSuggestionAccepted flips the stored suggestion's accepted flag.
func (s *Store) MarkSuggestionAccepted(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.suggestions {
		if s.suggestions[i].ID == id {
			s.suggestions[i].IsAccepted = true
			return
		}
	}
}

// SetSummary replaces the current summary.
func (s *Store) SetSummary(sum *insight.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary = sum
}

// LatestSummary returns the current summary, or nil when none exists.
func (s *Store) LatestSummary() *insight.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary
}

func capSuggestions(sugs []insight.Suggestion) []insight.Suggestion {
	if len(sugs) > insight.RecentSuggestionLimit {
		return sugs[:insight.RecentSuggestionLimit]
	}
	return sugs
}

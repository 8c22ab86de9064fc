package insight

import "time"

// SuggestionType classifies a generated suggestion.
type SuggestionType string

const (
	TypeRelatedIdea SuggestionType = "related_idea"
	TypeCluster     SuggestionType = "cluster"
	TypeSummary     SuggestionType = "summary"
)

// Suggestion is a generated prompt, optionally linked to the card that
// triggered it. Immutable except for the accept transition, which goes
// false to true exactly once.
type Suggestion struct {
	ID           string         `json:"id"`
	UserID       string         `json:"user_id"`
	ParentCardID *string        `json:"parent_card_id,omitempty"`
	Text         string         `json:"suggestion_text"`
	Type         SuggestionType `json:"suggestion_type"`
	IsAccepted   bool           `json:"is_accepted"`
	CreatedAt    time.Time      `json:"created_at"`
}

// Summary is a generated digest of the board. Only the most recent one per
// user is current.
type Summary struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"summary_text"`
	KeyThemes []string  `json:"key_themes"`
	TopIdeas  []string  `json:"top_ideas"`
	CreatedAt time.Time `json:"created_at"`
}

// RecentSuggestionLimit caps how many suggestions the board surfaces.
const RecentSuggestionLimit = 10

package activity

import "time"

// Type represents the kind of board event
type Type string

const (
	TypeCardCreated        Type = "card_created"
	TypeCardUpdated        Type = "card_updated"
	TypeCardMoved          Type = "card_moved"
	TypeCardDeleted        Type = "card_deleted"
	TypeCardsClustered     Type = "cards_clustered"
	TypeBoardSummarized    Type = "board_summarized"
	TypeSuggestionAccepted Type = "suggestion_accepted"
)

// Entry represents an event in the board activity log
type Entry struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	CardID    *string   `json:"card_id,omitempty"`
	Type      Type      `json:"type"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

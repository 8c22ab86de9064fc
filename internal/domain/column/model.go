package column

import "time"

// Column is an ordered stage container for cards. Position is zero-based
// and unique within a user's column set.
type Column struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultNames are the columns created for a user whose board is empty,
// in position order.
var DefaultNames = []string{"Ideas", "In Progress", "Completed"}

package board

import "errors"

var (
	// ErrNoColumns indicates the board has no columns to hold a card.
	ErrNoColumns = errors.New("board has no columns")
	// ErrNoCards indicates an insight operation needs at least one card.
	ErrNoCards = errors.New("board has no cards")
	// ErrFlagWriteFailed indicates a created card could not be linked back
	// to its accepted suggestion.
	ErrFlagWriteFailed = errors.New("suggestion accept flag write failed")
)

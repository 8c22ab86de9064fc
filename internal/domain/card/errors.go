package card

import "errors"

var (
	// ErrCardNotFound indicates the card doesn't exist.
	ErrCardNotFound = errors.New("card not found")
	// ErrEmptyTitle indicates a title that trims to the empty string.
	ErrEmptyTitle = errors.New("card title is empty")
	// ErrSameColumn indicates a move targeting the card's current column.
	ErrSameColumn = errors.New("card already in target column")
	// ErrInvalidInput indicates invalid input for card operations.
	ErrInvalidInput = errors.New("invalid card input")
)

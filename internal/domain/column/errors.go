package column

import "errors"

var (
	// ErrColumnNotFound indicates the column doesn't exist.
	ErrColumnNotFound = errors.New("column not found")
	// ErrInvalidInput indicates invalid input for column operations.
	ErrInvalidInput = errors.New("invalid column input")
)

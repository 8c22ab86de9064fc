package insight

import "errors"

var (
	// ErrSuggestionNotFound indicates the suggestion doesn't exist.
	ErrSuggestionNotFound = errors.New("suggestion not found")
	// ErrNoSummary indicates no summary has been generated yet.
	ErrNoSummary = errors.New("no board summary")
	// ErrInvalidInput indicates invalid input for insight operations.
	ErrInvalidInput = errors.New("invalid insight input")
)

package mcp

import (
	"errors"
	"fmt"

	"ideaboard/internal/auth"
	"ideaboard/internal/board"
	"ideaboard/internal/domain/card"
	"ideaboard/internal/domain/column"
	"ideaboard/internal/domain/insight"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, card.ErrCardNotFound):
		return &APIError{Code: "CARD_NOT_FOUND", Message: "card not found", RecoveryHint: "Call board_overview to see current card IDs"}
	case errors.Is(err, card.ErrEmptyTitle):
		return &APIError{Code: "EMPTY_TITLE", Message: "card title must not be blank", RecoveryHint: "Provide a non-blank title"}
	case errors.Is(err, card.ErrSameColumn):
		return &APIError{Code: "SAME_COLUMN", Message: "card is already in that column"}
	case errors.Is(err, column.ErrColumnNotFound):
		return &APIError{Code: "COLUMN_NOT_FOUND", Message: "column not found", RecoveryHint: "Call board_overview to see current column IDs"}
	case errors.Is(err, insight.ErrSuggestionNotFound):
		return &APIError{Code: "SUGGESTION_NOT_FOUND", Message: "suggestion not found", RecoveryHint: "Call list_suggestions for current IDs"}
	case errors.Is(err, insight.ErrNoSummary):
		return &APIError{Code: "NO_SUMMARY", Message: "no summary has been generated yet", RecoveryHint: "Call summarize_board first"}
	case errors.Is(err, board.ErrNoColumns):
		return &APIError{Code: "NO_COLUMNS", Message: "board has no columns"}
	case errors.Is(err, board.ErrNoCards):
		return &APIError{Code: "NO_CARDS", Message: "board has no cards", RecoveryHint: "Add cards before clustering"}
	case errors.Is(err, auth.ErrUnauthorized):
		return &APIError{Code: "UNAUTHORIZED", Message: "invalid or revoked token"}
	default:
		return nil
	}
}

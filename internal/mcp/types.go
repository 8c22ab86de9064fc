package mcp

import (
	"ideaboard/internal/board"
	"ideaboard/internal/domain/card"
	"ideaboard/internal/domain/insight"
)

type AddCardParams struct {
	ColumnID string `json:"column_id,omitempty" jsonschema:"Target column; defaults to the first column when omitted"`
}

type UpdateCardParams struct {
	ID          string `json:"id" jsonschema:"Card ID"`
	Title       string `json:"title" jsonschema:"New title; must not be blank"`
	Description string `json:"description,omitempty" jsonschema:"New description"`
}

type DeleteCardParams struct {
	ID string `json:"id" jsonschema:"Card ID"`
}

type MoveCardParams struct {
	ID       string `json:"id" jsonschema:"Card ID"`
	ColumnID string `json:"column_id" jsonschema:"Destination column ID"`
}

type AcceptSuggestionParams struct {
	ID string `json:"id" jsonschema:"Suggestion ID"`
}

type ListSuggestionsParams struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum suggestions to return (default 10)"`
}

type SearchCardsParams struct {
	Query string `json:"query" jsonschema:"Full-text query over card titles and descriptions"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum results (default 20)"`
}

type RecentActivityParams struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum entries to return (default 20)"`
}

type EmptyParams struct{}

// CardResponse reports a card mutation together with how it ended.
type CardResponse struct {
	Card    *card.Card    `json:"card,omitempty"`
	Outcome board.Outcome `json:"outcome"`
}

type OutcomeResponse struct {
	Outcome board.Outcome `json:"outcome"`
}

type ClusterResponse struct {
	Result  *board.ClusterResult `json:"result,omitempty"`
	Outcome board.Outcome        `json:"outcome"`
}

type SummaryResponse struct {
	Summary *insight.Summary `json:"summary,omitempty"`
	Outcome board.Outcome    `json:"outcome"`
}

type SignOutResponse struct {
	SignedOut bool `json:"signed_out"`
}

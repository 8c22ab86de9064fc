package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"ideaboard/internal/board"
	"ideaboard/internal/domain/activity"
	"ideaboard/internal/domain/card"
)

const (
	defaultSearchLimit   = 20
	defaultActivityLimit = 20
)

// Handler dispatches board commands by method name. It backs both the
// JSON-RPC transport and tests that drive the board without an MCP client.
type Handler struct {
	boards *board.Manager
}

// NewHandler creates a new handler over the board manager.
func NewHandler(boards *board.Manager) *Handler {
	return &Handler{boards: boards}
}

// Handle dispatches a request to the caller's board controller. Mutations
// return their outcome in the response body; only lookup failures and
// unknown methods come back as errors.
func (h *Handler) Handle(ctx context.Context, session board.Session, method string, params json.RawMessage) (any, error) {
	ctrl, err := h.boards.Get(ctx, session)
	if err != nil {
		return nil, mapError(err)
	}

	switch method {
	case "board_overview":
		return ctrl.Snapshot(), nil

	case "add_card":
		var req AddCardParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		created, outcome := ctrl.CreateCard(ctx, req.ColumnID)
		return CardResponse{Card: created, Outcome: outcome}, nil

	case "update_card":
		var req UpdateCardParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return OutcomeResponse{Outcome: ctrl.UpdateCard(ctx, req.ID, req.Title, req.Description)}, nil

	case "delete_card":
		var req DeleteCardParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return OutcomeResponse{Outcome: ctrl.DeleteCard(ctx, req.ID)}, nil

	case "move_card":
		var req MoveCardParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return OutcomeResponse{Outcome: ctrl.MoveCard(ctx, req.ID, req.ColumnID)}, nil

	case "cluster_ideas":
		result, outcome := ctrl.ClusterSample(ctx)
		return ClusterResponse{Result: result, Outcome: outcome}, nil

	case "summarize_board":
		summary, outcome := ctrl.Summarize(ctx)
		return SummaryResponse{Summary: summary, Outcome: outcome}, nil

	case "list_suggestions":
		var req ListSuggestionsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		suggestions := ctrl.Store().Suggestions()
		if req.Limit > 0 && req.Limit < len(suggestions) {
			suggestions = suggestions[:req.Limit]
		}
		return suggestions, nil

	case "accept_suggestion":
		var req AcceptSuggestionParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		created, outcome := ctrl.AcceptSuggestion(ctx, req.ID)
		return CardResponse{Card: created, Outcome: outcome}, nil

	case "search_cards":
		var req SearchCardsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if req.Limit <= 0 {
			req.Limit = defaultSearchLimit
		}
		results, err := ctrl.SearchCards(ctx, req.Query, req.Limit)
		if err != nil {
			return nil, mapError(err)
		}
		if results == nil {
			results = []card.SearchResult{}
		}
		return results, nil

	case "recent_activity":
		var req RecentActivityParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if req.Limit <= 0 {
			req.Limit = defaultActivityLimit
		}
		entries, err := ctrl.RecentActivity(ctx, req.Limit)
		if err != nil {
			return nil, mapError(err)
		}
		if entries == nil {
			entries = []activity.Entry{}
		}
		return entries, nil

	case "sign_out":
		if err := ctrl.SignOut(ctx); err != nil {
			return nil, mapError(err)
		}
		h.boards.Drop(session.User.ID)
		return SignOutResponse{SignedOut: true}, nil

	default:
		return nil, fmt.Errorf("unknown method: %s", method)
	}
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 {
		return nil
	}
	return json.Unmarshal(params, out)
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"ideaboard/internal/board"
	"ideaboard/internal/domain/activity"
	"ideaboard/internal/domain/card"
)

// registerTools wires every board tool onto the server. Each handler resolves
// the caller's controller from the session placed in context by the auth
// middleware.
func registerTools(server *sdkmcp.Server, boards *board.Manager) {
	controller := func(ctx context.Context) (*board.Controller, error) {
		return boards.Get(ctx, getSession(ctx))
	}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "board_overview",
		Description: "Get the full board: columns with their cards in order, recent suggestions, and the latest summary.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input EmptyParams) (*sdkmcp.CallToolResult, any, error) {
		ctrl, err := controller(ctx)
		if err != nil {
			return toolError("loading board: %v", mapError(err)), nil, nil
		}
		return toolJSON(ctrl.Snapshot())
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_card",
		Description: "Create a new idea card at the end of a column. Defaults to the first column and a placeholder title.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input AddCardParams) (*sdkmcp.CallToolResult, any, error) {
		ctrl, err := controller(ctx)
		if err != nil {
			return toolError("loading board: %v", mapError(err)), nil, nil
		}
		created, outcome := ctrl.CreateCard(ctx, input.ColumnID)
		return toolJSON(CardResponse{Card: created, Outcome: outcome})
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_card",
		Description: "Update a card's title and description. Blank titles are rejected and the card is left unchanged.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input UpdateCardParams) (*sdkmcp.CallToolResult, any, error) {
		ctrl, err := controller(ctx)
		if err != nil {
			return toolError("loading board: %v", mapError(err)), nil, nil
		}
		return toolJSON(OutcomeResponse{Outcome: ctrl.UpdateCard(ctx, input.ID, input.Title, input.Description)})
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_card",
		Description: "Delete a card from the board.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input DeleteCardParams) (*sdkmcp.CallToolResult, any, error) {
		ctrl, err := controller(ctx)
		if err != nil {
			return toolError("loading board: %v", mapError(err)), nil, nil
		}
		return toolJSON(OutcomeResponse{Outcome: ctrl.DeleteCard(ctx, input.ID)})
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "move_card",
		Description: "Move a card to the end of another column. Moving to its current column is a no-op.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input MoveCardParams) (*sdkmcp.CallToolResult, any, error) {
		ctrl, err := controller(ctx)
		if err != nil {
			return toolError("loading board: %v", mapError(err)), nil, nil
		}
		return toolJSON(OutcomeResponse{Outcome: ctrl.MoveCard(ctx, input.ID, input.ColumnID)})
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "cluster_ideas",
		Description: "Tag a sample of cards with a shared cluster ID and record a cluster suggestion.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input EmptyParams) (*sdkmcp.CallToolResult, any, error) {
		ctrl, err := controller(ctx)
		if err != nil {
			return toolError("loading board: %v", mapError(err)), nil, nil
		}
		result, outcome := ctrl.ClusterSample(ctx)
		return toolJSON(ClusterResponse{Result: result, Outcome: outcome})
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "summarize_board",
		Description: "Generate and store a digest of the board: summary text, key themes, and top ideas.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input EmptyParams) (*sdkmcp.CallToolResult, any, error) {
		ctrl, err := controller(ctx)
		if err != nil {
			return toolError("loading board: %v", mapError(err)), nil, nil
		}
		summary, outcome := ctrl.Summarize(ctx)
		return toolJSON(SummaryResponse{Summary: summary, Outcome: outcome})
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_suggestions",
		Description: "List the most recent suggestions, newest first.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListSuggestionsParams) (*sdkmcp.CallToolResult, any, error) {
		ctrl, err := controller(ctx)
		if err != nil {
			return toolError("loading board: %v", mapError(err)), nil, nil
		}
		suggestions := ctrl.Store().Suggestions()
		if input.Limit > 0 && input.Limit < len(suggestions) {
			suggestions = suggestions[:input.Limit]
		}
		return toolJSON(suggestions)
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "accept_suggestion",
		Description: "Turn a suggestion into a card in the first column and mark the suggestion accepted.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input AcceptSuggestionParams) (*sdkmcp.CallToolResult, any, error) {
		ctrl, err := controller(ctx)
		if err != nil {
			return toolError("loading board: %v", mapError(err)), nil, nil
		}
		created, outcome := ctrl.AcceptSuggestion(ctx, input.ID)
		return toolJSON(CardResponse{Card: created, Outcome: outcome})
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_cards",
		Description: "Full-text search over card titles and descriptions, best matches first.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchCardsParams) (*sdkmcp.CallToolResult, any, error) {
		ctrl, err := controller(ctx)
		if err != nil {
			return toolError("loading board: %v", mapError(err)), nil, nil
		}
		limit := input.Limit
		if limit <= 0 {
			limit = defaultSearchLimit
		}
		results, err := ctrl.SearchCards(ctx, input.Query, limit)
		if err != nil {
			return toolError("searching cards: %v", mapError(err)), nil, nil
		}
		if results == nil {
			results = []card.SearchResult{}
		}
		return toolJSON(results)
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "recent_activity",
		Description: "List recent board activity, newest first.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input RecentActivityParams) (*sdkmcp.CallToolResult, any, error) {
		ctrl, err := controller(ctx)
		if err != nil {
			return toolError("loading board: %v", mapError(err)), nil, nil
		}
		limit := input.Limit
		if limit <= 0 {
			limit = defaultActivityLimit
		}
		entries, err := ctrl.RecentActivity(ctx, limit)
		if err != nil {
			return toolError("listing activity: %v", mapError(err)), nil, nil
		}
		if entries == nil {
			entries = []activity.Entry{}
		}
		return toolJSON(entries)
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "sign_out",
		Description: "Revoke the current token and discard the cached board.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input EmptyParams) (*sdkmcp.CallToolResult, any, error) {
		ctrl, err := controller(ctx)
		if err != nil {
			return toolError("loading board: %v", mapError(err)), nil, nil
		}
		if err := ctrl.SignOut(ctx); err != nil {
			return toolError("signing out: %v", mapError(err)), nil, nil
		}
		boards.Drop(getSession(ctx).User.ID)
		return toolJSON(SignOutResponse{SignedOut: true})
	})
}

func toolError(format string, args ...any) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

func toolJSON(v any) (*sdkmcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError("marshaling result: %v", err), nil, nil
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}, nil, nil
}

package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `ideaboard keeps a single-user brainstorming board: columns of idea cards
plus generated suggestions and summaries.

Core concepts:
- Column: an ordered stage (default boards start with Ideas, In Progress, Completed).
- Card: an idea with a title, optional description, and a position inside its column.
  New cards always land at the end of the column.
- Suggestion: a generated follow-up prompt tied to a card, a cluster, or the whole board.
- Outcome: every mutation reports applied, skipped, failed, or partial instead of
  raising an error. A skipped outcome means nothing was written and why.

Default workflow:
1) Orient: call board_overview for the full reconciled state.
2) Mutate: add_card / update_card / move_card / delete_card. Check the outcome field;
   partial means some writes landed and some did not.
3) Generate: cluster_ideas tags a sample of cards, summarize_board digests the board,
   accept_suggestion turns a suggestion into a card in the first column.
4) Browse: search_cards for full-text lookup, list_suggestions and recent_activity
   for history.

Docs:
- ideaboard://docs/concepts (glossary + invariants)
- ideaboard://docs/outcomes (how to read operation outcomes)
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "ideaboard://docs/concepts",
		Name:        "concepts",
		Title:       "Concepts",
		Description: "Glossary and board invariants",
		Content: `# Concepts

## Column
An ordered stage on the board. Columns are created once (boards start with
Ideas, In Progress, Completed at positions 0, 1, 2) and cards move between them.

## Card
An idea. Cards carry a title, an optional description, a position inside their
column, and optionally a cluster tag shared with related cards. Positions are
append-only: a new or moved card always takes max(position)+1 in its column,
so positions grow monotonically and are never compacted.

## Suggestion
A generated prompt. Three kinds exist: related_idea (three variations spawned
when a card is created), cluster (recorded when cards are tagged together),
and summary (recorded alongside a board digest). Accepting a suggestion creates
a card from its text and flags the suggestion as accepted; the flag is sticky
and never cleared.

## Summary
A digest of the whole board. Only the most recent one is current.
`,
	},
	{
		URI:         "ideaboard://docs/outcomes",
		Name:        "outcomes",
		Title:       "Outcomes",
		Description: "How to read operation outcomes",
		Content: `# Outcomes

Every mutation returns an outcome instead of raising an error:

- applied: the write succeeded and the board reflects it.
- skipped: nothing was attempted. The reason names the validation that stopped
  it (blank title, unknown card, move to the same column, empty board).
- failed: the write was attempted and failed. The board is unchanged.
- partial: the operation issued several independent writes and only some
  landed. The successes are reflected; the reason describes the failures.
  cluster_ideas and accept_suggestion are the operations that can end here.

Retrying a failed or partial operation is always safe; skipped outcomes need
the input fixed first.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}

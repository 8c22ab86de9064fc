package insight

import (
	"fmt"

	"ideaboard/internal/domain/card"
	"ideaboard/internal/domain/column"
)

// SummaryDraft is the generated content of a board summary before it is
// persisted.
type SummaryDraft struct {
	Text      string
	KeyThemes []string
	TopIdeas  []string
}

// Generator produces suggestion and summary content from board state. The
// template implementation is deterministic; a real inference backend can be
// substituted here without touching the rest of the board.
type Generator interface {
	SuggestionsFor(title string) []string
	Summarize(cards []card.Card, columns []column.Column) SummaryDraft
}

// TemplateGenerator generates insight text from fixed phrasing templates.
type TemplateGenerator struct{}

// NewTemplateGenerator creates the deterministic template generator.
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

const emptyBoardSummary = "Your board is empty. Start adding ideas to see insights!"

var fixedThemes = []string{"Innovation", "Planning", "Execution"}

// SuggestionsFor returns exactly three suggestion variants for a card
// title: an angle exploration, a decomposition, and a user-impact framing.
func (g *TemplateGenerator) SuggestionsFor(title string) []string {
	return []string{
		fmt.Sprintf("Explore %q from a different angle", title),
		fmt.Sprintf("Break down %q into smaller steps", title),
		fmt.Sprintf("Consider the impact of %q on users", title),
	}
}

// Summarize composes a board digest. An empty board yields a fixed message
// with no themes or top ideas; otherwise the text references the card and
// column counts, themes appear once the board holds more than two cards,
// and the first three card titles become the top ideas.
func (g *TemplateGenerator) Summarize(cards []card.Card, columns []column.Column) SummaryDraft {
	if len(cards) == 0 {
		return SummaryDraft{
			Text:      emptyBoardSummary,
			KeyThemes: []string{},
			TopIdeas:  []string{},
		}
	}

	draft := SummaryDraft{
		Text: fmt.Sprintf(
			"Your board contains %d ideas across %d stages. Key focus areas include innovation, execution, and completion tracking.",
			len(cards), len(columns),
		),
		KeyThemes: []string{},
		TopIdeas:  []string{},
	}

	if len(cards) > 2 {
		draft.KeyThemes = append(draft.KeyThemes, fixedThemes...)
	}

	for _, c := range cards {
		if len(draft.TopIdeas) == 3 {
			break
		}
		draft.TopIdeas = append(draft.TopIdeas, c.Title)
	}

	return draft
}

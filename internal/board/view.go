package board

import (
	"ideaboard/internal/domain/card"
	"ideaboard/internal/domain/column"
	"ideaboard/internal/domain/insight"
)

// ColumnView pairs a column with its cards for rendering.
type ColumnView struct {
	Column column.Column `json:"column"`
	Cards  []card.Card   `json:"cards"`
}

// View is a point-in-time snapshot of the reconciled board.
type View struct {
	Columns     []ColumnView         `json:"columns"`
	Suggestions []insight.Suggestion `json:"suggestions"`
	Summary     *insight.Summary     `json:"summary,omitempty"`
	Loading     bool                 `json:"loading"`
	Processing  bool                 `json:"processing"`
}

// Snapshot builds a view of the current store.
func (c *Controller) Snapshot() View {
	cols := c.store.Columns()
	view := View{
		Columns:     make([]ColumnView, 0, len(cols)),
		Suggestions: c.store.Suggestions(),
		Summary:     c.store.LatestSummary(),
		Loading:     c.Loading(),
		Processing:  c.Processing(),
	}
	for _, col := range cols {
		view.Columns = append(view.Columns, ColumnView{
			Column: col,
			Cards:  c.store.CardsByColumn(col.ID),
		})
	}
	return view
}

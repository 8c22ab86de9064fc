package sqlite

import (
	"ideaboard/internal/auth"
	"ideaboard/internal/domain/activity"
	"ideaboard/internal/domain/card"
	"ideaboard/internal/domain/column"
	"ideaboard/internal/domain/insight"
)

// Each repository interface is declared next to the service that consumes
// it; the repository package holds only the shared sentinel errors. These
// assertions keep the SQLite implementations aligned with those homes.
var (
	_ column.Repository            = (*ColumnRepository)(nil)
	_ card.Repository              = (*CardRepository)(nil)
	_ card.SearchRepository        = (*SearchRepository)(nil)
	_ insight.SuggestionRepository = (*SuggestionRepository)(nil)
	_ insight.SummaryRepository    = (*SummaryRepository)(nil)
	_ activity.Repository          = (*ActivityRepository)(nil)
	_ auth.TokenRepository         = (*TokenRepository)(nil)
)

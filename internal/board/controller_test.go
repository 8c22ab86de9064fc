package board_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ideaboard/internal/auth"
	"ideaboard/internal/board"
	"ideaboard/internal/domain/activity"
	"ideaboard/internal/domain/card"
	"ideaboard/internal/domain/column"
	"ideaboard/internal/domain/insight"
	"ideaboard/internal/repository"
	"ideaboard/internal/repository/mocks"
)

type fixture struct {
	columns     *mocks.ColumnRepository
	cards       *mocks.CardRepository
	suggestions *mocks.SuggestionRepository
	summaries   *mocks.SummaryRepository
	activities  *mocks.ActivityRepository
	search      *mocks.SearchRepository
	ctrl        *board.Controller
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		columns:     &mocks.ColumnRepository{},
		cards:       &mocks.CardRepository{},
		suggestions: &mocks.SuggestionRepository{},
		summaries:   &mocks.SummaryRepository{},
		activities:  &mocks.ActivityRepository{},
		search:      &mocks.SearchRepository{},
	}

	user := auth.User{ID: "u1", Email: "u1@example.com"}
	f.ctrl = board.NewController(board.Session{User: user, Token: "tok"}, board.Deps{
		Columns:    column.NewService(f.columns, nil),
		Cards:      card.NewService(f.cards, f.search, nil),
		Insights:   insight.NewService(f.suggestions, f.summaries, insight.NewTemplateGenerator(), nil),
		Activities: activity.NewService(f.activities, nil),
		Auth:       &auth.StaticAuthenticator{User: user},
	})
	return f
}

// seedBoard puts columns and cards straight into the local store.
func (f *fixture) seedBoard(cols []column.Column, cards []card.Card) {
	f.ctrl.Store().Reset(cols, cards, nil, nil)
}

// allowBackgroundWrites lets suggestion generation and activity logging
// succeed without asserting on them.
func (f *fixture) allowBackgroundWrites() {
	f.suggestions.On("Create", mock.Anything, "u1", mock.Anything).Return(nil)
	f.activities.On("Log", mock.Anything, "u1", mock.Anything).Return(nil)
}

func TestControllerLoad_InitializesDefaultColumns(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.columns.On("List", mock.Anything, "u1").Return([]column.Column{}, nil)
	f.columns.On("CreateMany", mock.Anything, "u1", mock.MatchedBy(func(cols []*column.Column) bool {
		return len(cols) == 3
	})).Return(nil)
	f.cards.On("List", mock.Anything, "u1", mock.Anything).Return([]card.Card{}, nil)
	f.suggestions.On("ListRecent", mock.Anything, "u1", insight.RecentSuggestionLimit).Return([]insight.Suggestion{}, nil)
	f.summaries.On("Latest", mock.Anything, "u1").Return((*insight.Summary)(nil), repository.ErrNotFound)

	require.NoError(t, f.ctrl.Load(ctx))

	cols := f.ctrl.Store().Columns()
	require.Len(t, cols, 3)
	require.Equal(t, "Ideas", cols[0].Name)
	require.Nil(t, f.ctrl.Store().LatestSummary())
	f.columns.AssertExpectations(t)
}

func TestControllerLoad_ColumnFetchFailureIsFatal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.columns.On("List", mock.Anything, "u1").Return(([]column.Column)(nil), errors.New("db down"))
	f.cards.On("List", mock.Anything, "u1", mock.Anything).Return([]card.Card{}, nil)
	f.suggestions.On("ListRecent", mock.Anything, "u1", mock.Anything).Return([]insight.Suggestion{}, nil)
	f.summaries.On("Latest", mock.Anything, "u1").Return((*insight.Summary)(nil), repository.ErrNotFound)

	require.Error(t, f.ctrl.Load(ctx))
}

func TestControllerLoad_OtherFetchesDegrade(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	cols := []column.Column{{ID: "col1", Name: "Ideas", Position: 0}}
	f.columns.On("List", mock.Anything, "u1").Return(cols, nil)
	f.cards.On("List", mock.Anything, "u1", mock.Anything).Return(([]card.Card)(nil), errors.New("timeout"))
	f.suggestions.On("ListRecent", mock.Anything, "u1", mock.Anything).Return(([]insight.Suggestion)(nil), errors.New("timeout"))
	f.summaries.On("Latest", mock.Anything, "u1").Return((*insight.Summary)(nil), repository.ErrNotFound)

	require.NoError(t, f.ctrl.Load(ctx))
	require.Len(t, f.ctrl.Store().Columns(), 1)
	require.Empty(t, f.ctrl.Store().Cards())
	require.Empty(t, f.ctrl.Store().Suggestions())
}

func TestCreateCard_AppendsAfterExistingCards(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedBoard(
		[]column.Column{{ID: "col1", Position: 0}},
		[]card.Card{
			{ID: "c1", ColumnID: "col1", Position: 0},
			{ID: "c2", ColumnID: "col1", Position: 1},
		},
	)
	f.allowBackgroundWrites()

	f.cards.On("Create", mock.Anything, "u1", mock.MatchedBy(func(c *card.Card) bool {
		return c.ColumnID == "col1" && c.Position == 2 && c.Title == card.DefaultTitle
	})).Return(nil)

	created, outcome := f.ctrl.CreateCard(ctx, "col1")
	require.True(t, outcome.Applied())
	require.Equal(t, 2, created.Position)

	stored, ok := f.ctrl.Store().Card(created.ID)
	require.True(t, ok)
	require.Equal(t, 2, stored.Position)
	f.cards.AssertExpectations(t)
}

func TestCreateCard_DefaultsToFirstColumn(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedBoard([]column.Column{
		{ID: "col1", Position: 0},
		{ID: "col2", Position: 1},
	}, nil)
	f.allowBackgroundWrites()

	f.cards.On("Create", mock.Anything, "u1", mock.MatchedBy(func(c *card.Card) bool {
		return c.ColumnID == "col1" && c.Position == 0
	})).Return(nil)

	_, outcome := f.ctrl.CreateCard(ctx, "")
	require.True(t, outcome.Applied())
}

func TestCreateCard_NoColumnsSkips(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, outcome := f.ctrl.CreateCard(ctx, "")
	require.Equal(t, board.StatusSkipped, outcome.Status)
	require.ErrorIs(t, outcome.Err(), board.ErrNoColumns)
	f.cards.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateCard_WriteFailureLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedBoard([]column.Column{{ID: "col1", Position: 0}}, nil)

	f.cards.On("Create", mock.Anything, "u1", mock.Anything).Return(errors.New("db down"))

	created, outcome := f.ctrl.CreateCard(ctx, "col1")
	require.Nil(t, created)
	require.Equal(t, board.StatusFailed, outcome.Status)
	require.Empty(t, f.ctrl.Store().Cards())
}

func TestCreateCard_SuggestionFailureIsIsolated(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedBoard([]column.Column{{ID: "col1", Position: 0}}, nil)

	f.cards.On("Create", mock.Anything, "u1", mock.Anything).Return(nil)
	f.suggestions.On("Create", mock.Anything, "u1", mock.Anything).Return(errors.New("insert failed"))
	f.activities.On("Log", mock.Anything, "u1", mock.Anything).Return(nil)

	created, outcome := f.ctrl.CreateCard(ctx, "col1")
	require.True(t, outcome.Applied())
	require.NotNil(t, created)

	_, ok := f.ctrl.Store().Card(created.ID)
	require.True(t, ok)
	require.Empty(t, f.ctrl.Store().Suggestions())
}

func TestCreateCard_DuplicateIntentsBothLand(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedBoard([]column.Column{{ID: "col1", Position: 0}}, nil)
	f.allowBackgroundWrites()

	f.cards.On("Create", mock.Anything, "u1", mock.Anything).Return(nil)

	first, out1 := f.ctrl.CreateCard(ctx, "col1")
	second, out2 := f.ctrl.CreateCard(ctx, "col1")
	require.True(t, out1.Applied())
	require.True(t, out2.Applied())
	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, 0, first.Position)
	require.Equal(t, 1, second.Position)
	require.Len(t, f.ctrl.Store().Cards(), 2)
}

func TestUpdateCard_BlankTitleSkipsWrite(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedBoard(
		[]column.Column{{ID: "col1", Position: 0}},
		[]card.Card{{ID: "c1", ColumnID: "col1", Title: "Keep me", Position: 0}},
	)

	outcome := f.ctrl.UpdateCard(ctx, "c1", "   ", "new desc")
	require.Equal(t, board.StatusSkipped, outcome.Status)
	require.ErrorIs(t, outcome.Err(), card.ErrEmptyTitle)

	stored, _ := f.ctrl.Store().Card("c1")
	require.Equal(t, "Keep me", stored.Title)
	f.cards.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateCard_UnknownCardFails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	outcome := f.ctrl.UpdateCard(ctx, "ghost", "title", "")
	require.Equal(t, board.StatusFailed, outcome.Status)
	require.ErrorIs(t, outcome.Err(), card.ErrCardNotFound)
}

func TestUpdateCard_MergesContentOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	clusterID := "cl1"
	f.seedBoard(
		[]column.Column{{ID: "col1", Position: 0}},
		[]card.Card{{ID: "c1", ColumnID: "col1", Title: "old", Position: 4, ClusterID: &clusterID}},
	)
	f.activities.On("Log", mock.Anything, "u1", mock.Anything).Return(nil)

	f.cards.On("UpdateContent", mock.Anything, "u1", "c1", "new title", "new desc", mock.Anything).Return(nil)

	outcome := f.ctrl.UpdateCard(ctx, "c1", "new title", "new desc")
	require.True(t, outcome.Applied())

	stored, _ := f.ctrl.Store().Card("c1")
	require.Equal(t, "new title", stored.Title)
	require.Equal(t, "new desc", stored.Description)
	// Placement and cluster tag are untouched by a content update
	require.Equal(t, 4, stored.Position)
	require.Equal(t, "col1", stored.ColumnID)
	require.NotNil(t, stored.ClusterID)
}

func TestDeleteCard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedBoard(
		[]column.Column{{ID: "col1", Position: 0}},
		[]card.Card{{ID: "c1", ColumnID: "col1", Position: 0}},
	)
	f.activities.On("Log", mock.Anything, "u1", mock.Anything).Return(nil)

	f.cards.On("Delete", mock.Anything, "u1", "c1").Return(nil)

	outcome := f.ctrl.DeleteCard(ctx, "c1")
	require.True(t, outcome.Applied())
	require.Empty(t, f.ctrl.Store().Cards())
}

func TestDeleteCard_WriteFailureKeepsCard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedBoard(
		[]column.Column{{ID: "col1", Position: 0}},
		[]card.Card{{ID: "c1", ColumnID: "col1", Position: 0}},
	)

	f.cards.On("Delete", mock.Anything, "u1", "c1").Return(errors.New("db down"))

	outcome := f.ctrl.DeleteCard(ctx, "c1")
	require.Equal(t, board.StatusFailed, outcome.Status)
	require.Len(t, f.ctrl.Store().Cards(), 1)
}

func TestMoveCard_SameColumnIsNoop(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedBoard(
		[]column.Column{{ID: "col1", Position: 0}},
		[]card.Card{{ID: "c1", ColumnID: "col1", Position: 0}},
	)

	outcome := f.ctrl.MoveCard(ctx, "c1", "col1")
	require.Equal(t, board.StatusSkipped, outcome.Status)
	require.ErrorIs(t, outcome.Err(), card.ErrSameColumn)
	f.cards.AssertNotCalled(t, "UpdatePlacement", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMoveCard_LandsAtEndOfTargetColumn(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedBoard(
		[]column.Column{
			{ID: "colA", Position: 0},
			{ID: "colB", Position: 1},
		},
		[]card.Card{
			{ID: "a1", ColumnID: "colA", Position: 0},
			{ID: "a2", ColumnID: "colA", Position: 1},
			{ID: "b1", ColumnID: "colB", Position: 0},
		},
	)
	f.activities.On("Log", mock.Anything, "u1", mock.Anything).Return(nil)

	f.cards.On("UpdatePlacement", mock.Anything, "u1", "a1", "colB", 1, mock.Anything).Return(nil)

	outcome := f.ctrl.MoveCard(ctx, "a1", "colB")
	require.True(t, outcome.Applied())

	moved, _ := f.ctrl.Store().Card("a1")
	require.Equal(t, "colB", moved.ColumnID)
	require.Equal(t, 1, moved.Position)

	// A second card moved to the same target lands after the first
	f.cards.On("UpdatePlacement", mock.Anything, "u1", "a2", "colB", 2, mock.Anything).Return(nil)
	outcome = f.ctrl.MoveCard(ctx, "a2", "colB")
	require.True(t, outcome.Applied())
	require.Len(t, f.ctrl.Store().CardsByColumn("colB"), 3)
	f.cards.AssertExpectations(t)
}

func TestMoveCard_WriteFailureKeepsPlacement(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedBoard(
		[]column.Column{{ID: "colA", Position: 0}, {ID: "colB", Position: 1}},
		[]card.Card{{ID: "c1", ColumnID: "colA", Position: 0}},
	)

	f.cards.On("UpdatePlacement", mock.Anything, "u1", "c1", "colB", 0, mock.Anything).Return(errors.New("db down"))

	outcome := f.ctrl.MoveCard(ctx, "c1", "colB")
	require.Equal(t, board.StatusFailed, outcome.Status)

	stored, _ := f.ctrl.Store().Card("c1")
	require.Equal(t, "colA", stored.ColumnID)
	require.Equal(t, 0, stored.Position)
}

func TestClusterSample_EmptyBoardPerformsNoWrites(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedBoard([]column.Column{{ID: "col1", Position: 0}}, nil)

	result, outcome := f.ctrl.ClusterSample(ctx)
	require.Nil(t, result)
	require.Equal(t, board.StatusSkipped, outcome.Status)
	require.ErrorIs(t, outcome.Err(), board.ErrNoCards)
	f.cards.AssertNotCalled(t, "UpdateCluster", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.suggestions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestClusterSample_TagsFirstThreeCards(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedBoard(
		[]column.Column{{ID: "col1", Position: 0}},
		[]card.Card{
			{ID: "c1", ColumnID: "col1", Position: 0},
			{ID: "c2", ColumnID: "col1", Position: 1},
			{ID: "c3", ColumnID: "col1", Position: 2},
			{ID: "c4", ColumnID: "col1", Position: 3},
		},
	)
	f.allowBackgroundWrites()

	f.cards.On("UpdateCluster", mock.Anything, "u1", "c1", mock.Anything).Return(nil)
	f.cards.On("UpdateCluster", mock.Anything, "u1", "c2", mock.Anything).Return(nil)
	f.cards.On("UpdateCluster", mock.Anything, "u1", "c3", mock.Anything).Return(nil)

	result, outcome := f.ctrl.ClusterSample(ctx)
	require.True(t, outcome.Applied())
	require.Len(t, result.Tagged, 3)
	require.Empty(t, result.Failed)
	require.NotEmpty(t, result.ClusterID)

	// Tagged cards share the tag, the fourth is untouched
	for _, id := range []string{"c1", "c2", "c3"} {
		stored, _ := f.ctrl.Store().Card(id)
		require.NotNil(t, stored.ClusterID)
		require.Equal(t, result.ClusterID, *stored.ClusterID)
	}
	untouched, _ := f.ctrl.Store().Card("c4")
	require.Nil(t, untouched.ClusterID)

	// Cluster suggestion is surfaced
	sugs := f.ctrl.Store().Suggestions()
	require.Len(t, sugs, 1)
	require.Equal(t, insight.TypeCluster, sugs[0].Type)
	require.Equal(t, "Clustered 3 similar ideas together", sugs[0].Text)
	f.cards.AssertNotCalled(t, "UpdateCluster", mock.Anything, "u1", "c4", mock.Anything)
}

func TestClusterSample_PartialWriteFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedBoard(
		[]column.Column{{ID: "col1", Position: 0}},
		[]card.Card{
			{ID: "c1", ColumnID: "col1", Position: 0},
			{ID: "c2", ColumnID: "col1", Position: 1},
			{ID: "c3", ColumnID: "col1", Position: 2},
		},
	)
	f.allowBackgroundWrites()

	f.cards.On("UpdateCluster", mock.Anything, "u1", "c1", mock.Anything).Return(nil)
	f.cards.On("UpdateCluster", mock.Anything, "u1", "c2", mock.Anything).Return(errors.New("db down"))
	f.cards.On("UpdateCluster", mock.Anything, "u1", "c3", mock.Anything).Return(nil)

	result, outcome := f.ctrl.ClusterSample(ctx)
	require.Equal(t, board.StatusPartial, outcome.Status)
	require.ElementsMatch(t, []string{"c1", "c3"}, result.Tagged)
	require.Equal(t, []string{"c2"}, result.Failed)

	// Successes are reflected locally, the failure is not
	tagged, _ := f.ctrl.Store().Card("c1")
	require.NotNil(t, tagged.ClusterID)
	missed, _ := f.ctrl.Store().Card("c2")
	require.Nil(t, missed.ClusterID)
}

func TestClusterSample_AllWritesFail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedBoard(
		[]column.Column{{ID: "col1", Position: 0}},
		[]card.Card{{ID: "c1", ColumnID: "col1", Position: 0}},
	)
	f.allowBackgroundWrites()

	f.cards.On("UpdateCluster", mock.Anything, "u1", "c1", mock.Anything).Return(errors.New("db down"))

	result, outcome := f.ctrl.ClusterSample(ctx)
	require.Equal(t, board.StatusFailed, outcome.Status)
	require.Empty(t, result.Tagged)
	require.Equal(t, []string{"c1"}, result.Failed)
}

func TestSummarize(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedBoard(
		[]column.Column{{ID: "col1", Position: 0}},
		[]card.Card{{ID: "c1", ColumnID: "col1", Title: "Solar balcony", Position: 0}},
	)
	f.activities.On("Log", mock.Anything, "u1", mock.Anything).Return(nil)

	f.summaries.On("Create", mock.Anything, "u1", mock.MatchedBy(func(sum *insight.Summary) bool {
		return sum.Text == "Your board contains 1 ideas across 1 stages. Key focus areas include innovation, execution, and completion tracking."
	})).Return(nil)

	sum, outcome := f.ctrl.Summarize(ctx)
	require.True(t, outcome.Applied())
	require.Equal(t, []string{"Solar balcony"}, sum.TopIdeas)
	require.Equal(t, sum, f.ctrl.Store().LatestSummary())
	f.summaries.AssertExpectations(t)
}

func TestSummarize_WriteFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedBoard([]column.Column{{ID: "col1", Position: 0}}, nil)

	f.summaries.On("Create", mock.Anything, "u1", mock.Anything).Return(errors.New("db down"))

	sum, outcome := f.ctrl.Summarize(ctx)
	require.Nil(t, sum)
	require.Equal(t, board.StatusFailed, outcome.Status)
	require.Nil(t, f.ctrl.Store().LatestSummary())
}

func TestAcceptSuggestion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedBoard([]column.Column{{ID: "col1", Position: 0}}, nil)
	f.ctrl.Store().PrependSuggestions(insight.Suggestion{ID: "s1", Text: "Try this"})
	f.allowBackgroundWrites()

	f.cards.On("Create", mock.Anything, "u1", mock.MatchedBy(func(c *card.Card) bool {
		return c.ColumnID == "col1"
	})).Return(nil)
	f.suggestions.On("SetAccepted", mock.Anything, "u1", "s1").Return(nil)
	f.suggestions.On("Get", mock.Anything, "u1", "s1").Return(&insight.Suggestion{ID: "s1", IsAccepted: true}, nil)

	created, outcome := f.ctrl.AcceptSuggestion(ctx, "s1")
	require.True(t, outcome.Applied())
	require.NotNil(t, created)

	sugs := f.ctrl.Store().Suggestions()
	require.True(t, sugs[len(sugs)-1].IsAccepted)
}

func TestAcceptSuggestion_FlagWriteFailureIsPartial(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedBoard([]column.Column{{ID: "col1", Position: 0}}, nil)
	f.allowBackgroundWrites()

	f.cards.On("Create", mock.Anything, "u1", mock.Anything).Return(nil)
	f.suggestions.On("SetAccepted", mock.Anything, "u1", "s1").Return(repository.ErrNotFound)

	created, outcome := f.ctrl.AcceptSuggestion(ctx, "s1")
	require.Equal(t, board.StatusPartial, outcome.Status)
	require.ErrorIs(t, outcome.Err(), board.ErrFlagWriteFailed)
	// The created card survives; there is no compensating delete
	require.NotNil(t, created)
	_, ok := f.ctrl.Store().Card(created.ID)
	require.True(t, ok)
}

func TestAcceptSuggestion_BothWritesFail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedBoard([]column.Column{{ID: "col1", Position: 0}}, nil)

	f.cards.On("Create", mock.Anything, "u1", mock.Anything).Return(errors.New("db down"))
	f.suggestions.On("SetAccepted", mock.Anything, "u1", "s1").Return(repository.ErrNotFound)

	created, outcome := f.ctrl.AcceptSuggestion(ctx, "s1")
	require.Nil(t, created)
	require.Equal(t, board.StatusFailed, outcome.Status)
}

func TestAcceptSuggestion_CreateFailsFlagSucceeds(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedBoard([]column.Column{{ID: "col1", Position: 0}}, nil)

	f.cards.On("Create", mock.Anything, "u1", mock.Anything).Return(errors.New("db down"))
	f.suggestions.On("SetAccepted", mock.Anything, "u1", "s1").Return(nil)
	f.suggestions.On("Get", mock.Anything, "u1", "s1").Return(&insight.Suggestion{ID: "s1", IsAccepted: true}, nil)

	created, outcome := f.ctrl.AcceptSuggestion(ctx, "s1")
	require.Nil(t, created)
	require.Equal(t, board.StatusPartial, outcome.Status)
}

package card_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ideaboard/internal/domain/card"
	"ideaboard/internal/repository"
	"ideaboard/internal/repository/mocks"
)

func TestCardService_Create_DefaultTitle(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.CardRepository{}
	repo.On("Create", ctx, "u1", mock.Anything).Return(nil)

	svc := card.NewService(repo, nil, nil)
	created, err := svc.Create(ctx, "u1", card.CreateRequest{ColumnID: "col1", Title: "   ", Position: 2})
	require.NoError(t, err)
	require.Equal(t, card.DefaultTitle, created.Title)
	require.Equal(t, 2, created.Position)
	require.NotEmpty(t, created.ID)
	require.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestCardService_Create_RequiresColumn(t *testing.T) {
	ctx := context.Background()

	svc := card.NewService(&mocks.CardRepository{}, nil, nil)
	_, err := svc.Create(ctx, "u1", card.CreateRequest{Title: "No column"})
	require.ErrorIs(t, err, card.ErrInvalidInput)
}

func TestCardService_Create_UnknownColumn(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.CardRepository{}
	repo.On("Create", ctx, "u1", mock.Anything).Return(repository.ErrForeignKeyViolation)

	svc := card.NewService(repo, nil, nil)
	_, err := svc.Create(ctx, "u1", card.CreateRequest{ColumnID: "missing", Title: "x"})
	require.ErrorIs(t, err, card.ErrInvalidInput)
}

func TestCardService_Update_RejectsBlankTitleBeforeWrite(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.CardRepository{}
	svc := card.NewService(repo, nil, nil)

	_, err := svc.Update(ctx, "u1", "c1", "  \t ", "desc")
	require.ErrorIs(t, err, card.ErrEmptyTitle)
	repo.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCardService_Update_StoresTitleAsGiven(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.CardRepository{}
	repo.On("UpdateContent", ctx, "u1", "c1", "  padded title  ", "d", mock.Anything).Return(nil)

	svc := card.NewService(repo, nil, nil)
	updatedAt, err := svc.Update(ctx, "u1", "c1", "  padded title  ", "d")
	require.NoError(t, err)
	require.False(t, updatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestCardService_Update_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.CardRepository{}
	repo.On("UpdateContent", ctx, "u1", "ghost", "t", "", mock.Anything).Return(repository.ErrNotFound)

	svc := card.NewService(repo, nil, nil)
	_, err := svc.Update(ctx, "u1", "ghost", "t", "")
	require.ErrorIs(t, err, card.ErrCardNotFound)
}

func TestCardService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.CardRepository{}
	repo.On("Delete", ctx, "u1", "ghost").Return(repository.ErrNotFound)

	svc := card.NewService(repo, nil, nil)
	require.ErrorIs(t, svc.Delete(ctx, "u1", "ghost"), card.ErrCardNotFound)
}

func TestCardService_Move(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.CardRepository{}
	repo.On("UpdatePlacement", ctx, "u1", "c1", "col2", 4, mock.Anything).Return(nil)

	svc := card.NewService(repo, nil, nil)
	updatedAt, err := svc.Move(ctx, "u1", "c1", "col2", 4)
	require.NoError(t, err)
	require.False(t, updatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestCardService_AssignCluster_IndependentWrites(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")

	repo := &mocks.CardRepository{}
	repo.On("UpdateCluster", ctx, "u1", "c1", "cl1").Return(nil)
	repo.On("UpdateCluster", ctx, "u1", "c2", "cl1").Return(boom)
	repo.On("UpdateCluster", ctx, "u1", "c3", "cl1").Return(nil)

	svc := card.NewService(repo, nil, nil)
	writes := svc.AssignCluster(ctx, "u1", []string{"c1", "c2", "c3"}, "cl1")
	require.Len(t, writes, 3)

	// Results stay aligned with the input order
	require.Equal(t, "c1", writes[0].CardID)
	require.NoError(t, writes[0].Err)
	require.Equal(t, "c2", writes[1].CardID)
	require.ErrorIs(t, writes[1].Err, boom)
	require.Equal(t, "c3", writes[2].CardID)
	require.NoError(t, writes[2].Err)
}

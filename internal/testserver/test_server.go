package testserver

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ideaboard/internal/auth"
	"ideaboard/internal/board"
	"ideaboard/internal/domain/activity"
	"ideaboard/internal/domain/card"
	"ideaboard/internal/domain/column"
	"ideaboard/internal/domain/insight"
	"ideaboard/internal/mcp"
	"ideaboard/internal/sqlite"
	"ideaboard/internal/transport"
)

type TestServer struct {
	Server *httptest.Server
	DB     *sqlite.DB
	Boards *board.Manager
	Token  string
	UserID string
}

func New(t *testing.T, token, userID string) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	columnRepo := sqlite.NewColumnRepository(db)
	cardRepo := sqlite.NewCardRepository(db)
	suggestionRepo := sqlite.NewSuggestionRepository(db)
	summaryRepo := sqlite.NewSummaryRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)
	searchRepo := sqlite.NewSearchRepository(db)
	tokenRepo := sqlite.NewTokenRepository(db)

	columnSvc := column.NewService(columnRepo, nil)
	cardSvc := card.NewService(cardRepo, searchRepo, nil)
	insightSvc := insight.NewService(suggestionRepo, summaryRepo, insight.NewTemplateGenerator(), nil)
	activitySvc := activity.NewService(activityRepo, nil)

	authn := auth.NewTokenAuthenticator(tokenRepo)

	boards := board.NewManager(board.Deps{
		Columns:    columnSvc,
		Cards:      cardSvc,
		Insights:   insightSvc,
		Activities: activitySvc,
		Auth:       authn,
	})

	server := httptest.NewServer(transport.NewServer(mcp.NewHandler(boards), transport.AuthMiddleware(authn)))

	ts := &TestServer{
		Server: server,
		DB:     db,
		Boards: boards,
		Token:  token,
		UserID: userID,
	}

	require.NoError(t, ts.AddToken(token, userID))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}

func (ts *TestServer) AddToken(token, userID string) error {
	repo := sqlite.NewTokenRepository(ts.DB)
	user := auth.User{ID: userID, Email: userID + "@example.com"}
	return repo.Insert(context.Background(), auth.HashToken(token), user)
}

package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"ideaboard/internal/auth"
	"ideaboard/internal/domain/activity"
	"ideaboard/internal/domain/card"
	"ideaboard/internal/domain/column"
	"ideaboard/internal/domain/insight"
)

// Session carries the authenticated user explicitly through every
// operation; there is no ambient global user.
type Session struct {
	User  auth.User
	Token string
}

// Deps bundles the collaborators a controller needs.
type Deps struct {
	Columns    *column.Service
	Cards      *card.Service
	Insights   *insight.Service
	Activities *activity.Service
	Auth       auth.Authenticator
	Logger     *slog.Logger
}

// Controller orchestrates board intents for one user session: it performs
// the remote write for each mutation and reconciles the in-memory store
// only when the write succeeds. A failed write leaves local state in its
// prior consistent form. Operations are meant to be issued one at a time;
// rapid duplicate intents are not deduplicated, so two concurrent creates
// both succeed and both land on the board.
type Controller struct {
	session Session
	store   *Store
	deps    Deps

	loading    atomic.Bool
	processing atomic.Bool
}

// NewController creates a controller for a session with an empty store.
func NewController(session Session, deps Deps) *Controller {
	return &Controller{
		session: session,
		store:   NewStore(),
		deps:    deps,
	}
}

// Session returns the session this controller serves.
func (c *Controller) Session() Session {
	return c.session
}

// Store exposes the reconciled local state for rendering layers. Renderers
// must treat it as read-only.
func (c *Controller) Store() *Store {
	return c.store
}

// Loading reports whether the initial bulk fetch is in flight.
func (c *Controller) Loading() bool {
	return c.loading.Load()
}

// Processing reports whether an insight-generating operation is in flight.
func (c *Controller) Processing() bool {
	return c.processing.Load()
}

// Load fetches columns, cards, recent suggestions, and the latest summary
// concurrently, then resets the store. A user with zero columns gets the
// default set before the board is served. Only a column fetch failure is
// fatal; the other collections degrade to empty with a log line.
func (c *Controller) Load(ctx context.Context) error {
	c.loading.Store(true)
	defer c.loading.Store(false)

	userID := c.session.User.ID

	var (
		cols    []column.Column
		cards_  []card.Card
		sugs    []insight.Suggestion
		sum     *insight.Summary
		colErr  error
		cardErr error
		sugErr  error
		sumErr  error
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		cols, colErr = c.deps.Columns.List(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		cards_, cardErr = c.deps.Cards.List(ctx, userID, card.ListOptions{})
	}()
	go func() {
		defer wg.Done()
		sugs, sugErr = c.deps.Insights.Recent(ctx, userID, insight.RecentSuggestionLimit)
	}()
	go func() {
		defer wg.Done()
		sum, sumErr = c.deps.Insights.LatestSummary(ctx, userID)
		if errors.Is(sumErr, insight.ErrNoSummary) {
			sum, sumErr = nil, nil
		}
	}()
	wg.Wait()

	if colErr != nil {
		return fmt.Errorf("loading columns: %w", colErr)
	}
	if len(cols) == 0 {
		cols, colErr = c.deps.Columns.EnsureDefaults(ctx, userID)
		if colErr != nil {
			return fmt.Errorf("initializing columns: %w", colErr)
		}
	}

	for _, err := range []error{cardErr, sugErr, sumErr} {
		if err != nil {
			c.logf("board load degraded", "error", err)
		}
	}

	c.store.Reset(cols, cards_, sugs, sum)
	return nil
}

// CreateCard writes a new card into the given column, or the first column
// when none is given. The card lands after every existing card in that
// column. On success the card enters the store and suggestion generation
// runs as an isolated best-effort step.
func (c *Controller) CreateCard(ctx context.Context, columnID string) (*card.Card, Outcome) {
	return c.createCard(ctx, columnID, activity.TypeCardCreated)
}

func (c *Controller) createCard(ctx context.Context, columnID string, event activity.Type) (*card.Card, Outcome) {
	target := columnID
	if target == "" {
		first, ok := c.store.FirstColumn()
		if !ok {
			return nil, skipped(ErrNoColumns)
		}
		target = first.ID
	}

	pos := card.NextPosition(c.store.CardsByColumn(target))
	created, err := c.deps.Cards.Create(ctx, c.session.User.ID, card.CreateRequest{
		ColumnID: target,
		Position: pos,
	})
	if err != nil {
		c.logf("create card failed", "column_id", target, "error", err)
		return nil, failed(err)
	}

	c.store.UpsertCard(*created)
	c.recordActivity(ctx, event, &created.ID, fmt.Sprintf("created card %q", created.Title))

	c.generateSuggestions(ctx, *created)

	return created, applied()
}

// generateSuggestions runs the insight generation for a new card. Failures
// never affect the card that triggered them.
func (c *Controller) generateSuggestions(ctx context.Context, created card.Card) {
	c.processing.Store(true)
	defer c.processing.Store(false)

	sugs, err := c.deps.Insights.GenerateForCard(ctx, c.session.User.ID, created)
	if err != nil {
		c.logf("suggestion generation degraded", "card_id", created.ID, "error", err)
	}
	c.store.PrependSuggestions(sugs...)
}

// UpdateCard writes a card's title and description. A title trimming to
// empty skips the write entirely; the stored record keeps its prior title.
func (c *Controller) UpdateCard(ctx context.Context, id, title, description string) Outcome {
	stored, ok := c.store.Card(id)
	if !ok {
		return failed(card.ErrCardNotFound)
	}

	updatedAt, err := c.deps.Cards.Update(ctx, c.session.User.ID, id, title, description)
	if errors.Is(err, card.ErrEmptyTitle) {
		return skipped(err)
	}
	if err != nil {
		c.logf("update card failed", "card_id", id, "error", err)
		return failed(err)
	}

	stored.Title = title
	stored.Description = description
	stored.UpdatedAt = updatedAt
	c.store.UpsertCard(stored)
	c.recordActivity(ctx, activity.TypeCardUpdated, &id, fmt.Sprintf("updated card %q", title))
	return applied()
}

// DeleteCard removes a card remotely and, on success, locally.
func (c *Controller) DeleteCard(ctx context.Context, id string) Outcome {
	if err := c.deps.Cards.Delete(ctx, c.session.User.ID, id); err != nil {
		c.logf("delete card failed", "card_id", id, "error", err)
		return failed(err)
	}

	c.store.RemoveCard(id)
	c.recordActivity(ctx, activity.TypeCardDeleted, &id, "deleted card")
	return applied()
}

// MoveCard places a card at the end of the target column. Dropping a card
// on its current column is a recognized no-op.
func (c *Controller) MoveCard(ctx context.Context, id, targetColumnID string) Outcome {
	stored, ok := c.store.Card(id)
	if !ok {
		return failed(card.ErrCardNotFound)
	}
	if stored.ColumnID == targetColumnID {
		return skipped(card.ErrSameColumn)
	}

	pos := card.NextPosition(c.store.CardsByColumn(targetColumnID))
	updatedAt, err := c.deps.Cards.Move(ctx, c.session.User.ID, id, targetColumnID, pos)
	if err != nil {
		c.logf("move card failed", "card_id", id, "column_id", targetColumnID, "error", err)
		return failed(err)
	}

	stored.ColumnID = targetColumnID
	stored.Position = pos
	stored.UpdatedAt = updatedAt
	c.store.UpsertCard(stored)
	c.recordActivity(ctx, activity.TypeCardMoved, &id, fmt.Sprintf("moved card %q", stored.Title))
	return applied()
}

// ClusterResult describes which cards received the shared tag.
type ClusterResult struct {
	ClusterID string   `json:"cluster_id"`
	Tagged    []string `json:"tagged"`
	Failed    []string `json:"failed,omitempty"`
}

// ClusterSample tags the first min(3, N) cards in store order with one
// freshly generated cluster tag, then records a cluster suggestion. Tag
// writes are independent; the ones that succeed are reflected locally even
// when others fail. An empty board performs no writes at all.
func (c *Controller) ClusterSample(ctx context.Context) (*ClusterResult, Outcome) {
	c.processing.Store(true)
	defer c.processing.Store(false)

	cards_ := c.store.Cards()
	if len(cards_) == 0 {
		return nil, skipped(ErrNoCards)
	}

	n := min(3, len(cards_))
	sample := cards_[:n]
	ids := make([]string, n)
	for i, sc := range sample {
		ids[i] = sc.ID
	}

	clusterID := uuid.NewString()
	writes := c.deps.Cards.AssignCluster(ctx, c.session.User.ID, ids, clusterID)

	result := &ClusterResult{ClusterID: clusterID}
	var writeErr error
	for i, w := range writes {
		if w.Err != nil {
			result.Failed = append(result.Failed, w.CardID)
			writeErr = errors.Join(writeErr, w.Err)
			continue
		}
		result.Tagged = append(result.Tagged, w.CardID)
		tagged := sample[i]
		tagged.ClusterID = &clusterID
		c.store.UpsertCard(tagged)
	}

	sug, sugErr := c.deps.Insights.RecordCluster(ctx, c.session.User.ID, n)
	if sugErr != nil {
		c.logf("cluster suggestion failed", "error", sugErr)
	} else {
		c.store.PrependSuggestions(*sug)
	}

	c.recordActivity(ctx, activity.TypeCardsClustered, nil, fmt.Sprintf("clustered %d cards", len(result.Tagged)))

	switch {
	case len(result.Tagged) == 0:
		return result, failed(writeErr)
	case writeErr != nil || sugErr != nil:
		return result, partial(errors.Join(writeErr, sugErr))
	default:
		return result, applied()
	}
}

// Summarize composes a digest of the current board and makes it the
// current summary on success.
func (c *Controller) Summarize(ctx context.Context) (*insight.Summary, Outcome) {
	c.processing.Store(true)
	defer c.processing.Store(false)

	sum, err := c.deps.Insights.Summarize(ctx, c.session.User.ID, c.store.Cards(), c.store.Columns())
	if err != nil {
		c.logf("summarize failed", "error", err)
		return nil, failed(err)
	}

	c.store.SetSummary(sum)
	c.recordActivity(ctx, activity.TypeBoardSummarized, nil, "summarized board")
	return sum, applied()
}

// AcceptSuggestion turns a suggestion into a card in the first column and
// then flags the suggestion accepted. The two writes are deliberately not
// transactional: a created card survives a failed flag write, and the
// inconsistency is reported as a partial outcome instead of being repaired.
func (c *Controller) AcceptSuggestion(ctx context.Context, id string) (*card.Card, Outcome) {
	created, createOut := c.createCard(ctx, "", activity.TypeSuggestionAccepted)

	accepted, err := c.deps.Insights.Accept(ctx, c.session.User.ID, id)
	if err != nil {
		c.logf("accept suggestion failed", "suggestion_id", id, "error", err)
		if created == nil {
			return nil, failed(errors.Join(createOut.Err(), err))
		}
		return created, partial(ErrFlagWriteFailed)
	}
	c.store.MarkSuggestionAccepted(accepted.ID)

	if created == nil {
		return nil, partial(createOut.Err())
	}
	return created, applied()
}

// SignOut ends the session with the authentication collaborator.
func (c *Controller) SignOut(ctx context.Context) error {
	return c.deps.Auth.SignOut(ctx, c.session.Token)
}

// RecentActivity lists the latest board events.
func (c *Controller) RecentActivity(ctx context.Context, limit int) ([]activity.Entry, error) {
	if c.deps.Activities == nil {
		return nil, nil
	}
	return c.deps.Activities.Recent(ctx, c.session.User.ID, activity.ListOptions{Limit: limit})
}

// SearchCards runs full-text search over the user's cards.
func (c *Controller) SearchCards(ctx context.Context, query string, limit int) ([]card.SearchResult, error) {
	return c.deps.Cards.Search(ctx, c.session.User.ID, query, card.SearchOptions{Limit: limit})
}

// recordActivity appends a board event, best-effort.
func (c *Controller) recordActivity(ctx context.Context, typ activity.Type, cardID *string, summary string) {
	if c.deps.Activities == nil {
		return
	}
	entry := &activity.Entry{CardID: cardID, Type: typ, Summary: summary, UserID: c.session.User.ID}
	if err := c.deps.Activities.Record(ctx, c.session.User.ID, entry); err != nil {
		c.logf("activity log failed", "type", typ, "error", err)
	}
}

func (c *Controller) logf(msg string, args ...any) {
	if c.deps.Logger == nil {
		return
	}
	c.deps.Logger.Warn(msg, append([]any{"user_id", c.session.User.ID}, args...)...)
}

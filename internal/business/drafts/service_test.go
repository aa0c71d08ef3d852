package drafts

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SergeyKozhin/crm-calendar/internal/business/events"
	"github.com/SergeyKozhin/crm-calendar/internal/memstore"
	"github.com/SergeyKozhin/crm-calendar/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var now = time.Date(2024, time.March, 20, 14, 5, 0, 0, time.UTC)

type counterIDs struct {
	n int
}

func (c *counterIDs) String(int) (string, error) {
	c.n++
	return fmt.Sprintf("event%d", c.n), nil
}

func newServices(t *testing.T) (*Service, *events.Service, *memstore.Events) {
	t.Helper()

	clock := func() time.Time { return now }
	store := memstore.NewEvents()
	eventsService := events.NewService(store, &counterIDs{}, 9, clock)

	return NewService(memstore.NewDrafts(time.Hour, clock), eventsService, clock, zap.NewNop().Sugar()), eventsService, store
}

func ptr[T any](v T) *T {
	return &v
}

func TestStartAndGet(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newServices(t)

	session, draft, err := s.Start(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, session)
	assert.Equal(t, "2024-03-20", draft.Date)
	assert.Equal(t, "14:05", draft.Time)
	assert.Equal(t, model.ColorBlue, draft.Color)

	got, err := s.Get(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, draft, got)

	other, _, err := s.Start(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, session, other)
}

func TestGetUnknownSessionReturnsDefaults(t *testing.T) {
	s, _, _ := newServices(t)

	draft, err := s.Get(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Equal(t, model.NewDraft(now), draft)
}

func TestPatchAndCommitCreates(t *testing.T) {
	ctx := context.Background()
	s, _, store := newServices(t)

	session, _, err := s.Start(ctx)
	require.NoError(t, err)

	_, err = s.Patch(ctx, session, model.DraftPatch{
		Title: ptr("Team Meeting"),
		Email: ptr("team@example.com"),
		Time:  ptr("10:00"),
		Color: ptr(model.ColorGreen),
	})
	require.NoError(t, err)

	event, err := s.Commit(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, "event1", event.ID)
	assert.Equal(t, "10:00 AM", event.Time)
	assert.Equal(t, model.ColorGreen, event.Color)
	assert.Equal(t, 1, store.Len())

	draft, err := s.Get(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, model.NewDraft(now), draft)
}

func TestCommitRejectedKeepsDraft(t *testing.T) {
	ctx := context.Background()
	s, _, store := newServices(t)

	session, _, err := s.Start(ctx)
	require.NoError(t, err)
	_, err = s.Patch(ctx, session, model.DraftPatch{Email: ptr("team@example.com")})
	require.NoError(t, err)

	_, err = s.Commit(ctx, session)
	vErr, ok := events.IsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "title")
	assert.Equal(t, 0, store.Len())

	draft, err := s.Get(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, "team@example.com", draft.Email)
}

func TestEditAndCommitUpdates(t *testing.T) {
	ctx := context.Background()
	s, eventsService, store := newServices(t)

	created, err := eventsService.CreateEvent(ctx, &model.EventCreate{
		Title: "Project Review",
		Date:  "2024-03-22",
		Time:  "14:00",
		Email: "project@example.com",
		Color: model.ColorPurple,
	})
	require.NoError(t, err)

	session, _, err := s.Start(ctx)
	require.NoError(t, err)

	draft, err := s.Edit(ctx, session, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, draft.EditingID)
	assert.Equal(t, "14:00", draft.Time)

	_, err = s.Patch(ctx, session, model.DraftPatch{Title: ptr("Q1 Review")})
	require.NoError(t, err)

	updated, err := s.Commit(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Q1 Review", updated.Title)
	assert.Equal(t, "2:00 PM", updated.Time)
	assert.Equal(t, 1, store.Len())
}

func TestEditUnknownEvent(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newServices(t)

	_, err := s.Edit(ctx, "session", "missing")
	assert.ErrorIs(t, err, model.ErrNoRecord)
}

func TestCommitEditOfDeletedEvent(t *testing.T) {
	ctx := context.Background()
	s, eventsService, _ := newServices(t)

	created, err := eventsService.CreateEvent(ctx, &model.EventCreate{
		Title: "Project Review",
		Date:  "2024-03-22",
		Time:  "14:00",
		Email: "project@example.com",
	})
	require.NoError(t, err)

	_, err = s.Edit(ctx, "session", created.ID)
	require.NoError(t, err)
	require.NoError(t, eventsService.DeleteEvent(ctx, created.ID))

	_, err = s.Commit(ctx, "session")
	assert.ErrorIs(t, err, model.ErrNoRecord)
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newServices(t)

	session, _, err := s.Start(ctx)
	require.NoError(t, err)
	_, err = s.Patch(ctx, session, model.DraftPatch{Title: ptr("Temp")})
	require.NoError(t, err)

	require.NoError(t, s.Cancel(ctx, session))

	draft, err := s.Get(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, "", draft.Title)
}

type failingReset struct {
	*memstore.Drafts
}

func (f failingReset) DeleteDraft(context.Context, string) error {
	return errors.New("connection reset")
}

func TestCommitReturnsEventWhenResetFails(t *testing.T) {
	clock := func() time.Time { return now }
	store := memstore.NewEvents()
	eventsService := events.NewService(store, &counterIDs{}, 9, clock)

	core, logs := observer.New(zap.ErrorLevel)
	s := NewService(failingReset{memstore.NewDrafts(time.Hour, clock)}, eventsService, clock, zap.New(core).Sugar())

	ctx := context.Background()
	session, _, err := s.Start(ctx)
	require.NoError(t, err)

	_, err = s.Patch(ctx, session, model.DraftPatch{
		Title: ptr("Call"),
		Email: ptr("c@example.com"),
	})
	require.NoError(t, err)

	event, err := s.Commit(ctx, session)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "Call", event.Title)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 1, logs.FilterMessage("Failed resetting committed draft").Len())
}

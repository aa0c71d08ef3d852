package events

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SergeyKozhin/crm-calendar/internal/business/calendar"
	"github.com/SergeyKozhin/crm-calendar/internal/memstore"
	"github.com/SergeyKozhin/crm-calendar/internal/model"
	"github.com/SergeyKozhin/crm-calendar/internal/pkg/timefmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.March, 20, 9, 30, 0, 0, time.UTC)

type sequentialIDs struct {
	ids []string
	err error
}

func (g *sequentialIDs) String(int) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	if len(g.ids) == 0 {
		return "", errors.New("out of ids")
	}

	id := g.ids[0]
	g.ids = g.ids[1:]
	return id, nil
}

func newService(t *testing.T, ids ...string) (*Service, *memstore.Events) {
	t.Helper()

	if len(ids) == 0 {
		for i := 1; i <= 10; i++ {
			ids = append(ids, fmt.Sprintf("id%d", i))
		}
	}

	store := memstore.NewEvents()
	return NewService(store, &sequentialIDs{ids: ids}, 9, func() time.Time { return now }), store
}

func validDraft() *model.EventCreate {
	return &model.EventCreate{
		Title:       "Team Meeting",
		Date:        "2024-03-20",
		Time:        "14:00",
		Email:       "team@example.com",
		Color:       model.ColorPurple,
		Description: "Weekly team sync",
	}
}

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()
	s, store := newService(t)

	event, err := s.CreateEvent(ctx, validDraft())
	require.NoError(t, err)

	assert.Equal(t, "id1", event.ID)
	assert.Equal(t, "2:00 PM", event.Time)
	assert.Equal(t, "Team Meeting", event.Title)
	assert.Equal(t, model.ColorPurple, event.Color)

	stored, err := store.GetEventByID(ctx, "id1")
	require.NoError(t, err)
	assert.Equal(t, event, stored)

	back, err := timefmt.To24Hour(stored.Time)
	require.NoError(t, err)
	assert.Equal(t, "14:00", back)
}

func TestCreateEventDefaultsColor(t *testing.T) {
	s, _ := newService(t)

	draft := validDraft()
	draft.Color = ""

	event, err := s.CreateEvent(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, model.ColorBlue, event.Color)
}

func TestCreateEventValidation(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(d *model.EventCreate)
		field string
	}{
		{"missing title", func(d *model.EventCreate) { d.Title = "" }, "title"},
		{"blank title", func(d *model.EventCreate) { d.Title = "   " }, "title"},
		{"missing time", func(d *model.EventCreate) { d.Time = "" }, "time"},
		{"missing email", func(d *model.EventCreate) { d.Email = "" }, "email"},
		{"malformed email", func(d *model.EventCreate) { d.Email = "team at example" }, "email"},
		{"missing date", func(d *model.EventCreate) { d.Date = "" }, "date"},
		{"malformed date", func(d *model.EventCreate) { d.Date = "20/03/2024" }, "date"},
		{"impossible date", func(d *model.EventCreate) { d.Date = "2024-02-30" }, "date"},
		{"malformed time", func(d *model.EventCreate) { d.Time = "soon" }, "time"},
		{"unknown color", func(d *model.EventCreate) { d.Color = "orange" }, "color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, store := newService(t)

			draft := validDraft()
			tt.edit(draft)

			_, err := s.CreateEvent(context.Background(), draft)
			vErr, ok := IsValidationError(err)
			require.True(t, ok, "expected validation error, got %v", err)
			assert.Contains(t, vErr.Errors, tt.field)
			assert.Equal(t, 0, store.Len())
		})
	}
}

func TestCreateEventRetriesTakenID(t *testing.T) {
	ctx := context.Background()
	s, store := newService(t, "dup", "dup", "fresh")

	_, err := s.CreateEvent(ctx, validDraft())
	require.NoError(t, err)

	event, err := s.CreateEvent(ctx, validDraft())
	require.NoError(t, err)
	assert.Equal(t, "fresh", event.ID)
	assert.Equal(t, 2, store.Len())
}

func TestCreateEventIDSourceFailure(t *testing.T) {
	store := memstore.NewEvents()
	s := NewService(store, &sequentialIDs{err: errors.New("entropy")}, 9, nil)

	_, err := s.CreateEvent(context.Background(), validDraft())
	require.Error(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestUpdateEvent(t *testing.T) {
	ctx := context.Background()
	s, _ := newService(t)

	created, err := s.CreateEvent(ctx, validDraft())
	require.NoError(t, err)

	updated, err := s.UpdateEvent(ctx, created.ID, &model.EventCreate{
		Title:       "Project Review",
		Date:        "2024-03-22",
		Time:        "09:05",
		Email:       "project@example.com",
		Color:       model.ColorGreen,
		Description: "",
	})
	require.NoError(t, err)

	stored, err := s.GetEventByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
	assert.Equal(t, created.ID, stored.ID)
	assert.Equal(t, "Project Review", stored.Title)
	assert.Equal(t, "2024-03-22", stored.Date)
	assert.Equal(t, "9:05 AM", stored.Time)
	assert.Equal(t, "project@example.com", stored.Email)
	assert.Equal(t, model.ColorGreen, stored.Color)
	assert.Equal(t, "", stored.Description)
}

func TestUpdateEventNotFound(t *testing.T) {
	s, store := newService(t)

	_, err := s.UpdateEvent(context.Background(), "missing", validDraft())
	assert.ErrorIs(t, err, model.ErrNoRecord)
	assert.Equal(t, 0, store.Len())
}

func TestUpdateEventValidationKeepsStore(t *testing.T) {
	ctx := context.Background()
	s, _ := newService(t)

	created, err := s.CreateEvent(ctx, validDraft())
	require.NoError(t, err)

	draft := validDraft()
	draft.Email = ""
	_, err = s.UpdateEvent(ctx, created.ID, draft)
	_, ok := IsValidationError(err)
	require.True(t, ok)

	stored, err := s.GetEventByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, stored)
}

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()
	s, _ := newService(t)

	first, err := s.CreateEvent(ctx, validDraft())
	require.NoError(t, err)
	_, err = s.CreateEvent(ctx, validDraft())
	require.NoError(t, err)

	before, err := s.GetEvents(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, s.DeleteEvent(ctx, "missing"), model.ErrNoRecord)
	after, err := s.GetEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	require.NoError(t, s.DeleteEvent(ctx, first.ID))
	after, err = s.GetEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 1)
}

func TestGetDays(t *testing.T) {
	ctx := context.Background()
	s, _ := newService(t)

	first := validDraft()
	_, err := s.CreateEvent(ctx, first)
	require.NoError(t, err)

	second := validDraft()
	second.Date = "2024-03-22"
	_, err = s.CreateEvent(ctx, second)
	require.NoError(t, err)

	days, err := s.GetDays(ctx, calendar.NewView(model.NewDate(2024, time.March, 21), model.GranularityWeek), true)
	require.NoError(t, err)
	require.Len(t, days, 7)

	counts := map[string]int{}
	for _, d := range days {
		counts[d.Date.String()] = len(d.Events)
		if d.Date.String() == "2024-03-20" {
			assert.True(t, d.Today)
		}
	}
	assert.Equal(t, 1, counts["2024-03-20"])
	assert.Equal(t, 0, counts["2024-03-21"])
	assert.Equal(t, 1, counts["2024-03-22"])
}

func TestEditDraft(t *testing.T) {
	ctx := context.Background()
	s, _ := newService(t)

	created, err := s.CreateEvent(ctx, validDraft())
	require.NoError(t, err)

	draft, err := s.EditDraft(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, draft.EditingID)
	assert.Equal(t, "14:00", draft.Time)
	assert.Equal(t, created.Title, draft.Title)

	_, err = s.EditDraft(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrNoRecord)
}

func TestEditDraftUnparseableStoredTime(t *testing.T) {
	ctx := context.Background()
	s, store := newService(t)

	require.NoError(t, store.CreateEvent(ctx, &model.Event{
		ID: "legacy",
		EventCreate: model.EventCreate{
			Title: "Imported",
			Date:  "2024-03-20",
			Time:  "noonish",
			Email: "x@example.com",
			Color: model.ColorRed,
		},
	}))

	_, err := s.EditDraft(ctx, "legacy")
	assert.ErrorIs(t, err, timefmt.ErrUnparseableTime)
}

func TestCreateEventColorMessageListsPalette(t *testing.T) {
	s, _ := newService(t)

	draft := validDraft()
	draft.Color = "orange"

	_, err := s.CreateEvent(context.Background(), draft)
	vErr, ok := IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "color must be one of blue, purple, green, red", vErr.Errors["color"])
}

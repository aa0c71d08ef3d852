package events

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/crm-calendar/internal/business/calendar"
	"github.com/SergeyKozhin/crm-calendar/internal/model"
	"github.com/SergeyKozhin/crm-calendar/internal/pkg/timefmt"
)

func (s *Service) GetEventByID(ctx context.Context, id string) (*model.Event, error) {
	event, err := s.eventsRepository.GetEventByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	return event, nil
}

// GetEvents lists events in insertion order.
func (s *Service) GetEvents(ctx context.Context) ([]*model.Event, error) {
	events, err := s.eventsRepository.GetEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEvents: %w", err)
	}

	return events, nil
}

// GetDays returns the window of view with the stored events binned onto it.
func (s *Service) GetDays(ctx context.Context, view calendar.View, padded bool) ([]calendar.DayBucket, error) {
	events, err := s.GetEvents(ctx)
	if err != nil {
		return nil, err
	}

	return calendar.Bucket(view.Days(padded), events, s.Today()), nil
}

// EditDraft returns a draft populated from a stored event, with the time
// converted back to the 24-hour input form.
func (s *Service) EditDraft(ctx context.Context, id string) (*model.Draft, error) {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hhmm, err := timefmt.To24Hour(event.Time)
	if err != nil {
		return nil, fmt.Errorf("event %v: %w", id, err)
	}

	draft := &model.Draft{
		EditingID:   event.ID,
		EventCreate: event.EventCreate,
	}
	draft.SetTime(hhmm)

	return draft, nil
}

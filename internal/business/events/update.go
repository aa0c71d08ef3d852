package events

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/crm-calendar/internal/model"
)

// UpdateEvent replaces every field of the event except its id. It returns
// model.ErrNoRecord when id is unknown.
func (s *Service) UpdateEvent(ctx context.Context, id string, info *model.EventCreate) (*model.Event, error) {
	normalized, err := normalize(info)
	if err != nil {
		return nil, err
	}

	event := &model.Event{
		ID:          id,
		EventCreate: *normalized,
	}

	if err := s.eventsRepository.UpdateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("eventsRepository.UpdateEvent: %w", err)
	}

	return event, nil
}

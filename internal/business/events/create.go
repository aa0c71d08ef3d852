package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyKozhin/crm-calendar/internal/model"
)

const maxIDAttempts = 5

func (s *Service) CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error) {
	normalized, err := normalize(info)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := s.ids.String(s.idLength)
		if err != nil {
			return nil, fmt.Errorf("generate id: %w", err)
		}

		event := &model.Event{
			ID:          id,
			EventCreate: *normalized,
		}

		if err := s.eventsRepository.CreateEvent(ctx, event); err != nil {
			if errors.Is(err, model.ErrAlreadyExists) {
				continue
			}
			return nil, fmt.Errorf("eventsRepository.CreateEvent: %w", err)
		}

		return event, nil
	}

	return nil, fmt.Errorf("no free id after %d attempts: %w", maxIDAttempts, model.ErrAlreadyExists)
}

package events

import (
	"context"
	"fmt"
)

// DeleteEvent returns model.ErrNoRecord when id is unknown; the store is left
// as it was.
func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	if err := s.eventsRepository.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("eventsRepository.DeleteEvent: %w", err)
	}

	return nil
}

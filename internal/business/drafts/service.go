// Package drafts keeps the create/edit form state of each console session.
package drafts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyKozhin/crm-calendar/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	draftsRepository draftsRepository
	eventsService    eventsService
	now              func() time.Time
	logger           *zap.SugaredLogger
}

type draftsRepository interface {
	GetDraft(ctx context.Context, session string) (*model.Draft, error)
	SaveDraft(ctx context.Context, session string, draft *model.Draft) error
	DeleteDraft(ctx context.Context, session string) error
}

type eventsService interface {
	CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error)
	UpdateEvent(ctx context.Context, id string, info *model.EventCreate) (*model.Event, error)
	EditDraft(ctx context.Context, id string) (*model.Draft, error)
}

func NewService(repo draftsRepository, events eventsService, now func() time.Time, logger *zap.SugaredLogger) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{
		draftsRepository: repo,
		eventsService:    events,
		now:              now,
		logger:           logger,
	}
}

// Start opens a new session with a default draft.
func (s *Service) Start(ctx context.Context) (string, *model.Draft, error) {
	session := uuid.NewString()
	draft := model.NewDraft(s.now())

	if err := s.draftsRepository.SaveDraft(ctx, session, draft); err != nil {
		return "", nil, fmt.Errorf("draftsRepository.SaveDraft: %w", err)
	}

	return session, draft, nil
}

// Get returns the session draft, or a default one when nothing is staged.
func (s *Service) Get(ctx context.Context, session string) (*model.Draft, error) {
	draft, err := s.draftsRepository.GetDraft(ctx, session)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return model.NewDraft(s.now()), nil
		}
		return nil, fmt.Errorf("draftsRepository.GetDraft: %w", err)
	}

	return draft, nil
}

func (s *Service) Patch(ctx context.Context, session string, patch model.DraftPatch) (*model.Draft, error) {
	draft, err := s.Get(ctx, session)
	if err != nil {
		return nil, err
	}

	draft.Apply(patch)

	if err := s.draftsRepository.SaveDraft(ctx, session, draft); err != nil {
		return nil, fmt.Errorf("draftsRepository.SaveDraft: %w", err)
	}

	return draft, nil
}

// Edit stages a stored event for editing in the session.
func (s *Service) Edit(ctx context.Context, session, eventID string) (*model.Draft, error) {
	draft, err := s.eventsService.EditDraft(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("eventsService.EditDraft: %w", err)
	}

	if err := s.draftsRepository.SaveDraft(ctx, session, draft); err != nil {
		return nil, fmt.Errorf("draftsRepository.SaveDraft: %w", err)
	}

	return draft, nil
}

// Commit creates or updates the event staged in the session and resets the
// draft. A rejected draft stays staged. The event is committed once the
// events service accepts it, so a failed reset is only logged.
func (s *Service) Commit(ctx context.Context, session string) (*model.Event, error) {
	draft, err := s.Get(ctx, session)
	if err != nil {
		return nil, err
	}

	var event *model.Event
	if draft.EditingID != "" {
		event, err = s.eventsService.UpdateEvent(ctx, draft.EditingID, &draft.EventCreate)
	} else {
		event, err = s.eventsService.CreateEvent(ctx, &draft.EventCreate)
	}
	if err != nil {
		return nil, err
	}

	if err := s.Cancel(ctx, session); err != nil {
		s.logger.Errorw("Failed resetting committed draft", "session", session, "event", event.ID, "err", err)
	}

	return event, nil
}

// Cancel discards the session draft.
func (s *Service) Cancel(ctx context.Context, session string) error {
	if err := s.draftsRepository.DeleteDraft(ctx, session); err != nil {
		return fmt.Errorf("draftsRepository.DeleteDraft: %w", err)
	}

	return nil
}

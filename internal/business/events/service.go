package events

import (
	"context"
	"time"

	"github.com/SergeyKozhin/crm-calendar/internal/model"
)

type Service struct {
	eventsRepository eventsRepository
	ids              idGenerator
	idLength         int
	now              func() time.Time
}

type eventsRepository interface {
	CreateEvent(ctx context.Context, event *model.Event) error
	GetEventByID(ctx context.Context, id string) (*model.Event, error)
	GetEvents(ctx context.Context) ([]*model.Event, error)
	UpdateEvent(ctx context.Context, event *model.Event) error
	DeleteEvent(ctx context.Context, id string) error
}

type idGenerator interface {
	String(n int) (string, error)
}

func NewService(repo eventsRepository, ids idGenerator, idLength int, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{
		eventsRepository: repo,
		ids:              ids,
		idLength:         idLength,
		now:              now,
	}
}

// Today is the current calendar day of the service clock.
func (s *Service) Today() model.Date {
	return model.DateOf(s.now())
}

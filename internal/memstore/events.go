// Package memstore keeps events and drafts in process memory.
package memstore

import (
	"context"
	"sync"

	"github.com/SergeyKozhin/crm-calendar/internal/model"
)

// Events is an insertion-ordered event collection. Mutations build a new
// snapshot and swap it in, so readers never see a partial update.
type Events struct {
	mu       sync.RWMutex
	snapshot []*model.Event
}

func NewEvents() *Events {
	return &Events{}
}

func (s *Events) CreateEvent(_ context.Context, event *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if indexOf(s.snapshot, event.ID) >= 0 {
		return model.ErrAlreadyExists
	}

	next := make([]*model.Event, len(s.snapshot), len(s.snapshot)+1)
	copy(next, s.snapshot)
	s.snapshot = append(next, clone(event))

	return nil
}

func (s *Events) GetEventByID(_ context.Context, id string) (*model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.snapshot, id)
	if i < 0 {
		return nil, model.ErrNoRecord
	}

	return clone(s.snapshot[i]), nil
}

func (s *Events) GetEvents(_ context.Context) ([]*model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*model.Event, len(s.snapshot))
	for i, e := range s.snapshot {
		res[i] = clone(e)
	}

	return res, nil
}

func (s *Events) UpdateEvent(_ context.Context, event *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.snapshot, event.ID)
	if i < 0 {
		return model.ErrNoRecord
	}

	next := make([]*model.Event, len(s.snapshot))
	copy(next, s.snapshot)
	next[i] = clone(event)
	s.snapshot = next

	return nil
}

func (s *Events) DeleteEvent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.snapshot, id)
	if i < 0 {
		return model.ErrNoRecord
	}

	next := make([]*model.Event, 0, len(s.snapshot)-1)
	next = append(next, s.snapshot[:i]...)
	s.snapshot = append(next, s.snapshot[i+1:]...)

	return nil
}

func (s *Events) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.snapshot)
}

func indexOf(events []*model.Event, id string) int {
	for i, e := range events {
		if e.ID == id {
			return i
		}
	}

	return -1
}

func clone(e *model.Event) *model.Event {
	c := *e
	return &c
}

package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/SergeyKozhin/crm-calendar/internal/model"
)

type draftEntry struct {
	draft   model.Draft
	expires time.Time
}

// Drafts keeps one draft per session until it expires.
type Drafts struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]draftEntry
}

func NewDrafts(ttl time.Duration, now func() time.Time) *Drafts {
	if now == nil {
		now = time.Now
	}

	return &Drafts{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]draftEntry),
	}
}

func (s *Drafts) GetDraft(_ context.Context, session string) (*model.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[session]
	if !ok {
		return nil, model.ErrNoRecord
	}

	if s.ttl > 0 && !s.now().Before(e.expires) {
		delete(s.entries, session)
		return nil, model.ErrNoRecord
	}

	d := e.draft
	return &d, nil
}

func (s *Drafts) SaveDraft(_ context.Context, session string, draft *model.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[session] = draftEntry{
		draft:   *draft,
		expires: s.now().Add(s.ttl),
	}

	return nil
}

func (s *Drafts) DeleteDraft(_ context.Context, session string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, session)
	return nil
}

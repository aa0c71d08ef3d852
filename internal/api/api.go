package api

import (
	"context"
	"net/http"

	"github.com/SergeyKozhin/crm-calendar/internal/business/calendar"
	"github.com/SergeyKozhin/crm-calendar/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Api struct {
	handler      http.Handler
	logger       *zap.SugaredLogger
	maxBodyBytes int64
	padMonth     bool

	eventsService eventsService
	draftsService draftsService
}

type eventsService interface {
	CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error)
	GetEventByID(ctx context.Context, id string) (*model.Event, error)
	GetEvents(ctx context.Context) ([]*model.Event, error)
	UpdateEvent(ctx context.Context, id string, info *model.EventCreate) (*model.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	GetDays(ctx context.Context, view calendar.View, padded bool) ([]calendar.DayBucket, error)
	EditDraft(ctx context.Context, id string) (*model.Draft, error)
	Today() model.Date
}

type draftsService interface {
	Start(ctx context.Context) (string, *model.Draft, error)
	Get(ctx context.Context, session string) (*model.Draft, error)
	Patch(ctx context.Context, session string, patch model.DraftPatch) (*model.Draft, error)
	Edit(ctx context.Context, session, eventID string) (*model.Draft, error)
	Commit(ctx context.Context, session string) (*model.Event, error)
	Cancel(ctx context.Context, session string) error
}

func NewApi(
	logger *zap.SugaredLogger,
	eventsService eventsService,
	draftsService draftsService,
	maxBodyBytes int64,
	padMonth bool,
) (*Api, error) {
	a := &Api{
		logger:        logger,
		maxBodyBytes:  maxBodyBytes,
		padMonth:      padMonth,
		eventsService: eventsService,
		draftsService: draftsService,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	r := chi.NewMux()

	r.Use(a.requestLogger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/calendar", a.getCalendarHandler)
	r.Get("/events.ics", a.exportEventsHandler)

	r.Route("/events", func(r chi.Router) {
		r.Get("/", a.getEventsHandler)
		r.Post("/", a.createEventHandler)

		r.With(a.eventCtx).Route("/{eventID}", func(r chi.Router) {
			r.Get("/", a.getEventHandler)
			r.Put("/", a.updateEventHandler)
			r.Delete("/", a.deleteEventHandler)
			r.Get("/draft", a.getEventDraftHandler)
		})
	})

	r.Route("/drafts", func(r chi.Router) {
		r.Post("/", a.startDraftHandler)

		r.With(a.sessionCtx).Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", a.getDraftHandler)
			r.Patch("/", a.patchDraftHandler)
			r.Delete("/", a.cancelDraftHandler)
			r.Post("/edit/{eventID}", a.editDraftHandler)
			r.Post("/commit", a.commitDraftHandler)
		})
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

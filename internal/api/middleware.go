package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/SergeyKozhin/crm-calendar/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type contextKey string

const (
	contextKeyEvent   = contextKey("event")
	contextKeySession = contextKey("session")
)

var (
	errCantRetrieveEvent   = errors.New("can't retrieve event")
	errCantRetrieveSession = errors.New("can't retrieve session")
)

func (a *Api) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.logger.Debugw(r.URL.RequestURI(),
			"addr", r.RemoteAddr,
			"protocol", r.Proto,
			"method", r.Method,
		)
		next.ServeHTTP(w, r)
	})
}

func (a *Api) eventCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		event, err := a.eventsService.GetEventByID(r.Context(), chi.URLParam(r, "eventID"))
		if err != nil {
			a.serviceErrorResponse(w, r, err)
			return
		}

		eventCtx := context.WithValue(r.Context(), contextKeyEvent, event)
		next.ServeHTTP(w, r.WithContext(eventCtx))
	})
}

// sessionCtx accepts only session IDs handed out by startDraftHandler.
func (a *Api) sessionCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := uuid.Parse(chi.URLParam(r, "sessionID"))
		if err != nil {
			a.notFoundResponse(w, r)
			return
		}

		sessionCtx := context.WithValue(r.Context(), contextKeySession, session.String())
		next.ServeHTTP(w, r.WithContext(sessionCtx))
	})
}

func eventFromContext(r *http.Request) (*model.Event, error) {
	event, ok := r.Context().Value(contextKeyEvent).(*model.Event)
	if !ok {
		return nil, errCantRetrieveEvent
	}

	return event, nil
}

func sessionFromContext(r *http.Request) (string, error) {
	session, ok := r.Context().Value(contextKeySession).(string)
	if !ok {
		return "", errCantRetrieveSession
	}

	return session, nil
}

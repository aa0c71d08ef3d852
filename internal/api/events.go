package api

import (
	"fmt"
	"net/http"
)

func (a *Api) createEventHandler(w http.ResponseWriter, r *http.Request) {
	req := &eventReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	event, err := a.eventsService.CreateEvent(r.Context(), req.toModel())
	if err != nil {
		a.serviceErrorResponse(w, r, fmt.Errorf("create event: %w", err))
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/events/%s", event.ID))

	if err := a.writeJSON(w, http.StatusCreated, mapToEventResp(event), headers); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	events, err := a.eventsService.GetEvents(r.Context())
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get events: %w", err))
		return
	}

	if err := a.writeJSON(w, http.StatusOK, mapSlice(events, mapToEventResp), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventHandler(w http.ResponseWriter, r *http.Request) {
	event, err := eventFromContext(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, mapToEventResp(event), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	event, err := eventFromContext(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	req := &eventReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	updated, err := a.eventsService.UpdateEvent(r.Context(), event.ID, req.toModel())
	if err != nil {
		a.serviceErrorResponse(w, r, fmt.Errorf("update event: %w", err))
		return
	}

	if err := a.writeJSON(w, http.StatusOK, mapToEventResp(updated), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	event, err := eventFromContext(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.eventsService.DeleteEvent(r.Context(), event.ID); err != nil {
		a.serviceErrorResponse(w, r, fmt.Errorf("delete event: %w", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getEventDraftHandler returns the form state for editing an event without
// staging it in a session.
func (a *Api) getEventDraftHandler(w http.ResponseWriter, r *http.Request) {
	event, err := eventFromContext(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	draft, err := a.eventsService.EditDraft(r.Context(), event.ID)
	if err != nil {
		a.serviceErrorResponse(w, r, fmt.Errorf("edit draft: %w", err))
		return
	}

	if err := a.writeJSON(w, http.StatusOK, mapToDraftResp(draft), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

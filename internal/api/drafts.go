package api

import (
	"fmt"
	"net/http"

	"github.com/SergeyKozhin/crm-calendar/internal/model"
	"github.com/go-chi/chi/v5"
)

type startDraftResp struct {
	SessionID string     `json:"session_id"`
	Draft     *draftResp `json:"draft"`
}

func (a *Api) startDraftHandler(w http.ResponseWriter, r *http.Request) {
	session, draft, err := a.draftsService.Start(r.Context())
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("start draft: %w", err))
		return
	}

	resp := &startDraftResp{
		SessionID: session,
		Draft:     mapToDraftResp(draft),
	}

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getDraftHandler(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	draft, err := a.draftsService.Get(r.Context(), session)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get draft: %w", err))
		return
	}

	if err := a.writeJSON(w, http.StatusOK, mapToDraftResp(draft), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) patchDraftHandler(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	req := &struct {
		Title       *string `json:"title"`
		Date        *string `json:"date"`
		Time        *string `json:"time"`
		Email       *string `json:"email"`
		Color       *string `json:"color"`
		Description *string `json:"description"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	patch := model.DraftPatch{
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Email:       req.Email,
		Description: req.Description,
	}
	if req.Color != nil {
		c := parseColor(*req.Color)
		patch.Color = &c
	}

	draft, err := a.draftsService.Patch(r.Context(), session, patch)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("patch draft: %w", err))
		return
	}

	if err := a.writeJSON(w, http.StatusOK, mapToDraftResp(draft), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) editDraftHandler(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	draft, err := a.draftsService.Edit(r.Context(), session, chi.URLParam(r, "eventID"))
	if err != nil {
		a.serviceErrorResponse(w, r, fmt.Errorf("edit draft: %w", err))
		return
	}

	if err := a.writeJSON(w, http.StatusOK, mapToDraftResp(draft), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) commitDraftHandler(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	event, err := a.draftsService.Commit(r.Context(), session)
	if err != nil {
		a.serviceErrorResponse(w, r, fmt.Errorf("commit draft: %w", err))
		return
	}

	if err := a.writeJSON(w, http.StatusOK, mapToEventResp(event), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) cancelDraftHandler(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.draftsService.Cancel(r.Context(), session); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("cancel draft: %w", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

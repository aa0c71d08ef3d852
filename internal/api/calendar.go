package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SergeyKozhin/crm-calendar/internal/business/calendar"
	"github.com/SergeyKozhin/crm-calendar/internal/model"
)

func (a *Api) getCalendarHandler(w http.ResponseWriter, r *http.Request) {
	view, padded, err := a.parseCalendarQuery(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	days, err := a.eventsService.GetDays(r.Context(), view, padded)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get days: %w", err))
		return
	}

	resp := &calendarResp{
		Reference: view.Reference.String(),
		View:      view.Granularity.String(),
		Anchor:    view.Anchor,
		Title:     view.Title(),
		Previous:  mapToNavResp(view.Previous()),
		Next:      mapToNavResp(view.Next()),
		Days:      mapSlice(days, mapToDayResp),
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) parseCalendarQuery(r *http.Request) (calendar.View, bool, error) {
	query := r.URL.Query()

	ref := a.eventsService.Today()
	if v := query.Get("date"); v != "" {
		d, err := model.ParseDate(v)
		if err != nil {
			return calendar.View{}, false, errors.New("date must be in YYYY-MM-DD format")
		}
		ref = d
	}

	g := model.GranularityMonth
	if v := query.Get("view"); v != "" {
		parsed, err := model.ParseGranularity(v)
		if err != nil {
			return calendar.View{}, false, errors.New("view must be one of month, week, day")
		}
		g = parsed
	}

	view := calendar.NewView(ref, g)

	anchor, err := queryInt(r, "anchor", view.Anchor)
	if err != nil {
		return calendar.View{}, false, err
	}
	if anchor < 1 || anchor > 31 {
		return calendar.View{}, false, errors.New("anchor must be between 1 and 31")
	}
	view.Anchor = anchor

	padded, err := queryBool(r, "padded", a.padMonth)
	if err != nil {
		return calendar.View{}, false, err
	}

	return view, padded, nil
}

package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/SergeyKozhin/crm-calendar/internal/ics"
)

func (a *Api) exportEventsHandler(w http.ResponseWriter, r *http.Request) {
	events, err := a.eventsService.GetEvents(r.Context())
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get events: %w", err))
		return
	}

	buf := &bytes.Buffer{}
	if err := ics.Encode(buf, events, time.Now()); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("encode events: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="events.ics"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

package api

import (
	"github.com/SergeyKozhin/crm-calendar/internal/business/calendar"
	"github.com/SergeyKozhin/crm-calendar/internal/model"
)

const (
	dateDisplayLayout = "January 2, 2006"
	dateShortLayout   = "Jan 2, 2006"
)

type eventReq struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Email       string `json:"email"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

func (req *eventReq) toModel() *model.EventCreate {
	return &model.EventCreate{
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Email:       req.Email,
		Color:       parseColor(req.Color),
		Description: req.Description,
	}
}

// parseColor resolves legacy names and leaves unknown values for validation.
func parseColor(s string) model.Color {
	if s == "" {
		return ""
	}

	c, err := model.ParseColor(s)
	if err != nil {
		return model.Color(s)
	}

	return c
}

type eventResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	DateDisplay string `json:"date_display"`
	DateShort   string `json:"date_short"`
	Time        string `json:"time"`
	Email       string `json:"email"`
	Color       string `json:"color"`
	ColorHex    string `json:"color_hex"`
	Description string `json:"description"`
}

func mapToEventResp(event *model.Event) *eventResp {
	return &eventResp{
		ID:          event.ID,
		Title:       event.Title,
		Date:        event.Date,
		DateDisplay: formatDate(event.Date, dateDisplayLayout),
		DateShort:   formatDate(event.Date, dateShortLayout),
		Time:        event.Time,
		Email:       event.Email,
		Color:       string(event.Color),
		ColorHex:    event.Color.Hex(),
		Description: event.Description,
	}
}

func formatDate(raw, layout string) string {
	d, err := model.ParseDate(raw)
	if err != nil {
		return raw
	}

	return d.Format(layout)
}

type draftResp struct {
	EditingID   string `json:"editing_id,omitempty"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Email       string `json:"email"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

func mapToDraftResp(draft *model.Draft) *draftResp {
	return &draftResp{
		EditingID:   draft.EditingID,
		Title:       draft.Title,
		Date:        draft.Date,
		Time:        draft.Time,
		Email:       draft.Email,
		Color:       string(draft.Color),
		Description: draft.Description,
	}
}

type navResp struct {
	Date   string `json:"date"`
	Anchor int    `json:"anchor"`
}

func mapToNavResp(v calendar.View) navResp {
	return navResp{
		Date:   v.Reference.String(),
		Anchor: v.Anchor,
	}
}

type dayResp struct {
	Date         string       `json:"date"`
	OutsideMonth bool         `json:"outside_month"`
	Today        bool         `json:"today"`
	Events       []*eventResp `json:"events"`
}

func mapToDayResp(day calendar.DayBucket) *dayResp {
	return &dayResp{
		Date:         day.Date.String(),
		OutsideMonth: day.OutsideMonth,
		Today:        day.Today,
		Events:       mapSlice(day.Events, mapToEventResp),
	}
}

type calendarResp struct {
	Reference string     `json:"reference"`
	View      string     `json:"view"`
	Anchor    int        `json:"anchor"`
	Title     string     `json:"title"`
	Previous  navResp    `json:"previous"`
	Next      navResp    `json:"next"`
	Days      []*dayResp `json:"days"`
}

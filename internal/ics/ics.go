// Package ics exports stored events as an iCalendar feed.
package ics

import (
	"fmt"
	"io"
	"time"

	"github.com/SergeyKozhin/crm-calendar/internal/model"
	"github.com/SergeyKozhin/crm-calendar/internal/pkg/timefmt"
	"github.com/emersion/go-ical"
)

const (
	ProductID = "-//crm-calendar//EN"

	floatingLayout = "20060102T150405"
	uidDomain      = "crm-calendar"
	propColor      = "COLOR"
)

// Encode writes events to w as a single VCALENDAR. Events with a date that
// does not parse are left out; events whose time does not parse are exported
// as all-day entries.
func Encode(w io.Writer, events []*model.Event, now time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)

	for _, e := range events {
		ve, ok := toICal(e, now)
		if !ok {
			continue
		}
		cal.Children = append(cal.Children, ve)
	}

	// The encoder refuses calendars without components.
	if len(cal.Children) == 0 {
		_, err := fmt.Fprintf(w, "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:%s\r\nEND:VCALENDAR\r\n", ProductID)
		return err
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}

	return nil
}

func toICal(e *model.Event, now time.Time) (*ical.Component, bool) {
	date, err := model.ParseDate(e.Date)
	if err != nil {
		return nil, false
	}

	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, fmt.Sprintf("%s@%s", e.ID, uidDomain))
	ve.Props.SetText(ical.PropSummary, e.Title)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())

	if start, ok := startOf(date, e.Time); ok {
		p := ical.NewProp(ical.PropDateTimeStart)
		p.SetValueType(ical.ValueDateTime)
		p.Value = start.Format(floatingLayout)
		ve.Props.Set(p)
	} else {
		ve.Props.SetDate(ical.PropDateTimeStart, date.Time())
	}

	if e.Description != "" {
		ve.Props.SetText(ical.PropDescription, e.Description)
	}
	if e.Email != "" {
		ve.Props.SetText(ical.PropContact, e.Email)
	}
	if e.Color != "" {
		ve.Props.SetText(propColor, string(e.Color))
	}

	return ve, true
}

func startOf(date model.Date, clock string) (time.Time, bool) {
	hhmm, err := timefmt.To24Hour(clock)
	if err != nil {
		return time.Time{}, false
	}

	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, false
	}

	return date.Time().Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), true
}

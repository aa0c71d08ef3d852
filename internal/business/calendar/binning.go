package calendar

import "github.com/SergeyKozhin/crm-calendar/internal/model"

// DayBucket is a rendered day cell with the events that fall on it.
type DayBucket struct {
	GridDay
	Today  bool
	Events []*model.Event
}

// EventsOnDay returns the events dated day, in input order. Events with a date
// that does not parse match no day.
func EventsOnDay(events []*model.Event, day model.Date) []*model.Event {
	res := make([]*model.Event, 0)
	for _, e := range events {
		d, err := model.ParseDate(e.Date)
		if err != nil {
			continue
		}

		if d.Equal(day) {
			res = append(res, e)
		}
	}

	return res
}

// Bucket bins events onto days.
func Bucket(days []GridDay, events []*model.Event, today model.Date) []DayBucket {
	byDay := make(map[model.Date][]*model.Event)
	for _, e := range events {
		d, err := model.ParseDate(e.Date)
		if err != nil {
			continue
		}
		byDay[d] = append(byDay[d], e)
	}

	res := make([]DayBucket, len(days))
	for i, d := range days {
		dayEvents := byDay[d.Date]
		if dayEvents == nil {
			dayEvents = make([]*model.Event, 0)
		}

		res[i] = DayBucket{
			GridDay: d,
			Today:   d.Date.Equal(today),
			Events:  dayEvents,
		}
	}

	return res
}

package calendar

import "github.com/SergeyKozhin/crm-calendar/internal/model"

// View is the navigation state of the calendar screen.
//
// Anchor is the day of month that month navigation keeps. A reference date
// clamped to a short month (Jan 31 -> Feb 29) remembers 31 so that stepping
// back lands on Jan 31 again.
type View struct {
	Reference   model.Date
	Granularity model.Granularity
	Anchor      int
}

func NewView(ref model.Date, g model.Granularity) View {
	return View{
		Reference:   ref,
		Granularity: g,
		Anchor:      ref.Day,
	}
}

func (v View) Next() View {
	return v.shift(1)
}

func (v View) Previous() View {
	return v.shift(-1)
}

// Days returns the window of the view.
func (v View) Days(padded bool) []GridDay {
	return Window(v.Reference, v.Granularity, padded)
}

// Title is the heading shown above the grid.
func (v View) Title() string {
	return v.Reference.Format("January 2006")
}

func (v View) shift(n int) View {
	switch v.Granularity {
	case model.GranularityMonth:
		anchor := v.anchor()
		return View{
			Reference:   v.Reference.AddMonthsClamped(n, anchor),
			Granularity: v.Granularity,
			Anchor:      anchor,
		}
	case model.GranularityWeek:
		return NewView(v.Reference.AddDays(7*n), v.Granularity)
	default:
		return NewView(v.Reference.AddDays(n), v.Granularity)
	}
}

// anchor ignores an Anchor that could not have produced Reference.
func (v View) anchor() int {
	day := v.Reference.Day
	if v.Anchor == day {
		return day
	}

	if v.Anchor > day && v.Anchor <= 31 && day == model.DaysIn(v.Reference.Year, v.Reference.Month) {
		return v.Anchor
	}

	return day
}

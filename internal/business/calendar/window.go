package calendar

import (
	"time"

	"github.com/SergeyKozhin/crm-calendar/internal/model"
	"github.com/teambition/rrule-go"
)

// WeekStart is the first column of every week row.
const WeekStart = time.Sunday

// GridDay is a day cell of a rendered window.
type GridDay struct {
	Date         model.Date
	OutsideMonth bool
}

// VisibleDays returns the ascending days shown for ref at granularity g.
func VisibleDays(ref model.Date, g model.Granularity) []model.Date {
	switch g {
	case model.GranularityMonth:
		return eachDay(startOfMonth(ref), endOfMonth(ref))
	case model.GranularityWeek:
		return eachDay(startOfWeek(ref), endOfWeek(ref))
	default:
		return []model.Date{ref}
	}
}

// MonthGrid returns the month of ref extended to whole weeks. Days of the
// neighbouring months are flagged OutsideMonth.
func MonthGrid(ref model.Date) []GridDay {
	return flag(ref, eachDay(startOfWeek(startOfMonth(ref)), endOfWeek(endOfMonth(ref))))
}

// Window returns the cells to render. Only the month view is padded.
func Window(ref model.Date, g model.Granularity, padded bool) []GridDay {
	if g == model.GranularityMonth && padded {
		return MonthGrid(ref)
	}

	return flag(ref, VisibleDays(ref, g))
}

func flag(ref model.Date, days []model.Date) []GridDay {
	res := make([]GridDay, len(days))
	for i, d := range days {
		res[i] = GridDay{
			Date:         d,
			OutsideMonth: !d.SameMonth(ref),
		}
	}

	return res
}

func startOfMonth(d model.Date) model.Date {
	return model.NewDate(d.Year, d.Month, 1)
}

func endOfMonth(d model.Date) model.Date {
	return model.NewDate(d.Year, d.Month, model.DaysIn(d.Year, d.Month))
}

func startOfWeek(d model.Date) model.Date {
	offset := (int(d.Weekday()) - int(WeekStart) + 7) % 7
	return d.AddDays(-offset)
}

func endOfWeek(d model.Date) model.Date {
	return startOfWeek(d).AddDays(6)
}

// eachDay lists every day from start to end inclusive. rrule yields nothing
// or a truncated set near the ends of the year range, so any mismatch with
// the day count falls back to stepping.
func eachDay(start, end model.Date) []model.Date {
	want := int(end.Time().Sub(start.Time())/(24*time.Hour)) + 1

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: start.Time(),
		Until:   end.Time(),
	})
	if err == nil {
		if occurrences := rule.All(); len(occurrences) == want {
			res := make([]model.Date, len(occurrences))
			for i, o := range occurrences {
				res[i] = model.DateOf(o)
			}
			return res
		}
	}

	res := make([]model.Date, 0, want)
	for d := start; !d.After(end); d = d.AddDays(1) {
		res = append(res, d)
	}

	return res
}

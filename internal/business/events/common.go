package events

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/SergeyKozhin/crm-calendar/internal/model"
	"github.com/SergeyKozhin/crm-calendar/internal/pkg/timefmt"
	"github.com/SergeyKozhin/crm-calendar/internal/pkg/validator"
)

// ValidationError is returned when an event draft is rejected. Errors maps a
// field name to its message.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Errors))
	for k := range e.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e.Errors[k])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func IsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	ok := errors.As(err, &vErr)
	return vErr, ok
}

// normalize validates info and returns the form that gets stored.
func normalize(info *model.EventCreate) (*model.EventCreate, error) {
	v := validator.New()

	res := *info
	res.Title = strings.TrimSpace(info.Title)
	res.Email = strings.TrimSpace(info.Email)
	res.Date = strings.TrimSpace(info.Date)

	v.Check(res.Title != "", "title", "title must be provided")
	v.Check(res.Email != "", "email", "email must be provided")
	v.Check(validator.Matches(res.Email, validator.EmailRX), "email", "email must be a valid email address")

	v.Check(res.Date != "", "date", "date must be provided")
	if res.Date != "" {
		_, err := model.ParseDate(res.Date)
		v.Check(err == nil, "date", "date must be in YYYY-MM-DD format")
	}

	v.Check(strings.TrimSpace(info.Time) != "", "time", "time must be provided")
	if strings.TrimSpace(info.Time) != "" {
		t, err := timefmt.Normalize(info.Time)
		v.Check(err == nil, "time", "time must be in HH:MM format")
		res.Time = t
	}

	if res.Color == "" {
		res.Color = model.ColorBlue
	}
	v.Check(res.Color.Valid(), "color", "color must be one of "+paletteNames())

	if !v.Valid() {
		return nil, &ValidationError{Errors: v.Errors}
	}

	return &res, nil
}

func paletteNames() string {
	names := make([]string, len(model.Palette))
	for i, c := range model.Palette {
		names[i] = string(c)
	}

	return strings.Join(names, ", ")
}

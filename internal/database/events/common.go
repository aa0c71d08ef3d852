package events

import (
	"github.com/SergeyKozhin/crm-calendar/internal/database"
	"github.com/SergeyKozhin/crm-calendar/internal/model"
)

const uniqueViolation = "23505"

var baseQuery = database.PSQL.
	Select(
		"id",
		"title",
		"event_date",
		"event_time",
		"email",
		"color",
		"description",
	).
	From(database.EventsTable).
	OrderBy("seq")

type Repository struct {
	db database.Queryable
}

func NewRepository(db database.Queryable) *Repository {
	return &Repository{db: db}
}

func eventColumns(event *model.Event) map[string]interface{} {
	return map[string]interface{}{
		"title":       event.Title,
		"event_date":  event.Date,
		"event_time":  event.Time,
		"email":       event.Email,
		"color":       string(event.Color),
		"description": event.Description,
	}
}

package events

import "github.com/SergeyKozhin/crm-calendar/internal/model"

type eventDTO struct {
	ID          string
	Title       string
	Date        string `db:"event_date"`
	Time        string `db:"event_time"`
	Email       string
	Color       string
	Description string
}

func mapToEvent(dto *eventDTO) *model.Event {
	return &model.Event{
		ID: dto.ID,
		EventCreate: model.EventCreate{
			Title:       dto.Title,
			Date:        dto.Date,
			Time:        dto.Time,
			Email:       dto.Email,
			Color:       model.Color(dto.Color),
			Description: dto.Description,
		},
	}
}

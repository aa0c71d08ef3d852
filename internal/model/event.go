package model

// EventCreate holds every field of an event except its identifier.
type EventCreate struct {
	Title       string
	Date        string
	Time        string
	Email       string
	Color       Color
	Description string
}

type Event struct {
	ID string
	EventCreate
}

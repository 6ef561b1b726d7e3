// internal/domain/models/calendar.go
package models

import "time"

// EventType is the closed set of calendar entry kinds.
type EventType string

const (
	EventMeeting  EventType = "meeting"
	EventTask     EventType = "task"
	EventReminder EventType = "reminder"
	EventGeneric  EventType = "event"
)

// Event is a calendar entry. Date carries the day; Time and Duration are
// the display strings the calendar view renders.
type Event struct {
	Meta        `bson:",inline"`
	Title       string    `bson:"title" json:"title" validate:"required"`
	Date        time.Time `bson:"date" json:"date" validate:"required"`
	Time        string    `bson:"time" json:"time" validate:"required"`
	Duration    string    `bson:"duration" json:"duration" validate:"required"`
	Type        EventType `bson:"type" json:"type" validate:"required,oneof=meeting task reminder event"`
	Color       string    `bson:"color" json:"color" validate:"required"`
	Location    string    `bson:"location,omitempty" json:"location,omitempty"`
	Attendees   []string  `bson:"attendees,omitempty" json:"attendees,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
}

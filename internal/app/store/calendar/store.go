// internal/app/store/calendar/store.go
package calendar

import (
	"context"
	"time"

	"github.com/pulseboard/pulseboard/internal/app/store/resource"
	"github.com/pulseboard/pulseboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SortEvents orders events by day, then by their display start time.
var SortEvents = bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}

// Stores bundles the calendar collections.
type Stores struct {
	Events *resource.Store[models.Event, *models.Event]
}

// New creates stores for the calendar collections.
func New(db *mongo.Database) *Stores {
	return &Stores{
		Events: resource.New[models.Event](db, "events"),
	}
}

// EventsOnDay returns the events whose date falls on the given calendar day
// (UTC midnight to midnight).
func (s *Stores) EventsOnDay(ctx context.Context, day time.Time) ([]models.Event, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return s.EventsInRange(ctx, start, start.AddDate(0, 0, 1))
}

// EventsInRange returns the events with date in [start, end).
func (s *Stores) EventsInRange(ctx context.Context, start, end time.Time) ([]models.Event, error) {
	filter := bson.M{"date": bson.M{"$gte": start, "$lt": end}}
	return s.Events.Find(ctx, filter, SortEvents, 0)
}

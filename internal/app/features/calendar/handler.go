// internal/app/features/calendar/handler.go
package calendar

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	store "github.com/pulseboard/pulseboard/internal/app/store/calendar"
	"github.com/pulseboard/pulseboard/internal/app/system/crud"
	"github.com/pulseboard/pulseboard/internal/app/system/timeouts"
	"github.com/pulseboard/pulseboard/internal/app/system/webapi"
	"github.com/pulseboard/pulseboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the calendar domain.
type Handler struct {
	Stores *store.Stores
	Log    *zap.Logger

	events *crud.Controller[models.Event, *models.Event]
}

// NewHandler constructs the calendar Handler and its events controller.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	s := store.New(db)
	h := &Handler{Stores: s, Log: logger}

	h.events = crud.New(crud.Binding[models.Event, *models.Event]{
		Singular: "event",
		Plural:   "events",
		Store:    s.Events,
		Sort:     store.SortEvents,
	}, logger)

	return h
}

// parseDay accepts a calendar date ("2024-03-15") or a full RFC 3339
// timestamp, which is truncated to its UTC day.
func parseDay(s string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	ts = ts.UTC()
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ServeEventsList handles GET /events. `date` narrows to one calendar day,
// `type` to one event kind; both are optional.
func (h *Handler) ServeEventsList(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	q := r.URL.Query()
	if d := q.Get("date"); d != "" {
		day, err := parseDay(d)
		if err != nil {
			webapi.BadRequest(w, "Invalid date parameter", err)
			return
		}
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		filter["date"] = bson.M{"$gte": start, "$lt": start.AddDate(0, 0, 1)}
	}
	if t := q.Get("type"); t != "" {
		filter["type"] = t
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	events, err := h.Stores.Events.Find(ctx, filter, store.SortEvents, 0)
	if err != nil {
		webapi.Fail(w, h.Log, err, "Error fetching events")
		return
	}
	webapi.JSON(w, http.StatusOK, events)
}

// ServeEventsRange handles GET /events/range/{start}/{end}: events with
// date in [start, end). End is exclusive so adjacent ranges never overlap.
func (h *Handler) ServeEventsRange(w http.ResponseWriter, r *http.Request) {
	start, err := parseDay(chi.URLParam(r, "start"))
	if err != nil {
		webapi.BadRequest(w, "Invalid start date", err)
		return
	}
	end, err := parseDay(chi.URLParam(r, "end"))
	if err != nil {
		webapi.BadRequest(w, "Invalid end date", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	events, err := h.Stores.EventsInRange(ctx, start, end)
	if err != nil {
		webapi.Fail(w, h.Log, err, "Error fetching events")
		return
	}
	webapi.JSON(w, http.StatusOK, events)
}

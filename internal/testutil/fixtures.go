// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/pulseboard/pulseboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

func (f *Fixtures) insert(ctx context.Context, collection string, doc any) {
	f.t.Helper()
	if _, err := f.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to insert %s fixture: %v", collection, err)
	}
}

func stampedMeta(now time.Time) models.Meta {
	return models.Meta{
		ID:        primitive.NewObjectID(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateAnalyticsStat creates a stat card fixture stamped at the given time,
// so tests can control recency ordering.
func (f *Fixtures) CreateAnalyticsStat(ctx context.Context, name string, at time.Time) models.AnalyticsStat {
	f.t.Helper()
	stat := models.AnalyticsStat{
		Meta:       stampedMeta(at),
		Name:       name,
		Value:      "$12,500",
		Change:     "+5.2%",
		ChangeType: models.ChangeIncrease,
		Icon:       "trending-up",
		Color:      "green",
	}
	f.insert(ctx, "analytics_stats", stat)
	return stat
}

// CreateActivity creates a recent-activity fixture with the given feed
// timestamp.
func (f *Fixtures) CreateActivity(ctx context.Context, title string, ts time.Time) models.RecentActivity {
	f.t.Helper()
	act := models.RecentActivity{
		Meta:        stampedMeta(ts),
		Type:        models.ActivityOrder,
		Title:       title,
		Description: "Order #1042 placed",
		Timestamp:   ts,
		Status:      models.ActivitySuccess,
	}
	f.insert(ctx, "recent_activities", act)
	return act
}

// CreateNotification creates a notification fixture with the given read flag.
func (f *Fixtures) CreateNotification(ctx context.Context, title string, read bool, at time.Time) models.Notification {
	f.t.Helper()
	n := models.Notification{
		Meta:     stampedMeta(at),
		Title:    title,
		Message:  "Something happened",
		Type:     models.NotifyInfo,
		Priority: models.PriorityMedium,
		IsRead:   read,
	}
	f.insert(ctx, "notifications", n)
	return n
}

// CreateProductPerf creates a top-products row with the given sales count.
func (f *Fixtures) CreateProductPerf(ctx context.Context, name string, sales int) models.ProductPerf {
	f.t.Helper()
	p := models.ProductPerf{
		Meta:     stampedMeta(time.Now().UTC()),
		Name:     name,
		Category: "Electronics",
		Sales:    sales,
		Revenue:  float64(sales) * 19.99,
		Status:   models.StockIn,
	}
	f.insert(ctx, "product_perf", p)
	return p
}

// CreateEmail creates an email fixture with the given flags.
func (f *Fixtures) CreateEmail(ctx context.Context, subject string, read, starred bool) models.Email {
	f.t.Helper()
	e := models.Email{
		Meta:      stampedMeta(time.Now().UTC()),
		From:      "Ada Lovelace",
		Email:     "ada@example.com",
		Subject:   subject,
		Preview:   "First lines of " + subject,
		Time:      "10:42 AM",
		IsRead:    read,
		IsStarred: starred,
		Avatar:    "AL",
	}
	f.insert(ctx, "emails", e)
	return e
}

// CreateFolder creates a mail folder fixture.
func (f *Fixtures) CreateFolder(ctx context.Context, name string, count int) models.Folder {
	f.t.Helper()
	fold := models.Folder{
		Meta:  stampedMeta(time.Now().UTC()),
		Name:  name,
		Icon:  "folder",
		Count: count,
	}
	f.insert(ctx, "folders", fold)
	return fold
}

// CreateEvent creates a calendar event fixture on the given day.
func (f *Fixtures) CreateEvent(ctx context.Context, title string, day time.Time) models.Event {
	f.t.Helper()
	ev := models.Event{
		Meta:     stampedMeta(time.Now().UTC()),
		Title:    title,
		Date:     time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
		Time:     "09:00",
		Duration: "1h",
		Type:     models.EventMeeting,
		Color:    "blue",
	}
	f.insert(ctx, "events", ev)
	return ev
}

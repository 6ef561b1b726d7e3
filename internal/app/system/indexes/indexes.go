// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.

The unique indexes here are load-bearing: the natural-key upserts on
geo_stats and device_stats, and the uniqueness of order numbers and
customer emails, all rely on them (a naive find-then-insert would race).
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureGeoStats(ctx, db); err != nil {
		problems = append(problems, "geo_stats: "+err.Error())
	}
	if err := ensureDeviceStats(ctx, db); err != nil {
		problems = append(problems, "device_stats: "+err.Error())
	}
	if err := ensureOrders(ctx, db); err != nil {
		problems = append(problems, "orders: "+err.Error())
	}
	if err := ensureCustomers(ctx, db); err != nil {
		problems = append(problems, "customers: "+err.Error())
	}
	if err := ensureNotifications(ctx, db); err != nil {
		problems = append(problems, "notifications: "+err.Error())
	}
	if err := ensureActivities(ctx, db); err != nil {
		problems = append(problems, "recent_activities: "+err.Error())
	}
	if err := ensureMessages(ctx, db); err != nil {
		problems = append(problems, "messages: "+err.Error())
	}
	if err := ensureEvents(ctx, db); err != nil {
		problems = append(problems, "events: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureGeoStats(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("geo_stats").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "country_code", Value: 1}},
			Options: options.Index().SetName("uniq_geo_country_code").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "revenue", Value: -1}},
			Options: options.Index().SetName("idx_geo_revenue"),
		},
	})
	return err
}

func ensureDeviceStats(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("device_stats").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "device_type", Value: 1},
				{Key: "browser_name", Value: 1},
				{Key: "os_name", Value: 1},
			},
			Options: options.Index().SetName("uniq_device_triple").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "users", Value: -1}},
			Options: options.Index().SetName("idx_device_users"),
		},
	})
	return err
}

func ensureOrders(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("orders").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "order_id", Value: 1}},
			Options: options.Index().SetName("uniq_orders_order_id").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_orders_created"),
		},
	})
	return err
}

func ensureCustomers(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("customers").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_customers_email").SetUnique(true),
		},
	})
	return err
}

func ensureNotifications(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("notifications").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_notifications_user_created"),
		},
		{
			Keys:    bson.D{{Key: "is_read", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_notifications_read_created"),
		},
	})
	return err
}

func ensureActivities(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("recent_activities").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("idx_activities_timestamp"),
		},
	})
	return err
}

func ensureMessages(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("messages").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "contact_id", Value: 1}, {Key: "timestamp", Value: 1}},
			Options: options.Index().SetName("idx_messages_contact_timestamp"),
		},
	})
	return err
}

func ensureEvents(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("events").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().SetName("idx_events_date_time"),
		},
		{
			Keys:    bson.D{{Key: "type", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("idx_events_type_date"),
		},
	})
	return err
}

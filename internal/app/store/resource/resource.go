// internal/app/store/resource/resource.go

// Package resource implements the generic document store every entity
// collection is built on: create, find with filter/sort/limit, get, partial
// update, delete, and natural-key upsert. Domain store packages wrap it with
// collection names, default sort orders, and entity-specific queries.
package resource

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by id- and key-addressed operations when no record
// matches. Callers must not confuse it with storage failures; those pass
// through unchanged.
var ErrNotFound = errors.New("record not found")

// Record is implemented by every entity via the embedded models.Meta.
type Record interface {
	EnsureID()
	Touch(now time.Time)
}

// Store is a typed handle on one collection.
type Store[T any, PT interface {
	Record
	*T
}] struct {
	c *mongo.Collection
}

// New creates a typed store over the named collection.
func New[T any, PT interface {
	Record
	*T
}](db *mongo.Database, name string) *Store[T, PT] {
	return &Store[T, PT]{c: db.Collection(name)}
}

// Collection exposes the underlying collection for queries the generic
// surface does not cover (counts, custom aggregations).
func (s *Store[T, PT]) Collection() *mongo.Collection {
	return s.c
}

// Create assigns identity and timestamps, then persists the record.
// Validation happens before this call; Create never rechecks the payload.
func (s *Store[T, PT]) Create(ctx context.Context, doc PT) error {
	doc.EnsureID()
	doc.Touch(time.Now().UTC())
	_, err := s.c.InsertOne(ctx, doc)
	return err
}

// Find returns all records matching filter, in the given sort order,
// truncated to limit when limit > 0. A nil filter matches everything.
// No match is an empty slice, never an error.
func (s *Store[T, PT]) Find(ctx context.Context, filter bson.M, sort bson.D, limit int64) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a single record or ErrNotFound.
func (s *Store[T, PT]) GetByID(ctx context.Context, id primitive.ObjectID) (T, error) {
	var doc T
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, ErrNotFound
	}
	return doc, err
}

// UpdateByID merges the given fields into the record and refreshes
// updated_at. Fields absent from set are left untouched; identity and
// created_at can never be overwritten. Returns the post-update record.
func (s *Store[T, PT]) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (T, error) {
	clean := bson.M{}
	for k, v := range set {
		clean[k] = v
	}
	delete(clean, "_id")
	delete(clean, "id")
	delete(clean, "created_at")
	clean["updated_at"] = time.Now().UTC()

	var doc T
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": clean},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, ErrNotFound
	}
	return doc, err
}

// DeleteByID removes a record or reports ErrNotFound.
func (s *Store[T, PT]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpsertByKey updates the record whose fields match key, or creates one from
// doc when no match exists. Returns the resulting record and whether the
// create branch was taken.
//
// One-winner guarantee: the collection carries a unique index on the key
// fields (see system/indexes), and the write is a single atomic upsert. Two
// concurrent identical-key upserts can still both take the insert branch
// before either document lands; the loser surfaces a duplicate-key error and
// is retried once as a plain update against the now-existing document. A
// naive find-then-insert would leave duplicates here.
func (s *Store[T, PT]) UpsertByKey(ctx context.Context, key bson.M, doc PT) (T, bool, error) {
	var out T

	fields, err := Flatten(doc)
	if err != nil {
		return out, false, err
	}
	now := time.Now().UTC()
	fields["updated_at"] = now

	update := bson.M{
		"$set": fields,
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"created_at": now,
		},
	}

	res, err := s.c.UpdateOne(ctx, key, update, options.Update().SetUpsert(true))
	if err != nil && wafflemongo.IsDup(err) {
		res, err = s.c.UpdateOne(ctx, key, bson.M{"$set": fields})
	}
	if err != nil {
		return out, false, err
	}

	created := res.UpsertedCount == 1
	if err := s.c.FindOne(ctx, key).Decode(&out); err != nil {
		return out, created, err
	}
	return out, created, nil
}

// Count reports how many records match filter.
func (s *Store[T, PT]) Count(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return s.c.CountDocuments(ctx, filter)
}

// Flatten converts a record into the bson field map used for $set payloads,
// stripping identity and timestamps so they stay store-controlled.
func Flatten(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	delete(m, "_id")
	delete(m, "created_at")
	delete(m, "updated_at")
	return m, nil
}

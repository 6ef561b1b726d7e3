// internal/domain/models/meta.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meta carries the store-assigned identity and timestamps shared by every
// collection. Embed it by value in each entity; the resource store fills it
// in on create and refreshes UpdatedAt on every mutation. Clients never
// supply these fields.
type Meta struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// EnsureID assigns a fresh ObjectID if none is set.
func (m *Meta) EnsureID() {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
}

// Touch stamps the record. CreatedAt is set only once.
func (m *Meta) Touch(now time.Time) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}

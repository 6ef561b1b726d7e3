// internal/app/store/chat/store.go
package chat

import (
	"context"

	"github.com/pulseboard/pulseboard/internal/app/store/resource"
	"github.com/pulseboard/pulseboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	SortContacts = bson.D{{Key: "name", Value: 1}}
	SortMessages = bson.D{{Key: "timestamp", Value: 1}}
)

// Stores bundles the chat collections.
type Stores struct {
	Contacts *resource.Store[models.Contact, *models.Contact]
	Messages *resource.Store[models.Message, *models.Message]
}

// New creates stores for the chat collections.
func New(db *mongo.Database) *Stores {
	return &Stores{
		Contacts: resource.New[models.Contact](db, "contacts"),
		Messages: resource.New[models.Message](db, "messages"),
	}
}

// MessagesByContact returns one conversation in chronological order.
func (s *Stores) MessagesByContact(ctx context.Context, contactID int) ([]models.Message, error) {
	return s.Messages.Find(ctx, bson.M{"contact_id": contactID}, SortMessages, 0)
}

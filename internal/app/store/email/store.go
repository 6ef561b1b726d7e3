// internal/app/store/email/store.go
package email

import (
	"context"

	"github.com/pulseboard/pulseboard/internal/app/store/resource"
	"github.com/pulseboard/pulseboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	SortEmails  = bson.D{{Key: "created_at", Value: -1}}
	SortFolders = bson.D{{Key: "name", Value: 1}}
)

// Stores bundles the email collections.
type Stores struct {
	Emails  *resource.Store[models.Email, *models.Email]
	Folders *resource.Store[models.Folder, *models.Folder]
}

// New creates stores for the email collections.
func New(db *mongo.Database) *Stores {
	return &Stores{
		Emails:  resource.New[models.Email](db, "emails"),
		Folders: resource.New[models.Folder](db, "folders"),
	}
}

// RefreshFolderCounts recomputes the denormalized per-folder message counts.
// Inbox counts every message, Starred the starred ones, Unread the unread
// ones. Folders with other names keep whatever count they carry.
func (s *Stores) RefreshFolderCounts(ctx context.Context) error {
	folders, err := s.Folders.Find(ctx, bson.M{}, SortFolders, 0)
	if err != nil {
		return err
	}
	for i := range folders {
		var filter bson.M
		switch folders[i].Name {
		case "Inbox":
			filter = bson.M{}
		case "Starred":
			filter = bson.M{"is_starred": true}
		case "Unread":
			filter = bson.M{"is_read": false}
		default:
			continue
		}
		n, err := s.Emails.Count(ctx, filter)
		if err != nil {
			return err
		}
		if int(n) == folders[i].Count {
			continue
		}
		if _, err := s.Folders.UpdateByID(ctx, folders[i].ID, bson.M{"count": int(n)}); err != nil {
			return err
		}
	}
	return nil
}

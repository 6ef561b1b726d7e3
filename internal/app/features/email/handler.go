// internal/app/features/email/handler.go
package email

import (
	store "github.com/pulseboard/pulseboard/internal/app/store/email"
	"github.com/pulseboard/pulseboard/internal/app/system/crud"
	"github.com/pulseboard/pulseboard/internal/app/system/listquery"
	"github.com/pulseboard/pulseboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the email domain: messages and their folders.
type Handler struct {
	Stores *store.Stores
	Log    *zap.Logger

	emails  *crud.Controller[models.Email, *models.Email]
	folders *crud.Controller[models.Folder, *models.Folder]
}

// NewHandler constructs the email Handler and its per-resource controllers.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	s := store.New(db)
	h := &Handler{Stores: s, Log: logger}

	h.emails = crud.New(crud.Binding[models.Email, *models.Email]{
		Singular: "email",
		Plural:   "emails",
		Store:    s.Emails,
		Sort:     store.SortEmails,
		Filters: []listquery.Param{
			{Name: "isRead", Field: "is_read", Kind: listquery.Bool},
			{Name: "isStarred", Field: "is_starred", Kind: listquery.Bool},
		},
	}, logger)

	h.folders = crud.New(crud.Binding[models.Folder, *models.Folder]{
		Singular: "folder",
		Plural:   "folders",
		Store:    s.Folders,
		Sort:     store.SortFolders,
	}, logger)

	return h
}

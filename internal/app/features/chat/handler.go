// internal/app/features/chat/handler.go
package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	store "github.com/pulseboard/pulseboard/internal/app/store/chat"
	"github.com/pulseboard/pulseboard/internal/app/system/crud"
	"github.com/pulseboard/pulseboard/internal/app/system/listquery"
	"github.com/pulseboard/pulseboard/internal/app/system/timeouts"
	"github.com/pulseboard/pulseboard/internal/app/system/webapi"
	"github.com/pulseboard/pulseboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the chat domain: the contact list and conversations.
type Handler struct {
	Stores *store.Stores
	Log    *zap.Logger

	contacts *crud.Controller[models.Contact, *models.Contact]
	messages *crud.Controller[models.Message, *models.Message]
}

// NewHandler constructs the chat Handler and its per-resource controllers.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	s := store.New(db)
	h := &Handler{Stores: s, Log: logger}

	h.contacts = crud.New(crud.Binding[models.Contact, *models.Contact]{
		Singular: "contact",
		Plural:   "contacts",
		Store:    s.Contacts,
		Sort:     store.SortContacts,
		Filters: []listquery.Param{
			{Name: "status", Field: "status", Kind: listquery.String},
		},
	}, logger)

	h.messages = crud.New(crud.Binding[models.Message, *models.Message]{
		Singular: "message",
		Plural:   "messages",
		Store:    s.Messages,
		Sort:     store.SortMessages,
		Filters: []listquery.Param{
			{Name: "contactId", Field: "contact_id", Kind: listquery.Int},
		},
		OnCreate: func(doc *models.Message, raw map[string]json.RawMessage) {
			// Plain text unless the caller names a type.
			if _, ok := raw["type"]; !ok {
				doc.Type = models.MessageText
			}
		},
	}, logger)

	return h
}

// ServeContactMessages handles GET /contacts/{id}/messages: one
// conversation in chronological order.
func (h *Handler) ServeContactMessages(w http.ResponseWriter, r *http.Request) {
	contactID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		webapi.BadRequest(w, "Invalid contact id", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	messages, err := h.Stores.MessagesByContact(ctx, contactID)
	if err != nil {
		webapi.Fail(w, h.Log, err, "Error fetching messages")
		return
	}
	webapi.JSON(w, http.StatusOK, messages)
}

func validPresence(s string) bool {
	switch models.PresenceStatus(s) {
	case models.PresenceOnline, models.PresenceOffline, models.PresenceAway:
		return true
	}
	return false
}

// internal/app/features/chat/handler_test.go
package chat_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pulseboard/pulseboard/internal/app/features/chat"
	"github.com/pulseboard/pulseboard/internal/domain/models"
	"github.com/pulseboard/pulseboard/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (chi.Router, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	h := chat.NewHandler(db, zap.NewNop())
	return chat.Routes(h), db
}

func do(t *testing.T, r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body := bytes.NewBuffer(nil)
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(b)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func createContact(t *testing.T, r http.Handler, name string) models.Contact {
	t.Helper()
	rec := do(t, r, "POST", "/contacts", map[string]any{
		"name": name, "avatar": "AV", "status": "offline",
		"lastMessage": "hey", "time": "09:00", "unreadCount": 0,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create contact status = %d, body %s", rec.Code, rec.Body.String())
	}
	var c models.Contact
	_ = json.Unmarshal(rec.Body.Bytes(), &c)
	return c
}

func TestContacts_StatusPatch(t *testing.T) {
	r, _ := newTestRouter(t)
	c := createContact(t, r, "Lin")

	rec := do(t, r, "PATCH", "/contacts/"+c.ID.Hex()+"/status", map[string]string{"status": "online"})
	if rec.Code != http.StatusOK {
		t.Fatalf("patch status = %d, body %s", rec.Code, rec.Body.String())
	}
	var got models.Contact
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Status != models.PresenceOnline {
		t.Fatalf("status = %q", got.Status)
	}

	rec = do(t, r, "PATCH", "/contacts/"+c.ID.Hex()+"/status", map[string]string{"status": "invisible"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid status = %d, want 400", rec.Code)
	}

	rec = do(t, r, "PATCH", "/contacts/ffffffffffffffffffffffff/status", map[string]string{"status": "away"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing contact = %d, want 404", rec.Code)
	}
}

func TestMessages_FilterByContact(t *testing.T) {
	r, _ := newTestRouter(t)

	send := func(contactID int, content string) {
		rec := do(t, r, "POST", "/messages", map[string]any{
			"senderId": 0, "contactId": contactID, "content": content,
			"type": "text", "timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("send status = %d, body %s", rec.Code, rec.Body.String())
		}
	}
	send(1, "hi one")
	send(2, "hi two")
	send(1, "still one")

	rec := do(t, r, "GET", "/messages?contactId=1", nil)
	var got []models.Message
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if len(got) != 2 {
		t.Fatalf("contact 1 messages = %d, want 2", len(got))
	}
	for _, m := range got {
		if m.ContactID != 1 {
			t.Fatalf("wrong conversation: %+v", m)
		}
	}

	rec = do(t, r, "GET", "/messages", nil)
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if len(got) != 3 {
		t.Fatalf("all messages = %d, want 3", len(got))
	}
}

func TestContactMessages_Route(t *testing.T) {
	r, _ := newTestRouter(t)

	send := func(contactID int, content, ts string) {
		rec := do(t, r, "POST", "/messages", map[string]any{
			"senderId": 0, "contactId": contactID, "content": content,
			"type": "text", "timestamp": ts,
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("send status = %d, body %s", rec.Code, rec.Body.String())
		}
	}
	send(7, "second", "2026-04-01T10:05:00Z")
	send(7, "first", "2026-04-01T10:00:00Z")
	send(8, "other thread", "2026-04-01T10:01:00Z")

	rec := do(t, r, "GET", "/contacts/7/messages", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var got []models.Message
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if len(got) != 2 {
		t.Fatalf("conversation length = %d, want 2", len(got))
	}
	if got[0].Content != "first" || got[1].Content != "second" {
		t.Fatalf("conversation out of order: %q, %q", got[0].Content, got[1].Content)
	}

	rec = do(t, r, "GET", "/contacts/seven/messages", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric contact id = %d, want 400", rec.Code)
	}
}

func TestMessages_TypeDefaultsToText(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(t, r, "POST", "/messages", map[string]any{
		"senderId": 0, "contactId": 1, "content": "no type given",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var m models.Message
	_ = json.Unmarshal(rec.Body.Bytes(), &m)
	if m.Type != models.MessageText {
		t.Fatalf("type = %q, want text", m.Type)
	}
}

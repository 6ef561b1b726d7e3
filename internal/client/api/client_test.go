// internal/client/api/client_test.go
package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pulseboard/pulseboard/internal/client/api"
	"github.com/pulseboard/pulseboard/internal/domain/models"
)

func TestClient_ListEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analytics/stats" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.AnalyticsStat{
			{Name: "Revenue", Value: "$120k", Change: "+4%", ChangeType: models.ChangeIncrease, Icon: "i", Color: "green"},
		})
	}))
	defer srv.Close()

	c := api.New(srv.URL)
	stats, err := c.AnalyticsStats(context.Background())
	if err != nil {
		t.Fatalf("AnalyticsStats failed: %v", err)
	}
	if len(stats) != 1 || stats[0].Name != "Revenue" {
		t.Fatalf("unexpected payload: %+v", stats)
	}
}

func TestClient_QueryParameters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("contactId"); got != "3" {
			t.Errorf("contactId = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Message{})
	}))
	defer srv.Close()

	c := api.New(srv.URL)
	if _, err := c.Messages(context.Background(), 3); err != nil {
		t.Fatalf("Messages failed: %v", err)
	}
}

func TestClient_ServerErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Error fetching dashboard summary"})
	}))
	defer srv.Close()

	c := api.New(srv.URL)
	_, err := c.DashboardSummary(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.Error, got %T", err)
	}
	if apiErr.Status != http.StatusInternalServerError {
		t.Errorf("status = %d", apiErr.Status)
	}
	if apiErr.Message != "Error fetching dashboard summary" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestClient_TrimsTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/email/folders" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Folder{})
	}))
	defer srv.Close()

	c := api.New(srv.URL + "/")
	if _, err := c.Folders(context.Background()); err != nil {
		t.Fatalf("Folders failed: %v", err)
	}
}

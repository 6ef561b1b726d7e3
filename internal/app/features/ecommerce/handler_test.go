// internal/app/features/ecommerce/handler_test.go
package ecommerce_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/pulseboard/pulseboard/internal/app/features/ecommerce"
	"github.com/pulseboard/pulseboard/internal/app/system/indexes"
	"github.com/pulseboard/pulseboard/internal/domain/models"
	"github.com/pulseboard/pulseboard/internal/testutil"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	db := testutil.SetupTestDB(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	h := ecommerce.NewHandler(db, zap.NewNop())
	return ecommerce.Routes(h)
}

func postJSON(t *testing.T, r http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func getJSON(t *testing.T, r http.Handler, path string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if out != nil {
		_ = json.Unmarshal(rec.Body.Bytes(), out)
	}
	return rec
}

func orderPayload(orderID string, status models.OrderStatus) map[string]any {
	return map[string]any{
		"orderId": orderID, "customer": "Grace H.", "product": "Compiler",
		"amount": "$120.00", "status": string(status), "date": "2026-08-30",
	}
}

func TestOrders_DuplicateOrderIDRejected(t *testing.T) {
	r := newTestRouter(t)

	if rec := postJSON(t, r, "/orders", orderPayload("ORD-1001", models.OrderPending)); rec.Code != http.StatusCreated {
		t.Fatalf("first create status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec := postJSON(t, r, "/orders", orderPayload("ORD-1001", models.OrderShipped))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate order id status = %d, want 400", rec.Code)
	}

	var got []models.Order
	getJSON(t, r, "/orders", &got)
	if len(got) != 1 {
		t.Fatalf("orders after duplicate = %d, want 1", len(got))
	}
}

func TestOrders_StatusFilterAndBadStatus(t *testing.T) {
	r := newTestRouter(t)

	for i, st := range []models.OrderStatus{models.OrderCompleted, models.OrderPending, models.OrderCompleted} {
		rec := postJSON(t, r, "/orders", orderPayload("ORD-200"+string(rune('0'+i)), st))
		if rec.Code != http.StatusCreated {
			t.Fatalf("create %d status = %d, body %s", i, rec.Code, rec.Body.String())
		}
	}

	var got []models.Order
	getJSON(t, r, "/orders?status=Completed", &got)
	if len(got) != 2 {
		t.Fatalf("completed orders = %d, want 2", len(got))
	}
	for _, o := range got {
		if o.Status != models.OrderCompleted {
			t.Fatalf("wrong status in filtered list: %+v", o)
		}
	}

	rec := postJSON(t, r, "/orders", orderPayload("ORD-3000", "Cancelled"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad status = %d, want 400", rec.Code)
	}
	var body struct {
		Fields []string `json:"fields"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if len(body.Fields) != 1 || body.Fields[0] != "status" {
		t.Fatalf("fields = %v", body.Fields)
	}
}

func TestProducts_CategoryFilterAndSoldSort(t *testing.T) {
	r := newTestRouter(t)

	create := func(name, category string, sold int) {
		rec := postJSON(t, r, "/products", map[string]any{
			"name": name, "category": category, "price": "$10",
			"sold": sold, "revenue": "$100", "image": "img.png",
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("create %s status = %d, body %s", name, rec.Code, rec.Body.String())
		}
	}
	create("Keyboard", "peripherals", 40)
	create("Monitor", "displays", 90)
	create("Mouse", "peripherals", 70)

	var got []models.Product
	getJSON(t, r, "/products", &got)
	if len(got) != 3 || got[0].Name != "Monitor" {
		t.Fatalf("expected best seller first, got %+v", got)
	}

	getJSON(t, r, "/products?category=peripherals", &got)
	if len(got) != 2 {
		t.Fatalf("peripherals = %d, want 2", len(got))
	}
	for _, p := range got {
		if p.Category != "peripherals" {
			t.Fatalf("wrong category in filtered list: %+v", p)
		}
	}
}

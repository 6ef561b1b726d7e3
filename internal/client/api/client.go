// internal/client/api/client.go

// Package api is a typed client for the dashboard service, one method per
// read endpoint the UI consumes.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pulseboard/pulseboard/internal/domain/models"
)

// Error is a failed API call. Message carries the server's message field
// when the response body had one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: request failed (status %d)", e.Status)
}

// Client calls the dashboard API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New creates a Client for the given base URL (e.g. "http://localhost:8080/api").
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

func get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	var zero T

	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return zero, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, err
	}
	if resp.StatusCode != http.StatusOK {
		var fail struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &fail)
		return zero, &Error{Status: resp.StatusCode, Message: fail.Message}
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// --- analytics ---

func (c *Client) AnalyticsStats(ctx context.Context) ([]models.AnalyticsStat, error) {
	return get[[]models.AnalyticsStat](ctx, c, "/analytics/stats", nil)
}

// Charts lists chart definitions, optionally narrowed to one type.
func (c *Client) Charts(ctx context.Context, chartType models.ChartType) ([]models.Chart, error) {
	q := url.Values{}
	if chartType != "" {
		q.Set("type", string(chartType))
	}
	return get[[]models.Chart](ctx, c, "/analytics/charts", q)
}

func (c *Client) AnalyticsProducts(ctx context.Context) ([]models.ProductPerf, error) {
	return get[[]models.ProductPerf](ctx, c, "/analytics/products", nil)
}

// Activities lists the recent-activity feed; limit <= 0 uses the server
// default.
func (c *Client) Activities(ctx context.Context, limit int) ([]models.RecentActivity, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return get[[]models.RecentActivity](ctx, c, "/analytics/activities", q)
}

func (c *Client) Geographic(ctx context.Context) ([]models.GeoStat, error) {
	return get[[]models.GeoStat](ctx, c, "/analytics/geographic", nil)
}

func (c *Client) Devices(ctx context.Context) ([]models.DeviceStat, error) {
	return get[[]models.DeviceStat](ctx, c, "/analytics/devices", nil)
}

func (c *Client) Notifications(ctx context.Context) ([]models.Notification, error) {
	return get[[]models.Notification](ctx, c, "/analytics/notifications", nil)
}

func (c *Client) QuickActions(ctx context.Context) ([]models.QuickAction, error) {
	return get[[]models.QuickAction](ctx, c, "/analytics/quick-actions", nil)
}

func (c *Client) DashboardSummary(ctx context.Context) (models.DashboardSummary, error) {
	return get[models.DashboardSummary](ctx, c, "/analytics/dashboard-summary", nil)
}

// --- crm ---

func (c *Client) CRMStats(ctx context.Context) ([]models.CRMStat, error) {
	return get[[]models.CRMStat](ctx, c, "/crm/stats", nil)
}

func (c *Client) FunnelStages(ctx context.Context) ([]models.FunnelStage, error) {
	return get[[]models.FunnelStage](ctx, c, "/crm/funnel", nil)
}

func (c *Client) Customers(ctx context.Context) ([]models.Customer, error) {
	return get[[]models.Customer](ctx, c, "/crm/customers", nil)
}

func (c *Client) CRMActivities(ctx context.Context) ([]models.CRMActivity, error) {
	return get[[]models.CRMActivity](ctx, c, "/crm/activities", nil)
}

// --- ecommerce ---

func (c *Client) SalesStats(ctx context.Context) ([]models.SalesStat, error) {
	return get[[]models.SalesStat](ctx, c, "/ecommerce/stats", nil)
}

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	return get[[]models.Product](ctx, c, "/ecommerce/products", nil)
}

func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	return get[[]models.Order](ctx, c, "/ecommerce/orders", nil)
}

// --- email ---

func (c *Client) Emails(ctx context.Context) ([]models.Email, error) {
	return get[[]models.Email](ctx, c, "/email/emails", nil)
}

func (c *Client) Folders(ctx context.Context) ([]models.Folder, error) {
	return get[[]models.Folder](ctx, c, "/email/folders", nil)
}

// --- chat ---

func (c *Client) Contacts(ctx context.Context) ([]models.Contact, error) {
	return get[[]models.Contact](ctx, c, "/chat/contacts", nil)
}

// Messages lists one conversation; contactID <= 0 lists everything.
func (c *Client) Messages(ctx context.Context, contactID int) ([]models.Message, error) {
	q := url.Values{}
	if contactID > 0 {
		q.Set("contactId", strconv.Itoa(contactID))
	}
	return get[[]models.Message](ctx, c, "/chat/messages", q)
}

// --- calendar ---

func (c *Client) Events(ctx context.Context) ([]models.Event, error) {
	return get[[]models.Event](ctx, c, "/calendar/events", nil)
}

func (c *Client) EventsInRange(ctx context.Context, start, end time.Time) ([]models.Event, error) {
	path := "/calendar/events/range/" + start.Format("2006-01-02") + "/" + end.Format("2006-01-02")
	return get[[]models.Event](ctx, c, path, nil)
}

// internal/domain/models/analytics.go
package models

import "time"

// ChangeType says which direction a stat moved since the previous period.
type ChangeType string

const (
	ChangeIncrease ChangeType = "increase"
	ChangeDecrease ChangeType = "decrease"
)

// AnalyticsStat is one headline KPI card on the analytics page.
type AnalyticsStat struct {
	Meta       `bson:",inline"`
	Name       string     `bson:"name" json:"name" validate:"required"`
	Value      string     `bson:"value" json:"value" validate:"required"`
	Change     string     `bson:"change" json:"change" validate:"required"`
	ChangeType ChangeType `bson:"change_type" json:"changeType" validate:"required,oneof=increase decrease"`
	Icon       string     `bson:"icon" json:"icon" validate:"required"`
	Color      string     `bson:"color" json:"color" validate:"required"`
}

// ChartType is the closed set of chart renderings the client knows how to draw.
type ChartType string

const (
	ChartLine     ChartType = "line"
	ChartBar      ChartType = "bar"
	ChartDoughnut ChartType = "doughnut"
	ChartArea     ChartType = "area"
	ChartFunnel   ChartType = "funnel"
)

// ChartDataset is one series within a chart.
type ChartDataset struct {
	Label           string    `bson:"label,omitempty" json:"label,omitempty"`
	Data            []float64 `bson:"data" json:"data"`
	BackgroundColor any       `bson:"background_color,omitempty" json:"backgroundColor,omitempty"`
	BorderColor     string    `bson:"border_color,omitempty" json:"borderColor,omitempty"`
	Tension         float64   `bson:"tension,omitempty" json:"tension,omitempty"`
	BorderWidth     int       `bson:"border_width,omitempty" json:"borderWidth,omitempty"`
}

// Chart is a stored chart definition: labels plus one or more datasets.
type Chart struct {
	Meta     `bson:",inline"`
	Type     ChartType      `bson:"type" json:"type" validate:"required,oneof=line bar doughnut area funnel"`
	Title    string         `bson:"title" json:"title" validate:"required"`
	Labels   []string       `bson:"labels" json:"labels"`
	Datasets []ChartDataset `bson:"datasets" json:"datasets"`
}

// StockStatus is the inventory state shown in the analytics product table.
type StockStatus string

const (
	StockIn  StockStatus = "In Stock"
	StockOut StockStatus = "Out of Stock"
	StockLow StockStatus = "Low Stock"
)

// ProductPerf is a row of the analytics top-products table.
type ProductPerf struct {
	Meta     `bson:",inline"`
	Name     string      `bson:"name" json:"name" validate:"required"`
	Category string      `bson:"category" json:"category" validate:"required"`
	Sales    int         `bson:"sales" json:"sales"`
	Revenue  float64     `bson:"revenue" json:"revenue"`
	Status   StockStatus `bson:"status" json:"status" validate:"required,oneof='In Stock' 'Out of Stock' 'Low Stock'"`
}

// ActivityType classifies a recent-activity feed entry.
type ActivityType string

const (
	ActivityOrder   ActivityType = "order"
	ActivityUser    ActivityType = "user"
	ActivitySystem  ActivityType = "system"
	ActivityPayment ActivityType = "payment"
)

// ActivityStatus is the severity badge on a feed entry.
type ActivityStatus string

const (
	ActivitySuccess ActivityStatus = "success"
	ActivityWarning ActivityStatus = "warning"
	ActivityError   ActivityStatus = "error"
	ActivityInfo    ActivityStatus = "info"
)

// RecentActivity is one entry of the recent-activity feed.
type RecentActivity struct {
	Meta        `bson:",inline"`
	Type        ActivityType   `bson:"type" json:"type" validate:"required,oneof=order user system payment"`
	Title       string         `bson:"title" json:"title" validate:"required"`
	Description string         `bson:"description" json:"description" validate:"required"`
	Timestamp   time.Time      `bson:"timestamp" json:"timestamp" validate:"required"`
	Status      ActivityStatus `bson:"status" json:"status" validate:"required,oneof=success warning error info"`
	UserID      string         `bson:"user_id,omitempty" json:"userId,omitempty"`
	Metadata    map[string]any `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// Coordinates is a latitude/longitude pair for the geo map.
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// GeoStat aggregates usage per country. CountryCode is the natural key:
// ingestion upserts by it, so there is at most one live record per country.
type GeoStat struct {
	Meta        `bson:",inline"`
	Country     string      `bson:"country" json:"country" validate:"required"`
	CountryCode string      `bson:"country_code" json:"countryCode" validate:"required"`
	Users       int         `bson:"users" json:"users"`
	Orders      int         `bson:"orders" json:"orders"`
	Revenue     float64     `bson:"revenue" json:"revenue"`
	Coordinates Coordinates `bson:"coordinates" json:"coordinates"`
}

// DeviceType is the closed set of device classes tracked for sessions.
type DeviceType string

const (
	DeviceDesktop DeviceType = "desktop"
	DeviceMobile  DeviceType = "mobile"
	DeviceTablet  DeviceType = "tablet"
)

// DeviceStat aggregates sessions per device/browser/OS combination.
// The (deviceType, browserName, osName) triple is the natural key.
type DeviceStat struct {
	Meta        `bson:",inline"`
	DeviceType  DeviceType `bson:"device_type" json:"deviceType" validate:"required,oneof=desktop mobile tablet"`
	BrowserName string     `bson:"browser_name" json:"browserName" validate:"required"`
	OSName      string     `bson:"os_name" json:"osName" validate:"required"`
	Users       int        `bson:"users" json:"users"`
	Sessions    int        `bson:"sessions" json:"sessions"`
	BounceRate  float64    `bson:"bounce_rate" json:"bounceRate"`
}

// NotificationType colors a notification in the bell menu.
type NotificationType string

const (
	NotifyInfo    NotificationType = "info"
	NotifyWarning NotificationType = "warning"
	NotifyError   NotificationType = "error"
	NotifySuccess NotificationType = "success"
)

// NotificationPriority orders notifications for triage.
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
	PriorityUrgent NotificationPriority = "urgent"
)

// Notification is a user-facing alert with a read flag.
type Notification struct {
	Meta      `bson:",inline"`
	Title     string               `bson:"title" json:"title" validate:"required"`
	Message   string               `bson:"message" json:"message" validate:"required"`
	Type      NotificationType     `bson:"type" json:"type" validate:"required,oneof=info warning error success"`
	Priority  NotificationPriority `bson:"priority" json:"priority" validate:"required,oneof=low medium high urgent"`
	IsRead    bool                 `bson:"is_read" json:"isRead"`
	UserID    string               `bson:"user_id,omitempty" json:"userId,omitempty"`
	ActionURL string               `bson:"action_url,omitempty" json:"actionUrl,omitempty"`
}

// QuickActionType is the kind of shortcut a quick action launches.
type QuickActionType string

const (
	ActionExport   QuickActionType = "export"
	ActionCreate   QuickActionType = "create"
	ActionSettings QuickActionType = "settings"
	ActionReport   QuickActionType = "report"
)

// QuickAction is a configurable shortcut tile on the dashboard.
type QuickAction struct {
	Meta        `bson:",inline"`
	Name        string          `bson:"name" json:"name" validate:"required"`
	Description string          `bson:"description" json:"description" validate:"required"`
	Icon        string          `bson:"icon" json:"icon" validate:"required"`
	ActionType  QuickActionType `bson:"action_type" json:"actionType" validate:"required,oneof=export create settings report"`
	URL         string          `bson:"url" json:"url" validate:"required"`
	IsEnabled   bool            `bson:"is_enabled" json:"isEnabled"`
	Order       int             `bson:"order" json:"order"`
}

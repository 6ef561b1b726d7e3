// internal/domain/models/crm.go
package models

// CRMStat is a KPI card on the CRM page.
type CRMStat struct {
	Meta   `bson:",inline"`
	Name   string `bson:"name" json:"name" validate:"required"`
	Value  string `bson:"value" json:"value" validate:"required"`
	Change string `bson:"change" json:"change" validate:"required"`
	Icon   string `bson:"icon" json:"icon" validate:"required"`
	Color  string `bson:"color" json:"color" validate:"required"`
}

// FunnelStage is one band of the sales funnel widget.
type FunnelStage struct {
	Meta       `bson:",inline"`
	Stage      string  `bson:"stage" json:"stage" validate:"required"`
	Count      int     `bson:"count" json:"count"`
	Percentage float64 `bson:"percentage" json:"percentage"`
	Color      string  `bson:"color" json:"color" validate:"required"`
}

// CustomerStatus tracks where a customer sits in the pipeline.
type CustomerStatus string

const (
	CustomerActive      CustomerStatus = "Active"
	CustomerProspect    CustomerStatus = "Prospect"
	CustomerNegotiation CustomerStatus = "Negotiation"
	CustomerClosed      CustomerStatus = "Closed"
)

// Customer is a CRM contact. Email is unique across the collection.
type Customer struct {
	Meta    `bson:",inline"`
	Name    string         `bson:"name" json:"name" validate:"required"`
	Company string         `bson:"company" json:"company" validate:"required"`
	Email   string         `bson:"email" json:"email" validate:"required,email"`
	Status  CustomerStatus `bson:"status" json:"status" validate:"required,oneof=Active Prospect Negotiation Closed"`
	Value   string         `bson:"value" json:"value" validate:"required"`
}

// CRMActivityType is the kind of touchpoint logged against a customer.
type CRMActivityType string

const (
	CRMCall    CRMActivityType = "call"
	CRMEmail   CRMActivityType = "email"
	CRMMeeting CRMActivityType = "meeting"
)

// CRMActivity is one row of the CRM activity timeline.
type CRMActivity struct {
	Meta     `bson:",inline"`
	Type     CRMActivityType `bson:"type" json:"type" validate:"required,oneof=call email meeting"`
	Customer string          `bson:"customer" json:"customer" validate:"required"`
	Company  string          `bson:"company" json:"company" validate:"required"`
	Action   string          `bson:"action" json:"action" validate:"required"`
	Time     string          `bson:"time" json:"time" validate:"required"`
	Icon     string          `bson:"icon" json:"icon" validate:"required"`
	Color    string          `bson:"color" json:"color" validate:"required"`
}

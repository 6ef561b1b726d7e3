// internal/domain/models/ecommerce.go
package models

// Trend says whether a sales stat is moving up or down.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// SalesStat is a KPI card on the e-commerce page.
type SalesStat struct {
	Meta   `bson:",inline"`
	Name   string `bson:"name" json:"name" validate:"required"`
	Value  string `bson:"value" json:"value" validate:"required"`
	Change string `bson:"change" json:"change" validate:"required"`
	Trend  Trend  `bson:"trend" json:"trend" validate:"required,oneof=up down"`
	Icon   string `bson:"icon" json:"icon" validate:"required"`
	Color  string `bson:"color" json:"color" validate:"required"`
}

// Product is a catalog item in the store listing.
type Product struct {
	Meta     `bson:",inline"`
	Name     string `bson:"name" json:"name" validate:"required"`
	Category string `bson:"category" json:"category" validate:"required"`
	Price    string `bson:"price" json:"price" validate:"required"`
	Sold     int    `bson:"sold" json:"sold"`
	Revenue  string `bson:"revenue" json:"revenue" validate:"required"`
	Image    string `bson:"image" json:"image" validate:"required"`
}

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	OrderCompleted  OrderStatus = "Completed"
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderPending    OrderStatus = "Pending"
)

// Order is a placed order. OrderID is the human-facing order number and is
// unique across the collection.
type Order struct {
	Meta     `bson:",inline"`
	OrderID  string      `bson:"order_id" json:"orderId" validate:"required"`
	Customer string      `bson:"customer" json:"customer" validate:"required"`
	Product  string      `bson:"product" json:"product" validate:"required"`
	Amount   string      `bson:"amount" json:"amount" validate:"required"`
	Status   OrderStatus `bson:"status" json:"status" validate:"required,oneof=Completed Processing Shipped Pending"`
	Date     string      `bson:"date" json:"date" validate:"required"`
}

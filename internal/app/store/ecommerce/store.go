// internal/app/store/ecommerce/store.go
package ecommerce

import (
	"github.com/pulseboard/pulseboard/internal/app/store/resource"
	"github.com/pulseboard/pulseboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	SortStats    = bson.D{{Key: "created_at", Value: -1}}
	SortProducts = bson.D{{Key: "sold", Value: -1}}
	SortOrders   = bson.D{{Key: "created_at", Value: -1}}
)

// Stores bundles the e-commerce collections.
type Stores struct {
	Stats    *resource.Store[models.SalesStat, *models.SalesStat]
	Products *resource.Store[models.Product, *models.Product]
	Orders   *resource.Store[models.Order, *models.Order]
}

// New creates stores for the e-commerce collections.
func New(db *mongo.Database) *Stores {
	return &Stores{
		Stats:    resource.New[models.SalesStat](db, "sales_stats"),
		Products: resource.New[models.Product](db, "products"),
		Orders:   resource.New[models.Order](db, "orders"),
	}
}

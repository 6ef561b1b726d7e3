// internal/app/features/ecommerce/handler.go
package ecommerce

import (
	store "github.com/pulseboard/pulseboard/internal/app/store/ecommerce"
	"github.com/pulseboard/pulseboard/internal/app/system/crud"
	"github.com/pulseboard/pulseboard/internal/app/system/listquery"
	"github.com/pulseboard/pulseboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the e-commerce domain: sales stat cards, the product
// catalog, and orders.
type Handler struct {
	Stores *store.Stores
	Log    *zap.Logger

	stats    *crud.Controller[models.SalesStat, *models.SalesStat]
	products *crud.Controller[models.Product, *models.Product]
	orders   *crud.Controller[models.Order, *models.Order]
}

// NewHandler constructs the e-commerce Handler and its per-resource
// controllers.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	s := store.New(db)
	h := &Handler{Stores: s, Log: logger}

	h.stats = crud.New(crud.Binding[models.SalesStat, *models.SalesStat]{
		Singular: "sales stat",
		Plural:   "sales stats",
		Store:    s.Stats,
		Sort:     store.SortStats,
	}, logger)

	h.products = crud.New(crud.Binding[models.Product, *models.Product]{
		Singular: "product",
		Plural:   "products",
		Store:    s.Products,
		Sort:     store.SortProducts,
		Filters: []listquery.Param{
			{Name: "category", Field: "category", Kind: listquery.String},
		},
	}, logger)

	h.orders = crud.New(crud.Binding[models.Order, *models.Order]{
		Singular: "order",
		Plural:   "orders",
		Store:    s.Orders,
		Sort:     store.SortOrders,
		Filters: []listquery.Param{
			{Name: "status", Field: "status", Kind: listquery.String},
		},
	}, logger)

	return h
}

// internal/app/features/crm/handler.go
package crm

import (
	store "github.com/pulseboard/pulseboard/internal/app/store/crm"
	"github.com/pulseboard/pulseboard/internal/app/system/crud"
	"github.com/pulseboard/pulseboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the CRM domain: stat cards, the sales funnel, customers,
// and customer-facing activity entries.
type Handler struct {
	Stores *store.Stores
	Log    *zap.Logger

	stats      *crud.Controller[models.CRMStat, *models.CRMStat]
	funnel     *crud.Controller[models.FunnelStage, *models.FunnelStage]
	customers  *crud.Controller[models.Customer, *models.Customer]
	activities *crud.Controller[models.CRMActivity, *models.CRMActivity]
}

// NewHandler constructs the CRM Handler and its per-resource controllers.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	s := store.New(db)
	h := &Handler{Stores: s, Log: logger}

	h.stats = crud.New(crud.Binding[models.CRMStat, *models.CRMStat]{
		Singular: "CRM stat",
		Plural:   "CRM stats",
		Store:    s.Stats,
		Sort:     store.SortStats,
	}, logger)

	h.funnel = crud.New(crud.Binding[models.FunnelStage, *models.FunnelStage]{
		Singular: "funnel stage",
		Plural:   "funnel stages",
		Store:    s.Funnel,
		Sort:     store.SortFunnel,
	}, logger)

	h.customers = crud.New(crud.Binding[models.Customer, *models.Customer]{
		Singular: "customer",
		Plural:   "customers",
		Store:    s.Customers,
		Sort:     store.SortCustomers,
	}, logger)

	h.activities = crud.New(crud.Binding[models.CRMActivity, *models.CRMActivity]{
		Singular: "activity",
		Plural:   "activities",
		Store:    s.Activities,
		Sort:     store.SortActivities,
	}, logger)

	return h
}

// internal/app/store/crm/store.go
package crm

import (
	"github.com/pulseboard/pulseboard/internal/app/store/resource"
	"github.com/pulseboard/pulseboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	SortStats      = bson.D{{Key: "created_at", Value: -1}}
	SortFunnel     = bson.D{{Key: "created_at", Value: -1}}
	SortCustomers  = bson.D{{Key: "created_at", Value: -1}}
	SortActivities = bson.D{{Key: "created_at", Value: -1}}
)

// Stores bundles the CRM collections.
type Stores struct {
	Stats      *resource.Store[models.CRMStat, *models.CRMStat]
	Funnel     *resource.Store[models.FunnelStage, *models.FunnelStage]
	Customers  *resource.Store[models.Customer, *models.Customer]
	Activities *resource.Store[models.CRMActivity, *models.CRMActivity]
}

// New creates stores for the CRM collections.
func New(db *mongo.Database) *Stores {
	return &Stores{
		Stats:      resource.New[models.CRMStat](db, "crm_stats"),
		Funnel:     resource.New[models.FunnelStage](db, "funnel_stages"),
		Customers:  resource.New[models.Customer](db, "customers"),
		Activities: resource.New[models.CRMActivity](db, "crm_activities"),
	}
}

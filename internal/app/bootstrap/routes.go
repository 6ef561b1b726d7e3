// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	analyticsfeature "github.com/pulseboard/pulseboard/internal/app/features/analytics"
	calendarfeature "github.com/pulseboard/pulseboard/internal/app/features/calendar"
	chatfeature "github.com/pulseboard/pulseboard/internal/app/features/chat"
	crmfeature "github.com/pulseboard/pulseboard/internal/app/features/crm"
	ecommercefeature "github.com/pulseboard/pulseboard/internal/app/features/ecommerce"
	emailfeature "github.com/pulseboard/pulseboard/internal/app/features/email"
	healthfeature "github.com/pulseboard/pulseboard/internal/app/features/health"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. PulseBoard serves a JSON API for the
// dashboard SPA: CORS for the frontend origin, then one feature router per
// dashboard domain, all under /api.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MongoDatabase

	r := chi.NewRouter()

	allowed := []string{"*"}
	if appCfg.FrontendOrigin != "" {
		allowed = []string{appCfg.FrontendOrigin}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Mount("/health", healthfeature.Routes(healthfeature.NewHandler(deps.MongoClient, logger)))

	r.Route("/api", func(api chi.Router) {
		api.Mount("/analytics", analyticsfeature.Routes(analyticsfeature.NewHandler(db, logger)))
		api.Mount("/crm", crmfeature.Routes(crmfeature.NewHandler(db, logger)))
		api.Mount("/ecommerce", ecommercefeature.Routes(ecommercefeature.NewHandler(db, logger)))
		api.Mount("/email", emailfeature.Routes(emailfeature.NewHandler(db, logger)))
		api.Mount("/chat", chatfeature.Routes(chatfeature.NewHandler(db, logger)))
		api.Mount("/calendar", calendarfeature.Routes(calendarfeature.NewHandler(db, logger)))
	})

	return r, nil
}

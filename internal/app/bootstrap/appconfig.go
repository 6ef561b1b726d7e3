// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration: core settings like HTTP
// ports, TLS, and log level live in WAFFLE's CoreConfig.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connections in the driver pool
	MongoMinPoolSize uint64 // Min connections kept warm in the driver pool

	// FrontendOrigin is the dashboard SPA origin allowed by CORS
	// (e.g., "http://localhost:5173"). Blank allows any origin, which is
	// only acceptable in development.
	FrontendOrigin string

	// FolderCountInterval is how often the email folder counts are
	// recomputed in the background.
	FolderCountInterval time.Duration
}

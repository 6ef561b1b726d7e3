// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	emailstore "github.com/pulseboard/pulseboard/internal/app/store/email"
	"github.com/pulseboard/pulseboard/internal/app/system/timeouts"
	"github.com/pulseboard/pulseboard/internal/app/system/workers"
	"go.uber.org/zap"
)

// folderWorker runs from Startup until Shutdown.
var folderWorker *workers.FolderCounts

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeout overrides applied", zap.Int("count", n))
	}

	folderWorker = workers.NewFolderCounts(emailstore.New(deps.MongoDatabase), logger, appCfg.FolderCountInterval)
	folderWorker.Start()

	return nil
}

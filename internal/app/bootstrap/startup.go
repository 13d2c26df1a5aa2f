// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/vattavada/stayhub/internal/app/system/seed"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. StayHub
// uses it to load the sample catalog when seed_sample_data is enabled.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.SeedSampleData {
		if err := seed.Run(ctx, deps.StayHubMongoDatabase, logger); err != nil {
			return err
		}
	}
	return nil
}

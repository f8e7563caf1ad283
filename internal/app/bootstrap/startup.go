// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the backends are
// loaded, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps ContentDeps, logger *zap.Logger) error {
	logger.Info("content library ready",
		zap.Int("organizations", deps.Library.Len()),
		zap.Int("catalog_items", deps.Items.Len()),
		zap.String("base_domain", effectiveBaseDomain(coreCfg, appCfg)),
		zap.Bool("strict_boot", appCfg.StrictBoot))
	return nil
}

// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown cleanly tears down resources. The content library lives in
// memory and holds no connections, so there is nothing to release.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps ContentDeps, logger *zap.Logger) error {
	logger.Info("orgfolio shutting down")
	return nil
}

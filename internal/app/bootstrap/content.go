// internal/app/bootstrap/content.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/communitybuild/orgfolio/internal/app/content"
	"github.com/communitybuild/orgfolio/internal/app/itemreg"
)

// ConnectDB loads the app's backends. Orgfolio reads everything from disk:
// the shared item catalog first, then the tenant document directories,
// resolved into OrgInstances through the pipeline. A catalog failure is
// always fatal; tenant failures are fatal only under strict_boot.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (ContentDeps, error) {
	items, err := itemreg.Load(appCfg.ItemCatalog)
	if err != nil {
		logger.Error("item catalog load failed", zap.Error(err))
		return ContentDeps{}, err
	}
	logger.Info("item catalog loaded",
		zap.String("path", appCfg.ItemCatalog),
		zap.Int("items", items.Len()))

	lib, err := content.Load(appCfg.ContentDir, items, content.Options{
		BaseDomain: effectiveBaseDomain(coreCfg, appCfg),
		StrictBoot: appCfg.StrictBoot,
		Log:        logger,
	})
	if err != nil {
		logger.Error("content library load failed", zap.Error(err))
		return ContentDeps{}, fmt.Errorf("loading content library: %w", err)
	}

	return ContentDeps{Items: items, Library: lib}, nil
}

// EnsureSchema is a no-op: the content library is resolved in full at load
// time and never written to, so there is no schema to set up.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps ContentDeps, logger *zap.Logger) error {
	return nil
}

// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for Orgfolio.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: content_dir, base_domain, etc.
//   - Environment variables: ORGFOLIO_CONTENT_DIR, ORGFOLIO_BASE_DOMAIN, etc.
//   - Command-line flags: --content_dir, --base_domain, etc.
var appConfigKeys = []config.AppKey{
	{Name: "content_dir", Default: "./content", Desc: "Root directory of per-tenant document directories"},
	{Name: "item_catalog", Default: "./content/items.yaml", Desc: "Path to the shared item catalog YAML file"},
	{Name: "strict_boot", Default: false, Desc: "Fail startup when any tenant's documents do not resolve"},
	{Name: "base_domain", Default: "orgfolio.org", Desc: "Serving domain for derived tenant websites in production"},
	{Name: "dev_base_domain", Default: "localhost:3000", Desc: "Serving domain for derived tenant websites in development"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, ORGFOLIO_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ORGFOLIO", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		ContentDir:    appValues.String("content_dir"),
		ItemCatalog:   appValues.String("item_catalog"),
		StrictBoot:    appValues.Bool("strict_boot"),
		BaseDomain:    appValues.String("base_domain"),
		DevBaseDomain: appValues.String("dev_base_domain"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// This is the right place to enforce required fields or invariants that
// involve both the core and app configs.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.ContentDir == "" {
		return fmt.Errorf("content_dir must be set")
	}
	if appCfg.ItemCatalog == "" {
		return fmt.Errorf("item_catalog must be set")
	}
	if appCfg.BaseDomain == "" {
		return fmt.Errorf("base_domain must be set")
	}
	if coreCfg.Env == "dev" && appCfg.DevBaseDomain == "" {
		return fmt.Errorf("dev_base_domain must be set when env is dev")
	}
	return nil
}

// effectiveBaseDomain picks the serving domain for derived tenant websites.
func effectiveBaseDomain(coreCfg *config.CoreConfig, appCfg AppConfig) string {
	if coreCfg.Env == "dev" {
		return appCfg.DevBaseDomain
	}
	return appCfg.BaseDomain
}

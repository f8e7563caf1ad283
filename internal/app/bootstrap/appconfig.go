// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration: WAFFLE's CoreConfig handles
// framework-level settings like HTTP ports, TLS, logging and timeouts.
type AppConfig struct {
	// Content pipeline configuration
	ContentDir  string // Root directory of per-tenant document directories
	ItemCatalog string // Path to the shared item catalog YAML file
	StrictBoot  bool   // Fail the boot when any tenant's documents do not resolve

	// Domain derivation for tenant websites
	BaseDomain    string // Serving domain in production (e.g., orgfolio.org)
	DevBaseDomain string // Serving domain in development (e.g., localhost:3000)
}

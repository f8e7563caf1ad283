// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	healthfeature "github.com/communitybuild/orgfolio/internal/app/features/health"
	orgsfeature "github.com/communitybuild/orgfolio/internal/app/features/orgs"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend loading, and any Startup
// hooks have completed. Orgfolio's surface is deliberately small: a health
// endpoint for orchestrators and the read-only organization API. Handlers
// only read fields off resolved instances; nothing here mutates state.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps ContentDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Library, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Resolved organization instances
	orgsHandler := orgsfeature.NewHandler(deps.Library, logger)
	r.Mount("/orgs", orgsfeature.Routes(orgsHandler))

	return r, nil
}

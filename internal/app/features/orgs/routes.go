// internal/app/features/orgs/routes.go
package orgs

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the organization endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)          // mounted under /orgs
	r.Get("/{username}", h.Get) // /orgs/{username}
	return r
}

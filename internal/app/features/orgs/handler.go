// internal/app/features/orgs/handler.go
package orgs

// The read-only consumer surface. Handlers only read fields off resolved
// instances; every identifier was resolved at build time, so there is no
// lookup logic here beyond the username key.

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/communitybuild/orgfolio/internal/app/content"
)

// Handler serves the resolved organization instances.
type Handler struct {
	Lib *content.Library
	Log *zap.Logger
}

// NewHandler constructs an orgs Handler over the content library.
func NewHandler(lib *content.Library, logger *zap.Logger) *Handler {
	return &Handler{Lib: lib, Log: logger}
}

// orgSummary is one row of the listing response.
type orgSummary struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Tagline  string `json:"tagline,omitempty"`
}

// List handles GET /orgs and returns username + display name for every
// resolved organization, ordered by username.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	summaries := make([]orgSummary, 0, h.Lib.Len())
	for _, inst := range h.Lib.All() {
		summaries = append(summaries, orgSummary{
			Username: inst.Org.Username,
			Name:     inst.Org.Name,
			Tagline:  inst.Org.Tagline,
		})
	}

	if err := json.NewEncoder(w).Encode(summaries); err != nil {
		h.Log.Error("orgs: encoding listing failed", zap.Error(err))
	}
}

// Get handles GET /orgs/{username} and returns the full resolved instance.
// Absent modules serialize as null.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	username := chi.URLParam(r, "username")
	inst, ok := h.Lib.Get(username)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unknown organization"})
		return
	}

	if err := json.NewEncoder(w).Encode(inst); err != nil {
		h.Log.Error("orgs: encoding instance failed",
			zap.String("username", username),
			zap.Error(err))
	}
}

// internal/app/features/health/handler.go
package health

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/communitybuild/orgfolio/internal/app/content"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Lib *content.Library
	Log *zap.Logger
}

// NewHandler constructs a health Handler over the content library.
func NewHandler(lib *content.Library, logger *zap.Logger) *Handler {
	return &Handler{Lib: lib, Log: logger}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status        string `json:"status"`
	Organizations int    `json:"organizations"`
	Message       string `json:"message,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "organizations":12 }
//
// When the content library failed to load: 503 and
//
//	{ "status":"error", "organizations":0, "message":"content library unavailable" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.Lib == nil {
		h.Log.Error("health-check: content library unavailable")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:  "error",
			Message: "content library unavailable",
		})
		return
	}

	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:        "ok",
		Organizations: h.Lib.Len(),
	})
}

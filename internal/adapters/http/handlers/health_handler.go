package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/tasklists-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tasklists-service/internal/platform/logging"
	"github.com/jsamuelsen11/tasklists-service/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler backed by registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process is alive if it can answer.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, dto.HealthResponse{Status: dto.HealthLive})
}

// Readiness handles GET /health/ready: 200 when every registered store check
// passes, 503 otherwise. Failed checks are logged with their cause.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	for name, err := range results {
		if err != nil {
			logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
				slog.String("check", name),
				slog.Any("error", err),
			)
		}
	}

	resp, healthy := dto.ToHealthResponse(results)
	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, status, resp)
}

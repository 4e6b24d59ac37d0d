package handlers

import (
	"net/http"

	"loadboard/internal/logx"
)

// Handlers groups the service-level endpoints that need no use case behind
// them: liveness probes and the catch-all 404.
type Handlers struct {
	Logger logx.Logger
}

func New(logger logx.Logger) *Handlers {
	return &Handlers{Logger: logger}
}

// Ping handles GET /ping, the load balancer liveness probe.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, map[string]string{"message": "pong"})
}

// HealthcheckHead handles HEAD /healthcheck with an empty 204.
func (h *Handlers) HealthcheckHead(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// NotFound keeps unknown routes on the same JSON error envelope as the api.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusNotFound, "route not found")
}

// Package health provides the health check endpoints used by platform probes,
// e.g. CloudFoundry or K8s.
package health

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ordref/internal/transport/http/json"
)

// Handler provides health check endpoints.
type Handler struct {
	logger *slog.Logger
}

// New creates a new health handler.
func New(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// Register mounts health check routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/health/v1", h.HandleV1)
	r.Get("/health/v2", h.HandleV2)
}

// HandleV1 returns the literal "OK" as plain text.
func (h *Handler) HandleV1(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "health check invoked", "version", "v1")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// StatusResponse is the response body of the v2 health check.
type StatusResponse struct {
	Status string `json:"status"`
}

// HandleV2 returns a JSON status object.
func (h *Handler) HandleV2(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "health check invoked", "version", "v2")
	json.WriteJSON(w, http.StatusOK, StatusResponse{Status: "OK"})
}

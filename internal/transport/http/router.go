// Package httptransport assembles the HTTP surface of the reference
// application. It wires the middleware stack and mounts every handler group,
// keeping transport concerns out of the domain packages.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"ordref/internal/astronomy"
	"ordref/internal/crm"
	"ordref/internal/events"
	"ordref/internal/ord"
	"ordref/internal/platform/config"
	"ordref/internal/platform/health"
	"ordref/internal/platform/metrics"
	"ordref/internal/platform/middleware"
	"ordref/internal/tenant/directory"
	"ordref/internal/transport/http/etag"
	"ordref/internal/transport/http/shared"
	dErrors "ordref/pkg/domain-errors"
)

// NewRouter wires all endpoints with the shared middleware stack. The tenant
// directory backs authentication, tenant lookup and global tenant id mapping
// for every handler group.
func NewRouter(cfg config.Server, dir *directory.Directory, m *metrics.Metrics, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics(m))
	r.Use(middleware.Timeout(30 * time.Second))
	// ORD documents are polled by aggregators, ETags let them skip unchanged
	// payloads. Applied across the board since every endpoint serves
	// deterministic content.
	r.Use(etag.Middleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.WriteError(w, dErrors.NewWithTarget(dErrors.CodeNotFound,
			"Route not found", r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.WriteError(w, dErrors.NewWithTarget(dErrors.CodeNotFound,
			"Route not found", r.URL.Path))
	})

	health.New(logger).Register(r)
	r.Method(http.MethodGet, "/metrics", metrics.Handler(gatherer))

	projection := ord.NewProjection(ord.NewBaseDocument(cfg.PublicURL, time.Now().UTC()), dir)

	ord.NewHandler(projection, dir, m, logger).Register(r)
	events.NewHandler(dir, logger).Register(r)
	astronomy.New(cfg.PublicURL, cfg.LocalURL, logger).Register(r)
	crm.NewHandler(dir, dir, cfg.PublicURL, cfg.LocalURL, m, logger).Register(r)

	return r
}

package ord

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ordref/internal/platform/metrics"
	"ordref/internal/tenant/resolve"
	"ordref/internal/transport/http/json"
	"ordref/internal/transport/http/shared"
	dErrors "ordref/pkg/domain-errors"
)

// Handler serves the ORD configuration and document endpoints.
type Handler struct {
	projection *Projection
	mapper     resolve.GlobalMapper
	config     Configuration
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewHandler creates the ORD handler.
func NewHandler(projection *Projection, mapper resolve.GlobalMapper, m *metrics.Metrics, logger *slog.Logger) *Handler {
	return &Handler{
		projection: projection,
		mapper:     mapper,
		config:     NewConfiguration(),
		metrics:    m,
		logger:     logger,
	}
}

// Register mounts the ORD routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/.well-known/open-resource-discovery", h.HandleConfiguration)
	r.Get("/open-resource-discovery/v1/documents/system-version", h.HandleSystemVersion)
	r.Get("/open-resource-discovery/v1/documents/system-instance", h.HandleSystemInstance)
}

// HandleConfiguration serves the static configuration pointer document.
func (h *Handler) HandleConfiguration(w http.ResponseWriter, _ *http.Request) {
	json.WriteJSON(w, http.StatusOK, h.config)
}

// HandleSystemVersion serves the tenant-neutral document. Tenant headers are
// deliberately ignored here; this variant describes the system version, not a
// system instance.
func (h *Handler) HandleSystemVersion(w http.ResponseWriter, _ *http.Request) {
	h.metrics.IncrementDocumentsServed(PerspectiveSystemVersion, string(resolve.StrategyOpen))
	json.WriteJSON(w, http.StatusOK, h.projection.SystemVersion())
}

// HandleSystemInstance serves the system instance aware document. The result
// differs depending on the tenant selected via header or query parameter; a
// request without any tenant identification is a client error.
func (h *Handler) HandleSystemInstance(w http.ResponseWriter, r *http.Request) {
	ids := resolve.TenantIDsFromRequest(r)
	if !ids.HasTenant() {
		shared.WriteError(w, dErrors.New(dErrors.CodeValidation,
			"the system-instance document requires a local-tenant-id or global-tenant-id header"))
		return
	}

	res := ids.Resolve(h.mapper)
	doc, err := h.projection.ForTenant(r.Context(), res.LocalTenantID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "tenant projection failed",
			"tenant_id", res.LocalTenantID,
			"strategy", string(res.Strategy),
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}

	h.metrics.IncrementDocumentsServed(PerspectiveSystemInstance, string(res.Strategy))
	json.WriteJSON(w, http.StatusOK, doc)
}

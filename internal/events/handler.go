package events

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ordref/internal/tenant/resolve"
	"ordref/internal/transport/http/json"
)

// Handler serves the event catalog self description.
type Handler struct {
	mapper resolve.GlobalMapper
	logger *slog.Logger
}

func NewHandler(mapper resolve.GlobalMapper, logger *slog.Logger) *Handler {
	return &Handler{mapper: mapper, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/sap-events/v1", func(r chi.Router) {
		r.Get("/odm-finance-costobject.asyncapi2.json", h.HandleCatalog)
	})
}

// HandleCatalog returns the SAP Event Catalog definition. When the request
// carries a tenant id the catalog is made system instance aware, otherwise
// the neutral definition is returned. Unlike the ORD document endpoints no
// tenant configuration lookup happens here, the tenant id only flows into
// the message source headers.
func (h *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	res := resolve.TenantIDsFromRequest(r).Resolve(h.mapper)

	h.logger.Debug("serving event catalog",
		"tenant_id", res.LocalTenantID,
		"access_strategy", string(res.Strategy),
	)
	json.WriteJSON(w, http.StatusOK, NewCatalog(res.LocalTenantID))
}

package crm

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ordref/internal/platform/metrics"
	"ordref/internal/tenant/models"
	"ordref/internal/tenant/resolve"
	"ordref/internal/transport/http/json"
	"ordref/internal/transport/http/shared"
	dErrors "ordref/pkg/domain-errors"
)

// ConfigurationLookup resolves a local tenant id to its configuration.
type ConfigurationLookup interface {
	Lookup(localTenantID string) (models.Configuration, error)
}

// TenantResolver combines the lookups the OpenAPI endpoint needs: translating
// global tenant ids and fetching tenant configurations. The tenant directory
// satisfies both.
type TenantResolver interface {
	resolve.GlobalMapper
	ConfigurationLookup
}

// Handler serves the customer resources and the tenant aware API self description.
type Handler struct {
	auth      Authenticator
	resolver  TenantResolver
	publicURL string
	localURL  string
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewHandler creates the CRM handler.
func NewHandler(auth Authenticator, resolver TenantResolver, publicURL, localURL string, m *metrics.Metrics, logger *slog.Logger) *Handler {
	return &Handler{
		auth:      auth,
		resolver:  resolver,
		publicURL: publicURL,
		localURL:  localURL,
		metrics:   m,
		logger:    logger,
	}
}

// Register mounts the CRM routes under /crm/v1. The OpenAPI self description
// is served openly; the customer resources sit behind the BasicAuth gate.
func (h *Handler) Register(r chi.Router) {
	r.Route("/crm/v1", func(r chi.Router) {
		r.Get("/openapi/oas3.json", h.HandleOpenAPI)
		r.Group(func(r chi.Router) {
			r.Use(BasicAuth(h.auth, h.metrics, h.logger))
			r.Get("/customers", h.HandleList)
			r.Get("/customers/{id}", h.HandleGet)
		})
	})
}

// HandleList returns the customers of the authenticated tenant.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUser(r.Context())
	if !ok {
		shared.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "No user / tenant ID provided"))
		return
	}
	json.WriteJSON(w, http.StatusOK, CustomersResponse{Value: CustomersForTenant(user.TenantID)})
}

// HandleGet returns one customer of the authenticated tenant by numeric id.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUser(r.Context())
	if !ok {
		shared.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "No user / tenant ID provided"))
		return
	}

	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		shared.WriteError(w, dErrors.NewWithTarget(dErrors.CodeValidation,
			fmt.Sprintf("customer id must be numeric, got %q", raw), raw))
		return
	}

	for _, c := range CustomersForTenant(user.TenantID) {
		if c.ID == id {
			json.WriteJSON(w, http.StatusOK, c)
			return
		}
	}
	shared.WriteError(w, dErrors.NewWithTarget(dErrors.CodeNotFound,
		fmt.Sprintf("Could not find customer with ID: %d", id), raw))
}

// HandleOpenAPI returns the OpenAPI 3 definition of this API. The definition
// is system instance aware and potentially different between tenants, so the
// tenant headers (or query parameters) are resolved first.
func (h *Handler) HandleOpenAPI(w http.ResponseWriter, r *http.Request) {
	res := resolve.TenantIDsFromRequest(r).Resolve(h.resolver)

	var cfg *models.Configuration
	if res.LocalTenantID != "" {
		c, err := h.resolver.Lookup(res.LocalTenantID)
		if err != nil {
			h.logger.ErrorContext(r.Context(), "openapi tenant lookup failed",
				"tenant_id", res.LocalTenantID,
				"error", err,
			)
			shared.WriteError(w, err)
			return
		}
		cfg = &c
	}

	json.WriteJSON(w, http.StatusOK, NewOpenAPIDefinition(h.publicURL, h.localURL, res.LocalTenantID, cfg))
}

package astronomy

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ordref/internal/transport/http/json"
	"ordref/internal/transport/http/shared"
	dErrors "ordref/pkg/domain-errors"
)

// Handler serves the constellation resources and the API self description.
type Handler struct {
	openAPI map[string]any
	logger  *slog.Logger
}

// New creates the astronomy handler.
func New(publicURL, localURL string, logger *slog.Logger) *Handler {
	return &Handler{
		openAPI: NewOpenAPIDefinition(publicURL, localURL),
		logger:  logger,
	}
}

// Register mounts the astronomy routes under /astronomy/v1.
func (h *Handler) Register(r chi.Router) {
	r.Route("/astronomy/v1", func(r chi.Router) {
		r.Get("/constellations", h.HandleList)
		r.Get("/constellations/{id}", h.HandleGet)
		r.Get("/openapi/oas3.json", h.HandleOpenAPI)
	})
}

// HandleList returns all constellations.
func (h *Handler) HandleList(w http.ResponseWriter, _ *http.Request) {
	json.WriteJSON(w, http.StatusOK, ConstellationsResponse{Value: Constellations()})
}

// HandleGet returns one constellation by its IAU abbreviation.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, c := range Constellations() {
		if c.ID == id {
			json.WriteJSON(w, http.StatusOK, c)
			return
		}
	}
	shared.WriteError(w, dErrors.NewWithTarget(dErrors.CodeNotFound,
		fmt.Sprintf("Could not find constellation with ID: %s", id), id))
}

// HandleOpenAPI returns the OpenAPI 3 definition of this API.
// The definition is tenant neutral; the Astronomy API is available to everyone.
func (h *Handler) HandleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	json.WriteJSON(w, http.StatusOK, h.openAPI)
}

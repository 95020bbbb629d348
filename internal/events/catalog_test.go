package events

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordref/internal/tenant/directory"
	"ordref/internal/tenant/resolve"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func messageHeaders(t *testing.T, catalog map[string]any) map[string]any {
	t.Helper()
	components, ok := catalog["components"].(map[string]any)
	require.True(t, ok)
	messages, ok := components["messages"].(map[string]any)
	require.True(t, ok)
	msg, ok := messages[costCenterMessageName].(map[string]any)
	require.True(t, ok)
	headers, ok := msg["headers"].(map[string]any)
	require.True(t, ok)
	return headers
}

func TestNewCatalogNeutral(t *testing.T) {
	catalog := NewCatalog("")

	assert.Equal(t, "2.0.0", catalog["asyncapi"])
	assert.Equal(t, "1.1", catalog["x-sap-catalog-spec-version"])

	headers := messageHeaders(t, catalog)
	assert.NotContains(t, headers, "source")
}

func TestNewCatalogWithTenantAddsSourceHeader(t *testing.T) {
	catalog := NewCatalog("T1")

	headers := messageHeaders(t, catalog)
	source, ok := headers["source"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/default/sap.foo.bar/T1", source["const"])
}

func TestNewCatalogReturnsFreshCopies(t *testing.T) {
	NewCatalog("T1")

	headers := messageHeaders(t, NewCatalog(""))
	assert.NotContains(t, headers, "source")
}

func TestNewCostCenterCreated(t *testing.T) {
	ev := NewCostCenterCreated(CostCenterCreated{DisplayName: "Sales"}, "subject-1", "T2")

	assert.Equal(t, "1.0", ev.SpecVersion)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, "/default/sap.foo.bar/T2", ev.Source)
	assert.Equal(t, CostCenterCreatedType, ev.Type)
	assert.Equal(t, "application/json", ev.DataContentType)
}

func serveCatalog(t *testing.T, mutate func(*http.Request)) map[string]any {
	t.Helper()
	r := chi.NewRouter()
	NewHandler(directory.NewDefault(), discardLogger()).Register(r)

	req := httptest.NewRequest(http.MethodGet, "/sap-events/v1/odm-finance-costobject.asyncapi2.json", nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var catalog map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &catalog))
	return catalog
}

func TestHandleCatalogNeutral(t *testing.T) {
	catalog := serveCatalog(t, nil)
	assert.NotContains(t, messageHeaders(t, catalog), "source")
}

func TestHandleCatalogLocalTenant(t *testing.T) {
	catalog := serveCatalog(t, func(req *http.Request) {
		req.Header.Set(resolve.HeaderLocalTenantID, "T1")
	})

	source := messageHeaders(t, catalog)["source"].(map[string]any)
	assert.Equal(t, "/default/sap.foo.bar/T1", source["const"])
}

func TestHandleCatalogGlobalTenant(t *testing.T) {
	catalog := serveCatalog(t, func(req *http.Request) {
		req.Header.Set(resolve.HeaderGlobalTenantID, "740000102")
	})

	source := messageHeaders(t, catalog)["source"].(map[string]any)
	assert.Equal(t, "/default/sap.foo.bar/T2", source["const"])
}

func TestHandleCatalogUnmappedGlobalTenantIsNeutral(t *testing.T) {
	catalog := serveCatalog(t, func(req *http.Request) {
		req.Header.Set(resolve.HeaderGlobalTenantID, "999999999")
	})

	assert.NotContains(t, messageHeaders(t, catalog), "source")
}

package httptransport

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"ordref/internal/ord"
	"ordref/internal/platform/config"
	"ordref/internal/platform/metrics"
	"ordref/internal/tenant/directory"
	"ordref/internal/tenant/resolve"
)

type RouterSuite struct {
	suite.Suite
	router http.Handler
}

func (s *RouterSuite) SetupTest() {
	reg := prometheus.NewRegistry()
	cfg := config.Server{
		Addr:      ":8080",
		PublicURL: "https://ord-reference-application.example.com",
		LocalURL:  "http://localhost:8080",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.router = NewRouter(cfg, directory.NewDefault(), metrics.New(reg), reg, logger)
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) get(path string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterSuite) decodeDocument(rec *httptest.ResponseRecorder) ord.Document {
	var doc ord.Document
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &doc))
	return doc
}

func apiOrdIDs(doc ord.Document) []string {
	ids := make([]string, 0, len(doc.APIResources))
	for _, r := range doc.APIResources {
		ids = append(ids, r.OrdID)
	}
	return ids
}

func (s *RouterSuite) TestWellKnownConfiguration() {
	rec := s.get("/.well-known/open-resource-discovery", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Contains(body, "openResourceDiscoveryV1")
}

func (s *RouterSuite) TestSystemVersionDocument() {
	rec := s.get("/open-resource-discovery/v1/documents/system-version", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("system-version", body["perspective"])
}

func (s *RouterSuite) TestSystemInstanceDocumentForTenant() {
	rec := s.get("/open-resource-discovery/v1/documents/system-instance", func(req *http.Request) {
		req.Header.Set(resolve.HeaderLocalTenantID, "T2")
	})
	s.Require().Equal(http.StatusOK, rec.Code)

	doc := s.decodeDocument(rec)
	s.Contains(doc.Description, `tenant "T2"`)
	s.NotContains(apiOrdIDs(doc), "sap.xref:apiResource:crm:v1")
	s.Contains(apiOrdIDs(doc), "sap.xref:apiResource:astronomy:v1")
}

// Local tenant id takes precedence when a request carries both headers.
func (s *RouterSuite) TestSystemInstanceLocalHeaderBeatsGlobal() {
	rec := s.get("/open-resource-discovery/v1/documents/system-instance", func(req *http.Request) {
		req.Header.Set(resolve.HeaderLocalTenantID, "T2")
		req.Header.Set(resolve.HeaderGlobalTenantID, "740000101")
	})
	s.Require().Equal(http.StatusOK, rec.Code)

	doc := s.decodeDocument(rec)
	s.Contains(doc.Description, `tenant "T2"`)
	s.NotContains(apiOrdIDs(doc), "sap.xref:apiResource:crm:v1")
}

func (s *RouterSuite) TestSystemInstanceWithoutTenantIsBadRequest() {
	rec := s.get("/open-resource-discovery/v1/documents/system-instance", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), `"INVALID_USER_INPUT"`)
}

func (s *RouterSuite) TestConstellationByID() {
	rec := s.get("/astronomy/v1/constellations/And", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"Andromeda"`)
}

func (s *RouterSuite) TestCustomersRequireAuthentication() {
	rec := s.get("/crm/v1/customers", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), `"UNAUTHORIZED"`)
}

func (s *RouterSuite) TestCustomersScopedToAuthenticatedTenant() {
	rec := s.get("/crm/v1/customers", func(req *http.Request) {
		req.SetBasicAuth("foo", "bar")
	})
	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		Value []struct {
			ID int `json:"id"`
		} `json:"value"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Len(body.Value, 12)
}

func (s *RouterSuite) TestEventCatalogForTenant() {
	rec := s.get("/sap-events/v1/odm-finance-costobject.asyncapi2.json", func(req *http.Request) {
		req.Header.Set(resolve.HeaderGlobalTenantID, "740000101")
	})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "/default/sap.foo.bar/T1")
}

func (s *RouterSuite) TestUnknownRouteHasErrorEnvelope() {
	rec := s.get("/no/such/route", nil)
	s.Equal(http.StatusNotFound, rec.Code)

	var body map[string]map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("NOT_FOUND", body["error"]["code"])
	s.Equal("/no/such/route", body["error"]["target"])
}

func (s *RouterSuite) TestETagRoundTrip() {
	first := s.get("/.well-known/open-resource-discovery", nil)
	s.Require().Equal(http.StatusOK, first.Code)
	tag := first.Header().Get("ETag")
	s.Require().NotEmpty(tag)

	second := s.get("/.well-known/open-resource-discovery", func(req *http.Request) {
		req.Header.Set("If-None-Match", tag)
	})
	s.Equal(http.StatusNotModified, second.Code)
	s.Empty(second.Body.String())
}

func (s *RouterSuite) TestHealthEndpoints() {
	s.Equal(http.StatusOK, s.get("/health/v1", nil).Code)

	rec := s.get("/health/v2", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"OK"}`, rec.Body.String())
}

func (s *RouterSuite) TestMetricsEndpoint() {
	s.get("/astronomy/v1/constellations", nil)

	rec := s.get("/metrics", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ordref_http_requests_total")
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec
	EndpointLatency *prometheus.HistogramVec
	AuthFailures    prometheus.Counter
	DocumentsServed *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics on the given registerer.
// Passing a fresh registry in tests keeps registrations from colliding.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ordref_http_requests_total",
			Help: "Total number of HTTP requests served",
		}, []string{"method", "path", "status"}),
		EndpointLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ordref_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
		AuthFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "ordref_auth_failures_total",
			Help: "Total number of failed BasicAuth attempts",
		}),
		DocumentsServed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ordref_documents_served_total",
			Help: "Total number of discovery documents served, labeled by perspective and access strategy",
		}, []string{"perspective", "access_strategy"}),
	}
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, path, status string, durationSeconds float64) {
	m.HTTPRequests.WithLabelValues(method, path, status).Inc()
	m.EndpointLatency.WithLabelValues(path).Observe(durationSeconds)
}

// IncrementAuthFailures increments the auth failure counter by 1.
func (m *Metrics) IncrementAuthFailures() {
	m.AuthFailures.Inc()
}

// IncrementDocumentsServed records one served discovery document.
func (m *Metrics) IncrementDocumentsServed(perspective, accessStrategy string) {
	m.DocumentsServed.WithLabelValues(perspective, accessStrategy).Inc()
}

// Handler returns the Prometheus scrape endpoint for the given gatherer.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

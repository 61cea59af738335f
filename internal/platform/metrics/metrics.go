package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// Quotes counts priced orders by outcome (computed, cached, empty)
	Quotes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "route_quotes_total", Help: "Route cost quotes by outcome."},
		[]string{"outcome"},
	)
	// QuoteCacheErrors counts failed cache reads and writes by operation
	QuoteCacheErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "route_quote_cache_errors_total", Help: "Quote cache failures by operation."},
		[]string{"op"},
	)
	// RateLimited counts requests rejected by the rate limiter
	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "http_rate_limited_total", Help: "Requests rejected by the rate limiter."},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on Registry. Safe to call repeatedly.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(Quotes)
		Registry.MustRegister(QuoteCacheErrors)
		Registry.MustRegister(RateLimited)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

package api

import (
	"net/http"
	"route-cost-service/internal/api/handlers"
	"route-cost-service/internal/platform/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// limiter may be nil to disable rate limiting of cost requests.
func NewRouter(quotes handlers.Quoter, limiter *rate.Limiter) http.Handler {
	metrics.RegisterDefault()

	mux := http.NewServeMux()

	costHandler := &handlers.CostHandler{Quotes: quotes}

	mux.HandleFunc("/{$}", handlers.Health)
	mux.Handle("/calculate-cost", rateLimit(limiter, http.HandlerFunc(costHandler.Calculate)))
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return requestIDMiddleware(loggingMiddleware(mux))
}

package ports

import (
	"context"
	"route-cost-service/internal/domain"
)

// Optional store for previously computed quotes.
// Keys are built by the caller and already identify the network and the
// aggregated order; implementations treat them as opaque.
type QuoteCache interface {
	// Return the cached quote for key, reporting false on a miss.
	GetQuote(ctx context.Context, key string) (domain.RouteQuote, bool, error)
	// Store a quote under key.
	PutQuote(ctx context.Context, key string, quote domain.RouteQuote) error
}

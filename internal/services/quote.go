package services

import (
	"context"
	"errors"
	"fmt"
	"route-cost-service/internal/domain"
	"route-cost-service/internal/platform/metrics"
	"route-cost-service/internal/platform/obs"
	"route-cost-service/internal/ports"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// QuoteService prices orders against a fixed network.
// Cache is optional; cache failures are logged and never fail a quote.
type QuoteService struct {
	Network *domain.Network
	Cache   ports.QuoteCache
}

func NewQuoteService(net *domain.Network, cache ports.QuoteCache) *QuoteService {
	return &QuoteService{Network: net, Cache: cache}
}

// HasProduct reports whether id is in the network's catalog.
func (s *QuoteService) HasProduct(id string) bool {
	if s.Network == nil {
		return false
	}
	_, ok := s.Network.Product(id)
	return ok
}

// Quote aggregates the order and returns the cheapest route over all
// candidate starting centers.
func (s *QuoteService) Quote(ctx context.Context, order domain.Order) (_ domain.RouteQuote, err error) {
	defer obs.Time(ctx, "quote.Quote")(&err)

	if s.Network == nil {
		return domain.RouteQuote{}, errors.New("quote: network is nil")
	}

	weights := AggregateOrder(s.Network, order)
	if len(weights) == 0 {
		metrics.Quotes.WithLabelValues("empty").Inc()
		return domain.RouteQuote{Cost: decimal.Zero, Weights: weights}, nil
	}

	key := QuoteKey(s.Network, weights)

	if s.Cache != nil {
		cached, ok, err := s.Cache.GetQuote(ctx, key)
		switch {
		case err != nil:
			metrics.QuoteCacheErrors.WithLabelValues("get").Inc()
			obs.Logger(ctx).Warn("quote cache read failed", zap.String("key", key), zap.Error(err))
		case ok:
			metrics.Quotes.WithLabelValues("cached").Inc()
			cached.Weights = weights
			return cached, nil
		}
	}

	quote := MinimizeRouteCost(s.Network, weights)
	metrics.Quotes.WithLabelValues("computed").Inc()

	if s.Cache != nil {
		if err := s.Cache.PutQuote(ctx, key, quote); err != nil {
			metrics.QuoteCacheErrors.WithLabelValues("put").Inc()
			obs.Logger(ctx).Warn("quote cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return quote, nil
}

// QuoteKey identifies a quote by network contents and aggregated weights.
func QuoteKey(net *domain.Network, weights domain.CenterWeights) string {
	return fmt.Sprintf("%016x:%s", net.Fingerprint(), weights.Key())
}

package services

import (
	"route-cost-service/internal/domain"

	"github.com/shopspring/decimal"
)

// MinimizeRouteCost evaluates a route from every supply center and keeps the
// cheapest.
//
// All centers are candidates, including ones with no load of their own. Ties
// go to the first candidate in center order. Empty weights produce a zero quote
// without candidates.
func MinimizeRouteCost(net *domain.Network, weights domain.CenterWeights) domain.RouteQuote {
	quote := domain.RouteQuote{Cost: decimal.Zero, Weights: weights}
	if len(weights) == 0 {
		return quote
	}

	quote.Candidates = make([]domain.CandidateCost, 0, len(domain.Centers))
	for _, start := range domain.Centers {
		cost := EvaluateRoute(net, start, weights)
		quote.Candidates = append(quote.Candidates, domain.CandidateCost{Start: start, Cost: cost})

		if quote.Start == "" || cost.LessThan(quote.Cost) {
			quote.Cost = cost
			quote.Start = start
		}
	}

	return quote
}

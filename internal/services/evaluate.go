package services

import (
	"route-cost-service/internal/domain"

	"github.com/shopspring/decimal"
)

// EvaluateRoute prices the hub-and-spoke route that starts at start.
//
// The start center's load (if any) is delivered straight to the hub. Every
// other loaded center, in center order, then costs an empty leg out from the
// hub plus the loaded leg back. The vehicle is always at the hub before each
// repositioning leg.
func EvaluateRoute(net *domain.Network, start domain.Location, weights domain.CenterWeights) decimal.Decimal {
	total := decimal.Zero

	if weights.Loaded(start) {
		total = total.Add(LegCost(weights.Weight(start), net.Distance(start, domain.Hub)))
	}

	for _, next := range domain.Centers {
		if next == start || !weights.Loaded(next) {
			continue
		}
		total = total.Add(LegCost(decimal.Zero, net.Distance(domain.Hub, next)))
		total = total.Add(LegCost(weights.Weight(next), net.Distance(next, domain.Hub)))
	}

	return total
}

package services

import (
	"route-cost-service/internal/domain"

	"github.com/shopspring/decimal"
)

// AggregateOrder groups an order by supply center and sums unit weight times
// quantity per center.
//
// Unknown products and non-positive quantities contribute nothing. Centers
// whose total is not strictly positive are left out of the result, so an
// order without valid lines yields an empty map.
func AggregateOrder(net *domain.Network, order domain.Order) domain.CenterWeights {
	totals := make(domain.CenterWeights, len(domain.Centers))

	for id, qty := range order {
		if qty <= 0 {
			continue
		}
		p, ok := net.Product(id)
		if !ok {
			continue
		}
		line := p.Weight.Mul(decimal.NewFromFloat(qty))
		totals[p.Center] = totals.Weight(p.Center).Add(line)
	}

	for c, w := range totals {
		if !w.IsPositive() {
			delete(totals, c)
		}
	}

	return totals
}

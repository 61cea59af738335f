package services

import "github.com/shopspring/decimal"

var (
	baseRate    = decimal.NewFromInt(10)
	bracketRate = decimal.NewFromInt(8)
	bracketSize = decimal.NewFromInt(5)
	one         = decimal.NewFromInt(1)
)

// LegCost prices a single leg carrying weight over distance.
//
// Loads up to 5 travel at the base rate of 10 per unit distance. Heavier loads
// pay 8 more per unit distance for every started 5-unit bracket above the base:
// additional = floor((weight-5)/5) + 1. An empty leg (weight 0) is priced at the
// base rate. A leg without a known distance costs nothing.
func LegCost(weight decimal.Decimal, distance decimal.NullDecimal) decimal.Decimal {
	if !distance.Valid {
		return decimal.Zero
	}

	if weight.LessThanOrEqual(bracketSize) {
		return baseRate.Mul(distance.Decimal)
	}

	additional := weight.Sub(bracketSize).Div(bracketSize).Floor().Add(one)
	rate := baseRate.Add(bracketRate.Mul(additional))
	return rate.Mul(distance.Decimal)
}

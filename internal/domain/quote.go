package domain

import "github.com/shopspring/decimal"

// CandidateCost is the total route cost when starting from Start.
type CandidateCost struct {
	Start Location
	Cost  decimal.Decimal
}

// Represents the outcome of pricing an order.
// Cost is the minimum over Candidates; Start is the first candidate (in center
// order) achieving it. An order with no valid products yields a zero quote with
// no candidates and an empty Start.
type RouteQuote struct {
	Cost       decimal.Decimal
	Start      Location
	Candidates []CandidateCost
	Weights    CenterWeights
}

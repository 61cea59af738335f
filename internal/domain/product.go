package domain

import "github.com/shopspring/decimal"

// Represents an orderable item stocked at exactly one supply center.
// Weight is the per-unit weight and is always positive.
type Product struct {
	ID     string
	Center Location
	Weight decimal.Decimal
}

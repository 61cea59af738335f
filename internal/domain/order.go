package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Order maps product identifiers to requested quantities.
type Order map[string]float64

// CenterWeights holds the total ordered weight per supply center.
// Only centers with a strictly positive total are present.
type CenterWeights map[Location]decimal.Decimal

// Weight returns the total for c, or zero when c has no load.
func (w CenterWeights) Weight(c Location) decimal.Decimal {
	if v, ok := w[c]; ok {
		return v
	}
	return decimal.Zero
}

// Loaded reports whether c carries a positive load.
func (w CenterWeights) Loaded(c Location) bool {
	return w.Weight(c).IsPositive()
}

// Key renders the weights in center order, e.g. "C1=3;C3=1.5".
// Equal weights always produce the same key.
func (w CenterWeights) Key() string {
	var b strings.Builder
	for _, c := range Centers {
		v, ok := w[c]
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(';')
		}
		b.WriteString(string(c))
		b.WriteByte('=')
		b.WriteString(v.String())
	}
	return b.String()
}

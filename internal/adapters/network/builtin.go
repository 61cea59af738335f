package network

import (
	"context"
	"route-cost-service/internal/domain"

	"github.com/shopspring/decimal"
)

// BuiltinSource serves the compiled-in network.
type BuiltinSource struct{}

func NewBuiltinSource() *BuiltinSource { return &BuiltinSource{} }

func (BuiltinSource) LoadNetwork(ctx context.Context) (*domain.Network, error) {
	return domain.NewNetwork(BuiltinProducts(), BuiltinDistances())
}

// BuiltinProducts returns the default product catalog.
func BuiltinProducts() []domain.Product {
	return []domain.Product{
		{ID: "A", Center: domain.C1, Weight: decimal.NewFromInt(3)},
		{ID: "B", Center: domain.C1, Weight: decimal.NewFromInt(2)},
		{ID: "C", Center: domain.C1, Weight: decimal.NewFromInt(8)},
		{ID: "D", Center: domain.C2, Weight: decimal.NewFromInt(12)},
		{ID: "E", Center: domain.C2, Weight: decimal.NewFromInt(25)},
		{ID: "F", Center: domain.C2, Weight: decimal.NewFromInt(15)},
		{ID: "G", Center: domain.C3, Weight: decimal.NewFromFloat(0.5)},
		{ID: "H", Center: domain.C3, Weight: decimal.NewFromInt(1)},
		{ID: "I", Center: domain.C3, Weight: decimal.NewFromInt(2)},
	}
}

// BuiltinDistances returns the default distance table, one entry per pair.
func BuiltinDistances() []domain.Distance {
	return []domain.Distance{
		{From: domain.C1, To: domain.Hub, Value: decimal.NewFromInt(3)},
		{From: domain.C2, To: domain.Hub, Value: decimal.NewFromFloat(2.5)},
		{From: domain.C3, To: domain.Hub, Value: decimal.NewFromInt(2)},
		{From: domain.C1, To: domain.C2, Value: decimal.NewFromInt(4)},
		{From: domain.C1, To: domain.C3, Value: decimal.NewFromInt(5)},
		{From: domain.C2, To: domain.C3, Value: decimal.NewFromInt(3)},
	}
}

// MustBuiltin returns the compiled-in network and panics if it is invalid.
func MustBuiltin() *domain.Network {
	n, err := domain.NewNetwork(BuiltinProducts(), BuiltinDistances())
	if err != nil {
		panic(err)
	}
	return n
}

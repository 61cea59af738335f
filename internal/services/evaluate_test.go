package services

import (
	"route-cost-service/internal/adapters/network"
	"route-cost-service/internal/domain"
	"testing"

	"github.com/shopspring/decimal"
)

func TestEvaluateRoute(t *testing.T) {
	net := network.MustBuiltin()

	// C1=3 (base tier), C2=12 (26/unit), C3=1 (base tier).
	mixed := domain.CenterWeights{
		domain.C1: decimal.NewFromInt(3),
		domain.C2: decimal.NewFromInt(12),
		domain.C3: decimal.NewFromInt(1),
	}
	onlyC1 := domain.CenterWeights{domain.C1: decimal.NewFromInt(3)}

	tests := []struct {
		name    string
		start   domain.Location
		weights domain.CenterWeights
		want    string
	}{
		{name: "start at loaded center", start: domain.C1, weights: onlyC1, want: "30"},
		{name: "start at empty center", start: domain.C2, weights: onlyC1, want: "60"},
		{name: "start at other empty center", start: domain.C3, weights: onlyC1, want: "60"},
		// 30 + (25 + 65) + (20 + 20)
		{name: "mixed from C1", start: domain.C1, weights: mixed, want: "160"},
		// 65 + (30 + 30) + (20 + 20)
		{name: "mixed from C2", start: domain.C2, weights: mixed, want: "165"},
		// 20 + (30 + 30) + (25 + 65)
		{name: "mixed from C3", start: domain.C3, weights: mixed, want: "170"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateRoute(net, tt.start, tt.weights)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Fatalf("cost = %s, want %s", got, tt.want)
			}
		})
	}
}

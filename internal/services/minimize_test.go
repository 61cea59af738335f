package services

import (
	"route-cost-service/internal/adapters/network"
	"route-cost-service/internal/domain"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMinimizeRouteCostSingleProduct(t *testing.T) {
	net := network.MustBuiltin()

	q := MinimizeRouteCost(net, AggregateOrder(net, domain.Order{"A": 1}))

	if !q.Cost.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("cost = %s, want 30", q.Cost)
	}
	if q.Start != domain.C1 {
		t.Fatalf("start = %q, want C1", q.Start)
	}

	want := []string{"30", "60", "60"}
	if len(q.Candidates) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(q.Candidates), len(want))
	}
	for i, c := range q.Candidates {
		if c.Start != domain.Centers[i] {
			t.Errorf("candidate %d start = %q, want %q", i, c.Start, domain.Centers[i])
		}
		if !c.Cost.Equal(decimal.RequireFromString(want[i])) {
			t.Errorf("candidate %s cost = %s, want %s", c.Start, c.Cost, want[i])
		}
	}
}

func TestMinimizeRouteCostEmpty(t *testing.T) {
	net := network.MustBuiltin()

	q := MinimizeRouteCost(net, domain.CenterWeights{})
	if !q.Cost.IsZero() {
		t.Fatalf("cost = %s, want 0", q.Cost)
	}
	if q.Start != "" || len(q.Candidates) != 0 {
		t.Fatalf("expected no candidates, got start=%q candidates=%d", q.Start, len(q.Candidates))
	}
}

func TestMinimizeRouteCostIsMinimumOfCandidates(t *testing.T) {
	net := network.MustBuiltin()

	orders := []domain.Order{
		{"A": 1, "D": 1, "G": 2},
		{"E": 1},
		{"C": 3, "F": 1},
		{"G": 1, "H": 1, "I": 1},
		{"B": 2, "E": 2, "I": 4},
	}

	for _, order := range orders {
		weights := AggregateOrder(net, order)
		q := MinimizeRouteCost(net, weights)

		lowest := EvaluateRoute(net, domain.Centers[0], weights)
		for _, c := range domain.Centers {
			cost := EvaluateRoute(net, c, weights)
			if q.Cost.GreaterThan(cost) {
				t.Errorf("order %v: minimum %s exceeds candidate %s cost %s", order, q.Cost, c, cost)
			}
			if cost.LessThan(lowest) {
				lowest = cost
			}
		}
		if !q.Cost.Equal(lowest) {
			t.Errorf("order %v: cost = %s, want %s", order, q.Cost, lowest)
		}
		if len(q.Candidates) != len(domain.Centers) {
			t.Errorf("order %v: got %d candidates, want %d", order, len(q.Candidates), len(domain.Centers))
		}
	}
}

func TestMinimizeRouteCostTieGoesToFirstCenter(t *testing.T) {
	ds := make([]domain.Distance, 0, 6)
	for i, c := range domain.Centers {
		ds = append(ds, domain.Distance{From: c, To: domain.Hub, Value: decimal.NewFromInt(1)})
		for _, o := range domain.Centers[i+1:] {
			ds = append(ds, domain.Distance{From: c, To: o, Value: decimal.NewFromInt(1)})
		}
	}
	net, err := domain.NewNetwork(nil, ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	weights := domain.CenterWeights{
		domain.C1: decimal.NewFromInt(1),
		domain.C2: decimal.NewFromInt(1),
	}
	q := MinimizeRouteCost(net, weights)

	if !q.Cost.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("cost = %s, want 30", q.Cost)
	}
	if q.Start != domain.C1 {
		t.Fatalf("start = %q, want C1", q.Start)
	}
}

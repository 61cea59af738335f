package ports

import (
	"context"
	"route-cost-service/internal/domain"
)

// Contract for loading the static logistics network.
// Sources are read once at process start; the result is never mutated.
type NetworkSource interface {
	// Load and validate the product catalog and distance table.
	LoadNetwork(ctx context.Context) (*domain.Network, error)
}

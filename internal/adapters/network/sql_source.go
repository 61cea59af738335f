package network

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-cost-service/internal/domain"
	"route-cost-service/internal/platform/obs"

	"github.com/shopspring/decimal"
)

// SQLSource loads the network from the Postgres tables created by InitSchema.
type SQLSource struct {
	DB *sql.DB
}

func NewSQLSource(db *sql.DB) *SQLSource {
	return &SQLSource{DB: db}
}

func (s *SQLSource) LoadNetwork(ctx context.Context) (_ *domain.Network, err error) {
	defer obs.Time(ctx, "network.sql.LoadNetwork")(&err)

	if s.DB == nil {
		return nil, errors.New("load network: DB is nil")
	}

	products, err := s.listProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load network: %w", err)
	}

	distances, err := s.listDistances(ctx)
	if err != nil {
		return nil, fmt.Errorf("load network: %w", err)
	}

	net, err := domain.NewNetwork(products, distances)
	if err != nil {
		return nil, fmt.Errorf("load network: %w", err)
	}
	return net, nil
}

func (s *SQLSource) listProducts(ctx context.Context) ([]domain.Product, error) {
	q := `
	SELECT product_id, center, weight
	FROM network_products
	ORDER BY product_id;
	`

	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list products: query network_products table: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0, 16)
	for rows.Next() {
		var id, center string
		var weight decimal.Decimal
		if err := rows.Scan(&id, &center, &weight); err != nil {
			return nil, fmt.Errorf("list products: scan row: %w", err)
		}
		products = append(products, domain.Product{ID: id, Center: domain.Location(center), Weight: weight})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: row iteration: %w", err)
	}

	return products, nil
}

func (s *SQLSource) listDistances(ctx context.Context) ([]domain.Distance, error) {
	q := `
	SELECT origin, destination, distance
	FROM network_distances
	ORDER BY origin, destination;
	`

	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list distances: query network_distances table: %w", err)
	}
	defer rows.Close()

	distances := make([]domain.Distance, 0, 8)
	for rows.Next() {
		var origin, dest string
		var value decimal.Decimal
		if err := rows.Scan(&origin, &dest, &value); err != nil {
			return nil, fmt.Errorf("list distances: scan row: %w", err)
		}
		distances = append(distances, domain.Distance{
			From:  domain.Location(origin),
			To:    domain.Location(dest),
			Value: value,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list distances: row iteration: %w", err)
	}

	return distances, nil
}

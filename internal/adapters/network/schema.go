package network

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-cost-service/internal/domain"
)

// Initialize the Postgres schema holding the network tables.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createProductsQuery := `
	CREATE TABLE IF NOT EXISTS network_products (
		product_id TEXT PRIMARY KEY,
		center TEXT NOT NULL CHECK (center IN ('C1', 'C2', 'C3')),
		weight NUMERIC NOT NULL CHECK (weight > 0)
	);
	`

	createDistancesQuery := `
	CREATE TABLE IF NOT EXISTS network_distances (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		distance NUMERIC NOT NULL CHECK (distance >= 0),
		PRIMARY KEY (origin, destination),
		CHECK (origin < destination)
	);
	`

	statements := []string{
		createProductsQuery,
		createDistancesQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Replace the stored network with net.
// Distances are stored once per pair with origin < destination.
func SeedNetwork(ctx context.Context, db *sql.DB, net *domain.Network) error {
	if db == nil {
		return errors.New("seed network: DB is nil")
	}
	if net == nil {
		return errors.New("seed network: network is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed network: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, q := range []string{`DELETE FROM network_products;`, `DELETE FROM network_distances;`} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("seed network: clear tables: %w", err)
		}
	}

	productStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO network_products (product_id, center, weight)
	VALUES ($1, $2, $3);
	`)
	if err != nil {
		return fmt.Errorf("seed network: prepare product insert: %w", err)
	}
	defer productStmt.Close()

	for _, p := range net.Products() {
		if _, err := productStmt.ExecContext(ctx, p.ID, string(p.Center), p.Weight); err != nil {
			return fmt.Errorf("seed network: insert product_id=%s: %w", p.ID, err)
		}
	}

	distanceStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO network_distances (origin, destination, distance)
	VALUES ($1, $2, $3);
	`)
	if err != nil {
		return fmt.Errorf("seed network: prepare distance insert: %w", err)
	}
	defer distanceStmt.Close()

	for _, d := range net.Distances() {
		if _, err := distanceStmt.ExecContext(ctx, string(d.From), string(d.To), d.Value); err != nil {
			return fmt.Errorf("seed network: insert distance %s-%s: %w", d.From, d.To, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed network: commit tx: %w", err)
	}

	return nil
}

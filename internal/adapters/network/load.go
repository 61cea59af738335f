package network

import (
	"context"
	"fmt"
	"route-cost-service/internal/config"
	"route-cost-service/internal/domain"
	"route-cost-service/internal/platform/db"
	"route-cost-service/internal/ports"
)

var (
	_ ports.NetworkSource = BuiltinSource{}
	_ ports.NetworkSource = (*FileSource)(nil)
	_ ports.NetworkSource = (*SQLSource)(nil)
)

// Load reads the network from the source selected in cfg.
// A Postgres connection is only held for the duration of the load.
func Load(ctx context.Context, cfg config.Config) (*domain.Network, error) {
	var src ports.NetworkSource

	switch cfg.NetworkSource {
	case config.SourceFile:
		src = NewFileSource(cfg.NetworkFile)
	case config.SourcePostgres:
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("load network: %w", err)
		}
		defer conn.Close()
		src = NewSQLSource(conn)
	case config.SourceBuiltin, "":
		src = NewBuiltinSource()
	default:
		return nil, fmt.Errorf("load network: unknown source %q", cfg.NetworkSource)
	}

	return src.LoadNetwork(ctx)
}

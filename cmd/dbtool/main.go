package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"route-cost-service/internal/adapters/network"
	"route-cost-service/internal/config"
	"route-cost-service/internal/domain"
	"route-cost-service/internal/platform/db"
	"route-cost-service/internal/platform/logging"
	"strings"

	"go.uber.org/zap"
)

// dbtool creates the network tables and seeds them from NETWORK_FILE, or
// from the compiled-in network when no file is given.
func main() {
	if !config.LoadDotEnv() {
		fmt.Fprintln(os.Stderr, "No .env file found (using environment variables)")
	}

	logCfg := logging.DefaultConfig()
	logCfg.Format = "console"
	if err := logging.Initialize(logCfg); err != nil {
		fmt.Fprintf(os.Stderr, "init logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()
	log := logging.Logger

	databaseURL := config.Get("DATABASE_URL", "")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()

	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	defer conn.Close()

	source := config.SourceBuiltin
	networkFile := config.Get("NETWORK_FILE", "")
	if networkFile != "" {
		source = config.SourceFile
	}
	net, err := network.Load(ctx, config.Config{NetworkSource: source, NetworkFile: networkFile})
	if err != nil {
		log.Fatal("load seed network", zap.Error(err))
	}

	if err := initAndSeed(ctx, conn, net); err != nil {
		log.Fatal("init and seed", zap.Error(err))
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, net *domain.Network) error {
	log := logging.Logger

	log.Info("initializing database schema...")
	if err := network.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Info("schema ready")

	log.Info("seeding network...",
		zap.Int("products", len(net.Products())),
		zap.Int("distances", len(net.Distances())),
	)
	if err := network.SeedNetwork(ctx, conn, net); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Info("seeding complete", zap.String("fingerprint", fmt.Sprintf("%016x", net.Fingerprint())))

	return nil
}

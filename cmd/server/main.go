package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"route-cost-service/internal/adapters/cache"
	"route-cost-service/internal/adapters/network"
	"route-cost-service/internal/api"
	"route-cost-service/internal/config"
	"route-cost-service/internal/platform/logging"
	"route-cost-service/internal/ports"
	"route-cost-service/internal/services"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// main is the application composition root.
// It loads the network once, wires the optional quote cache and starts the HTTP server.
func main() {
	loadedEnv := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	if err := logging.Initialize(logCfg); err != nil {
		fmt.Fprintf(os.Stderr, "init logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()
	log := logging.Logger

	if !loadedEnv {
		log.Info("no .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	net, err := network.Load(ctx, cfg)
	if err != nil {
		log.Fatal("load network", zap.Error(err))
	}
	log.Info("network loaded",
		zap.String("source", cfg.NetworkSource),
		zap.Int("products", len(net.Products())),
		zap.String("fingerprint", fmt.Sprintf("%016x", net.Fingerprint())),
	)

	var quoteCache ports.QuoteCache
	if cfg.RedisURL != "" {
		rc, err := cache.OpenRedisQuoteCache(ctx, cfg.RedisURL, cfg.QuoteCacheTTL)
		if err != nil {
			log.Fatal("open quote cache", zap.Error(err))
		}
		defer rc.Close()
		quoteCache = rc
		log.Info("quote cache enabled", zap.Duration("ttl", cfg.QuoteCacheTTL))
	}

	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	}

	router := api.NewRouter(services.NewQuoteService(net, quoteCache), limiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", zap.Error(err))
		}
	}
}

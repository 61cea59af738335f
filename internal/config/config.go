// Package config reads service settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Network sources accepted by NETWORK_SOURCE.
const (
	SourceBuiltin  = "builtin"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	Port string

	LogLevel  string
	LogFormat string

	// NetworkSource selects where the product catalog and distance table come
	// from. When empty it is inferred: NETWORK_FILE wins over DATABASE_URL,
	// and the compiled-in network is used when neither is set.
	NetworkSource string
	NetworkFile   string
	DatabaseURL   string

	// RedisURL enables the quote cache when non-empty.
	RedisURL      string
	QuoteCacheTTL time.Duration

	// RateLimitRPS of 0 disables rate limiting.
	RateLimitRPS   float64
	RateLimitBurst int
}

// LoadDotEnv loads .env into the process environment if the file exists.
// It reports whether a file was loaded.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:          Get("PORT", "5000"),
		LogLevel:      Get("LOG_LEVEL", "info"),
		LogFormat:     Get("LOG_FORMAT", "json"),
		NetworkSource: strings.ToLower(Get("NETWORK_SOURCE", "")),
		NetworkFile:   Get("NETWORK_FILE", ""),
		DatabaseURL:   Get("DATABASE_URL", ""),
		RedisURL:      Get("REDIS_URL", ""),
	}

	var err error
	if cfg.QuoteCacheTTL, err = GetDuration("QUOTE_CACHE_TTL", 10*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRPS, err = GetFloat("RATE_LIMIT_RPS", 0); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitBurst, err = GetInt("RATE_LIMIT_BURST", 20); err != nil {
		return Config{}, err
	}

	if cfg.NetworkSource == "" {
		switch {
		case cfg.NetworkFile != "":
			cfg.NetworkSource = SourceFile
		case cfg.DatabaseURL != "":
			cfg.NetworkSource = SourcePostgres
		default:
			cfg.NetworkSource = SourceBuiltin
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.NetworkSource {
	case SourceBuiltin:
	case SourceFile:
		if strings.TrimSpace(c.NetworkFile) == "" {
			return fmt.Errorf("config: NETWORK_FILE is required for network source %q", c.NetworkSource)
		}
	case SourcePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("config: DATABASE_URL is required for network source %q", c.NetworkSource)
		}
	default:
		return fmt.Errorf("config: unknown NETWORK_SOURCE %q", c.NetworkSource)
	}

	if c.QuoteCacheTTL < 0 {
		return fmt.Errorf("config: QUOTE_CACHE_TTL must not be negative")
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("config: RATE_LIMIT_RPS must not be negative")
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		return fmt.Errorf("config: RATE_LIMIT_BURST must be >= 1 when rate limiting is enabled")
	}
	return nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func GetFloat(key string, fallback float64) (float64, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return f, nil
}

func GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

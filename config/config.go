// Package config loads the scan binaries' configuration: infrastructure
// endpoints from environment variables, evaluation parameters from an
// optional YAML file layered over the engine defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pairs-enginev1/internal/filter"
)

// Config holds infrastructure configuration loaded from environment variables.
type Config struct {
	// RedisAddr enables decision/snapshot publishing when non-empty.
	RedisAddr     string
	RedisPassword string
	SQLitePath    string
	MetricsAddr   string
	GatewayAddr   string
}

// Load reads infrastructure configuration from environment variables with
// sensible defaults. Redis is opt-in: an empty REDIS_ADDR runs the scan
// without publishing.
func Load() *Config {
	return &Config{
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		SQLitePath:    getEnv("SQLITE_PATH", "data/prices.db"),
		MetricsAddr:   getEnv("METRICS_ADDR", ":9090"),
		GatewayAddr:   getEnv("GATEWAY_ADDR", ":8081"),
	}
}

// LoadEval returns the evaluation parameters: the engine defaults overlaid
// with the YAML file at path when path is non-empty. The result is validated
// before any evaluation runs.
func LoadEval(path string) (filter.Config, error) {
	cfg := filter.DefaultConfig()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read eval config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse eval config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

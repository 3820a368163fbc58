package config

import (
	"os"
	"path/filepath"
	"testing"

	"pairs-enginev1/internal/filter"
	"pairs-enginev1/internal/model"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"REDIS_ADDR", "REDIS_PASSWORD", "SQLITE_PATH", "METRICS_ADDR", "GATEWAY_ADDR"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr default %q, want empty (publishing is opt-in)", cfg.RedisAddr)
	}
	if cfg.SQLitePath != "data/prices.db" {
		t.Errorf("SQLitePath default %q", cfg.SQLitePath)
	}
	if cfg.MetricsAddr != ":9090" {
		t.Errorf("MetricsAddr default %q", cfg.MetricsAddr)
	}
	if cfg.GatewayAddr != ":8081" {
		t.Errorf("GatewayAddr default %q", cfg.GatewayAddr)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("SQLITE_PATH", "/tmp/test.db")

	cfg := Load()
	if cfg.RedisAddr != "redis:6379" {
		t.Errorf("RedisAddr = %q", cfg.RedisAddr)
	}
	if cfg.SQLitePath != "/tmp/test.db" {
		t.Errorf("SQLitePath = %q", cfg.SQLitePath)
	}
}

func TestLoadEval_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadEval("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != filter.DefaultConfig() {
		t.Fatalf("empty path must return the engine defaults, got %+v", cfg)
	}
}

func TestLoadEval_YAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eval.yaml")
	body := `
zscore_window: 30
entry_zscore_threshold: 1.5
entry_rsi_long_threshold: 30
combine_policy: any
hurst_filter: true
hurst_tolerance: 0.05
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadEval(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ZScoreWindow != 30 {
		t.Errorf("ZScoreWindow = %d, want 30", cfg.ZScoreWindow)
	}
	if cfg.EntryZScore != 1.5 {
		t.Errorf("EntryZScore = %g, want 1.5", cfg.EntryZScore)
	}
	if cfg.EntryRSILong != 30 {
		t.Errorf("EntryRSILong = %g, want 30", cfg.EntryRSILong)
	}
	if cfg.Combine != filter.CombineAny {
		t.Errorf("Combine = %q, want any", cfg.Combine)
	}
	if !cfg.HurstFilter || cfg.HurstTolerance != 0.05 {
		t.Errorf("hurst overlay not applied: %+v", cfg)
	}
	// Untouched keys keep their defaults.
	if cfg.MinSamples != 50 || cfg.RSIWindow != 14 {
		t.Errorf("defaults clobbered: %+v", cfg)
	}
}

func TestLoadEval_InvalidValuesRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eval.yaml")
	if err := os.WriteFile(path, []byte("confidence: 80\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadEval(path)
	if err == nil {
		t.Fatal("expected validation error for confidence 80")
	}
	if _, ok := err.(*model.ConfigurationError); !ok {
		t.Fatalf("expected ConfigurationError, got %T: %v", err, err)
	}
}

func TestLoadEval_MissingFile(t *testing.T) {
	if _, err := LoadEval(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

package config_test

import (
	"testing"

	"pharmatrack/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LOW_STOCK_THRESHOLD", "")
	t.Setenv("NEAR_EXPIRY_DAYS", "")
	t.Setenv("LOG_JSON", "")

	cfg := config.Load()
	if cfg.LowStockThreshold != 5 {
		t.Errorf("LowStockThreshold = %d, expected 5", cfg.LowStockThreshold)
	}
	if cfg.NearExpiryDays != 90 {
		t.Errorf("NearExpiryDays = %d, expected 90", cfg.NearExpiryDays)
	}
	if cfg.LogJSON {
		t.Error("LogJSON should default to false")
	}
}

func TestLoadOverridesAndBadValues(t *testing.T) {
	t.Setenv("LOW_STOCK_THRESHOLD", "10")
	t.Setenv("NEAR_EXPIRY_DAYS", "not-a-number")
	t.Setenv("LOG_JSON", "true")

	cfg := config.Load()
	if cfg.LowStockThreshold != 10 {
		t.Errorf("LowStockThreshold = %d, expected 10", cfg.LowStockThreshold)
	}
	if cfg.NearExpiryDays != 90 {
		t.Errorf("NearExpiryDays = %d, expected fallback 90", cfg.NearExpiryDays)
	}
	if !cfg.LogJSON {
		t.Error("LogJSON should be true")
	}
}

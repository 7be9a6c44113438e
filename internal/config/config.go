package config

import (
	"os"
	"strconv"

	"pharmatrack/internal/service"
)

// Config carries the shell-level settings. The domain thresholds default to
// the service constants; the environment can widen or narrow the
// presentation-side windows.
type Config struct {
	LowStockThreshold int
	NearExpiryDays    int
	SeedFile          string
	LogJSON           bool
}

func Load() Config {
	return Config{
		LowStockThreshold: envInt("LOW_STOCK_THRESHOLD", service.LowStockThreshold),
		NearExpiryDays:    envInt("NEAR_EXPIRY_DAYS", service.DefaultNearExpiryDays),
		SeedFile:          os.Getenv("SEED_FILE"),
		LogJSON:           envBool("LOG_JSON"),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

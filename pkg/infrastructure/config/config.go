package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the reorder engine. Values come from
// the environment, with a .env file as an optional local override source.
type Config struct {
	Environment string

	// FallbackLeadTimeDays sizes the expected delivery window when a part has
	// no lead time on record.
	FallbackLeadTimeDays int

	// RecentCostWindowDays is the dashboard lookback for recent reorder cost.
	RecentCostWindowDays int

	// DataDir is where the CSV fixture files live.
	DataDir string
}

// Load reads configuration from the environment. A missing .env file is not
// an error; explicit environment variables always win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment:          getEnv("SPARETRACK_ENV", "development"),
		FallbackLeadTimeDays: getEnvInt("SPARETRACK_FALLBACK_LEAD_TIME_DAYS", 30),
		RecentCostWindowDays: getEnvInt("SPARETRACK_RECENT_COST_WINDOW_DAYS", 30),
		DataDir:              getEnv("SPARETRACK_DATA_DIR", "examples/weldshop_basic"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

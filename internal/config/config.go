package config

import (
	"os"
	"time"

	"go-econ-trends/internal/cache"
	"go-econ-trends/internal/worldbank"
	"go-econ-trends/pkg/utils"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Server
	ServerAddr string

	// Storage
	DBPath   string // query-history SQLite file
	CacheDir string

	// Cache freshness window
	CacheMaxAge time.Duration

	// Provider
	WorldBankBaseURL string
	FetchDelay       time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		ServerAddr:       getEnv("SERVER_ADDR", ":8080"),
		DBPath:           getEnv("DB_PATH", "econ-trends.db"),
		CacheDir:         getEnv("CACHE_DIR", "data"),
		CacheMaxAge:      utils.ParseDuration(os.Getenv("CACHE_MAX_AGE"), cache.DefaultMaxAge),
		WorldBankBaseURL: getEnv("WORLDBANK_BASE_URL", worldbank.DefaultBaseURL),
		FetchDelay:       utils.ParseDuration(os.Getenv("FETCH_DELAY"), worldbank.DefaultFetchDelay),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all tool settings, populated from environment variables.
type Config struct {
	LogLevel    string
	LogFormat   string
	Workers     int
	MetricsFile string
}

// Load reads configuration from the environment, applying defaults
// where unset. A .env file in the working directory is merged in
// best-effort first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	workers, err := parsePositiveInt("WORKERS", runtime.GOMAXPROCS(0))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
		LogFormat:   envOrDefault("LOG_FORMAT", "text"),
		Workers:     workers,
		MetricsFile: os.Getenv("METRICS_FILE"),
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s %q", key, s)
	}
	return n, nil
}

package common

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	Extractor ExtractorConfig
	Log       LogConfig
}

// ExtractorConfig carries the table-detection settings handed to the external
// page extractor, plus the precision used for derived per-line amounts.
type ExtractorConfig struct {
	VerticalStrategy   string
	HorizontalStrategy string
	SnapTolerance      int
	JoinTolerance      int
	Decimals           int
}

// LogConfig holds logging-related configuration
type LogConfig struct {
	Level string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Extractor: ExtractorConfig{
			VerticalStrategy:   getEnv("TABLE_VERTICAL_STRATEGY", "lines"),
			HorizontalStrategy: getEnv("TABLE_HORIZONTAL_STRATEGY", "text"),
			SnapTolerance:      getEnvAsInt("TABLE_SNAP_TOLERANCE", 3),
			JoinTolerance:      getEnvAsInt("TABLE_JOIN_TOLERANCE", 3),
			Decimals:           getEnvAsInt("AMOUNT_DECIMALS", 3),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// SlogLevel maps the configured level name onto a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

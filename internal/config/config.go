package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Version is the crumb release version.
const Version = "0.1.0"

// Config holds all crumb configuration. The analysis inputs (log file,
// target date) come from command-line arguments; everything ambient is
// environment-driven so the four-token argument contract stays intact.
type Config struct {
	LogLevel  string // "debug", "info", "warn", "error"
	LogFormat string // "text" or "json" diagnostics on stderr
	Color     string // "auto", "always", "never"
	Width     int    // report width in columns; 0 = detect
	Format    string // "auto", "csv", "ndjson" input format
}

// Load reads configuration from environment variables with sensible
// defaults.
func Load() Config {
	return Config{
		LogLevel:  getenv("CRUMB_LOG_LEVEL", "info"),
		LogFormat: getenv("CRUMB_LOG_FORMAT", "text"),
		Color:     getenv("CRUMB_COLOR", "auto"),
		Width:     getenvInt("CRUMB_WIDTH", 0),
		Format:    getenv("CRUMB_FORMAT", "auto"),
	}
}

// Validate reports every configuration problem at once.
func (c Config) Validate() error {
	var errs []error

	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log format must be \"text\" or \"json\", got %q", c.LogFormat))
	}

	switch c.Color {
	case "auto", "always", "never":
	default:
		errs = append(errs, fmt.Errorf("color must be \"auto\", \"always\" or \"never\", got %q", c.Color))
	}

	if c.Width < 0 {
		errs = append(errs, fmt.Errorf("width must not be negative, got %d", c.Width))
	}

	switch c.Format {
	case "auto", "csv", "ndjson":
	default:
		errs = append(errs, fmt.Errorf("input format must be \"auto\", \"csv\" or \"ndjson\", got %q", c.Format))
	}

	return errors.Join(errs...)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port             string
	GoogleMapsAPIKey string
	DBPath           string
	DatabaseURL      string
	Timezone         string
	CacheTTL         time.Duration
	SettleDelay      time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Port:             Get("PORT", "8080"),
		GoogleMapsAPIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),
		DBPath:           Get("DB_PATH", "data/app.db"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		Timezone:         Get("TIMEZONE", "Asia/Singapore"),
		CacheTTL:         getDurationEnv("CACHE_TTL_SECONDS", 3600),
		SettleDelay:      getMillisEnv("SETTLE_DELAY_MS", 200),
	}
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.GoogleMapsAPIKey) == "" {
		return errors.New("GOOGLE_MAPS_API_KEY is required")
	}
	return nil
}

// Get returns the value of an environment variable, or the fallback when
// unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, defaultSeconds int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return time.Duration(defaultSeconds) * time.Second
}

func getMillisEnv(key string, defaultMillis int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if ms, err := strconv.Atoi(value); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return time.Duration(defaultMillis) * time.Millisecond
}

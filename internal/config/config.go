package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

const defaultAPIURL = "https://api.twitter.com/1.1"

// Config holds the non-secret runtime settings read from the environment.
type Config struct {
	// Logging
	LogLevel string

	// Twitter API base URL, overridable for proxies and tests
	APIURL string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel: getEnv("LOG_LEVEL", "error"),
		APIURL:   getEnv("TWITTER_API_URL", defaultAPIURL),
	}

	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Level parses LogLevel into a zap level.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return lvl, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

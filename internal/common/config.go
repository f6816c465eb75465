package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	DocIntel DocIntelConfig
}

// DocIntelConfig holds the document-understanding service configuration.
type DocIntelConfig struct {
	Endpoint     string
	APIKey       string
	APIVersion   string
	ModelID      string
	Timeout      time.Duration
	PollInterval time.Duration
	MaxPolls     int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		DocIntel: DocIntelConfig{
			Endpoint:     getEnv("DOCINTEL_ENDPOINT", ""),
			APIKey:       getEnv("DOCINTEL_API_KEY", ""),
			APIVersion:   getEnv("DOCINTEL_API_VERSION", "2024-11-30"),
			ModelID:      getEnv("DOCINTEL_MODEL_ID", "prebuilt-receipt"),
			Timeout:      getEnvAsDuration("DOCINTEL_TIMEOUT", 2*time.Minute),
			PollInterval: getEnvAsDuration("DOCINTEL_POLL_INTERVAL", 2*time.Second),
			MaxPolls:     getEnvAsInt("DOCINTEL_MAX_POLLS", 60),
		},
	}
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

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.DocIntel.Endpoint == "" {
		return NewAppError("CONFIG_ERROR", "DOCINTEL_ENDPOINT is required", ErrNotConfigured)
	}
	if c.DocIntel.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "DOCINTEL_API_KEY is required", ErrNotConfigured)
	}
	return nil
}

package config

import (
	"os"
	"runtime"
	"strconv"

	"gotrend/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig
	Data    DataConfig
	Compute ComputeConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds dataset ingestion settings
type DataConfig struct {
	File  string
	Sheet string
}

// ComputeConfig holds statistical engine settings
type ComputeConfig struct {
	MaxParallel int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Data: DataConfig{
			File:  getEnvOrDefault("DATA_FILE", ""),
			Sheet: getEnvOrDefault("DATA_SHEET", "Sheet1"),
		},
		Compute: ComputeConfig{
			MaxParallel: getEnvIntOrDefault("MAX_PARALLEL", runtime.NumCPU()),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Compute.MaxParallel < 1 {
		return errors.ConfigInvalid("MAX_PARALLEL must be at least 1")
	}
	if config.Data.Sheet == "" {
		return errors.ConfigInvalid("DATA_SHEET cannot be blank")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

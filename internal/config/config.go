package config

import (
	"os"
	"strconv"

	"tajir/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Data     DataConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds data processing settings
type DataConfig struct {
	UploadDir        string
	MaxUploadBytes   int64
	DetectSampleSize int
	ForecastHorizon  int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL:     os.Getenv("DATABASE_URL"),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Data: DataConfig{
			UploadDir:        getEnvOrDefault("UPLOAD_DIR", "./uploads"),
			MaxUploadBytes:   getEnvInt64OrDefault("MAX_UPLOAD_BYTES", 32<<20),
			DetectSampleSize: getEnvIntOrDefault("DETECT_SAMPLE_SIZE", 50),
			ForecastHorizon:  getEnvIntOrDefault("FORECAST_HORIZON_DAYS", 30),
		},
	}

	if err := validate(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validate(config *Config) error {
	if config.Database.URL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required")
	}
	if config.Data.DetectSampleSize < 1 {
		return errors.ConfigInvalid("DETECT_SAMPLE_SIZE must be at least 1")
	}
	if config.Data.ForecastHorizon < 1 {
		return errors.ConfigInvalid("FORECAST_HORIZON_DAYS must be at least 1")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvInt64OrDefault(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

package config

import (
	"os"
	"strconv"
	"time"

	"censusboard/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Database DatabaseConfig
	Cache    CacheConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	APIPort string
	GinMode string
}

// DataConfig holds the extract file locations. The filenames follow the
// fixed monthly naming convention of the published census extracts and
// can be overridden per page.
type DataConfig struct {
	Dir                   string
	MonthlyAgeFile        string
	PopulationChangeFile  string
	BirthRegistrationFile string
}

// DatabaseConfig holds the optional extract-registry database settings
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// CacheConfig holds extract cache settings
type CacheConfig struct {
	TTL time.Duration
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			APIPort: getEnvOrDefault("API_PORT", "8081"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Data: DataConfig{
			Dir:                   getEnvOrDefault("DATA_DIR", "data"),
			MonthlyAgeFile:        getEnvOrDefault("MONTHLY_AGE_FILE", "202505_202505_연령별인구현황_월간.csv"),
			PopulationChangeFile:  getEnvOrDefault("POPULATION_CHANGE_FILE", "202505_202505_주민등록인구기타현황(인구증감)_월간.csv"),
			BirthRegistrationFile: getEnvOrDefault("BIRTH_REGISTRATION_FILE", "202505_202505_주민등록인구기타현황(출생등록)_월간.csv"),
		},
		Database: DatabaseConfig{
			URL:     getEnvOrDefault("DATABASE_URL", ""),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		Cache: CacheConfig{
			TTL: getEnvDurationOrDefault("CACHE_TTL", 5*time.Minute),
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
	if config.Data.Dir == "" {
		return errors.ConfigInvalid("data directory is required")
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

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

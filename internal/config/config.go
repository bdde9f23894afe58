// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the store application
type Config struct {
	App      AppConfig
	Storage  StorageConfig
	Checkout CheckoutConfig
	Report   ReportConfig
	Logging  LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Locale      string
	Debug       bool
}

// StorageConfig contains persistence configuration
type StorageConfig struct {
	BaseDir         string
	DefaultJSONFile string
	DefaultBinFile  string
	DefaultXMLFile  string
}

// CheckoutConfig contains checkout business configuration
type CheckoutConfig struct {
	FeeRate float64
}

// ReportConfig contains report rendering configuration
type ReportConfig struct {
	CompanyName    string
	CompanyAddress string
	CompanyEmail   string
	DefaultWindow  time.Duration
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Retail Store"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			Locale:      getEnv("APP_LOCALE", "en"),
			Debug:       getEnvAsBool("APP_DEBUG", true),
		},
		Storage: StorageConfig{
			BaseDir:         getEnv("STORE_DATA_DIR", "./data"),
			DefaultJSONFile: getEnv("STORE_JSON_FILE", "store.json"),
			DefaultBinFile:  getEnv("STORE_BIN_FILE", "store.bin"),
			DefaultXMLFile:  getEnv("STORE_XML_FILE", "store.xml"),
		},
		Checkout: CheckoutConfig{
			FeeRate: getEnvAsFloat("CHECKOUT_FEE_RATE", 0.02),
		},
		Report: ReportConfig{
			CompanyName:    getEnv("COMPANY_NAME", "Retail Store"),
			CompanyAddress: getEnv("COMPANY_ADDRESS", ""),
			CompanyEmail:   getEnv("COMPANY_EMAIL", ""),
			DefaultWindow:  getEnvAsDuration("REPORT_DEFAULT_WINDOW", 30*24*time.Hour),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Storage.BaseDir == "" {
		return fmt.Errorf("STORE_DATA_DIR is required")
	}

	if c.Checkout.FeeRate < 0 || c.Checkout.FeeRate >= 1 {
		return fmt.Errorf("CHECKOUT_FEE_RATE must be in [0, 1)")
	}

	if c.App.Locale == "" {
		return fmt.Errorf("APP_LOCALE is required")
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
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

// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Store    StoreConfig
	Company  CompanyConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Debug       bool
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// StoreConfig contains the flat-file data store configuration. Each file is
// rewritten whole on every mutation.
type StoreConfig struct {
	DataDir       string
	InventoryFile string
	SalesFile     string
	CustomersFile string
	SuppliersFile string
}

// CompanyConfig contains the business identity printed on receipts.
type CompanyConfig struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	TrustedProxies     []string
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
			Name:        getEnv("APP_NAME", "POS Backend"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			Debug:       getEnvAsBool("APP_DEBUG", true),
		},
		Server: ServerConfig{
			Port:         getEnv("APP_PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Store: StoreConfig{
			DataDir:       getEnv("STORE_DATA_DIR", "./data"),
			InventoryFile: getEnv("STORE_INVENTORY_FILE", "inventory.json"),
			SalesFile:     getEnv("STORE_SALES_FILE", "sales.json"),
			CustomersFile: getEnv("STORE_CUSTOMERS_FILE", "customers.json"),
			SuppliersFile: getEnv("STORE_SUPPLIERS_FILE", "suppliers.json"),
		},
		Company: CompanyConfig{
			Name:    getEnv("COMPANY_NAME", "Ferreteria El Martillo"),
			Address: getEnv("COMPANY_ADDRESS", ""),
			Phone:   getEnv("COMPANY_PHONE", ""),
			Email:   getEnv("COMPANY_EMAIL", ""),
		},
		Security: SecurityConfig{
			CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			CORSAllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			CORSAllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept"}),
			TrustedProxies:     getEnvAsSlice("TRUSTED_PROXIES", []string{}),
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
	if c.Server.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}
	if c.Store.DataDir == "" {
		return fmt.Errorf("STORE_DATA_DIR is required")
	}
	if c.Store.InventoryFile == "" || c.Store.SalesFile == "" ||
		c.Store.CustomersFile == "" || c.Store.SuppliersFile == "" {
		return fmt.Errorf("store file names cannot be empty")
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

// InventoryPath returns the path of the inventory file.
func (c *Config) InventoryPath() string {
	return filepath.Join(c.Store.DataDir, c.Store.InventoryFile)
}

// SalesPath returns the path of the sales history file.
func (c *Config) SalesPath() string {
	return filepath.Join(c.Store.DataDir, c.Store.SalesFile)
}

// CustomersPath returns the path of the customers file.
func (c *Config) CustomersPath() string {
	return filepath.Join(c.Store.DataDir, c.Store.CustomersFile)
}

// SuppliersPath returns the path of the suppliers file.
func (c *Config) SuppliersPath() string {
	return filepath.Join(c.Store.DataDir, c.Store.SuppliersFile)
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

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}

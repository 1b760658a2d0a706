package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store backends selectable through PLACES_STORE.
const (
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config holds all application configuration
type Config struct {
	// Store configuration
	Store StoreConfig

	// Server configuration
	Server ServerConfig

	// Logging configuration
	Logging LoggingConfig

	// SeedOnStart fills an empty store with the sample places at startup.
	SeedOnStart bool
}

// StoreConfig selects and configures the place store.
type StoreConfig struct {
	Backend  string
	Mongo    MongoConfig
	Database DatabaseConfig
}

// MongoConfig holds document database connection settings
type MongoConfig struct {
	URI      string
	Database string
}

// DatabaseConfig holds Postgres connection settings
type DatabaseConfig struct {
	URL      string // Full PostgreSQL URL
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port int
	Host string
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// Load reads configuration from environment variables. A .env file and
// config/local.env are loaded first when present; real environment
// variables take precedence over both.
func Load() (*Config, error) {
	loadEnvFiles()

	cfg := &Config{}

	if err := cfg.loadStore(); err != nil {
		return nil, fmt.Errorf("load store config: %w", err)
	}

	if err := cfg.loadServer(); err != nil {
		return nil, fmt.Errorf("load server config: %w", err)
	}

	cfg.loadLogging()

	seed, err := parseBool("SEED_ON_START", false)
	if err != nil {
		return nil, err
	}
	cfg.SeedOnStart = seed

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// LoadDatabase reads only the Postgres settings. It is used by tools that
// never touch the document store.
func LoadDatabase() (DatabaseConfig, error) {
	loadEnvFiles()

	db, err := loadDatabase()
	if err != nil {
		return DatabaseConfig{}, err
	}
	if db.URL == "" {
		return DatabaseConfig{}, fmt.Errorf("DATABASE_URL is required (or DB_HOST, DB_USER, DB_NAME)")
	}
	return db, nil
}

func loadEnvFiles() {
	_ = godotenv.Load()
	_ = godotenv.Load("config/local.env")
}

func (c *Config) loadStore() error {
	c.Store.Backend = strings.ToLower(getEnvOrDefault("PLACES_STORE", BackendMongo))

	c.Store.Mongo.URI = getEnvOrDefault("MONGO_URI", "mongodb://127.0.0.1:27017")
	c.Store.Mongo.Database = getEnvOrDefault("MONGO_DB_NAME", "bestlocations")

	db, err := loadDatabase()
	if err != nil {
		return err
	}
	c.Store.Database = db
	return nil
}

func loadDatabase() (DatabaseConfig, error) {
	var db DatabaseConfig

	// Try to load DATABASE_URL first
	db.URL = os.Getenv("DATABASE_URL")
	if db.URL != "" {
		return db, nil
	}

	// If not present, construct from individual parameters
	db.Host = getEnvOrDefault("DB_HOST", "localhost")
	db.User = os.Getenv("DB_USER")
	db.Password = os.Getenv("DB_PASSWORD")
	db.Name = os.Getenv("DB_NAME")
	db.SSLMode = getEnvOrDefault("DB_SSLMODE", "disable")

	port, err := strconv.Atoi(getEnvOrDefault("DB_PORT", "5432"))
	if err != nil {
		return db, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	db.Port = port

	// Construct URL if all components are present
	if db.Host != "" && db.User != "" && db.Name != "" {
		db.URL = fmt.Sprintf(
			"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
			db.User,
			db.Password,
			db.Host,
			db.Port,
			db.Name,
			db.SSLMode,
		)
	}

	return db, nil
}

func (c *Config) loadServer() error {
	portStr := getEnvOrDefault("PORT", "3000")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}
	c.Server.Port = port
	c.Server.Host = getEnvOrDefault("HOST", "0.0.0.0")
	return nil
}

func (c *Config) loadLogging() {
	c.Logging.Level = strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info"))
	c.Logging.Format = strings.ToLower(getEnvOrDefault("LOG_FORMAT", "json"))
}

// Validate checks that all required configuration is present and valid
func (c *Config) Validate() error {
	var errors []string

	switch c.Store.Backend {
	case BackendMongo:
		if c.Store.Mongo.URI == "" {
			errors = append(errors, "MONGO_URI is required")
		}
		if c.Store.Mongo.Database == "" {
			errors = append(errors, "MONGO_DB_NAME is required")
		}
	case BackendPostgres:
		if c.Store.Database.URL == "" {
			errors = append(errors, "DATABASE_URL is required (or DB_HOST, DB_USER, DB_NAME)")
		}
	case BackendMemory:
	default:
		errors = append(errors, "PLACES_STORE must be one of: mongo, postgres, memory")
	}

	// Validate server configuration
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errors = append(errors, "PORT must be between 1 and 65535")
	}

	// Validate logging configuration
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		errors = append(errors, "LOG_LEVEL must be one of: debug, info, warn, error")
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		errors = append(errors, "LOG_FORMAT must be one of: json, text")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

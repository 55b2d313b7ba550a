// Package config provides configuration for the application
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// StorageMode selects the persistence backend
type StorageMode string

// StorageMode constants
const (
	// StorageAuto uses MySQL when it is configured and reachable, memory otherwise
	StorageAuto   StorageMode = "auto"
	StorageMySQL  StorageMode = "mysql"
	StorageMemory StorageMode = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	Session  SessionConfig
	Redis    RedisConfig
	Storage  StorageMode
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	QueryTimeout time.Duration
}

// Configured reports whether enough settings are present to connect
func (d DatabaseConfig) Configured() bool {
	return d.Host != "" && d.User != "" && d.DBName != ""
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port               int
	RateLimitPerMinute int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
	// File enables JSON logging to a rotated file in addition to the console
	File string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// SessionConfig holds session cookie settings
type SessionConfig struct {
	Secret       string
	TTL          time.Duration
	CookieSecure bool
}

// RedisConfig holds Redis settings used for session revocation.
// An empty Host disables Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr returns the Redis address in host:port form
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{}
	var err error

	// Storage configuration
	storage := strings.ToLower(os.Getenv("STORAGE_MODE"))
	if storage == "" {
		storage = string(StorageAuto)
	}
	switch StorageMode(storage) {
	case StorageAuto, StorageMySQL, StorageMemory:
		cfg.Storage = StorageMode(storage)
	default:
		return nil, fmt.Errorf("invalid STORAGE_MODE: %q", storage)
	}

	// Database configuration
	cfg.Database.Host = os.Getenv("DB_HOST")
	if cfg.Database.Port, err = intFromEnv("DB_PORT", 3306); err != nil {
		return nil, err
	}
	cfg.Database.User = os.Getenv("DB_USER")
	cfg.Database.Password = os.Getenv("DB_PASSWORD")
	cfg.Database.DBName = os.Getenv("DB_NAME")
	if cfg.Database.QueryTimeout, err = durationFromEnv("DB_QUERY_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}

	if cfg.Storage == StorageMySQL {
		if cfg.Database.Host == "" {
			return nil, fmt.Errorf("DB_HOST is required")
		}
		if cfg.Database.User == "" {
			return nil, fmt.Errorf("DB_USER is required")
		}
		if cfg.Database.DBName == "" {
			return nil, fmt.Errorf("DB_NAME is required")
		}
	}

	// Server configuration
	if cfg.Server.Port, err = intFromEnv("SERVER_PORT", 5000); err != nil {
		return nil, err
	}
	if cfg.Server.RateLimitPerMinute, err = intFromEnv("RATE_LIMIT_PER_MINUTE", 100); err != nil {
		return nil, err
	}
	if cfg.Server.RateLimitPerMinute <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}

	// Logging configuration
	cfg.Logging.Level = os.Getenv("LOG_LEVEL")
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	cfg.Logging.File = os.Getenv("LOG_FILE")

	// CORS configuration
	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// Session configuration
	cfg.Session.Secret = os.Getenv("SESSION_SECRET")
	if cfg.Session.Secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}
	if cfg.Session.TTL, err = durationFromEnv("SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.Session.TTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive")
	}
	if cfg.Session.CookieSecure, err = boolFromEnv("COOKIE_SECURE", false); err != nil {
		return nil, err
	}

	// Redis configuration
	cfg.Redis.Host = os.Getenv("REDIS_HOST")
	if cfg.Redis.Port, err = intFromEnv("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = intFromEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseOrigins splits a comma-separated origin list, defaulting to all origins
func parseOrigins(value string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(value, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func intFromEnv(key string, def int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func durationFromEnv(key string, def time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return def, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func boolFromEnv(key string, def bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return c.Database.DSN()
}

// DSN returns the database connection string.
// multiStatements is required by golang-migrate: each migration file runs as a single Exec.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC&multiStatements=true",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.DBName,
	)
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Report   ReportConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type AuthConfig struct {
	// Secret verifies the HMAC signature of incoming bearer tokens.
	// Token issuance is handled by the identity service, not here.
	Secret string
	Issuer string
}

type ReportConfig struct {
	// DefaultMonths is the report window used when the caller does not
	// ask for a specific number of months.
	DefaultMonths int
	// MaxMonths caps how far back a single report may reach.
	MaxMonths int
	// RateLimitPerSecond bounds report and dashboard requests per client.
	RateLimitPerSecond int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "fintrack_user"),
			Password:        getEnv("DB_PASSWORD", "fintrack_password"),
			Name:            getEnv("DB_NAME", "fintrack_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Auth: AuthConfig{
			Secret: getEnv("AUTH_TOKEN_SECRET", ""),
			Issuer: getEnv("AUTH_TOKEN_ISSUER", "fintrack"),
		},
		Report: ReportConfig{
			DefaultMonths:      getIntEnv("REPORT_DEFAULT_MONTHS", 6),
			MaxMonths:          getIntEnv("REPORT_MAX_MONTHS", 36),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
		},
	}

	if config.Auth.Secret == "" {
		if config.IsProduction() {
			log.Fatal("AUTH_TOKEN_SECRET must be set in production environments")
		}
		log.Println("AUTH_TOKEN_SECRET not set, using development default")
		config.Auth.Secret = "fintrack-dev-secret"
	}

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

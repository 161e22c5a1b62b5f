package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int
	MinConns int
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds the process-wide payroll settings. Timezone is
// the single IANA zone all calendar math is anchored to; MakeUpCapHours
// caps approved make-up hours per user per month.
type PayrollConfig struct {
	Timezone       string
	MakeUpCapHours float64
}

func Load() (*Config, error) {
	// Missing .env is fine in deployed environments; env vars win.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "workpulse"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: maxConns,
		MinConns: minConns,
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	makeUpCap, err := strconv.ParseFloat(getEnv("MAKEUP_CAP_HOURS", "8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MAKEUP_CAP_HOURS: %w", err)
	}

	config.Payroll = PayrollConfig{
		Timezone:       getEnv("PAYROLL_TIMEZONE", "America/New_York"),
		MakeUpCapHours: makeUpCap,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Database.MaxConns < 1 || c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("invalid pool sizing: DB_MIN_CONNS %d, DB_MAX_CONNS %d", c.Database.MinConns, c.Database.MaxConns)
	}
	// An unloadable zone must fail startup, never a request.
	if _, err := time.LoadLocation(c.Payroll.Timezone); err != nil {
		return fmt.Errorf("invalid PAYROLL_TIMEZONE %q: %w", c.Payroll.Timezone, err)
	}
	if c.Payroll.MakeUpCapHours < 0 {
		return fmt.Errorf("MAKEUP_CAP_HOURS must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import (
	"log/slog"
	"net/url"
	"time"
)

// Database drivers accepted by database.driver.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Database  DatabaseConfig  `koanf:"database"`
	HTTP      HTTPConfig      `koanf:"http"`
	App       AppConfig       `koanf:"app"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DatabaseConfig selects and tunes the persistence adapter.
type DatabaseConfig struct {
	Driver          string               `koanf:"driver"`
	URL             string               `koanf:"url"`
	MaxConns        int32                `koanf:"max_conns"`
	MinConns        int32                `koanf:"min_conns"`
	MaxConnIdleTime time.Duration        `koanf:"max_conn_idle_time"`
	Migrate         bool                 `koanf:"migrate"`
	ConnectRetry    RetryConfig          `koanf:"connect_retry"`
	CircuitBreaker  CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// LogValue keeps the connection password out of logs.
func (d DatabaseConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("driver", d.Driver),
		slog.String("url", RedactURL(d.URL)),
		slog.Int("max_conns", int(d.MaxConns)),
		slog.Bool("migrate", d.Migrate),
	)
}

// RedactURL replaces the password of a connection URL with "xxxxx". Strings
// that do not parse are returned empty.
func RedactURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Redacted()
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// HTTPConfig holds inbound HTTP policy: CORS and rate limiting.
type HTTPConfig struct {
	CORS      CORSConfig      `koanf:"cors"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
}

// CORSConfig holds cross-origin settings.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
	MaxAge         int      `koanf:"max_age"`
}

// RateLimitConfig holds the process-wide token bucket settings.
type RateLimitConfig struct {
	Enabled           bool    `koanf:"enabled"`
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// AppConfig holds application-service tuning.
type AppConfig struct {
	ListWorkers int `koanf:"list_workers"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

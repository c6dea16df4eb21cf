package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Database.validate(),
		c.HTTP.validate(),
		c.App.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
)

// oneOf reports an error naming key when value is not among allowed.
func oneOf(key, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), value)
}

func (l *LogConfig) validate() error {
	return errors.Join(
		oneOf("log.level", l.Level, logLevels),
		oneOf("log.format", l.Format, logFormats),
	)
}

func (d *DatabaseConfig) validate() error {
	switch d.Driver {
	case DriverMemory:
		return nil
	case DriverPostgres:
		// Checked below.
	default:
		return fmt.Errorf("database.driver must be one of: %s, %s; got %q", DriverMemory, DriverPostgres, d.Driver)
	}

	var errs []error

	if d.URL == "" {
		errs = append(errs, errors.New("database.url must not be empty when driver is postgres"))
	}
	if d.MaxConns < 1 {
		errs = append(errs, fmt.Errorf("database.max_conns must be >= 1, got %d", d.MaxConns))
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		errs = append(errs, fmt.Errorf("database.min_conns must be between 0 and max_conns, got %d", d.MinConns))
	}
	if d.ConnectRetry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("database.connect_retry.max_attempts must be >= 1, got %d",
			d.ConnectRetry.MaxAttempts))
	}
	if d.ConnectRetry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("database.connect_retry.multiplier must be positive, got %f",
			d.ConnectRetry.Multiplier))
	}
	if d.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("database.circuit_breaker.max_failures must be >= 1, got %d",
			d.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

func (h *HTTPConfig) validate() error {
	var errs []error

	if h.CORS.MaxAge < 0 {
		errs = append(errs, fmt.Errorf("http.cors.max_age must not be negative, got %d", h.CORS.MaxAge))
	}
	if h.RateLimit.Enabled {
		if h.RateLimit.RequestsPerSecond <= 0 {
			errs = append(errs, fmt.Errorf("http.rate_limit.requests_per_second must be positive, got %f",
				h.RateLimit.RequestsPerSecond))
		}
		if h.RateLimit.Burst < 1 {
			errs = append(errs, fmt.Errorf("http.rate_limit.burst must be >= 1, got %d", h.RateLimit.Burst))
		}
	}

	return errors.Join(errs...)
}

func (a *AppConfig) validate() error {
	if a.ListWorkers < 1 {
		return fmt.Errorf("app.list_workers must be >= 1, got %d", a.ListWorkers)
	}
	return nil
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}
	err := oneOf("telemetry.exporter", t.Exporter, exporters)
	if t.Exporter == "otlp" && t.Endpoint == "" {
		err = errors.Join(err, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	return err
}

package config

const (
	defaultServerPort = 8080

	defaultMaxConns = 10
	defaultMinConns = 2

	defaultRetryMaxAttempts = 5
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultCORSMaxAge = 300

	defaultRateLimitRPS   = 100.0
	defaultRateLimitBurst = 200

	defaultListWorkers = 4
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"database.driver":                          DriverMemory,
		"database.url":                             "",
		"database.max_conns":                       defaultMaxConns,
		"database.min_conns":                       defaultMinConns,
		"database.max_conn_idle_time":              "5m",
		"database.migrate":                         true,
		"database.connect_retry.max_attempts":      defaultRetryMaxAttempts,
		"database.connect_retry.initial_interval":  "200ms",
		"database.connect_retry.max_interval":      "5s",
		"database.connect_retry.multiplier":        defaultRetryMultiplier,
		"database.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"database.circuit_breaker.timeout":         "30s",
		"database.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"http.cors.allowed_origins":           []string{"*"},
		"http.cors.max_age":                   defaultCORSMaxAge,
		"http.rate_limit.enabled":             false,
		"http.rate_limit.requests_per_second": defaultRateLimitRPS,
		"http.rate_limit.burst":               defaultRateLimitBurst,

		"app.list_workers": defaultListWorkers,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "tasklists-service",
	}
}

package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 50.0
	defaultRateLimitBurst = 10

	defaultPostgresMaxConns = 10
	defaultPostgresMinConns = 1

	defaultMaxFormSessions = 10000
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":                "0.0.0.0",
		"server.port":                defaultServerPort,
		"server.read_timeout":        "5s",
		"server.read_header_timeout": "2s",
		"server.write_timeout":       "10s",
		"server.idle_timeout":        "120s",
		"server.request_timeout":     "15s",
		"server.allowed_origins":     []string{},

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "",
		"client.timeout":                         "10s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "2s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"client.rate_limit.burst_size":           defaultRateLimitBurst,

		"store.driver":                      DriverPostgREST,
		"store.conflict_codes":              []string{"23505"},
		"store.postgrest.api_key":           "",
		"store.postgrest.schema":            "public",
		"store.postgres.dsn":                "",
		"store.postgres.max_conns":          defaultPostgresMaxConns,
		"store.postgres.min_conns":          defaultPostgresMinConns,
		"store.postgres.max_conn_lifetime":  "1h",
		"store.postgres.max_conn_idle_time": "30m",
		"store.sqlite.path":                 "data/agency.db",

		"forms.reset_delay":  "5s",
		"forms.session_ttl":  "30m",
		"forms.max_sessions": defaultMaxFormSessions,

		"agency.email":   "",
		"agency.phone":   "",
		"agency.subject": "",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "agency-site-api",
	}
}

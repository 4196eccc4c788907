// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Store     StoreConfig     `koanf:"store"`
	Forms     FormsConfig     `koanf:"forms"`
	Agency    AgencyConfig    `koanf:"agency"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	IdleTimeout       time.Duration `koanf:"idle_timeout"`
	RequestTimeout    time.Duration `koanf:"request_timeout"`
	AllowedOrigins    []string      `koanf:"allowed_origins"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the HTTP client used by the postgrest
// store driver. BaseURL is the hosted project URL.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
// Reads only; inserts are never retried.
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

// RateLimitConfig holds client-side token bucket settings.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// Store drivers.
const (
	DriverPostgREST = "postgrest"
	DriverPostgres  = "postgres"
	DriverSQLite    = "sqlite"
)

// StoreConfig selects and configures the persistence driver.
type StoreConfig struct {
	Driver string `koanf:"driver"`
	// ConflictCodes are backend error codes treated as a uniqueness conflict.
	ConflictCodes []string        `koanf:"conflict_codes"`
	PostgREST     PostgRESTConfig `koanf:"postgrest"`
	Postgres      PostgresConfig  `koanf:"postgres"`
	SQLite        SQLiteConfig    `koanf:"sqlite"`
}

// PostgRESTConfig holds credentials for the hosted REST backend.
type PostgRESTConfig struct {
	APIKey string `koanf:"api_key"`
	Schema string `koanf:"schema"`
}

// PostgresConfig holds direct database pool settings.
type PostgresConfig struct {
	DSN             string        `koanf:"dsn"`
	MaxConns        int32         `koanf:"max_conns"`
	MinConns        int32         `koanf:"min_conns"`
	MaxConnLifetime time.Duration `koanf:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `koanf:"max_conn_idle_time"`
}

// SQLiteConfig holds the local database file location.
type SQLiteConfig struct {
	Path string `koanf:"path"`
}

// FormsConfig holds server-side form session settings.
type FormsConfig struct {
	ResetDelay  time.Duration `koanf:"reset_delay"`
	SessionTTL  time.Duration `koanf:"session_ttl"`
	MaxSessions int           `koanf:"max_sessions"`
}

// AgencyConfig holds the published contact details used for outreach links.
type AgencyConfig struct {
	Email   string `koanf:"email"`
	Phone   string `koanf:"phone"`
	Subject string `koanf:"subject"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

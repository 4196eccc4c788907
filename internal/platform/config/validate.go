package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Store.validate(),
		c.clientValidate(),
		c.Forms.validate(),
		c.Agency.validate(),
		c.Telemetry.validate(),
	)
}

// clientValidate checks the HTTP client only when the postgrest driver uses it.
func (c *Config) clientValidate() error {
	if c.Store.Driver != DriverPostgREST {
		return nil
	}
	return c.Client.validate()
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.ReadHeaderTimeout <= 0 || s.ReadHeaderTimeout > s.ReadTimeout {
		errs = append(errs, errors.New("server.read_header_timeout must be positive and at most server.read_timeout"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must be positive, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1, got %d", cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	var errs []error

	switch s.Driver {
	case DriverPostgREST:
		if s.PostgREST.APIKey == "" {
			errs = append(errs, errors.New("store.postgrest.api_key must not be empty for the postgrest driver"))
		}
		if s.PostgREST.Schema == "" {
			errs = append(errs, errors.New("store.postgrest.schema must not be empty"))
		}
	case DriverPostgres:
		if s.Postgres.DSN == "" {
			errs = append(errs, errors.New("store.postgres.dsn must not be empty for the postgres driver"))
		}
		if s.Postgres.MaxConns < 1 {
			errs = append(errs, fmt.Errorf("store.postgres.max_conns must be >= 1, got %d", s.Postgres.MaxConns))
		}
		if s.Postgres.MinConns < 0 || s.Postgres.MinConns > s.Postgres.MaxConns {
			errs = append(errs, fmt.Errorf("store.postgres.min_conns must be 0-%d, got %d",
				s.Postgres.MaxConns, s.Postgres.MinConns))
		}
	case DriverSQLite:
		if s.SQLite.Path == "" {
			errs = append(errs, errors.New("store.sqlite.path must not be empty for the sqlite driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("store.driver must be one of: postgrest, postgres, sqlite; got %q", s.Driver))
	}

	if len(s.ConflictCodes) == 0 {
		errs = append(errs, errors.New("store.conflict_codes must list at least one code"))
	}

	return errors.Join(errs...)
}

func (f *FormsConfig) validate() error {
	var errs []error

	if f.ResetDelay <= 0 {
		errs = append(errs, errors.New("forms.reset_delay must be positive"))
	}
	if f.SessionTTL <= f.ResetDelay {
		errs = append(errs, fmt.Errorf("forms.session_ttl must exceed forms.reset_delay (%s), got %s",
			f.ResetDelay, f.SessionTTL))
	}
	if f.MaxSessions < 1 {
		errs = append(errs, fmt.Errorf("forms.max_sessions must be >= 1, got %d", f.MaxSessions))
	}

	return errors.Join(errs...)
}

func (a *AgencyConfig) validate() error {
	var errs []error

	if a.Email == "" {
		errs = append(errs, errors.New("agency.email must not be empty"))
	}
	if a.Phone == "" {
		errs = append(errs, errors.New("agency.phone must not be empty"))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

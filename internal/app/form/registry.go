package form

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jonboulle/clockwork"

	"github.com/jsamuelsen11/agency-site-api/internal/domain"
	"github.com/jsamuelsen11/agency-site-api/internal/platform/config"
	"github.com/jsamuelsen11/agency-site-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/agency-site-api/internal/ports"
)

// Registry keeps live form sessions in a bounded cache. Every Get restarts a
// session's TTL, so only sessions left untouched for the TTL expire. Expired
// sessions, and those pushed out by newer ones, are dropped and their timers
// stopped.
type Registry struct {
	sessions *expirable.LRU[uuid.UUID, *Form]
	gateway  ports.SubmissionGateway
	clock    clockwork.Clock
	cfg      config.FormsConfig
	logger   *slog.Logger
	metrics  *telemetry.Metrics
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithMetrics reports live session counts to m.
func WithMetrics(m *telemetry.Metrics) RegistryOption {
	return func(r *Registry) { r.metrics = m }
}

// NewRegistry creates a Registry.
func NewRegistry(
	gateway ports.SubmissionGateway,
	clock clockwork.Clock,
	cfg config.FormsConfig,
	logger *slog.Logger,
	opts ...RegistryOption,
) *Registry {
	r := &Registry{
		gateway: gateway,
		clock:   clock,
		cfg:     cfg,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.sessions = expirable.NewLRU[uuid.UUID, *Form](cfg.MaxSessions, r.evicted, cfg.SessionTTL)
	return r
}

// Open starts a new idle session of the given kind.
func (r *Registry) Open(kind Kind) *Form {
	f := New(kind, r.gateway, r.clock, r.cfg.ResetDelay, r.logger)
	r.sessions.Add(f.ID(), f)
	r.metrics.AddFormSessions(context.Background(), string(kind), 1)
	return f
}

func (r *Registry) evicted(_ uuid.UUID, f *Form) {
	f.Close()
	r.metrics.AddFormSessions(context.Background(), string(f.Kind()), -1)
}

// Get returns the session with the given id and restarts its TTL. A session
// of another kind is reported as missing.
func (r *Registry) Get(kind Kind, id uuid.UUID) (*Form, error) {
	f, ok := r.sessions.Get(id)
	if !ok || f.Kind() != kind {
		return nil, fmt.Errorf("%s form %s: %w", kind, id, domain.ErrNotFound)
	}
	// Re-adding an existing key only moves its expiry; no eviction fires.
	r.sessions.Add(id, f)
	return f, nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	return r.sessions.Len()
}

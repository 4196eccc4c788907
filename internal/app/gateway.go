// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/jsamuelsen11/agency-site-api/internal/domain"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/contact"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/newsletter"
	"github.com/jsamuelsen11/agency-site-api/internal/platform/logging"
	"github.com/jsamuelsen11/agency-site-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/agency-site-api/internal/ports"
)

// Form names used in logs and metric labels.
const (
	FormContact    = "contact"
	FormNewsletter = "newsletter"
)

// Compile-time check that Gateway implements ports.SubmissionGateway.
var _ ports.SubmissionGateway = (*Gateway)(nil)

// Gateway implements ports.SubmissionGateway. Each accepted submission costs
// exactly one store insert; validation failures cost none.
type Gateway struct {
	contacts    ports.ContactStore
	subscribers ports.SubscriberStore
	metrics     *telemetry.Metrics
	logger      *slog.Logger
	clock       clockwork.Clock
}

// NewGateway creates a Gateway. metrics may be nil.
func NewGateway(
	contacts ports.ContactStore,
	subscribers ports.SubscriberStore,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
	clock clockwork.Clock,
) *Gateway {
	return &Gateway{
		contacts:    contacts,
		subscribers: subscribers,
		metrics:     metrics,
		logger:      logger,
		clock:       clock,
	}
}

// SubmitContact validates and stores a contact form submission. Any store
// failure, including a conflict, comes back as a *domain.TransportError.
func (g *Gateway) SubmitContact(ctx context.Context, sub *contact.Submission) (*contact.Submission, error) {
	start := g.clock.Now()

	sub.Normalize()
	if err := sub.Validate(); err != nil {
		g.record(ctx, FormContact, telemetry.ResultInvalid, start)
		return nil, err
	}

	now := start.UTC()
	sub.ID = uuid.New()
	sub.Status = contact.StatusNew
	sub.CreatedAt = now
	sub.UpdatedAt = now

	g.logger.InfoContext(ctx, "submitting contact form",
		slog.String("id", sub.ID.String()),
		slog.String("service", string(sub.Service)),
	)

	stored, err := g.contacts.InsertContact(ctx, sub)
	if err != nil {
		g.logger.ErrorContext(ctx, "failed to store contact submission",
			slog.String("operation", "SubmitContact"),
			slog.String("id", sub.ID.String()),
			slog.Any("error", err),
		)
		g.record(ctx, FormContact, telemetry.ResultTransportError, start)
		return nil, &domain.TransportError{Op: "insert contact", Err: err}
	}

	g.record(ctx, FormContact, telemetry.ResultSuccess, start)
	return stored, nil
}

// Subscribe validates and stores a newsletter signup. A duplicate email is
// reported as domain.ErrAlreadySubscribed; anything else the store returns
// becomes a *domain.TransportError.
func (g *Gateway) Subscribe(ctx context.Context, email string) (*newsletter.Subscriber, error) {
	start := g.clock.Now()

	email = domain.NormalizeEmail(email)
	if err := domain.ValidateSubscriber(email); err != nil {
		g.record(ctx, FormNewsletter, telemetry.ResultInvalid, start)
		return nil, err
	}

	sub := &newsletter.Subscriber{
		ID:           uuid.New(),
		Email:        email,
		Status:       newsletter.StatusActive,
		SubscribedAt: start.UTC(),
	}

	g.logger.InfoContext(ctx, "subscribing to newsletter", slog.String("id", sub.ID.String()))

	stored, err := g.subscribers.InsertSubscriber(ctx, sub)
	switch {
	case err == nil:
		g.record(ctx, FormNewsletter, telemetry.ResultSuccess, start)
		return stored, nil

	case errors.Is(err, domain.ErrConflict):
		g.logger.InfoContext(ctx, "newsletter email already subscribed",
			slog.String("operation", "Subscribe"),
			slog.String("recipient", logging.MaskEmail(email)),
		)
		g.record(ctx, FormNewsletter, telemetry.ResultAlreadySubscribed, start)
		return nil, domain.ErrAlreadySubscribed

	default:
		g.logger.ErrorContext(ctx, "failed to store newsletter subscriber",
			slog.String("operation", "Subscribe"),
			slog.String("id", sub.ID.String()),
			slog.Any("error", err),
		)
		g.record(ctx, FormNewsletter, telemetry.ResultTransportError, start)
		return nil, &domain.TransportError{Op: "insert subscriber", Err: err}
	}
}

func (g *Gateway) record(ctx context.Context, form, result string, start time.Time) {
	g.metrics.RecordSubmission(ctx, form, result, g.clock.Since(start).Seconds())
}

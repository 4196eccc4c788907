package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/agency-site-api/internal/domain"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/contact"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/newsletter"
	"github.com/jsamuelsen11/agency-site-api/internal/platform/logging"
	"github.com/jsamuelsen11/agency-site-api/internal/ports"
)

// Compile-time check that BackOffice implements ports.BackOfficeService.
var _ ports.BackOfficeService = (*BackOffice)(nil)

// BackOffice implements ports.BackOfficeService for agency staff. Store
// errors pass through unchanged so handlers can map their sentinels.
type BackOffice struct {
	contacts    ports.ContactStore
	subscribers ports.SubscriberStore
	logger      *slog.Logger
}

// NewBackOffice creates a BackOffice.
func NewBackOffice(contacts ports.ContactStore, subscribers ports.SubscriberStore, logger *slog.Logger) *BackOffice {
	return &BackOffice{
		contacts:    contacts,
		subscribers: subscribers,
		logger:      logger,
	}
}

// ListContacts returns submissions newest first. The page is clamped to
// domain.MaxPageSize.
func (b *BackOffice) ListContacts(ctx context.Context, filter contact.Filter) ([]contact.Submission, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, invalidField("status", string(filter.Status))
	}
	filter.Normalize()

	b.logger.InfoContext(ctx, "listing contacts",
		slog.String("status", string(filter.Status)),
		slog.Int("limit", filter.Limit),
		slog.Int("offset", filter.Offset),
	)

	subs, err := b.contacts.ListContacts(ctx, filter)
	if err != nil {
		b.logger.ErrorContext(ctx, "failed to list contacts",
			slog.String("operation", "ListContacts"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return subs, nil
}

// UpdateContactStatus moves a submission to a new handling status.
func (b *BackOffice) UpdateContactStatus(
	ctx context.Context, id uuid.UUID, status contact.Status,
) (*contact.Submission, error) {
	if !status.IsValid() {
		return nil, invalidField("status", string(status))
	}

	b.logger.InfoContext(ctx, "updating contact status",
		slog.String("id", id.String()),
		slog.String("status", string(status)),
	)

	updated, err := b.contacts.UpdateContactStatus(ctx, id, status)
	if err != nil {
		b.logger.ErrorContext(ctx, "failed to update contact status",
			slog.String("operation", "UpdateContactStatus"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

// ListSubscribers returns newsletter subscribers newest first.
func (b *BackOffice) ListSubscribers(ctx context.Context, filter newsletter.Filter) ([]newsletter.Subscriber, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, invalidField("status", string(filter.Status))
	}
	filter.Normalize()

	b.logger.InfoContext(ctx, "listing subscribers",
		slog.String("status", string(filter.Status)),
		slog.Int("limit", filter.Limit),
		slog.Int("offset", filter.Offset),
	)

	subs, err := b.subscribers.ListSubscribers(ctx, filter)
	if err != nil {
		b.logger.ErrorContext(ctx, "failed to list subscribers",
			slog.String("operation", "ListSubscribers"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return subs, nil
}

// Unsubscribe marks the subscriber with the given email as unsubscribed.
func (b *BackOffice) Unsubscribe(ctx context.Context, email string) (*newsletter.Subscriber, error) {
	email = domain.NormalizeEmail(email)
	if err := domain.ValidateSubscriber(email); err != nil {
		return nil, err
	}

	b.logger.InfoContext(ctx, "unsubscribing newsletter email",
		slog.String("recipient", logging.MaskEmail(email)),
	)

	sub, err := b.subscribers.UpdateSubscriberStatus(ctx, email, newsletter.StatusUnsubscribed)
	if err != nil {
		b.logger.ErrorContext(ctx, "failed to unsubscribe",
			slog.String("operation", "Unsubscribe"),
			slog.String("recipient", logging.MaskEmail(email)),
			slog.Any("error", err),
		)
		return nil, err
	}
	return sub, nil
}

func invalidField(field, value string) *domain.ValidationError {
	return &domain.ValidationError{
		Fields: map[string]string{field: fmt.Sprintf("invalid value %q", value)},
	}
}

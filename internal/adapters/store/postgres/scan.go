package postgres

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jsamuelsen11/agency-site-api/internal/domain"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/contact"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/newsletter"
)

// scanContact reads one contacts row in schema.ContactColumns order.
// Enum columns are scanned as text and checked, so drift between the
// database and the domain fails here rather than downstream.
func scanContact(row pgx.Row) (*contact.Submission, error) {
	var (
		c               contact.Submission
		service, status string
	)
	if err := row.Scan(
		&c.ID, &c.Name, &c.Email, &service, &c.Message, &status, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if c.Service, err = contact.ParseServiceTag(service); err != nil {
		return nil, decodeError("contact", c.ID, err)
	}
	if c.Status, err = contact.ParseStatus(status); err != nil {
		return nil, decodeError("contact", c.ID, err)
	}
	return &c, nil
}

// scanSubscriber reads one newsletter_subscribers row.
func scanSubscriber(row pgx.Row) (*newsletter.Subscriber, error) {
	var (
		s      newsletter.Subscriber
		status string
	)
	if err := row.Scan(&s.ID, &s.Email, &status, &s.SubscribedAt); err != nil {
		return nil, err
	}

	var err error
	if s.Status, err = newsletter.ParseStatus(status); err != nil {
		return nil, decodeError("subscriber", s.ID, err)
	}
	return &s, nil
}

func decodeError(entity string, id uuid.UUID, err error) error {
	return fmt.Errorf("decoding %s row %s: %w: %w", entity, id, domain.ErrUnavailable, err)
}

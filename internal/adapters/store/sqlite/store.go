// Package sqlite implements the store ports over a local SQLite file using
// sqlx and squirrel. It backs the local development profile.
package sqlite

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jonboulle/clockwork"

	"github.com/jsamuelsen11/agency-site-api/internal/adapters/store/schema"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/contact"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/newsletter"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/portfolio"
	"github.com/jsamuelsen11/agency-site-api/internal/ports"
)

// Compile-time interface check.
var _ ports.Store = (*Store)(nil)

// Store is the SQLite persistence driver.
type Store struct {
	db    *sqlx.DB
	qb    sq.StatementBuilderType
	clock clockwork.Clock
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for updated_at stamps.
func WithClock(c clockwork.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// New returns a Store over an open, migrated database.
func New(db *sqlx.DB, opts ...Option) *Store {
	s := &Store{
		db:    db,
		qb:    sq.StatementBuilder.PlaceholderFormat(sq.Question),
		clock: clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "sqlite"
}

// HealthCheck pings the database file.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite: %w", err)
	}
	return nil
}

// InsertContact stores a new contact submission.
func (s *Store) InsertContact(ctx context.Context, sub *contact.Submission) (*contact.Submission, error) {
	query, args, err := s.qb.Insert(schema.Contacts).
		Columns(schema.ContactColumns...).
		Values(
			sub.ID.String(), sub.Name, sub.Email, string(sub.Service), sub.Message, string(sub.Status),
			formatTime(sub.CreatedAt), formatTime(sub.UpdatedAt),
		).
		Suffix("RETURNING " + schema.List(schema.ContactColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert contact: %w", err)
	}

	var row contactRow
	if err := s.db.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		return nil, mapError("insert contact", err)
	}
	return row.toDomain()
}

// ListContacts returns submissions newest first.
func (s *Store) ListContacts(ctx context.Context, filter contact.Filter) ([]contact.Submission, error) {
	b := s.qb.Select(schema.ContactColumns...).
		From(schema.Contacts).
		OrderBy("created_at DESC")
	if filter.Status != "" {
		b = b.Where(sq.Eq{"status": string(filter.Status)})
	}
	b = page(b, filter.Limit, filter.Offset)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building list contacts: %w", err)
	}

	var rows []contactRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, mapError("list contacts", err)
	}

	out := make([]contact.Submission, 0, len(rows))
	for _, r := range rows {
		c, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, nil
}

// UpdateContactStatus sets the handling status of a submission.
func (s *Store) UpdateContactStatus(
	ctx context.Context, id uuid.UUID, status contact.Status,
) (*contact.Submission, error) {
	query, args, err := s.qb.Update(schema.Contacts).
		Set("status", string(status)).
		Set("updated_at", formatTime(s.clock.Now())).
		Where(sq.Eq{"id": id.String()}).
		Suffix("RETURNING " + schema.List(schema.ContactColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update contact: %w", err)
	}

	var row contactRow
	if err := s.db.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		return nil, mapError(fmt.Sprintf("update contact %s", id), err)
	}
	return row.toDomain()
}

// InsertSubscriber stores a new newsletter subscriber.
func (s *Store) InsertSubscriber(ctx context.Context, sub *newsletter.Subscriber) (*newsletter.Subscriber, error) {
	query, args, err := s.qb.Insert(schema.NewsletterSubscribers).
		Columns(schema.SubscriberColumns...).
		Values(sub.ID.String(), sub.Email, string(sub.Status), formatTime(sub.SubscribedAt)).
		Suffix("RETURNING " + schema.List(schema.SubscriberColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert subscriber: %w", err)
	}

	var row subscriberRow
	if err := s.db.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		return nil, mapError("insert subscriber", err)
	}
	return row.toDomain()
}

// ListSubscribers returns subscribers newest first.
func (s *Store) ListSubscribers(ctx context.Context, filter newsletter.Filter) ([]newsletter.Subscriber, error) {
	b := s.qb.Select(schema.SubscriberColumns...).
		From(schema.NewsletterSubscribers).
		OrderBy("subscribed_at DESC")
	if filter.Status != "" {
		b = b.Where(sq.Eq{"status": string(filter.Status)})
	}
	b = page(b, filter.Limit, filter.Offset)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building list subscribers: %w", err)
	}

	var rows []subscriberRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, mapError("list subscribers", err)
	}

	out := make([]newsletter.Subscriber, 0, len(rows))
	for _, r := range rows {
		sub, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *sub)
	}
	return out, nil
}

// UpdateSubscriberStatus sets the status of the subscriber with the given email.
func (s *Store) UpdateSubscriberStatus(
	ctx context.Context, email string, status newsletter.Status,
) (*newsletter.Subscriber, error) {
	query, args, err := s.qb.Update(schema.NewsletterSubscribers).
		Set("status", string(status)).
		Where(sq.Eq{"email": email}).
		Suffix("RETURNING " + schema.List(schema.SubscriberColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update subscriber: %w", err)
	}

	var row subscriberRow
	if err := s.db.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		return nil, mapError("update subscriber", err)
	}
	return row.toDomain()
}

// ListProjects returns portfolio projects by sort order.
func (s *Store) ListProjects(ctx context.Context, filter portfolio.ProjectFilter) ([]portfolio.Project, error) {
	b := s.qb.Select(schema.ProjectColumns...).
		From(schema.PortfolioProjects).
		OrderBy("sort_order ASC", "title ASC")
	if filter.Category != "" {
		b = b.Where(sq.Eq{"category": filter.Category})
	}
	if filter.FeaturedOnly {
		b = b.Where(sq.Eq{"featured": 1})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building list projects: %w", err)
	}

	var rows []projectRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, mapError("list projects", err)
	}

	out := make([]portfolio.Project, 0, len(rows))
	for _, r := range rows {
		p, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// ListTestimonials returns testimonials by sort order.
func (s *Store) ListTestimonials(ctx context.Context) ([]portfolio.Testimonial, error) {
	query, args, err := s.qb.Select(schema.TestimonialColumns...).
		From(schema.Testimonials).
		OrderBy("sort_order ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building list testimonials: %w", err)
	}

	var rows []testimonialRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, mapError("list testimonials", err)
	}

	out := make([]portfolio.Testimonial, 0, len(rows))
	for _, r := range rows {
		tm, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, tm)
	}
	return out, nil
}

func page(b sq.SelectBuilder, limit, offset int) sq.SelectBuilder {
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	if offset > 0 {
		b = b.Offset(uint64(offset))
	}
	return b
}

// timeLayout is fixed-width RFC 3339 so stored text sorts chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

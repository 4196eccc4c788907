// Package postgres implements the store ports directly against PostgreSQL
// using a pgx pool and squirrel-built SQL.
package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jsamuelsen11/agency-site-api/internal/adapters/store/schema"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/contact"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/newsletter"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/portfolio"
	"github.com/jsamuelsen11/agency-site-api/internal/ports"
)

// Compile-time interface check.
var _ ports.Store = (*Store)(nil)

// Querier is the subset of *pgxpool.Pool the store needs. pgxmock's pool
// satisfies it in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// Store is the PostgreSQL persistence driver.
type Store struct {
	db            Querier
	qb            sq.StatementBuilderType
	conflictCodes map[string]bool
}

// New returns a Store. conflictCodes lists the SQLSTATE codes reported as
// domain.ErrConflict (normally just "23505").
func New(db Querier, conflictCodes []string) *Store {
	codes := make(map[string]bool, len(conflictCodes))
	for _, c := range conflictCodes {
		codes[c] = true
	}
	return &Store{
		db:            db,
		qb:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		conflictCodes: codes,
	}
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "postgres"
}

// HealthCheck pings the pool.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	return nil
}

// InsertContact stores a new contact submission.
func (s *Store) InsertContact(ctx context.Context, sub *contact.Submission) (*contact.Submission, error) {
	query, args, err := s.qb.Insert(schema.Contacts).
		Columns(schema.ContactColumns...).
		Values(
			sub.ID, sub.Name, sub.Email, string(sub.Service), sub.Message, string(sub.Status),
			sub.CreatedAt, sub.UpdatedAt,
		).
		Suffix("RETURNING " + schema.List(schema.ContactColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert contact: %w", err)
	}

	c, err := scanContact(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, s.mapError("insert contact", err)
	}
	return c, nil
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

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, s.mapError("list contacts", err)
	}
	defer rows.Close()

	var out []contact.Submission
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, s.mapError("list contacts", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, s.mapError("list contacts", err)
	}
	return out, nil
}

// UpdateContactStatus sets the handling status of a submission.
func (s *Store) UpdateContactStatus(
	ctx context.Context, id uuid.UUID, status contact.Status,
) (*contact.Submission, error) {
	query, args, err := s.qb.Update(schema.Contacts).
		Set("status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + schema.List(schema.ContactColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update contact: %w", err)
	}

	c, err := scanContact(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, s.mapError(fmt.Sprintf("update contact %s", id), err)
	}
	return c, nil
}

// InsertSubscriber stores a new newsletter subscriber.
func (s *Store) InsertSubscriber(ctx context.Context, sub *newsletter.Subscriber) (*newsletter.Subscriber, error) {
	query, args, err := s.qb.Insert(schema.NewsletterSubscribers).
		Columns(schema.SubscriberColumns...).
		Values(sub.ID, sub.Email, string(sub.Status), sub.SubscribedAt).
		Suffix("RETURNING " + schema.List(schema.SubscriberColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert subscriber: %w", err)
	}

	out, err := scanSubscriber(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, s.mapError("insert subscriber", err)
	}
	return out, nil
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

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, s.mapError("list subscribers", err)
	}
	defer rows.Close()

	var out []newsletter.Subscriber
	for rows.Next() {
		sub, err := scanSubscriber(rows)
		if err != nil {
			return nil, s.mapError("list subscribers", err)
		}
		out = append(out, *sub)
	}
	if err := rows.Err(); err != nil {
		return nil, s.mapError("list subscribers", err)
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

	out, err := scanSubscriber(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, s.mapError("update subscriber", err)
	}
	return out, nil
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
		b = b.Where(sq.Eq{"featured": true})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building list projects: %w", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, s.mapError("list projects", err)
	}
	defer rows.Close()

	var out []portfolio.Project
	for rows.Next() {
		var p portfolio.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Category, &p.Summary, &p.ImageURL, &p.Tags, &p.Featured, &p.SortOrder,
		); err != nil {
			return nil, s.mapError("list projects", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, s.mapError("list projects", err)
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

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, s.mapError("list testimonials", err)
	}
	defer rows.Close()

	var out []portfolio.Testimonial
	for rows.Next() {
		var tm portfolio.Testimonial
		if err := rows.Scan(
			&tm.ID, &tm.Author, &tm.Role, &tm.Company, &tm.Quote, &tm.Rating, &tm.SortOrder,
		); err != nil {
			return nil, s.mapError("list testimonials", err)
		}
		if err := portfolio.CheckRating(tm.Rating); err != nil {
			return nil, s.mapError("list testimonials", decodeError("testimonial", tm.ID, err))
		}
		out = append(out, tm)
	}
	if err := rows.Err(); err != nil {
		return nil, s.mapError("list testimonials", err)
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

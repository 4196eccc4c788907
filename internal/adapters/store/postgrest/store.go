package postgrest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/jsamuelsen11/agency-site-api/internal/adapters/store/schema"
	"github.com/jsamuelsen11/agency-site-api/internal/domain"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/contact"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/newsletter"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/portfolio"
	"github.com/jsamuelsen11/agency-site-api/internal/platform/httpclient"
	"github.com/jsamuelsen11/agency-site-api/internal/ports"
)

// Compile-time interface check.
var _ ports.Store = (*Store)(nil)

// Store is the PostgREST persistence driver. Every operation is a single
// HTTP call through the shared httpclient, so inserts inherit its circuit
// breaker and tracing but never its retries.
type Store struct {
	client *httpclient.Client
	req    *requester
	clock  clockwork.Clock
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to stamp updated_at on status changes.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Store) { s.clock = clock }
}

// New returns a Store sending requests through client. conflictCodes lists
// the PostgREST error codes reported as domain.ErrConflict in addition to
// HTTP 409.
func New(client *httpclient.Client, conflictCodes []string, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		client: client,
		req: &requester{
			client:     client,
			translator: newTranslator(conflictCodes),
			logger:     logger,
		},
		clock: clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return ServiceName
}

// HealthCheck reports the circuit breaker state of the underlying client.
// No network call is made.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.client.HealthCheck(ctx)
}

// InsertContact stores a new contact submission.
func (s *Store) InsertContact(ctx context.Context, sub *contact.Submission) (*contact.Submission, error) {
	var rows []contactRow
	err := s.req.do(httpclient.WithoutRetry(ctx), http.MethodPost, schema.Contacts,
		selectQuery(schema.ContactColumns), fromContact(sub), &rows)
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	if len(rows) != 1 {
		return nil, fmt.Errorf("insert contact: %w: %d rows returned", domain.ErrUnavailable, len(rows))
	}
	return rows[0].toDomain()
}

// ListContacts returns submissions newest first.
func (s *Store) ListContacts(ctx context.Context, filter contact.Filter) ([]contact.Submission, error) {
	q := selectQuery(schema.ContactColumns)
	q.Set("order", "created_at.desc")
	if filter.Status != "" {
		q.Set("status", "eq."+string(filter.Status))
	}
	page(q, filter.Limit, filter.Offset)

	var rows []contactRow
	if err := s.req.do(ctx, http.MethodGet, schema.Contacts, q, nil, &rows); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	out := make([]contact.Submission, 0, len(rows))
	for _, r := range rows {
		c, err := r.toDomain()
		if err != nil {
			return nil, fmt.Errorf("list contacts: %w", err)
		}
		out = append(out, *c)
	}
	return out, nil
}

// UpdateContactStatus sets the handling status of a submission.
func (s *Store) UpdateContactStatus(
	ctx context.Context, id uuid.UUID, status contact.Status,
) (*contact.Submission, error) {
	q := selectQuery(schema.ContactColumns)
	q.Set("id", "eq."+id.String())
	now := s.clock.Now().UTC()

	var rows []contactRow
	err := s.req.do(ctx, http.MethodPatch, schema.Contacts, q,
		statusPatch{Status: string(status), UpdatedAt: &now}, &rows)
	if err != nil {
		return nil, fmt.Errorf("update contact %s: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("update contact %s: %w", id, domain.ErrNotFound)
	}
	return rows[0].toDomain()
}

// InsertSubscriber stores a new newsletter subscriber.
func (s *Store) InsertSubscriber(ctx context.Context, sub *newsletter.Subscriber) (*newsletter.Subscriber, error) {
	var rows []subscriberRow
	err := s.req.do(httpclient.WithoutRetry(ctx), http.MethodPost, schema.NewsletterSubscribers,
		selectQuery(schema.SubscriberColumns), fromSubscriber(sub), &rows)
	if err != nil {
		return nil, fmt.Errorf("insert subscriber: %w", err)
	}
	if len(rows) != 1 {
		return nil, fmt.Errorf("insert subscriber: %w: %d rows returned", domain.ErrUnavailable, len(rows))
	}
	return rows[0].toDomain()
}

// ListSubscribers returns subscribers newest first.
func (s *Store) ListSubscribers(ctx context.Context, filter newsletter.Filter) ([]newsletter.Subscriber, error) {
	q := selectQuery(schema.SubscriberColumns)
	q.Set("order", "subscribed_at.desc")
	if filter.Status != "" {
		q.Set("status", "eq."+string(filter.Status))
	}
	page(q, filter.Limit, filter.Offset)

	var rows []subscriberRow
	if err := s.req.do(ctx, http.MethodGet, schema.NewsletterSubscribers, q, nil, &rows); err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}

	out := make([]newsletter.Subscriber, 0, len(rows))
	for _, r := range rows {
		sub, err := r.toDomain()
		if err != nil {
			return nil, fmt.Errorf("list subscribers: %w", err)
		}
		out = append(out, *sub)
	}
	return out, nil
}

// UpdateSubscriberStatus sets the status of the subscriber with the given email.
func (s *Store) UpdateSubscriberStatus(
	ctx context.Context, email string, status newsletter.Status,
) (*newsletter.Subscriber, error) {
	q := selectQuery(schema.SubscriberColumns)
	q.Set("email", "eq."+email)

	var rows []subscriberRow
	err := s.req.do(ctx, http.MethodPatch, schema.NewsletterSubscribers, q,
		statusPatch{Status: string(status)}, &rows)
	if err != nil {
		return nil, fmt.Errorf("update subscriber: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("update subscriber: %w", domain.ErrNotFound)
	}
	return rows[0].toDomain()
}

// ListProjects returns portfolio projects by sort order.
func (s *Store) ListProjects(ctx context.Context, filter portfolio.ProjectFilter) ([]portfolio.Project, error) {
	q := selectQuery(schema.ProjectColumns)
	q.Set("order", "sort_order.asc,title.asc")
	if filter.Category != "" {
		q.Set("category", "eq."+filter.Category)
	}
	if filter.FeaturedOnly {
		q.Set("featured", "is.true")
	}

	var rows []projectRow
	if err := s.req.do(ctx, http.MethodGet, schema.PortfolioProjects, q, nil, &rows); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	out := make([]portfolio.Project, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// ListTestimonials returns testimonials by sort order.
func (s *Store) ListTestimonials(ctx context.Context) ([]portfolio.Testimonial, error) {
	q := selectQuery(schema.TestimonialColumns)
	q.Set("order", "sort_order.asc")

	var rows []testimonialRow
	if err := s.req.do(ctx, http.MethodGet, schema.Testimonials, q, nil, &rows); err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}

	out := make([]portfolio.Testimonial, 0, len(rows))
	for _, r := range rows {
		tm, err := r.toDomain()
		if err != nil {
			return nil, fmt.Errorf("list testimonials: %w", err)
		}
		out = append(out, tm)
	}
	return out, nil
}

func selectQuery(columns []string) url.Values {
	return url.Values{"select": []string{schema.CSV(columns)}}
}

func page(q url.Values, limit, offset int) {
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
}

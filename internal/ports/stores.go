package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/agency-site-api/internal/domain/contact"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/newsletter"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/portfolio"
)

// ContactStore persists contact form submissions.
// Implemented by each persistence driver; called by the application layer.
type ContactStore interface {
	// InsertContact stores a new submission and returns the stored row.
	// Exactly one backend call is made.
	InsertContact(ctx context.Context, sub *contact.Submission) (*contact.Submission, error)

	// ListContacts returns submissions newest first, narrowed by filter.
	ListContacts(ctx context.Context, filter contact.Filter) ([]contact.Submission, error)

	// UpdateContactStatus sets the handling status of a submission.
	// Returns domain.ErrNotFound if no submission has the given ID.
	UpdateContactStatus(ctx context.Context, id uuid.UUID, status contact.Status) (*contact.Submission, error)
}

// SubscriberStore persists newsletter subscribers.
type SubscriberStore interface {
	// InsertSubscriber stores a new subscriber.
	// Returns an error wrapping domain.ErrConflict if the email is already present.
	InsertSubscriber(ctx context.Context, sub *newsletter.Subscriber) (*newsletter.Subscriber, error)

	// ListSubscribers returns subscribers newest first, narrowed by filter.
	ListSubscribers(ctx context.Context, filter newsletter.Filter) ([]newsletter.Subscriber, error)

	// UpdateSubscriberStatus sets the status of the subscriber with the given email.
	// Returns domain.ErrNotFound if the email is not subscribed.
	UpdateSubscriberStatus(ctx context.Context, email string, status newsletter.Status) (*newsletter.Subscriber, error)
}

// ShowcaseStore reads portfolio content. Both lists are ordered by sort_order.
type ShowcaseStore interface {
	ListProjects(ctx context.Context, filter portfolio.ProjectFilter) ([]portfolio.Project, error)
	ListTestimonials(ctx context.Context) ([]portfolio.Testimonial, error)
}

// Store is the full surface a persistence driver provides.
type Store interface {
	ContactStore
	SubscriberStore
	ShowcaseStore
	HealthChecker
}

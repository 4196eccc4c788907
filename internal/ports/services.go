package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/agency-site-api/internal/domain/contact"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/newsletter"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/portfolio"
)

// SubmissionGateway is the single entry point for visitor-originated writes.
// Implemented by the application layer; called by handlers and form sessions.
type SubmissionGateway interface {
	// SubmitContact validates and stores a contact form submission with one
	// insert. Returns a *domain.ValidationError for bad input and a
	// *domain.TransportError for any backend failure.
	SubmitContact(ctx context.Context, sub *contact.Submission) (*contact.Submission, error)

	// Subscribe validates and stores a newsletter signup with one insert.
	// Returns domain.ErrAlreadySubscribed if the email is already on the list.
	Subscribe(ctx context.Context, email string) (*newsletter.Subscriber, error)
}

// BackOfficeService covers the agency staff's reads and status changes.
type BackOfficeService interface {
	ListContacts(ctx context.Context, filter contact.Filter) ([]contact.Submission, error)

	// UpdateContactStatus moves a submission to a new handling status.
	// Returns domain.ErrValidation for an unknown status and
	// domain.ErrNotFound if the submission does not exist.
	UpdateContactStatus(ctx context.Context, id uuid.UUID, status contact.Status) (*contact.Submission, error)

	ListSubscribers(ctx context.Context, filter newsletter.Filter) ([]newsletter.Subscriber, error)

	// Unsubscribe marks the subscriber as unsubscribed.
	// Returns domain.ErrNotFound if the email is not on the list.
	Unsubscribe(ctx context.Context, email string) (*newsletter.Subscriber, error)
}

// ShowcaseService serves the read-only portfolio content.
type ShowcaseService interface {
	// Showcase returns projects and testimonials together.
	Showcase(ctx context.Context) (*portfolio.Showcase, error)
	ListProjects(ctx context.Context, filter portfolio.ProjectFilter) ([]portfolio.Project, error)
	ListTestimonials(ctx context.Context) ([]portfolio.Testimonial, error)
}

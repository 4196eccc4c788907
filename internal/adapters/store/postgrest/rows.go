package postgrest

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/agency-site-api/internal/domain"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/contact"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/newsletter"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/portfolio"
)

// Wire shapes of the four tables. Field names match schema column lists.

type contactRow struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type subscriberRow struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Status       string    `json:"status"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

type projectRow struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Category  string    `json:"category"`
	Summary   string    `json:"summary"`
	ImageURL  string    `json:"image_url"`
	Tags      []string  `json:"tags"`
	Featured  bool      `json:"featured"`
	SortOrder int       `json:"sort_order"`
}

type testimonialRow struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Role      string    `json:"role"`
	Company   string    `json:"company"`
	Quote     string    `json:"quote"`
	Rating    int       `json:"rating"`
	SortOrder int       `json:"sort_order"`
}

// statusPatch is the body of a status-only PATCH.
type statusPatch struct {
	Status    string     `json:"status"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func fromContact(s *contact.Submission) contactRow {
	return contactRow{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Service:   string(s.Service),
		Message:   s.Message,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (r contactRow) toDomain() (*contact.Submission, error) {
	service, err := contact.ParseServiceTag(r.Service)
	if err != nil {
		return nil, decodeError("contact", r.ID, err)
	}
	status, err := contact.ParseStatus(r.Status)
	if err != nil {
		return nil, decodeError("contact", r.ID, err)
	}
	return &contact.Submission{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Service:   service,
		Message:   r.Message,
		Status:    status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

func fromSubscriber(s *newsletter.Subscriber) subscriberRow {
	return subscriberRow{
		ID:           s.ID,
		Email:        s.Email,
		Status:       string(s.Status),
		SubscribedAt: s.SubscribedAt,
	}
}

func (r subscriberRow) toDomain() (*newsletter.Subscriber, error) {
	status, err := newsletter.ParseStatus(r.Status)
	if err != nil {
		return nil, decodeError("subscriber", r.ID, err)
	}
	return &newsletter.Subscriber{
		ID:           r.ID,
		Email:        r.Email,
		Status:       status,
		SubscribedAt: r.SubscribedAt,
	}, nil
}

func (r projectRow) toDomain() portfolio.Project {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return portfolio.Project{
		ID:        r.ID,
		Title:     r.Title,
		Slug:      r.Slug,
		Category:  r.Category,
		Summary:   r.Summary,
		ImageURL:  r.ImageURL,
		Tags:      tags,
		Featured:  r.Featured,
		SortOrder: r.SortOrder,
	}
}

func (r testimonialRow) toDomain() (portfolio.Testimonial, error) {
	if err := portfolio.CheckRating(r.Rating); err != nil {
		return portfolio.Testimonial{}, decodeError("testimonial", r.ID, err)
	}
	return portfolio.Testimonial{
		ID:        r.ID,
		Author:    r.Author,
		Role:      r.Role,
		Company:   r.Company,
		Quote:     r.Quote,
		Rating:    r.Rating,
		SortOrder: r.SortOrder,
	}, nil
}

func decodeError(entity string, id uuid.UUID, err error) error {
	return fmt.Errorf("decoding %s row %s: %w: %w", entity, id, domain.ErrUnavailable, err)
}

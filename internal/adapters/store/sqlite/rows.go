package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/agency-site-api/internal/domain"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/contact"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/newsletter"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/portfolio"
)

type contactRow struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Email     string `db:"email"`
	Service   string `db:"service"`
	Message   string `db:"message"`
	Status    string `db:"status"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

func (r contactRow) toDomain() (*contact.Submission, error) {
	var d decoder
	c := &contact.Submission{
		ID:        d.parseUUID("id", r.ID),
		Name:      r.Name,
		Email:     r.Email,
		Message:   r.Message,
		CreatedAt: d.parseTime("created_at", r.CreatedAt),
		UpdatedAt: d.parseTime("updated_at", r.UpdatedAt),
	}
	c.Service = d.serviceTag(r.Service)
	c.Status = d.contactStatus(r.Status)
	if d.err != nil {
		return nil, d.fail("contact", r.ID)
	}
	return c, nil
}

type subscriberRow struct {
	ID           string `db:"id"`
	Email        string `db:"email"`
	Status       string `db:"status"`
	SubscribedAt string `db:"subscribed_at"`
}

func (r subscriberRow) toDomain() (*newsletter.Subscriber, error) {
	var d decoder
	s := &newsletter.Subscriber{
		ID:           d.parseUUID("id", r.ID),
		Email:        r.Email,
		SubscribedAt: d.parseTime("subscribed_at", r.SubscribedAt),
	}
	s.Status = d.subscriberStatus(r.Status)
	if d.err != nil {
		return nil, d.fail("subscriber", r.ID)
	}
	return s, nil
}

type projectRow struct {
	ID        string `db:"id"`
	Title     string `db:"title"`
	Slug      string `db:"slug"`
	Category  string `db:"category"`
	Summary   string `db:"summary"`
	ImageURL  string `db:"image_url"`
	Tags      string `db:"tags"`
	Featured  bool   `db:"featured"`
	SortOrder int    `db:"sort_order"`
}

func (r projectRow) toDomain() (portfolio.Project, error) {
	var d decoder
	p := portfolio.Project{
		ID:        d.parseUUID("id", r.ID),
		Title:     r.Title,
		Slug:      r.Slug,
		Category:  r.Category,
		Summary:   r.Summary,
		ImageURL:  r.ImageURL,
		Featured:  r.Featured,
		SortOrder: r.SortOrder,
	}
	if err := json.Unmarshal([]byte(r.Tags), &p.Tags); err != nil && d.err == nil {
		d.err = fmt.Errorf("tags: %w", err)
	}
	if d.err != nil {
		return portfolio.Project{}, d.fail("project", r.ID)
	}
	return p, nil
}

type testimonialRow struct {
	ID        string `db:"id"`
	Author    string `db:"author"`
	Role      string `db:"role"`
	Company   string `db:"company"`
	Quote     string `db:"quote"`
	Rating    int    `db:"rating"`
	SortOrder int    `db:"sort_order"`
}

func (r testimonialRow) toDomain() (portfolio.Testimonial, error) {
	var d decoder
	tm := portfolio.Testimonial{
		ID:        d.parseUUID("id", r.ID),
		Author:    r.Author,
		Role:      r.Role,
		Company:   r.Company,
		Quote:     r.Quote,
		Rating:    r.Rating,
		SortOrder: r.SortOrder,
	}
	if err := portfolio.CheckRating(r.Rating); err != nil && d.err == nil {
		d.err = err
	}
	if d.err != nil {
		return portfolio.Testimonial{}, d.fail("testimonial", r.ID)
	}
	return tm, nil
}

// decoder converts text columns, keeping the first failure.
type decoder struct {
	err error
}

func (d *decoder) parseUUID(col, v string) uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil && d.err == nil {
		d.err = fmt.Errorf("%s: %w", col, err)
	}
	return id
}

func (d *decoder) parseTime(col, v string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil && d.err == nil {
		d.err = fmt.Errorf("%s: %w", col, err)
	}
	return t
}

func (d *decoder) serviceTag(v string) contact.ServiceTag {
	t, err := contact.ParseServiceTag(v)
	if err != nil && d.err == nil {
		d.err = err
	}
	return t
}

func (d *decoder) contactStatus(v string) contact.Status {
	s, err := contact.ParseStatus(v)
	if err != nil && d.err == nil {
		d.err = err
	}
	return s
}

func (d *decoder) subscriberStatus(v string) newsletter.Status {
	s, err := newsletter.ParseStatus(v)
	if err != nil && d.err == nil {
		d.err = err
	}
	return s
}

// fail reports a row that does not match the domain shape.
func (d *decoder) fail(entity, id string) error {
	return fmt.Errorf("decoding %s row %s: %w: %w", entity, id, domain.ErrUnavailable, d.err)
}

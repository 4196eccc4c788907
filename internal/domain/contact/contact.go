// Package contact holds contact form submissions and their back-office lifecycle.
package contact

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/agency-site-api/internal/domain"
)

// Submission is a message left through the site's contact form.
type Submission struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Service   ServiceTag
	Message   string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Normalize trims every text field, lower-cases the email, and defaults an
// empty service tag to ServiceOther.
func (s *Submission) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = domain.NormalizeEmail(s.Email)
	s.Message = strings.TrimSpace(s.Message)
	s.Service = ServiceTag(strings.ToLower(strings.TrimSpace(string(s.Service))))
	if s.Service == "" {
		s.Service = ServiceOther
	}
}

// Validate runs the contact form rules and checks the service tag.
// Returns a *domain.ValidationError or nil.
func (s *Submission) Validate() error {
	if err := domain.ValidateContact(s.Name, s.Email, s.Message); err != nil {
		return err
	}
	if s.Service != "" && !s.Service.IsValid() {
		return &domain.ValidationError{
			Fields: map[string]string{"service": fmt.Sprintf("invalid: %q", s.Service)},
		}
	}
	return nil
}

// Filter holds optional criteria for listing submissions.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Status Status
	Limit  int
	Offset int
}

// Normalize applies page bounds.
func (f *Filter) Normalize() {
	f.Limit, f.Offset = domain.NormalizePage(f.Limit, f.Offset)
}

package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/agency-site-api/internal/domain"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/contact"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/scheduling"
)

const msgRequired = "is required"

// ContactRequest is the JSON body of a contact form submission. Field rules
// are enforced by the submission gateway so the visitor sees one verdict.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Service string `json:"service,omitempty"`
	Message string `json:"message"`
}

// ToDomain maps the request to an unsaved submission.
func (r *ContactRequest) ToDomain() *contact.Submission {
	return &contact.Submission{
		Name:    r.Name,
		Email:   r.Email,
		Service: contact.ServiceTag(r.Service),
		Message: r.Message,
	}
}

// SubscribeRequest is the JSON body of a newsletter signup.
type SubscribeRequest struct {
	Email string `json:"email"`
}

// UpdateContactStatusRequest is the JSON body for moving a submission
// through the back-office workflow.
type UpdateContactStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks the status is one of the known values.
// Returns a *domain.ValidationError if it is not.
func (r *UpdateContactStatusRequest) Validate() error {
	if strings.TrimSpace(r.Status) == "" {
		return &domain.ValidationError{Fields: map[string]string{"status": msgRequired}}
	}
	if !contact.Status(r.Status).IsValid() {
		return &domain.ValidationError{Fields: map[string]string{"status": fmt.Sprintf("invalid: %q", r.Status)}}
	}
	return nil
}

// SetFieldRequest is the JSON body for editing one form field.
type SetFieldRequest struct {
	Value string `json:"value"`
}

// SchedulingEventRequest is a message the booking widget posted to the page.
type SchedulingEventRequest struct {
	Event string `json:"event"`
}

// Validate checks the event carries the widget namespace.
func (r *SchedulingEventRequest) Validate() error {
	if strings.TrimSpace(r.Event) == "" {
		return &domain.ValidationError{Fields: map[string]string{"event": msgRequired}}
	}
	if !scheduling.IsWidgetEvent(r.Event) {
		return &domain.ValidationError{
			Fields: map[string]string{"event": fmt.Sprintf("must start with %q", scheduling.EventPrefix)},
		}
	}
	return nil
}

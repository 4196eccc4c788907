package contact

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/agency-site-api/internal/domain"
)

func TestSubmission_Normalize(t *testing.T) {
	t.Parallel()

	s := Submission{
		Name:    "  Ada Lovelace ",
		Email:   " Ada@Example.COM ",
		Message: "\nNeed a new site\t",
	}
	s.Normalize()

	if s.Name != "Ada Lovelace" {
		t.Errorf("Name = %q", s.Name)
	}
	if s.Email != "ada@example.com" {
		t.Errorf("Email = %q", s.Email)
	}
	if s.Message != "Need a new site" {
		t.Errorf("Message = %q", s.Message)
	}
	if s.Service != ServiceOther {
		t.Errorf("Service = %q, want %q", s.Service, ServiceOther)
	}
}

func TestSubmission_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		sub       Submission
		wantErr   bool
		wantField string
	}{
		{
			name: "valid with service",
			sub:  Submission{Name: "A", Email: "a@b.com", Message: "hi", Service: ServiceBranding},
		},
		{
			name: "valid without service",
			sub:  Submission{Name: "A", Email: "a@b.com", Message: "hi"},
		},
		{
			name:      "missing name",
			sub:       Submission{Email: "a@b.com", Message: "hi"},
			wantErr:   true,
			wantField: "name",
		},
		{
			name:      "unknown service",
			sub:       Submission{Name: "A", Email: "a@b.com", Message: "hi", Service: "astrology"},
			wantErr:   true,
			wantField: "service",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.sub.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Fields missing key %q, got %v", tt.wantField, verr.Fields)
			}
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()

	for _, s := range []Status{StatusNew, StatusInProgress, StatusCompleted, StatusArchived} {
		if !s.IsValid() {
			t.Errorf("Status(%q).IsValid() = false", s)
		}
	}
	for _, s := range []Status{"", "done", "New"} {
		if s.IsValid() {
			t.Errorf("Status(%q).IsValid() = true", s)
		}
	}
}

func TestServiceTags_AllValid(t *testing.T) {
	t.Parallel()

	tags := ServiceTags()
	if len(tags) != 7 {
		t.Fatalf("len(ServiceTags()) = %d, want 7", len(tags))
	}
	for _, tag := range tags {
		if !tag.IsValid() {
			t.Errorf("ServiceTag(%q).IsValid() = false", tag)
		}
	}
}

package outreach

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/agency-site-api/internal/domain"
)

func TestMailtoURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		address string
		subject string
		body    string
		want    string
		wantErr bool
	}{
		{
			name:    "bare address",
			address: "hello@agency.io",
			want:    "mailto:hello@agency.io",
		},
		{
			name:    "subject is percent-encoded",
			address: "hello@agency.io",
			subject: "New project & quote",
			want:    "mailto:hello@agency.io?subject=New%20project%20%26%20quote",
		},
		{
			name:    "subject and body",
			address: "hello@agency.io",
			subject: "Hi",
			body:    "Line one",
			want:    "mailto:hello@agency.io?subject=Hi&body=Line%20one",
		},
		{
			name:    "invalid address",
			address: "hello",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := MailtoURI(tt.address, tt.subject, tt.body)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Fatalf("MailtoURI() error = %v, want ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("MailtoURI() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("MailtoURI() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTelURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		number  string
		want    string
		wantErr bool
	}{
		{name: "international with separators", number: "+1 (555) 123-4567", want: "tel:+15551234567"},
		{name: "dotted", number: "555.123.4567", want: "tel:5551234567"},
		{name: "letters rejected", number: "555-CALL-NOW", wantErr: true},
		{name: "plus in the middle rejected", number: "55+5", wantErr: true},
		{name: "too short", number: "+1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := TelURI(tt.number)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Fatalf("TelURI(%q) error = %v, want ErrValidation", tt.number, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("TelURI(%q) error = %v", tt.number, err)
			}
			if got != tt.want {
				t.Errorf("TelURI(%q) = %q, want %q", tt.number, got, tt.want)
			}
		})
	}
}

func TestBuildLinks(t *testing.T) {
	t.Parallel()

	links, err := BuildLinks("hello@agency.io", "+44 20 7946 0000", "Project enquiry")
	if err != nil {
		t.Fatalf("BuildLinks() error = %v", err)
	}
	if links.Mailto != "mailto:hello@agency.io?subject=Project%20enquiry" {
		t.Errorf("Mailto = %q", links.Mailto)
	}
	if links.Tel != "tel:+442079460000" {
		t.Errorf("Tel = %q", links.Tel)
	}

	if _, err := BuildLinks("hello@agency.io", "nope", ""); err == nil {
		t.Error("BuildLinks() with bad phone = nil, want error")
	}
}

// Package newsletter holds newsletter subscribers.
package newsletter

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/agency-site-api/internal/domain"
)

// Subscriber is one email address on the mailing list. Email is unique.
type Subscriber struct {
	ID           uuid.UUID
	Email        string
	Status       Status
	SubscribedAt time.Time
}

// Status is the subscription state.
type Status string

const (
	StatusActive       Status = "active"
	StatusUnsubscribed Status = "unsubscribed"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusUnsubscribed:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts s to a Status, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("unknown subscriber status %q", s)
	}
	return st, nil
}

// Filter holds optional criteria for listing subscribers.
type Filter struct {
	Status Status
	Limit  int
	Offset int
}

// Normalize applies page bounds.
func (f *Filter) Normalize() {
	f.Limit, f.Offset = domain.NormalizePage(f.Limit, f.Offset)
}

package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// User-facing messages rendered by the site's forms.
const (
	MsgMissingRequired   = "missing required field"
	MsgInvalidEmail      = "invalid email format"
	MsgAlreadySubscribed = "You're already subscribed to our newsletter."
	MsgSendFailed        = "Failed to send message. Please try again."
)

// ErrAlreadySubscribed is returned when a newsletter signup hits the unique
// email constraint. It matches both errors.Is(err, ErrAlreadySubscribed) and
// errors.Is(err, ErrConflict).
var ErrAlreadySubscribed = &ConflictError{Message: MsgAlreadySubscribed}

// ValidationError provides programmatic access to validation failures.
// Message is the single user-facing verdict (e.g. "missing required field");
// Fields maps each offending field to its rule.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr)
// to access the details.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	slices.Sort(parts)

	if e.Message == "" {
		return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%s: %s", ErrValidation.Error(), e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", ErrValidation.Error(), e.Message, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ConflictError is a uniqueness violation with a user-facing explanation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// TransportError wraps any backend failure that is not a recognized conflict:
// network errors, timeouts, 5xx responses, malformed rows. Error() never
// exposes the underlying cause; it is kept for errors.Is/As and logging.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return "failed to send, try again"
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrUnavailable, e.Err}
}

// UserMessage maps err to the string a site visitor should see. A
// TransportError always reads as a send failure, whatever it wraps.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var terr *TransportError
	if errors.As(err, &terr) {
		return MsgSendFailed
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		if verr.Message != "" {
			return verr.Message
		}
		return verr.Error()
	}

	var cerr *ConflictError
	if errors.As(err, &cerr) {
		return cerr.Message
	}

	return MsgSendFailed
}

// Package form holds the server-side state of the site's contact and
// newsletter forms: field values, the submit lifecycle, and the banner
// shown after a submission.
package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/jsamuelsen11/agency-site-api/internal/domain"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/contact"
	"github.com/jsamuelsen11/agency-site-api/internal/ports"
)

// Kind identifies which form a session drives.
type Kind string

const (
	KindContact    Kind = "contact"
	KindNewsletter Kind = "newsletter"
)

// Field names.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldService = "service"
	FieldMessage = "message"
)

// Fields returns the editable fields of the form kind in display order.
func (k Kind) Fields() []string {
	switch k {
	case KindContact:
		return []string{FieldName, FieldEmail, FieldService, FieldMessage}
	case KindNewsletter:
		return []string{FieldEmail}
	default:
		return nil
	}
}

// ParseKind converts a path segment to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if k.Fields() == nil {
		return "", &domain.ValidationError{Fields: map[string]string{"kind": fmt.Sprintf("unknown form %q", s)}}
	}
	return k, nil
}

// State is a step of the submit lifecycle.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

var (
	// ErrSubmitInProgress is returned when a form is changed or resubmitted
	// while its submission is in flight.
	ErrSubmitInProgress = fmt.Errorf("submission in progress: %w", domain.ErrConflict)

	// ErrNotSubmittable is returned by Submit while the success banner shows.
	ErrNotSubmittable = fmt.Errorf("form already submitted: %w", domain.ErrConflict)
)

// Snapshot is a consistent copy of a form's state.
type Snapshot struct {
	ID      uuid.UUID
	Kind    Kind
	State   State
	Values  map[string]string
	Message string
}

// Form is one visitor's form instance. All methods are safe for concurrent
// use; at most one submission is in flight at a time.
type Form struct {
	id         uuid.UUID
	kind       Kind
	gateway    ports.SubmissionGateway
	clock      clockwork.Clock
	resetDelay time.Duration
	logger     *slog.Logger

	mu      sync.Mutex
	state   State
	values  map[string]string
	message string
	// generation invalidates reset timers armed by earlier submissions.
	generation uint64
	timer      clockwork.Timer
}

// New returns an idle form of the given kind.
func New(
	kind Kind,
	gateway ports.SubmissionGateway,
	clock clockwork.Clock,
	resetDelay time.Duration,
	logger *slog.Logger,
) *Form {
	return &Form{
		id:         uuid.New(),
		kind:       kind,
		gateway:    gateway,
		clock:      clock,
		resetDelay: resetDelay,
		logger:     logger,
		state:      StateIdle,
		values:     emptyValues(kind),
	}
}

// ID returns the session identifier.
func (f *Form) ID() uuid.UUID {
	return f.id
}

// Kind returns the form kind.
func (f *Form) Kind() Kind {
	return f.kind
}

// Snapshot returns the current state.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// SetField edits one field. Editing after a failed submission clears the
// error message but leaves the form in the error state.
func (f *Form) SetField(name, value string) (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.values[name]; !ok {
		return f.snapshotLocked(), &domain.ValidationError{
			Fields: map[string]string{name: fmt.Sprintf("not a %s form field", f.kind)},
		}
	}
	if f.state == StateSubmitting {
		return f.snapshotLocked(), ErrSubmitInProgress
	}

	f.values[name] = value
	if f.state == StateError {
		f.message = ""
	}
	return f.snapshotLocked(), nil
}

// Submit validates the fields and hands them to the gateway. The outcome is
// reported through the returned Snapshot; the error is non-nil only when
// the form could not be submitted at all.
func (f *Form) Submit(ctx context.Context) (Snapshot, error) {
	f.mu.Lock()
	switch f.state {
	case StateSubmitting:
		snap := f.snapshotLocked()
		f.mu.Unlock()
		return snap, ErrSubmitInProgress
	case StateSuccess:
		snap := f.snapshotLocked()
		f.mu.Unlock()
		return snap, ErrNotSubmittable
	}

	f.stopTimerLocked()
	f.state = StateSubmitting
	f.message = ""
	values := maps.Clone(f.values)
	f.mu.Unlock()

	err := f.send(ctx, values)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.state = StateError
		f.message = domain.UserMessage(err)
		if !errors.Is(err, domain.ErrValidation) && !errors.Is(err, domain.ErrConflict) {
			f.logger.WarnContext(ctx, "form submission failed",
				slog.String("form", string(f.kind)),
				slog.String("form_id", f.id.String()),
				slog.Any("error", err),
			)
		}
		return f.snapshotLocked(), nil
	}

	f.state = StateSuccess
	f.values = emptyValues(f.kind)
	f.armResetLocked()
	return f.snapshotLocked(), nil
}

// Dismiss closes the success banner immediately. It has no effect in any
// other state.
func (f *Form) Dismiss() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSuccess {
		f.stopTimerLocked()
		f.state = StateIdle
	}
	return f.snapshotLocked()
}

// Close stops any pending reset timer.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopTimerLocked()
}

func (f *Form) send(ctx context.Context, values map[string]string) error {
	switch f.kind {
	case KindContact:
		sub := &contact.Submission{
			Name:    values[FieldName],
			Email:   values[FieldEmail],
			Service: contact.ServiceTag(values[FieldService]),
			Message: values[FieldMessage],
		}
		// Validation runs before the gateway so a bad form never costs a call.
		sub.Normalize()
		if err := sub.Validate(); err != nil {
			return err
		}
		_, err := f.gateway.SubmitContact(ctx, sub)
		return err

	case KindNewsletter:
		email := domain.NormalizeEmail(values[FieldEmail])
		if err := domain.ValidateSubscriber(email); err != nil {
			return err
		}
		_, err := f.gateway.Subscribe(ctx, email)
		return err

	default:
		return fmt.Errorf("unknown form kind %q", f.kind)
	}
}

func (f *Form) armResetLocked() {
	f.generation++
	gen := f.generation
	f.timer = f.clock.AfterFunc(f.resetDelay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.generation == gen && f.state == StateSuccess {
			f.state = StateIdle
			f.timer = nil
		}
	})
}

func (f *Form) stopTimerLocked() {
	f.generation++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

func (f *Form) snapshotLocked() Snapshot {
	return Snapshot{
		ID:      f.id,
		Kind:    f.kind,
		State:   f.state,
		Values:  maps.Clone(f.values),
		Message: f.message,
	}
}

func emptyValues(kind Kind) map[string]string {
	fields := kind.Fields()
	values := make(map[string]string, len(fields))
	for _, name := range fields {
		values[name] = ""
	}
	return values
}

package form_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/agency-site-api/internal/app/form"
	"github.com/jsamuelsen11/agency-site-api/internal/domain"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/contact"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/newsletter"
	"github.com/jsamuelsen11/agency-site-api/mocks"
)

const resetDelay = 5 * time.Second

func newContactForm(t *testing.T) (*form.Form, *mocks.MockSubmissionGateway, *clockwork.FakeClock) {
	t.Helper()
	gw := mocks.NewMockSubmissionGateway(t)
	clock := clockwork.NewFakeClock()
	f := form.New(form.KindContact, gw, clock, resetDelay, slog.New(slog.DiscardHandler))
	t.Cleanup(f.Close)
	return f, gw, clock
}

func fill(t *testing.T, f *form.Form, values map[string]string) {
	t.Helper()
	for name, v := range values {
		_, err := f.SetField(name, v)
		require.NoError(t, err)
	}
}

func TestForm_InitialState(t *testing.T) {
	t.Parallel()
	f, _, _ := newContactForm(t)

	snap := f.Snapshot()
	assert.Equal(t, form.StateIdle, snap.State)
	assert.Equal(t, map[string]string{"name": "", "email": "", "service": "", "message": ""}, snap.Values)
	assert.Empty(t, snap.Message)
}

func TestForm_ValidationFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		values  map[string]string
		wantMsg string
	}{
		{
			name:    "missing name",
			values:  map[string]string{"name": "", "email": "a@b.com", "message": "hi"},
			wantMsg: "missing required field",
		},
		{
			name:    "bad email",
			values:  map[string]string{"name": "A", "email": "not-an-email", "message": "hi"},
			wantMsg: "invalid email format",
		},
		{
			name:    "unknown service",
			values:  map[string]string{"name": "A", "email": "a@b.com", "message": "hi", "service": "catering"},
			wantMsg: "validation error: service: invalid: \"catering\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			// No gateway expectations: a call would fail the test.
			f, _, _ := newContactForm(t)
			fill(t, f, tt.values)

			snap, err := f.Submit(context.Background())
			require.NoError(t, err)
			assert.Equal(t, form.StateError, snap.State)
			assert.Equal(t, tt.wantMsg, snap.Message)
			assert.Equal(t, tt.values["name"], snap.Values["name"], "fields are kept")
		})
	}
}

func TestForm_SuccessClearsFieldsAndResets(t *testing.T) {
	t.Parallel()
	f, gw, clock := newContactForm(t)
	fill(t, f, map[string]string{"name": "A", "email": "a@b.com", "message": "hi"})

	gw.EXPECT().SubmitContact(mock.Anything, mock.MatchedBy(func(s *contact.Submission) bool {
		return s.Name == "A" && s.Email == "a@b.com" && s.Message == "hi" && s.Service == contact.ServiceOther
	})).Return(&contact.Submission{}, nil).Once()

	snap, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, form.StateSuccess, snap.State)
	assert.Equal(t, map[string]string{"name": "", "email": "", "service": "", "message": ""}, snap.Values)

	clock.Advance(resetDelay - time.Millisecond)
	assert.Equal(t, form.StateSuccess, f.Snapshot().State)

	clock.Advance(time.Millisecond)
	require.Eventually(t, func() bool {
		return f.Snapshot().State == form.StateIdle
	}, time.Second, 5*time.Millisecond)
}

func TestForm_BackendFailureKeepsFields(t *testing.T) {
	t.Parallel()
	f, gw, clock := newContactForm(t)
	values := map[string]string{"name": "A", "email": "a@b.com", "message": "hi"}
	fill(t, f, values)

	gw.EXPECT().SubmitContact(mock.Anything, mock.Anything).
		Return(nil, &domain.TransportError{Op: "insert contact", Err: context.DeadlineExceeded}).Once()

	snap, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, form.StateError, snap.State)
	assert.Equal(t, domain.MsgSendFailed, snap.Message)
	assert.Equal(t, "A", snap.Values["name"])
	assert.Equal(t, "hi", snap.Values["message"])

	clock.Advance(time.Minute)
	assert.Equal(t, form.StateError, f.Snapshot().State, "errors never auto-reset")
}

func TestForm_EditAfterErrorClearsMessage(t *testing.T) {
	t.Parallel()
	f, _, _ := newContactForm(t)

	snap, err := f.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, form.StateError, snap.State)
	require.NotEmpty(t, snap.Message)

	snap, err = f.SetField(form.FieldName, "Ada")
	require.NoError(t, err)
	assert.Equal(t, form.StateError, snap.State)
	assert.Empty(t, snap.Message)
}

func TestForm_UnknownField(t *testing.T) {
	t.Parallel()
	f, _, _ := newContactForm(t)

	_, err := f.SetField("phone", "555")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestForm_SingleSubmissionInFlight(t *testing.T) {
	t.Parallel()
	f, gw, _ := newContactForm(t)
	fill(t, f, map[string]string{"name": "A", "email": "a@b.com", "message": "hi"})

	entered := make(chan struct{})
	release := make(chan struct{})
	gw.EXPECT().SubmitContact(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *contact.Submission) (*contact.Submission, error) {
			close(entered)
			<-release
			return &contact.Submission{}, nil
		}).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		snap, err := f.Submit(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, form.StateSuccess, snap.State)
	}()

	<-entered
	assert.Equal(t, form.StateSubmitting, f.Snapshot().State)

	_, err := f.Submit(context.Background())
	require.ErrorIs(t, err, form.ErrSubmitInProgress)
	_, err = f.SetField(form.FieldName, "B")
	require.ErrorIs(t, err, form.ErrSubmitInProgress)

	close(release)
	wg.Wait()

	_, err = f.Submit(context.Background())
	require.ErrorIs(t, err, form.ErrNotSubmittable)
}

func TestForm_DismissCancelsReset(t *testing.T) {
	t.Parallel()
	f, gw, clock := newContactForm(t)

	gw.EXPECT().SubmitContact(mock.Anything, mock.Anything).Return(&contact.Submission{}, nil).Twice()

	fill(t, f, map[string]string{"name": "A", "email": "a@b.com", "message": "hi"})
	_, err := f.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, form.StateIdle, f.Dismiss().State)

	// A second success just before the first timer would have fired must
	// keep its banner for a full delay.
	clock.Advance(4 * time.Second)
	fill(t, f, map[string]string{"name": "A", "email": "a@b.com", "message": "again"})
	snap, err := f.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, form.StateSuccess, snap.State)

	clock.Advance(2 * time.Second)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, form.StateSuccess, f.Snapshot().State)

	clock.Advance(3 * time.Second)
	require.Eventually(t, func() bool {
		return f.Snapshot().State == form.StateIdle
	}, time.Second, 5*time.Millisecond)
}

func TestForm_DismissOutsideSuccessIsNoop(t *testing.T) {
	t.Parallel()
	f, _, _ := newContactForm(t)

	_, _ = f.Submit(context.Background())
	assert.Equal(t, form.StateError, f.Dismiss().State)
}

func TestForm_Newsletter(t *testing.T) {
	t.Parallel()

	t.Run("already subscribed", func(t *testing.T) {
		t.Parallel()
		gw := mocks.NewMockSubmissionGateway(t)
		f := form.New(form.KindNewsletter, gw, clockwork.NewFakeClock(), resetDelay, slog.New(slog.DiscardHandler))

		gw.EXPECT().Subscribe(mock.Anything, "ada@example.com").Return(nil, domain.ErrAlreadySubscribed).Once()

		_, err := f.SetField(form.FieldEmail, " Ada@Example.com ")
		require.NoError(t, err)
		snap, err := f.Submit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, form.StateError, snap.State)
		assert.Equal(t, "You're already subscribed to our newsletter.", snap.Message)
	})

	t.Run("subscribed", func(t *testing.T) {
		t.Parallel()
		gw := mocks.NewMockSubmissionGateway(t)
		f := form.New(form.KindNewsletter, gw, clockwork.NewFakeClock(), resetDelay, slog.New(slog.DiscardHandler))

		gw.EXPECT().Subscribe(mock.Anything, "ada@example.com").
			Return(&newsletter.Subscriber{Email: "ada@example.com", Status: newsletter.StatusActive}, nil).Once()

		_, err := f.SetField(form.FieldEmail, "ada@example.com")
		require.NoError(t, err)
		snap, err := f.Submit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, form.StateSuccess, snap.State)
		assert.Equal(t, map[string]string{"email": ""}, snap.Values)
	})
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	k, err := form.ParseKind("newsletter")
	require.NoError(t, err)
	assert.Equal(t, []string{"email"}, k.Fields())

	_, err = form.ParseKind("survey")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

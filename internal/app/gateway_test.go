package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/agency-site-api/internal/domain"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/contact"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/newsletter"
	"github.com/jsamuelsen11/agency-site-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/agency-site-api/mocks"
)

var testNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestGateway(t *testing.T) (*Gateway, *mocks.MockContactStore, *mocks.MockSubscriberStore) {
	t.Helper()
	contacts := mocks.NewMockContactStore(t)
	subscribers := mocks.NewMockSubscriberStore(t)
	gw := NewGateway(contacts, subscribers, nil, discardLogger(), clockwork.NewFakeClockAt(testNow))
	return gw, contacts, subscribers
}

func echoContact(_ context.Context, sub *contact.Submission) (*contact.Submission, error) {
	return sub, nil
}

// --- SubmitContact ---

func TestGateway_SubmitContact_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sub     contact.Submission
		wantMsg string
	}{
		{
			name:    "empty name",
			sub:     contact.Submission{Name: "", Email: "a@b.com", Message: "hi"},
			wantMsg: domain.MsgMissingRequired,
		},
		{
			name:    "whitespace message",
			sub:     contact.Submission{Name: "A", Email: "a@b.com", Message: "   "},
			wantMsg: domain.MsgMissingRequired,
		},
		{
			name:    "bad email",
			sub:     contact.Submission{Name: "A", Email: "not-an-email", Message: "hi"},
			wantMsg: domain.MsgInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			// No store expectations: any insert fails the test.
			gw, _, _ := newTestGateway(t)

			sub := tt.sub
			_, err := gw.SubmitContact(context.Background(), &sub)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("SubmitContact() error = %v, want ErrValidation", err)
			}
			if got := domain.UserMessage(err); got != tt.wantMsg {
				t.Errorf("UserMessage() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestGateway_SubmitContact_Success(t *testing.T) {
	t.Parallel()
	gw, contacts, _ := newTestGateway(t)

	contacts.EXPECT().InsertContact(mock.Anything, mock.MatchedBy(func(s *contact.Submission) bool {
		return s.ID != uuid.Nil &&
			s.Email == "ada@example.com" &&
			s.Name == "Ada" &&
			s.Service == contact.ServiceOther &&
			s.Status == contact.StatusNew &&
			s.CreatedAt.Equal(testNow) &&
			s.UpdatedAt.Equal(testNow)
	})).RunAndReturn(echoContact).Once()

	got, err := gw.SubmitContact(context.Background(), &contact.Submission{
		Name: "  Ada ", Email: " Ada@Example.COM ", Message: "Hello",
	})
	if err != nil {
		t.Fatalf("SubmitContact() error = %v, want nil", err)
	}
	if got.Status != contact.StatusNew {
		t.Errorf("Status = %q, want %q", got.Status, contact.StatusNew)
	}
}

func TestGateway_SubmitContact_StoreFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp 10.0.0.1:443: i/o timeout")
	for _, storeErr := range []error{
		cause,
		context.DeadlineExceeded,
		domain.ErrConflict,
	} {
		t.Run(storeErr.Error(), func(t *testing.T) {
			t.Parallel()
			gw, contacts, _ := newTestGateway(t)

			contacts.EXPECT().InsertContact(mock.Anything, mock.Anything).Return(nil, storeErr).Once()

			_, err := gw.SubmitContact(context.Background(), &contact.Submission{
				Name: "A", Email: "a@b.com", Message: "hi",
			})

			var terr *domain.TransportError
			if !errors.As(err, &terr) {
				t.Fatalf("SubmitContact() error = %T, want *domain.TransportError", err)
			}
			if !errors.Is(err, domain.ErrUnavailable) || !errors.Is(err, storeErr) {
				t.Errorf("error should match ErrUnavailable and the store error, got %v", err)
			}
			if strings.Contains(err.Error(), storeErr.Error()) {
				t.Errorf("Error() = %q leaks the backend error", err.Error())
			}
			if got := domain.UserMessage(err); got != domain.MsgSendFailed {
				t.Errorf("UserMessage() = %q, want %q", got, domain.MsgSendFailed)
			}
		})
	}
}

// --- Subscribe ---

func TestGateway_Subscribe(t *testing.T) {
	t.Parallel()

	t.Run("stores a normalized active subscriber", func(t *testing.T) {
		t.Parallel()
		gw, _, subscribers := newTestGateway(t)

		subscribers.EXPECT().InsertSubscriber(mock.Anything, mock.MatchedBy(func(s *newsletter.Subscriber) bool {
			return s.Email == "ada@example.com" &&
				s.Status == newsletter.StatusActive &&
				s.SubscribedAt.Equal(testNow)
		})).RunAndReturn(func(_ context.Context, s *newsletter.Subscriber) (*newsletter.Subscriber, error) {
			return s, nil
		}).Once()

		got, err := gw.Subscribe(context.Background(), "ADA@example.com ")
		if err != nil {
			t.Fatalf("Subscribe() error = %v, want nil", err)
		}
		if got.ID == uuid.Nil {
			t.Error("Subscribe() returned subscriber without ID")
		}
	})

	t.Run("conflict is already subscribed", func(t *testing.T) {
		t.Parallel()
		gw, _, subscribers := newTestGateway(t)

		storeErr := errors.New("insert subscriber: conflict: newsletter_subscribers_email_key")
		subscribers.EXPECT().InsertSubscriber(mock.Anything, mock.Anything).
			Return(nil, errors.Join(storeErr, domain.ErrConflict)).Once()

		_, err := gw.Subscribe(context.Background(), "ada@example.com")
		if !errors.Is(err, domain.ErrAlreadySubscribed) {
			t.Fatalf("Subscribe() error = %v, want ErrAlreadySubscribed", err)
		}
		if got := domain.UserMessage(err); got != "You're already subscribed to our newsletter." {
			t.Errorf("UserMessage() = %q", got)
		}
	})

	t.Run("other failures are transport errors", func(t *testing.T) {
		t.Parallel()
		gw, _, subscribers := newTestGateway(t)

		subscribers.EXPECT().InsertSubscriber(mock.Anything, mock.Anything).
			Return(nil, domain.ErrForbidden).Once()

		_, err := gw.Subscribe(context.Background(), "ada@example.com")
		var terr *domain.TransportError
		if !errors.As(err, &terr) {
			t.Fatalf("Subscribe() error = %v, want *domain.TransportError", err)
		}
		if errors.Is(err, domain.ErrConflict) {
			t.Error("transport error must not read as a conflict")
		}
	})

	t.Run("invalid email never reaches the store", func(t *testing.T) {
		t.Parallel()
		gw, _, _ := newTestGateway(t)

		_, err := gw.Subscribe(context.Background(), "nope")
		if got := domain.UserMessage(err); got != domain.MsgInvalidEmail {
			t.Errorf("UserMessage() = %q, want %q", got, domain.MsgInvalidEmail)
		}
	})
}

func TestGateway_RecordsSubmissionMetrics(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	metrics, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "site")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	subscribers := mocks.NewMockSubscriberStore(t)
	gw := NewGateway(mocks.NewMockContactStore(t), subscribers, metrics, discardLogger(), clockwork.NewFakeClock())
	subscribers.EXPECT().InsertSubscriber(mock.Anything, mock.Anything).Return(nil, domain.ErrConflict).Once()

	_, _ = gw.Subscribe(ctx, "ada@example.com")
	_, _ = gw.Subscribe(ctx, "")

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	results := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if m.Name != "site.submission.total" || !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				v, _ := dp.Attributes.Value(telemetry.AttrResult)
				results[v.AsString()] += dp.Value
			}
		}
	}

	if results[telemetry.ResultAlreadySubscribed] != 1 || results[telemetry.ResultInvalid] != 1 {
		t.Errorf("submission results = %v, want one already_subscribed and one invalid", results)
	}
}

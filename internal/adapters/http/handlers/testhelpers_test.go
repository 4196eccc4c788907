package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/agency-site-api/internal/domain/contact"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/newsletter"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/portfolio"
)

var (
	testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)
	testID   = uuid.MustParse("6f1c3b7e-2d4a-4f0e-9b8c-1a2b3c4d5e6f")
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func validSubmission() contact.Submission {
	return contact.Submission{
		ID:        testID,
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Service:   contact.ServiceWebDesign,
		Message:   "We need a new site.",
		Status:    contact.StatusNew,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validSubscriber() newsletter.Subscriber {
	return newsletter.Subscriber{
		ID:           testID,
		Email:        "reader@example.com",
		Status:       newsletter.StatusActive,
		SubscribedAt: testTime,
	}
}

func validProject() portfolio.Project {
	return portfolio.Project{
		ID:        testID,
		Title:     "Harbor Coffee",
		Slug:      "harbor-coffee",
		Category:  "branding",
		Tags:      []string{"logo", "packaging"},
		Featured:  true,
		SortOrder: 1,
	}
}

func validTestimonial() portfolio.Testimonial {
	return portfolio.Testimonial{
		ID:     testID,
		Author: "Grace Hopper",
		Quote:  "Delivered on time.",
		Rating: 5,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

package http_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/agency-site-api/internal/adapters/http"
	"github.com/jsamuelsen11/agency-site-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/agency-site-api/internal/app/form"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/portfolio"
	"github.com/jsamuelsen11/agency-site-api/internal/platform/config"
	"github.com/jsamuelsen11/agency-site-api/mocks"
)

type routerMocks struct {
	gateway    *mocks.MockSubmissionGateway
	backOffice *mocks.MockBackOfficeService
	showcase   *mocks.MockShowcaseService
	health     *mocks.MockHealthRegistry
}

func newTestHandlers(t *testing.T) (adapthttp.Handlers, *routerMocks) {
	t.Helper()
	m := &routerMocks{
		gateway:    mocks.NewMockSubmissionGateway(t),
		backOffice: mocks.NewMockBackOfficeService(t),
		showcase:   mocks.NewMockShowcaseService(t),
		health:     mocks.NewMockHealthRegistry(t),
	}
	formsCfg := config.FormsConfig{ResetDelay: 5 * time.Second, SessionTTL: time.Hour, MaxSessions: 10}
	registry := form.NewRegistry(m.gateway, clockwork.NewFakeClock(), formsCfg, slog.New(slog.DiscardHandler))

	return adapthttp.Handlers{
		Submission: handlers.NewSubmissionHandler(m.gateway),
		BackOffice: handlers.NewBackOfficeHandler(m.backOffice),
		Showcase:   handlers.NewShowcaseHandler(m.showcase),
		Form:       handlers.NewFormHandler(registry),
		Outreach:   handlers.NewOutreachHandler(config.AgencyConfig{Email: "hello@agency.example"}),
		Scheduling: handlers.NewSchedulingHandler(formsCfg, nil),
		Health:     handlers.NewHealthHandler(m.health, slog.New(slog.DiscardHandler)),
	}, m
}

func newTestRouter(t *testing.T) (http.Handler, *routerMocks) {
	t.Helper()
	h, m := newTestHandlers(t)
	return adapthttp.NewRouter(h), m
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodPost, "/api/v1/contacts"},
		{http.MethodGet, "/api/v1/contacts"},
		{http.MethodPatch, "/api/v1/contacts/{id}"},
		{http.MethodPost, "/api/v1/newsletter/subscribers"},
		{http.MethodGet, "/api/v1/newsletter/subscribers"},
		{http.MethodDelete, "/api/v1/newsletter/subscribers/{email}"},
		{http.MethodGet, "/api/v1/showcase"},
		{http.MethodGet, "/api/v1/projects"},
		{http.MethodGet, "/api/v1/testimonials"},
		{http.MethodPost, "/api/v1/forms/{kind}"},
		{http.MethodGet, "/api/v1/forms/{kind}/{id}"},
		{http.MethodPut, "/api/v1/forms/{kind}/{id}/fields/{field}"},
		{http.MethodPost, "/api/v1/forms/{kind}/{id}/submit"},
		{http.MethodPost, "/api/v1/forms/{kind}/{id}/dismiss"},
		{http.MethodGet, "/api/v1/outreach/links"},
		{http.MethodPost, "/api/v1/scheduling/modals"},
		{http.MethodPost, "/api/v1/scheduling/modals/{id}/events"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	h, m := newTestHandlers(t)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(h, testMW)

	m.health.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationListProjects(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t)

	m.showcase.EXPECT().ListProjects(mock.Anything, portfolio.ProjectFilter{FeaturedOnly: true}).
		Return([]portfolio.Project{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects?featured=true", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_IntegrationFormRoundTrip(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/forms/newsletter", nil))
	if rec.Code != http.StatusCreated {
		t.Fatalf("open status = %d, want %d; body = %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/forms/contact/not-a-uuid", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("get status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/showcase", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/agency-site-api/internal/adapters/http/handlers"
)

// Handlers groups the endpoint handlers the router mounts.
type Handlers struct {
	Submission *handlers.SubmissionHandler
	BackOffice *handlers.BackOfficeHandler
	Showcase   *handlers.ShowcaseHandler
	Form       *handlers.FormHandler
	Outreach   *handlers.OutreachHandler
	Scheduling *handlers.SchedulingHandler
	Health     *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		// Visitor submissions and the back-office views over them.
		r.Post("/contacts", h.Submission.SubmitContact)
		r.Get("/contacts", h.BackOffice.ListContacts)
		r.Patch("/contacts/{id}", h.BackOffice.UpdateContactStatus)

		r.Post("/newsletter/subscribers", h.Submission.Subscribe)
		r.Get("/newsletter/subscribers", h.BackOffice.ListSubscribers)
		r.Delete("/newsletter/subscribers/{email}", h.BackOffice.Unsubscribe)

		// Portfolio content.
		r.Get("/showcase", h.Showcase.Showcase)
		r.Get("/projects", h.Showcase.ListProjects)
		r.Get("/testimonials", h.Showcase.ListTestimonials)

		// Server-side form sessions.
		r.Post("/forms/{kind}", h.Form.Open)
		r.Get("/forms/{kind}/{id}", h.Form.Get)
		r.Put("/forms/{kind}/{id}/fields/{field}", h.Form.SetField)
		r.Post("/forms/{kind}/{id}/submit", h.Form.Submit)
		r.Post("/forms/{kind}/{id}/dismiss", h.Form.Dismiss)

		r.Get("/outreach/links", h.Outreach.Links)

		r.Post("/scheduling/modals", h.Scheduling.OpenModal)
		r.Post("/scheduling/modals/{id}/events", h.Scheduling.HandleEvent)
	})

	return r
}

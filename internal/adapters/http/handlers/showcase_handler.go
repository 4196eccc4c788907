package handlers

import (
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/agency-site-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/agency-site-api/internal/domain"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/portfolio"
	"github.com/jsamuelsen11/agency-site-api/internal/ports"
)

// ShowcaseHandler serves the read-only portfolio content.
type ShowcaseHandler struct {
	svc ports.ShowcaseService
}

// NewShowcaseHandler creates a new ShowcaseHandler.
func NewShowcaseHandler(svc ports.ShowcaseService) *ShowcaseHandler {
	return &ShowcaseHandler{svc: svc}
}

// Showcase handles GET /api/v1/showcase.
func (h *ShowcaseHandler) Showcase(w http.ResponseWriter, r *http.Request) {
	show, err := h.svc.Showcase(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToShowcaseResponse(show))
}

// ListProjects handles GET /api/v1/projects.
func (h *ShowcaseHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProjectFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	projects, err := h.svc.ListProjects(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectListResponse(projects))
}

// ListTestimonials handles GET /api/v1/testimonials.
func (h *ShowcaseHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	ts, err := h.svc.ListTestimonials(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTestimonialListResponse(ts))
}

func parseProjectFilter(r *http.Request) (portfolio.ProjectFilter, error) {
	q := r.URL.Query()
	filter := portfolio.ProjectFilter{Category: q.Get("category")}
	if v := q.Get("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			return filter, &domain.ValidationError{
				Fields: map[string]string{"featured": "must be a boolean"},
			}
		}
		filter.FeaturedOnly = featured
	}
	return filter, nil
}

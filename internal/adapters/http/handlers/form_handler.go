package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/agency-site-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/agency-site-api/internal/app/form"
)

// FormHandler drives server-side form sessions for pages that render the
// contact and newsletter forms from a state snapshot.
type FormHandler struct {
	registry *form.Registry
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(registry *form.Registry) *FormHandler {
	return &FormHandler{registry: registry}
}

// Open handles POST /api/v1/forms/{kind}.
func (h *FormHandler) Open(w http.ResponseWriter, r *http.Request) {
	kind, err := form.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	f := h.registry.Open(kind)
	writeJSON(w, http.StatusCreated, dto.ToFormViewResponse(form.Present(f.Snapshot())))
}

// Get handles GET /api/v1/forms/{kind}/{id}.
func (h *FormHandler) Get(w http.ResponseWriter, r *http.Request) {
	f := h.lookup(w, r)
	if f == nil {
		return
	}

	writeView(w, f.Snapshot())
}

// SetField handles PUT /api/v1/forms/{kind}/{id}/fields/{field}.
func (h *FormHandler) SetField(w http.ResponseWriter, r *http.Request) {
	f := h.lookup(w, r)
	if f == nil {
		return
	}

	var req dto.SetFieldRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	snap, err := f.SetField(chi.URLParam(r, "field"), req.Value)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeView(w, snap)
}

// Submit handles POST /api/v1/forms/{kind}/{id}/submit. A rejected
// submission still answers 200; the verdict is in the view's banner.
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	f := h.lookup(w, r)
	if f == nil {
		return
	}

	snap, err := f.Submit(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeView(w, snap)
}

// Dismiss handles POST /api/v1/forms/{kind}/{id}/dismiss.
func (h *FormHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	f := h.lookup(w, r)
	if f == nil {
		return
	}

	writeView(w, f.Dismiss())
}

// lookup resolves the session named by the kind and id path parameters.
// Returns nil and writes an error response on failure.
func (h *FormHandler) lookup(w http.ResponseWriter, r *http.Request) *form.Form {
	kind, err := form.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return nil
	}
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return nil
	}
	f, err := h.registry.Get(kind, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return nil
	}
	return f
}

func writeView(w http.ResponseWriter, snap form.Snapshot) {
	writeJSON(w, http.StatusOK, dto.ToFormViewResponse(form.Present(snap)))
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/agency-site-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/contact"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/newsletter"
	"github.com/jsamuelsen11/agency-site-api/internal/ports"
)

// BackOfficeHandler serves the agency staff's views of submissions and
// subscribers.
type BackOfficeHandler struct {
	svc ports.BackOfficeService
}

// NewBackOfficeHandler creates a new BackOfficeHandler.
func NewBackOfficeHandler(svc ports.BackOfficeService) *BackOfficeHandler {
	return &BackOfficeHandler{svc: svc}
}

// ListContacts handles GET /api/v1/contacts.
func (h *BackOfficeHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := parsePage(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	filter := contact.Filter{
		Status: contact.Status(r.URL.Query().Get("status")),
		Limit:  limit,
		Offset: offset,
	}
	subs, err := h.svc.ListContacts(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToContactListResponse(subs))
}

// UpdateContactStatus handles PATCH /api/v1/contacts/{id}.
func (h *BackOfficeHandler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateContactStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateContactStatus(r.Context(), id, contact.Status(req.Status))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToContactResponse(updated))
}

// ListSubscribers handles GET /api/v1/newsletter/subscribers.
func (h *BackOfficeHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := parsePage(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	filter := newsletter.Filter{
		Status: newsletter.Status(r.URL.Query().Get("status")),
		Limit:  limit,
		Offset: offset,
	}
	subs, err := h.svc.ListSubscribers(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSubscriberListResponse(subs))
}

// Unsubscribe handles DELETE /api/v1/newsletter/subscribers/{email}.
func (h *BackOfficeHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	if _, err := h.svc.Unsubscribe(r.Context(), chi.URLParam(r, "email")); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

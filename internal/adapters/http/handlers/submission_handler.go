package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/agency-site-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/agency-site-api/internal/ports"
)

// SubmissionHandler accepts visitor-originated writes: contact messages and
// newsletter signups.
type SubmissionHandler struct {
	gateway ports.SubmissionGateway
}

// NewSubmissionHandler creates a new SubmissionHandler.
func NewSubmissionHandler(gateway ports.SubmissionGateway) *SubmissionHandler {
	return &SubmissionHandler{gateway: gateway}
}

// SubmitContact handles POST /api/v1/contacts.
func (h *SubmissionHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.gateway.SubmitContact(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToContactResponse(created))
}

// Subscribe handles POST /api/v1/newsletter/subscribers.
func (h *SubmissionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req dto.SubscribeRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	sub, err := h.gateway.Subscribe(r.Context(), req.Email)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToSubscriberResponse(sub))
}

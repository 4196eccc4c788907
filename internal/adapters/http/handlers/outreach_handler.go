package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/agency-site-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/outreach"
	"github.com/jsamuelsen11/agency-site-api/internal/platform/config"
)

// OutreachHandler serves the mailto: and tel: links for the agency's
// published contact details.
type OutreachHandler struct {
	agency config.AgencyConfig
}

// NewOutreachHandler creates a new OutreachHandler. The details are checked
// at startup with outreach.BuildLinks.
func NewOutreachHandler(agency config.AgencyConfig) *OutreachHandler {
	return &OutreachHandler{agency: agency}
}

// Links handles GET /api/v1/outreach/links. The optional subject and body
// query parameters prefill the email; subject defaults to the configured one.
func (h *OutreachHandler) Links(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	subject := h.agency.Subject
	if v := q.Get("subject"); v != "" {
		subject = v
	}

	mailto, err := outreach.MailtoURI(h.agency.Email, subject, q.Get("body"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	links := outreach.Links{Mailto: mailto}

	if h.agency.Phone != "" {
		if links.Tel, err = outreach.TelURI(h.agency.Phone); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, dto.ToOutreachLinksResponse(links))
}

package postgrest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen11/agency-site-api/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// codeNoRows is returned when a singular response matched nothing.
const codeNoRows = "PGRST116"

// APIError is a non-2xx PostgREST response. It unwraps to the domain
// sentinel that matches the status and error code.
type APIError struct {
	Status  int
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`

	kind error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Code != "" {
		return fmt.Sprintf("postgrest %d (%s): %s", e.Status, e.Code, msg)
	}
	return fmt.Sprintf("postgrest %d: %s", e.Status, msg)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// translator maps error responses to *APIError values.
type translator struct {
	conflictCodes map[string]bool
}

func newTranslator(conflictCodes []string) *translator {
	codes := make(map[string]bool, len(conflictCodes))
	for _, c := range conflictCodes {
		codes[c] = true
	}
	return &translator{conflictCodes: codes}
}

func (t *translator) translate(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	if resp.Body != nil {
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		if err == nil {
			// Non-JSON bodies leave only the status to classify on.
			_ = json.Unmarshal(body, apiErr)
		}
	}
	apiErr.kind = t.classify(apiErr)
	return apiErr
}

func (t *translator) classify(e *APIError) error {
	switch {
	case t.conflictCodes[e.Code] || e.Status == http.StatusConflict:
		return domain.ErrConflict
	case e.Code == codeNoRows || e.Status == http.StatusNotFound:
		return domain.ErrNotFound
	case e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden:
		return domain.ErrForbidden
	default:
		return domain.ErrUnavailable
	}
}

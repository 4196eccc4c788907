package handlers

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/jsamuelsen11/agency-site-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/agency-site-api/internal/domain"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/scheduling"
	"github.com/jsamuelsen11/agency-site-api/internal/platform/config"
	"github.com/jsamuelsen11/agency-site-api/internal/platform/telemetry"
)

// SchedulingHandler tracks booking modals and tells the page when a widget
// event should close one.
type SchedulingHandler struct {
	modals  *expirable.LRU[uuid.UUID, *scheduling.Modal]
	metrics *telemetry.Metrics
}

// NewSchedulingHandler creates a new SchedulingHandler. Modal sessions share
// the form session bounds, and each event restarts a modal's TTL. metrics may
// be nil.
func NewSchedulingHandler(cfg config.FormsConfig, metrics *telemetry.Metrics) *SchedulingHandler {
	return &SchedulingHandler{
		modals:  expirable.NewLRU[uuid.UUID, *scheduling.Modal](cfg.MaxSessions, nil, cfg.SessionTTL),
		metrics: metrics,
	}
}

// OpenModal handles POST /api/v1/scheduling/modals.
func (h *SchedulingHandler) OpenModal(w http.ResponseWriter, _ *http.Request) {
	id := uuid.New()
	m := &scheduling.Modal{}
	m.Open()
	h.modals.Add(id, m)

	writeJSON(w, http.StatusCreated, dto.ModalResponse{ID: id.String(), Open: m.IsOpen()})
}

// HandleEvent handles POST /api/v1/scheduling/modals/{id}/events.
func (h *SchedulingHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	m, ok := h.modals.Get(id)
	if !ok {
		dto.WriteErrorResponse(w, r, fmt.Errorf("modal %s: %w", id, domain.ErrNotFound))
		return
	}
	h.modals.Add(id, m)

	var req dto.SchedulingEventRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	closed := m.Handle(req.Event)
	known := scheduling.IsKnown(req.Event)
	h.metrics.RecordSchedulingEvent(r.Context(), req.Event, known, closed)

	writeJSON(w, http.StatusOK, dto.SchedulingEventResponse{
		Event:      req.Event,
		Known:      known,
		CloseModal: closed,
	})
}

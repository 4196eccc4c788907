package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/agency-site-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/agency-site-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/agency-site-api/internal/platform/config"
)

func newSchedulingHandler() *handlers.SchedulingHandler {
	return handlers.NewSchedulingHandler(config.FormsConfig{SessionTTL: time.Hour, MaxSessions: 10}, nil)
}

func openModal(t *testing.T, h *handlers.SchedulingHandler) string {
	t.Helper()
	rec := httptest.NewRecorder()
	h.OpenModal(rec, httptest.NewRequest(http.MethodPost, "/api/v1/scheduling/modals", nil))
	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.ModalResponse](t, rec)
	if !resp.Open {
		t.Fatal("Open = false, want true")
	}
	return resp.ID
}

func postEvent(t *testing.T, h *handlers.SchedulingHandler, id, event string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scheduling/modals/"+id+"/events",
		jsonBody(t, dto.SchedulingEventRequest{Event: event}))
	req = withChiParams(req, map[string]string{"id": id})
	h.HandleEvent(rec, req)
	return rec
}

func TestSchedulingEvent_BrowsingKeepsModalOpen(t *testing.T) {
	t.Parallel()
	h := newSchedulingHandler()
	id := openModal(t, h)

	for _, event := range []string{
		"calendly.profile_page_viewed",
		"calendly.event_type_viewed",
		"calendly.date_and_time_selected",
	} {
		rec := postEvent(t, h, id, event)
		requireStatus(t, rec, http.StatusOK)
		resp := decodeJSON[dto.SchedulingEventResponse](t, rec)
		if resp.CloseModal {
			t.Errorf("%s: CloseModal = true, want false", event)
		}
		if !resp.Known {
			t.Errorf("%s: Known = false, want true", event)
		}
	}
}

func TestSchedulingEvent_EventsKeepModalAlive(t *testing.T) {
	t.Parallel()
	const ttl = 150 * time.Millisecond
	h := handlers.NewSchedulingHandler(config.FormsConfig{SessionTTL: ttl, MaxSessions: 10}, nil)
	id := openModal(t, h)

	deadline := time.Now().Add(3 * ttl)
	for time.Now().Before(deadline) {
		requireStatus(t, postEvent(t, h, id, "calendly.event_type_viewed"), http.StatusOK)
		time.Sleep(ttl / 10)
	}

	time.Sleep(2 * ttl)
	requireStatus(t, postEvent(t, h, id, "calendly.event_type_viewed"), http.StatusNotFound)
}

func TestSchedulingEvent_ScheduledClosesOnce(t *testing.T) {
	t.Parallel()
	h := newSchedulingHandler()
	id := openModal(t, h)

	first := decodeJSON[dto.SchedulingEventResponse](t, postEvent(t, h, id, "calendly.event_scheduled"))
	if !first.CloseModal {
		t.Error("first event_scheduled: CloseModal = false, want true")
	}

	second := decodeJSON[dto.SchedulingEventResponse](t, postEvent(t, h, id, "calendly.event_scheduled"))
	if second.CloseModal {
		t.Error("second event_scheduled: CloseModal = true, want false")
	}
}

func TestSchedulingEvent_UnknownWidgetEvent(t *testing.T) {
	t.Parallel()
	h := newSchedulingHandler()
	id := openModal(t, h)

	rec := postEvent(t, h, id, "calendly.page_height")
	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.SchedulingEventResponse](t, rec)
	if resp.Known || resp.CloseModal {
		t.Errorf("got %+v, want unknown event ignored", resp)
	}
}

func TestSchedulingEvent_Errors(t *testing.T) {
	t.Parallel()
	h := newSchedulingHandler()
	id := openModal(t, h)

	tests := []struct {
		name  string
		id    string
		event string
		want  int
	}{
		{name: "foreign event", id: id, event: "message", want: http.StatusBadRequest},
		{name: "unknown modal", id: testID.String(), event: "calendly.event_scheduled", want: http.StatusNotFound},
		{name: "malformed id", id: "x", event: "calendly.event_scheduled", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireStatus(t, postEvent(t, h, tt.id, tt.event), tt.want)
		})
	}
}

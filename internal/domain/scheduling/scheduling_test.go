package scheduling

import "testing"

func TestClosesModal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		event string
		want  bool
	}{
		{event: EventScheduled, want: true},
		{event: EventProfilePageViewed, want: false},
		{event: EventTypeViewed, want: false},
		{event: EventDateAndTimeSelected, want: false},
		{event: "calendly.something_new", want: false},
		{event: "event_scheduled", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.event, func(t *testing.T) {
			t.Parallel()
			if got := ClosesModal(tt.event); got != tt.want {
				t.Errorf("ClosesModal(%q) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestIsWidgetEvent(t *testing.T) {
	t.Parallel()

	if !IsWidgetEvent("calendly.anything") {
		t.Error("IsWidgetEvent(calendly.anything) = false")
	}
	if IsWidgetEvent("calendly.") {
		t.Error("IsWidgetEvent(calendly.) = true")
	}
	if IsWidgetEvent("message") {
		t.Error("IsWidgetEvent(message) = true")
	}
	if IsKnown("calendly.anything") {
		t.Error("IsKnown(calendly.anything) = true")
	}
}

func TestModal_Handle(t *testing.T) {
	t.Parallel()

	var m Modal
	m.Open()

	if m.Handle(EventDateAndTimeSelected) {
		t.Error("browsing event closed the modal")
	}
	if !m.IsOpen() {
		t.Fatal("modal closed after browsing event")
	}
	if !m.Handle(EventScheduled) {
		t.Error("Handle(event_scheduled) = false, want true")
	}
	if m.IsOpen() {
		t.Error("modal still open after booking")
	}
	if m.Handle(EventScheduled) {
		t.Error("second booking event reported a close on an already-closed modal")
	}
}

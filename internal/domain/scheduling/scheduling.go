// Package scheduling reacts to events posted by the embedded scheduling widget.
package scheduling

import (
	"strings"
	"sync"
)

// EventPrefix namespaces every message the widget posts to its host page.
const EventPrefix = "calendly."

// Known widget events.
const (
	EventProfilePageViewed   = EventPrefix + "profile_page_viewed"
	EventTypeViewed          = EventPrefix + "event_type_viewed"
	EventDateAndTimeSelected = EventPrefix + "date_and_time_selected"
	EventScheduled           = EventPrefix + "event_scheduled"
)

// IsWidgetEvent reports whether name carries the widget's namespace.
func IsWidgetEvent(name string) bool {
	return strings.HasPrefix(name, EventPrefix) && len(name) > len(EventPrefix)
}

// IsKnown reports whether name is one of the documented widget events.
func IsKnown(name string) bool {
	switch name {
	case EventProfilePageViewed, EventTypeViewed, EventDateAndTimeSelected, EventScheduled:
		return true
	default:
		return false
	}
}

// ClosesModal reports whether the host page should close the booking modal.
// Only a completed booking does; browsing events leave it open.
func ClosesModal(name string) bool {
	return name == EventScheduled
}

// Modal tracks whether the booking modal is showing.
// Safe for concurrent use.
type Modal struct {
	mu   sync.Mutex
	open bool
}

// Open shows the modal.
func (m *Modal) Open() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = true
}

// IsOpen reports whether the modal is showing.
func (m *Modal) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// Handle applies a widget event and reports whether it closed the modal.
func (m *Modal) Handle(name string) bool {
	if !ClosesModal(name) {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	wasOpen := m.open
	m.open = false
	return wasOpen
}

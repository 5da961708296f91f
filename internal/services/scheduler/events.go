package scheduler

import (
	"context"
	"time"

	"github.com/KirkDiggler/sessionsync/internal/models"
)

// EventType identifies a scheduling change
type EventType string

const (
	EventAvailabilityToggled EventType = "availability_toggled"
	EventSessionScheduled    EventType = "session_scheduled"
	EventSessionInvited      EventType = "session_invited"
	EventCalendarConnected   EventType = "calendar_connected"
)

// Event describes a change observers may react to
type Event struct {
	Type       EventType
	OccurredAt time.Time

	// Set for availability_toggled
	MemberID  string
	Slot      models.Slot
	Available bool

	// Set for session_scheduled and session_invited
	Session *models.Session
}

// Observer receives scheduling events. Observers run synchronously and must not block.
type Observer func(ctx context.Context, event *Event)

// Subscribe registers an observer and returns a func that removes it
func (s *service) Subscribe(observer Observer) func() {
	if observer == nil {
		return func() {}
	}

	s.observersMu.Lock()
	defer s.observersMu.Unlock()

	id := s.nextObserverID
	s.nextObserverID++
	s.observers[id] = observer

	return func() {
		s.observersMu.Lock()
		defer s.observersMu.Unlock()
		delete(s.observers, id)
	}
}

func (s *service) publish(ctx context.Context, event *Event) {
	s.observersMu.RLock()
	observers := make([]Observer, 0, len(s.observers))
	for _, o := range s.observers {
		observers = append(observers, o)
	}
	s.observersMu.RUnlock()

	for _, o := range observers {
		e := *event
		if event.Session != nil {
			e.Session = event.Session.Clone()
		}
		o(ctx, &e)
	}
}

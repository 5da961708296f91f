package scheduler

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/sessionsync/internal/models"
)

// window returns the session's start and end in the display time zone
func (s *service) window(session *models.Session) (time.Time, time.Time, error) {
	start, err := session.Slot().Start(s.location)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}
	return start, start.Add(s.sessionLength), nil
}

// buildEvent turns a session into the calendar event sent to its members
func (s *service) buildEvent(session *models.Session) (*models.CalendarEvent, error) {
	start, end, err := s.window(session)
	if err != nil {
		return nil, err
	}

	attendees := make([]models.Attendee, 0, len(session.Members))
	for _, m := range session.Members {
		attendees = append(attendees, models.Attendee{Email: m.Email, DisplayName: m.Name})
	}

	reminders := make([]models.Reminder, len(s.reminders))
	copy(reminders, s.reminders)

	return &models.CalendarEvent{
		Title:       s.eventTitle,
		Description: describe(session.Members),
		Location:    s.eventLocation,
		Start:       start,
		End:         end,
		TimeZone:    s.location.String(),
		Attendees:   attendees,
		Reminders:   reminders,
	}, nil
}

func describe(members []models.Member) string {
	parts := make([]string, 0, len(members))
	for _, m := range members {
		parts = append(parts, fmt.Sprintf("%s (%s)", m.Name, m.Instrument))
	}
	return "Jam session with: " + strings.Join(parts, ", ")
}

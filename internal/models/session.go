package models

import (
	"time"
)

// SessionStatus represents the state of a scheduled session
type SessionStatus string

const (
	// SessionStatusScheduled indicates a session has been put on the schedule
	SessionStatusScheduled SessionStatus = "scheduled"
)

// Session represents a scheduled rehearsal
type Session struct {
	// ID is derived from the slot key, so there is at most one session per slot
	ID string

	// Date is the calendar date of the session
	Date string

	// Time is the time of day the session starts
	Time string

	// Members is a snapshot of the members attending, in roster order
	Members []Member

	// CreatedAt is when the session was scheduled
	CreatedAt time.Time

	// Status is the current state of the session
	Status SessionStatus

	// CalendarEventID is the external calendar event ID, empty until an invite succeeds
	CalendarEventID string
}

// Slot returns the slot the session occupies
func (s *Session) Slot() Slot {
	return Slot{Date: s.Date, Time: s.Time}
}

// HasCalendarEvent reports whether a calendar invite has been sent for the session
func (s *Session) HasCalendarEvent() bool {
	return s.CalendarEventID != ""
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	clone := *s
	clone.Members = append([]Member(nil), s.Members...)
	return &clone
}

package models

import (
	"time"
)

// ReminderMethod is how a calendar reminder is delivered
type ReminderMethod string

const (
	// ReminderMethodEmail delivers the reminder by email
	ReminderMethodEmail ReminderMethod = "email"

	// ReminderMethodPopup delivers the reminder as a popup notification
	ReminderMethodPopup ReminderMethod = "popup"
)

// Attendee is an invitee on a calendar event
type Attendee struct {
	Email       string
	DisplayName string
}

// Reminder is a single reminder override on a calendar event
type Reminder struct {
	Method        ReminderMethod
	MinutesBefore int
}

// CalendarEvent is the event a session is turned into when an invite is sent
type CalendarEvent struct {
	Title       string
	Description string
	Location    string

	// Start and End carry the display time zone in their location
	Start time.Time
	End   time.Time

	// TimeZone is the IANA name of the display time zone
	TimeZone string

	Attendees []Attendee
	Reminders []Reminder
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionClone(t *testing.T) {
	original := &Session{
		ID:      "2024-06-01-19:00",
		Date:    "2024-06-01",
		Time:    "19:00",
		Members: []Member{{ID: "1", Name: "Josh"}, {ID: "2", Name: "Clay"}},
		Status:  SessionStatusScheduled,
	}

	clone := original.Clone()
	assert.Equal(t, original, clone)

	clone.Members[0].Name = "changed"
	clone.CalendarEventID = "demo_event_1"

	assert.Equal(t, "Josh", original.Members[0].Name)
	assert.False(t, original.HasCalendarEvent())
	assert.True(t, clone.HasCalendarEvent())

	var missing *Session
	assert.Nil(t, missing.Clone())
}

func TestSessionSlot(t *testing.T) {
	session := &Session{Date: "2024-06-01", Time: "19:00"}
	assert.Equal(t, Slot{Date: "2024-06-01", Time: "19:00"}, session.Slot())
	assert.Equal(t, "2024-06-01-19:00", session.Slot().Key())
}

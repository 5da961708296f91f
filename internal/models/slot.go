package models

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DateLayout is the ISO calendar date format used for slot dates
	DateLayout = "2006-01-02"

	// TimeLayout is the time-of-day format used for slot times
	TimeLayout = "15:04"
)

// ErrInvalidSlot is returned when a slot date or time cannot be parsed
var ErrInvalidSlot = errors.New("invalid slot")

// Slot is a schedulable rehearsal window: one calendar date at a fixed time of day
type Slot struct {
	// Date is the calendar date in YYYY-MM-DD form
	Date string

	// Time is the time of day in HH:MM form
	Time string
}

// ParseSlot validates a date and time and returns the slot they describe
func ParseSlot(date, clockTime string) (Slot, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return Slot{}, fmt.Errorf("%w: date %q: %v", ErrInvalidSlot, date, err)
	}
	if _, err := time.Parse(TimeLayout, clockTime); err != nil {
		return Slot{}, fmt.Errorf("%w: time %q: %v", ErrInvalidSlot, clockTime, err)
	}
	return Slot{Date: date, Time: clockTime}, nil
}

// Key returns the lookup key for the slot, which is also the ID of a session scheduled in it
func (s Slot) Key() string {
	return s.Date + "-" + s.Time
}

// Start returns the slot's start time in the given location
func (s Slot) Start(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout+" "+TimeLayout, s.Date+" "+s.Time, loc)
}

package calendar

import "fmt"

// CalendarError is a custom error type for calendar-related errors
type CalendarError string

// Error implements the error interface
func (e CalendarError) Error() string {
	return string(e)
}

const (
	ErrNotConnected CalendarError = "calendar is not connected"
	ErrNilEvent     CalendarError = "event cannot be nil"
	ErrNilConfig    CalendarError = "config cannot be nil"
	ErrNilClock     CalendarError = "clock cannot be nil"
)

// Provider operations reported in ProviderError
const (
	OpConnect     = "connect"
	OpCreateEvent = "create_event"
)

// ProviderError wraps a failure reported by the calendar provider
type ProviderError struct {
	// Op is the provider operation that failed, OpConnect or OpCreateEvent
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("calendar %s failed: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

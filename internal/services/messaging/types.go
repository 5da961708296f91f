package messaging

import (
	"time"

	"github.com/KirkDiggler/sessionsync/internal/models"
)

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed fixes the headline selection for tests; zero seeds from the clock
	Seed int64
}

// Notice is a titled message shown to the user
type Notice struct {
	Title   string
	Message string
}

// GetCalendarConnectedMessageInput contains parameters for the connected notice
type GetCalendarConnectedMessageInput struct {
	// Simulated indicates the provider is a stand-in without real invites
	Simulated bool
}

// GetCalendarConnectedMessageOutput contains the connected notice
type GetCalendarConnectedMessageOutput struct {
	Notice
}

// GetSessionScheduledMessageInput contains parameters for the scheduled notice
type GetSessionScheduledMessageInput struct {
	Session *models.Session

	// Start and End bound the rehearsal window in the display time zone
	Start time.Time
	End   time.Time
}

// GetSessionScheduledMessageOutput contains the scheduled notice
type GetSessionScheduledMessageOutput struct {
	Notice
}

// GetCalendarEventCreatedMessageInput contains parameters for the invite notice
type GetCalendarEventCreatedMessageInput struct {
	Session *models.Session
	Event   *models.CalendarEvent

	// Simulated indicates the provider is a stand-in without real invites
	Simulated bool
}

// GetCalendarEventCreatedMessageOutput contains the invite notice
type GetCalendarEventCreatedMessageOutput struct {
	Notice
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error returned by the failed action
	Err error
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Notice
}

package scheduler

// SchedulerError is a custom error type for scheduling errors
type SchedulerError string

// Error implements the error interface
func (e SchedulerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMemberNotFound      SchedulerError = "member not found"
	ErrDuplicateMember     SchedulerError = "member listed more than once"
	ErrInvalidSlot         SchedulerError = "invalid slot"
	ErrNotEnoughMembers    SchedulerError = "not enough members available to schedule a session"
	ErrSessionNotFound     SchedulerError = "session not found"
	ErrMissingViewerID     SchedulerError = "viewer ID cannot be empty"
	ErrNilInput            SchedulerError = "input cannot be nil"
	ErrNilConfig           SchedulerError = "config cannot be nil"
	ErrNilRoster           SchedulerError = "roster cannot be nil"
	ErrNilAvailabilityRepo SchedulerError = "availability repository cannot be nil"
	ErrNilSessionRepo      SchedulerError = "session repository cannot be nil"
	ErrNilCalendar         SchedulerError = "calendar provider cannot be nil"
	ErrNilMessaging        SchedulerError = "messaging service cannot be nil"
	ErrNilClock            SchedulerError = "clock cannot be nil"
)

package scheduler

import (
	"time"

	"github.com/KirkDiggler/sessionsync/internal/common/clock"
	"github.com/KirkDiggler/sessionsync/internal/models"
	availabilityRepo "github.com/KirkDiggler/sessionsync/internal/repositories/availability"
	sessionRepo "github.com/KirkDiggler/sessionsync/internal/repositories/session"
	"github.com/KirkDiggler/sessionsync/internal/roster"
	"github.com/KirkDiggler/sessionsync/internal/services/calendar"
	"github.com/KirkDiggler/sessionsync/internal/services/messaging"
	"go.uber.org/zap"
)

const (
	DefaultThreshold     = 3
	DefaultUpcomingDays  = 14
	DefaultSessionLength = 3 * time.Hour
	DefaultSlotTime      = "19:00"
	DefaultEventTitle    = "Band Session - SessionSync"
	DefaultEventLocation = "Rehearsal Studio"
)

// DefaultReminders returns the reminders attached to every invite
func DefaultReminders() []models.Reminder {
	return []models.Reminder{
		{Method: models.ReminderMethodEmail, MinutesBefore: 24 * 60},
		{Method: models.ReminderMethodPopup, MinutesBefore: 30},
	}
}

// Config holds configuration for the scheduler service
type Config struct {
	// Threshold is the minimum number of available members for a session
	Threshold int

	// SlotTimes are the HH:MM start times offered on each day
	SlotTimes []string

	// UpcomingDays is the number of days shown on the board, starting today
	UpcomingDays int

	SessionLength time.Duration

	// Location is the display time zone for slots and invites
	Location *time.Location

	EventTitle    string
	EventLocation string
	Reminders     []models.Reminder

	// SimulatedCalendar marks notices as coming from a stand-in provider
	SimulatedCalendar bool

	Roster           *roster.Roster
	AvailabilityRepo availabilityRepo.Repository
	SessionRepo      sessionRepo.Repository
	Calendar         calendar.Provider
	Messaging        messaging.Service
	Clock            clock.Clock
	Logger           *zap.Logger
}

// SwitchViewInput contains parameters for switching the current member
type SwitchViewInput struct {
	// ViewerID identifies who is looking at the board, e.g. a Discord user
	ViewerID string
	MemberID string
}

// SwitchViewOutput contains the result of switching views
type SwitchViewOutput struct {
	Member models.Member
}

// GetViewInput contains parameters for reading the current member
type GetViewInput struct {
	ViewerID string
}

// GetViewOutput contains the member the viewer is acting as
type GetViewOutput struct {
	Member models.Member
}

// ToggleAvailabilityInput contains parameters for toggling availability
type ToggleAvailabilityInput struct {
	MemberID string
	Date     string
	Time     string
}

// ToggleAvailabilityOutput contains the result of a toggle
type ToggleAvailabilityOutput struct {
	// Available is the member's state after the toggle
	Available bool

	// AvailableCount is the number of members available for the slot after the toggle
	AvailableCount int
	Creatable      bool
}

// IsAvailableInput contains parameters for an availability check
type IsAvailableInput struct {
	MemberID string
	Date     string
	Time     string
}

// IsAvailableOutput contains the result of an availability check
type IsAvailableOutput struct {
	Available bool
}

// GetAvailableMembersInput contains parameters for listing available members
type GetAvailableMembersInput struct {
	Date string
	Time string
}

// GetAvailableMembersOutput contains the available members in roster order
type GetAvailableMembersOutput struct {
	Members []models.Member
}

// CanCreateSessionInput contains parameters for the threshold check
type CanCreateSessionInput struct {
	Date string
	Time string
}

// CanCreateSessionOutput contains the result of the threshold check
type CanCreateSessionOutput struct {
	Creatable        bool
	AvailableMembers []models.Member

	// Existing is the session already scheduled for the slot, if any
	Existing *models.Session
}

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	Date string
	Time string

	// Members is the snapshot shown to the user when they chose the slot.
	// When nil the members are derived from current availability.
	Members []models.Member
}

// CreateSessionOutput contains the result of creating a session
type CreateSessionOutput struct {
	Session *models.Session

	// Invited is true when a calendar event was created for the session
	Invited bool

	// InviteErr holds the calendar failure; the session is kept regardless
	InviteErr error

	Notice messaging.Notice
}

// ResendInviteInput contains parameters for resending an invite
type ResendInviteInput struct {
	SessionID string
}

// ResendInviteOutput contains the result of resending an invite
type ResendInviteOutput struct {
	Session *models.Session
	Notice  messaging.Notice
}

// ConnectCalendarInput contains parameters for connecting the calendar
type ConnectCalendarInput struct {
}

// ConnectCalendarOutput contains the result of connecting the calendar
type ConnectCalendarOutput struct {
	// AlreadyConnected is true when no connection attempt was needed
	AlreadyConnected bool
	Notice           messaging.Notice
}

// ListSessionsInput contains parameters for listing sessions
type ListSessionsInput struct {
}

// ListSessionsOutput contains the scheduled sessions
type ListSessionsOutput struct {
	Sessions          []*models.Session
	CalendarConnected bool
}

// GetBoardInput contains parameters for building the board
type GetBoardInput struct {
	ViewerID string
}

// BoardCell is one slot on the board
type BoardCell struct {
	Slot models.Slot

	// Start is the slot start in the display time zone
	Start time.Time

	// CurrentAvailable is the viewing member's own state for the slot
	CurrentAvailable bool
	AvailableMembers []models.Member
	Creatable        bool
	Session          *models.Session
}

// GetBoardOutput contains the board for a viewer
type GetBoardOutput struct {
	Member models.Member

	// Roster lists every member in order, for switching views
	Roster            []models.Member
	Threshold         int
	Cells             []*BoardCell
	CalendarConnected bool
}

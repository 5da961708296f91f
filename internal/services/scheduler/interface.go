package scheduler

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/sessionsync/internal/services/scheduler Service

import "context"

// Service defines the interface for rehearsal scheduling operations
type Service interface {
	// SwitchView changes which roster member a viewer is marking availability for
	SwitchView(ctx context.Context, input *SwitchViewInput) (*SwitchViewOutput, error)

	// GetView returns the member a viewer is currently acting as
	GetView(ctx context.Context, input *GetViewInput) (*GetViewOutput, error)

	// ToggleAvailability flips a member's availability for a slot
	ToggleAvailability(ctx context.Context, input *ToggleAvailabilityInput) (*ToggleAvailabilityOutput, error)

	// IsAvailable reports whether a member is available for a slot
	IsAvailable(ctx context.Context, input *IsAvailableInput) (*IsAvailableOutput, error)

	// GetAvailableMembers returns the members available for a slot in roster order
	GetAvailableMembers(ctx context.Context, input *GetAvailableMembersInput) (*GetAvailableMembersOutput, error)

	// CanCreateSession reports whether a slot has reached the session threshold
	CanCreateSession(ctx context.Context, input *CanCreateSessionInput) (*CanCreateSessionOutput, error)

	// CreateSession records a session for a slot and invites its members when the calendar is connected
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// ResendInvite creates a fresh calendar event for an existing session
	ResendInvite(ctx context.Context, input *ResendInviteInput) (*ResendInviteOutput, error)

	// ConnectCalendar connects the calendar provider
	ConnectCalendar(ctx context.Context, input *ConnectCalendarInput) (*ConnectCalendarOutput, error)

	// ListSessions returns the scheduled sessions in creation order
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// GetBoard returns the availability grid for the upcoming days
	GetBoard(ctx context.Context, input *GetBoardInput) (*GetBoardOutput, error)

	// Subscribe registers an observer for scheduling events and returns a func that removes it
	Subscribe(observer Observer) func()
}

package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetCalendarConnectedMessage returns the notice shown once the calendar connects
	GetCalendarConnectedMessage(ctx context.Context, input *GetCalendarConnectedMessageInput) (*GetCalendarConnectedMessageOutput, error)

	// GetSessionScheduledMessage returns the local notice for a session scheduled without a calendar invite
	GetSessionScheduledMessage(ctx context.Context, input *GetSessionScheduledMessageInput) (*GetSessionScheduledMessageOutput, error)

	// GetCalendarEventCreatedMessage returns the notice for a successful calendar invite
	GetCalendarEventCreatedMessage(ctx context.Context, input *GetCalendarEventCreatedMessageInput) (*GetCalendarEventCreatedMessageOutput, error)

	// GetErrorMessage returns a user-friendly message for a failed action
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}

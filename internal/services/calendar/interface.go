package calendar

//go:generate mockgen -package=mocks -destination=mocks/mock_provider.go github.com/KirkDiggler/sessionsync/internal/services/calendar Provider

import "context"

// Provider is the external calendar collaborator that turns sessions into invites.
// A provider starts disconnected and stays connected once Connect succeeds.
type Provider interface {
	// Connect authorizes the provider; it blocks until the round trip resolves
	Connect(ctx context.Context) error

	// IsConnected reports whether Connect has succeeded
	IsConnected() bool

	// CreateEvent creates a calendar event and returns its external ID
	CreateEvent(ctx context.Context, input *CreateEventInput) (*CreateEventOutput, error)
}

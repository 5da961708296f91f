package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/sessionsync/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/sessionsync/internal/models"
)

// Repository defines the interface for scheduled session storage
type Repository interface {
	// SaveSession inserts a session, replacing any session with the same ID
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// ListSessions returns every session in the order it was last saved
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// SetCalendarEventID records the external calendar event for a session
	SetCalendarEventID(ctx context.Context, input *SetCalendarEventIDInput) (*models.Session, error)
}

package session

import (
	"context"
	"sync"

	"github.com/KirkDiggler/sessionsync/internal/models"
)

// memoryRepository implements the Repository interface with an in-process ordered list
type memoryRepository struct {
	mu       sync.RWMutex
	sessions []*models.Session
}

// NewMemory creates an empty in-memory session repository
func NewMemory() *memoryRepository {
	return &memoryRepository{}
}

// indexOf returns the position of a session in the list, or -1; callers hold the lock
func (r *memoryRepository) indexOf(sessionID string) int {
	for i, s := range r.sessions {
		if s.ID == sessionID {
			return i
		}
	}
	return -1
}

// SaveSession drops any session with the same ID and appends the new one
func (r *memoryRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return ErrNilInput
	}
	if input.Session.ID == "" {
		return ErrMissingSessionID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(input.Session.ID); i >= 0 {
		r.sessions = append(r.sessions[:i], r.sessions[i+1:]...)
	}
	r.sessions = append(r.sessions, input.Session.Clone())

	return nil
}

// GetSession retrieves a session by ID
func (r *memoryRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(input.SessionID)
	if i < 0 {
		return nil, ErrSessionNotFound
	}

	return r.sessions[i].Clone(), nil
}

// ListSessions returns every session in the order it was last saved
func (r *memoryRepository) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*models.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s.Clone())
	}

	return &ListSessionsOutput{
		Sessions: sessions,
	}, nil
}

// SetCalendarEventID records the external calendar event for a session in place
func (r *memoryRepository) SetCalendarEventID(ctx context.Context, input *SetCalendarEventIDInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(input.SessionID)
	if i < 0 {
		return nil, ErrSessionNotFound
	}

	r.sessions[i].CalendarEventID = input.CalendarEventID

	return r.sessions[i].Clone(), nil
}

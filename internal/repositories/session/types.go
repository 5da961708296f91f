package session

import "github.com/KirkDiggler/sessionsync/internal/models"

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type ListSessionsInput struct {
}

type ListSessionsOutput struct {
	Sessions []*models.Session
}

type SetCalendarEventIDInput struct {
	SessionID       string
	CalendarEventID string
}

package calendar

import (
	"time"

	"github.com/KirkDiggler/sessionsync/internal/common/clock"
	"github.com/KirkDiggler/sessionsync/internal/models"
	"go.uber.org/zap"
)

// CreateEventInput contains the event to create
type CreateEventInput struct {
	Event *models.CalendarEvent
}

// CreateEventOutput contains the result of creating an event
type CreateEventOutput struct {
	// EventID is the provider's identifier for the new event
	EventID string
}

// SimulatedConfig holds configuration for the simulated provider
type SimulatedConfig struct {
	// ConnectDelay stands in for the authorization round trip
	ConnectDelay time.Duration

	// CreateDelay stands in for the event creation round trip
	CreateDelay time.Duration

	Clock  clock.Clock
	Logger *zap.Logger
}

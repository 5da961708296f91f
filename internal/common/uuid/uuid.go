package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/sessionsync/internal/common/uuid Generator

// Generator produces identifiers for a run of the bot
type Generator interface {
	// NewRunID returns an identifier unique to one process run, used to namespace its state
	NewRunID() string
}

// DefaultGenerator implements Generator with random (version 4) UUIDs
type DefaultGenerator struct{}

func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

func (d *DefaultGenerator) NewRunID() string {
	return uuid.NewString()
}

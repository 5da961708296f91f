package availability

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/sessionsync/internal/repositories/availability Repository

import (
	"context"
)

// Repository defines the interface for member availability storage
type Repository interface {
	// Toggle flips a member's availability flag for a slot and returns the new value
	Toggle(ctx context.Context, input *ToggleInput) (*ToggleOutput, error)

	// IsAvailable returns a member's availability flag for a slot; unset flags are false
	IsAvailable(ctx context.Context, input *IsAvailableInput) (bool, error)

	// GetAvailableMemberIDs returns the IDs of every member available for a slot, in no particular order
	GetAvailableMemberIDs(ctx context.Context, input *GetAvailableMemberIDsInput) (*GetAvailableMemberIDsOutput, error)
}

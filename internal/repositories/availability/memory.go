package availability

import (
	"context"
	"sync"
)

// memoryRepository implements the Repository interface with in-process maps.
// Flags live only as long as the process does.
type memoryRepository struct {
	mu sync.RWMutex

	// flags maps member ID -> slot key -> available
	flags map[string]map[string]bool
}

// NewMemory creates an empty in-memory availability repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		flags: make(map[string]map[string]bool),
	}
}

// Toggle flips a member's availability flag for a slot
func (r *memoryRepository) Toggle(ctx context.Context, input *ToggleInput) (*ToggleOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.MemberID == "" {
		return nil, ErrMissingMemberID
	}
	if err := validateSlot(input.Slot.Date, input.Slot.Time); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	slots, ok := r.flags[input.MemberID]
	if !ok {
		slots = make(map[string]bool)
		r.flags[input.MemberID] = slots
	}

	key := input.Slot.Key()
	available := !slots[key]
	if available {
		slots[key] = true
	} else {
		delete(slots, key)
	}

	return &ToggleOutput{
		Available: available,
	}, nil
}

// IsAvailable returns a member's availability flag for a slot
func (r *memoryRepository) IsAvailable(ctx context.Context, input *IsAvailableInput) (bool, error) {
	if input == nil {
		return false, ErrNilInput
	}
	if input.MemberID == "" {
		return false, ErrMissingMemberID
	}
	if err := validateSlot(input.Slot.Date, input.Slot.Time); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.flags[input.MemberID][input.Slot.Key()], nil
}

// GetAvailableMemberIDs returns the IDs of every member available for a slot
func (r *memoryRepository) GetAvailableMemberIDs(ctx context.Context, input *GetAvailableMemberIDsInput) (*GetAvailableMemberIDsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if err := validateSlot(input.Slot.Date, input.Slot.Time); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	key := input.Slot.Key()
	memberIDs := make([]string, 0)
	for memberID, slots := range r.flags {
		if slots[key] {
			memberIDs = append(memberIDs, memberID)
		}
	}

	return &GetAvailableMemberIDsOutput{
		MemberIDs: memberIDs,
	}, nil
}

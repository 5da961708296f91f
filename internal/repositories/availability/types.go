package availability

import "github.com/KirkDiggler/sessionsync/internal/models"

type ToggleInput struct {
	MemberID string
	Slot     models.Slot
}

type ToggleOutput struct {
	Available bool
}

type IsAvailableInput struct {
	MemberID string
	Slot     models.Slot
}

type GetAvailableMemberIDsInput struct {
	Slot models.Slot
}

type GetAvailableMemberIDsOutput struct {
	MemberIDs []string
}

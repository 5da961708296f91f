package availability

import "errors"

var (
	// ErrNilInput is returned when a repository call receives a nil input
	ErrNilInput = errors.New("input cannot be nil")

	// ErrMissingMemberID is returned when an input has no member ID
	ErrMissingMemberID = errors.New("member ID cannot be empty")

	// ErrMissingSlot is returned when an input has an empty slot
	ErrMissingSlot = errors.New("slot date and time cannot be empty")
)

func validateSlot(date, clockTime string) error {
	if date == "" || clockTime == "" {
		return ErrMissingSlot
	}
	return nil
}

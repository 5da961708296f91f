package models

// Member represents a band member on the roster
type Member struct {
	// ID is the unique identifier for the member
	ID string

	// Name is the display name of the member
	Name string

	// Instrument is what the member plays
	Instrument string

	// Color is the display color tag used when rendering the member
	Color string

	// Email is the address calendar invites are sent to
	Email string
}

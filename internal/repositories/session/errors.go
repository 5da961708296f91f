package session

import "errors"

var (
	// ErrSessionNotFound is returned when a session is not found
	ErrSessionNotFound = errors.New("session not found")

	// ErrNilInput is returned when a repository call receives a nil input or session
	ErrNilInput = errors.New("input and session cannot be nil")

	// ErrMissingSessionID is returned when a session ID is empty
	ErrMissingSessionID = errors.New("session ID cannot be empty")
)

package repository

import "errors"

var (
	// ErrNotFound marks a lookup for a record that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrClaimConflict is returned when an accept races against (or arrives
	// after) a claim by a different actor. Recoverable: the caller can retry
	// against a different booking.
	ErrClaimConflict = errors.New("booking already claimed by another actor")

	// ErrNotOwner is returned when an actor tries to complete a booking it
	// does not own.
	ErrNotOwner = errors.New("booking not owned by actor")

	// ErrAlreadyComplete is returned when a completion date has already been
	// set. Actual dates are write-once; completion cannot be un-done.
	ErrAlreadyComplete = errors.New("stage already complete")
)

package service

import "errors"

var (
	// ErrGateNotSatisfied is returned when DHL tracking creation is attempted
	// before all three upstream stages are complete.
	ErrGateNotSatisfied = errors.New("upstream stages not complete")

	// ErrInvalidInput is returned for structurally invalid requests (empty
	// style name, zero dates).
	ErrInvalidInput = errors.New("invalid input")

	// ErrTrackingExists is returned when a plan already has a tracking stage.
	ErrTrackingExists = errors.New("tracking already created")
)

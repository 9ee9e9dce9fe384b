package flow

import "errors"

var (
	// ErrFlowNotFound means the flow ID has no stored state (expired or never created).
	ErrFlowNotFound = errors.New("booking flow not found or expired")

	// ErrInvalidHours means the requested duration is not a bookable option.
	ErrInvalidHours = errors.New("session hours must be one of 1, 2, 3, 4, 5, 6, 8, 10 or 12")

	// ErrPathRequired means no booking path has been chosen yet.
	ErrPathRequired = errors.New("a booking path must be chosen first")

	// ErrRentalMode means the selection needs a recording session (engineer or producer).
	ErrRentalMode = errors.New("post-production and deliverables require a recording session")

	// ErrRushUnavailable means rush turnaround needs a mixing or mastering service.
	ErrRushUnavailable = errors.New("rush turnaround requires mixing, mastering or the bundle")

	// ErrProducerRequiresEngineer guards the producer toggle.
	ErrProducerRequiresEngineer = errors.New("a session producer requires a recording engineer")

	// ErrInvalidTransition means the requested step change is not allowed from the current step.
	ErrInvalidTransition = errors.New("invalid step transition")

	// ErrUnknownAction means the mutation event named an unsupported action.
	ErrUnknownAction = errors.New("unknown flow action")
)

package lattice

import "errors"

// Sentinel errors for lattice configuration and construction.
// Callers branch with errors.Is; messages are stable.
var (
	// ErrNonPositivePrice indicates the initial price is zero or negative.
	ErrNonPositivePrice = errors.New("lattice: initial price must be positive")
	// ErrNoBranches indicates an empty step-multiplier list.
	ErrNoBranches = errors.New("lattice: at least one step multiplier is required")
	// ErrMismatchedBranches indicates multiplier and weight lists differ in length.
	ErrMismatchedBranches = errors.New("lattice: multiplier and weight lists must have equal length")
	// ErrNonPositiveMultiplier indicates a step multiplier is zero or negative.
	ErrNonPositiveMultiplier = errors.New("lattice: step multipliers must be positive")
	// ErrWeightsNotNormalized indicates branch weights do not sum to 1 within tolerance.
	ErrWeightsNotNormalized = errors.New("lattice: branch weights must sum to 1")
	// ErrNonPositivePeriods indicates a time horizon of zero or fewer steps.
	ErrNonPositivePeriods = errors.New("lattice: time periods must be positive")
	// ErrTooManyNodes indicates the projected or actual node count exceeds the cap.
	ErrTooManyNodes = errors.New("lattice: node count exceeds configured cap")
)

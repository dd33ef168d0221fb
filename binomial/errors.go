package binomial

import "errors"

// Sentinel errors for option configuration and valuation.
// All are detected during validation and are fatal to the run; there is no
// retry policy, these are configuration errors, not transient faults.
var (
	// ErrInvalidOptionType indicates an option type outside {Call, Put}.
	ErrInvalidOptionType = errors.New("binomial: option type must be call or put")
	// ErrInvalidExerciseStyle indicates a style outside {European, American}.
	ErrInvalidExerciseStyle = errors.New("binomial: exercise style must be European or American")
	// ErrNonPositiveStrike indicates a strike price of zero or less.
	ErrNonPositiveStrike = errors.New("binomial: strike must be positive")
	// ErrArbitrageViolation indicates the growth factor does not lie strictly
	// between the smallest and largest step multipliers, which would push the
	// risk-neutral probability outside [0,1].
	ErrArbitrageViolation = errors.New("binomial: growth factor must lie strictly between min and max multipliers")
	// ErrUnsupportedBranching indicates backward induction was invoked on a
	// lattice with a branch count other than 2. Documented limitation.
	ErrUnsupportedBranching = errors.New("binomial: backward induction supports exactly two branches")
	// ErrNilLattice indicates a nil lattice was passed to Valuate.
	ErrNilLattice = errors.New("binomial: lattice is nil")
)

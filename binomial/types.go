// Package binomial defines the configuration, enums and observable result
// types of lattice option valuation.
package binomial

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/optlattice/lattice"
)

// OptionType selects the payoff direction.
type OptionType uint8

const (
	// Call pays max(S − K, 0) on exercise.
	Call OptionType = iota
	// Put pays max(K − S, 0) on exercise.
	Put
)

// String implements fmt.Stringer.
func (t OptionType) String() string {
	switch t {
	case Call:
		return "call"
	case Put:
		return "put"
	default:
		return "invalid"
	}
}

func (t OptionType) valid() bool { return t == Call || t == Put }

// ExerciseStyle selects when the holder may exercise.
type ExerciseStyle uint8

const (
	// European permits exercise at expiry only: every internal node takes
	// its continuation value, discarding the intrinsic pass.
	European ExerciseStyle = iota
	// American permits exercise at any node: each node keeps the larger of
	// intrinsic and continuation value.
	American
)

// String implements fmt.Stringer.
func (s ExerciseStyle) String() string {
	switch s {
	case European:
		return "European"
	case American:
		return "American"
	default:
		return "invalid"
	}
}

func (s ExerciseStyle) valid() bool { return s == European || s == American }

// Config carries every input of a pricing run. All fields are required.
type Config struct {
	// InitialPrice is the underlying price at the root node. Must be > 0.
	InitialPrice decimal.Decimal
	// Strike is the option strike price. Must be > 0.
	Strike decimal.Decimal
	// Type selects call or put payoff.
	Type OptionType
	// Style selects European or American exercise.
	Style ExerciseStyle
	// Periods is the number of time steps after the root. Must be > 0.
	Periods int
	// Multipliers lists the per-step branch factors, in branch order.
	// Backward induction requires exactly two.
	Multipliers []decimal.Decimal
	// Weights lists the branch probabilities parallel to Multipliers;
	// carried for consistency checking only, never used numerically.
	Weights []decimal.Decimal
	// GrowthFactor is the one-period riskless growth factor R (typically
	// ≥ 1). No-arbitrage requires min(Multipliers) < R < max(Multipliers).
	GrowthFactor decimal.Decimal
}

// latticeConfig projects the construction subset of the configuration.
func (c Config) latticeConfig() lattice.Config {
	return lattice.Config{
		InitialPrice: c.InitialPrice,
		Multipliers:  c.Multipliers,
		Weights:      c.Weights,
		Periods:      c.Periods,
	}
}

// Validate reports the first violated precondition, or nil. Checks run in a
// fixed order: option type, exercise style, strike, lattice preconditions
// (price, branch lists, weights, periods), then the no-arbitrage condition.
func (c Config) Validate() error {
	if !c.Type.valid() {
		return ErrInvalidOptionType
	}
	if !c.Style.valid() {
		return ErrInvalidExerciseStyle
	}
	if c.Strike.Sign() <= 0 {
		return ErrNonPositiveStrike
	}
	if err := c.latticeConfig().Validate(); err != nil {
		return err
	}
	lo, hi := minMax(c.Multipliers)
	if c.GrowthFactor.Cmp(lo) <= 0 || c.GrowthFactor.Cmp(hi) >= 0 {
		return ErrArbitrageViolation
	}
	return nil
}

// minMax returns the smallest and largest of a non-empty multiplier list.
func minMax(ms []decimal.Decimal) (lo, hi decimal.Decimal) {
	lo, hi = ms[0], ms[0]
	for _, m := range ms[1:] {
		if m.LessThan(lo) {
			lo = m
		}
		if m.GreaterThan(hi) {
			hi = m
		}
	}
	return lo, hi
}

// EarlyExercise reports a node whose intrinsic value strictly exceeded its
// continuation value during an American-style backward pass. Reportable,
// never fatal.
type EarlyExercise struct {
	// Node is the lattice node where exercise is optimal.
	Node lattice.NodeID
	// Intrinsic is the immediate exercise payoff at that node.
	Intrinsic decimal.Decimal
	// Continuation is the discounted expected value of holding on.
	Continuation decimal.Decimal
}

// NodeState is one row of the exported node table: the data shape
// guaranteed to downstream visualization tooling. Parent is nil for the
// root.
type NodeState struct {
	ID          int             `json:"id"`
	Parent      *int            `json:"parent"`
	Children    []int           `json:"children"`
	Time        int             `json:"time"`
	Price       decimal.Decimal `json:"price"`
	OptionValue decimal.Decimal `json:"option_value"`
}

// Package lattice defines the node arena and configuration types shared by
// the breadth-first lattice builder.
package lattice

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Precision is the fixed number of decimal places every lattice price and
// option value is rounded to at the point of computation. Matching textbook
// worked examples digit for digit is the contract here; the small
// compounding rounding error relative to unrounded arithmetic is deliberate
// and must not be "fixed".
const Precision int32 = 3

// weightTolerance bounds |Σweights − 1| for a weight list to count as
// normalized.
var weightTolerance = decimal.New(1, -9) // 1e-9

// NodeID indexes a Node inside its owning Lattice arena.
// IDs are assigned at creation, strictly increasing in creation order.
type NodeID int

// NoParent marks the root's parent reference.
const NoParent NodeID = -1

// Node is a single price state in the lattice.
//
// Parent records the node that first discovered this state; in the
// recombined DAG other nodes may also list it among their Children.
// Children holds exactly one entry per configured multiplier, in multiplier
// order, and is empty iff Time equals the lattice horizon. If two
// multipliers from the same parent reach the same recombined state, that
// child's ID appears twice.
//
// OptionValue is populated by the valuation passes (see package binomial):
// first the intrinsic exercise value, then the final backward-induction
// value. After valuation the lattice is read-only by convention.
type Node struct {
	ID          NodeID
	Parent      NodeID
	Children    []NodeID
	Time        int
	Price       decimal.Decimal
	OptionValue decimal.Decimal
}

// String renders the node state for debugging and test output.
func (n Node) String() string {
	parent := "none"
	if n.Parent != NoParent {
		parent = fmt.Sprintf("%d", n.Parent)
	}
	return fmt.Sprintf("node %d (t=%d): price=%s option=%s parent=%s children=%v",
		n.ID, n.Time, n.Price.StringFixed(Precision),
		n.OptionValue.StringFixed(Precision), parent, n.Children)
}

// Config carries the inputs of lattice construction.
type Config struct {
	// InitialPrice is the underlying price at the root node. Must be > 0.
	InitialPrice decimal.Decimal

	// Multipliers lists the per-step branch factors, in branch order.
	// Each child price is parent price × multiplier, rounded to Precision.
	// All must be > 0; the list must be non-empty.
	Multipliers []decimal.Decimal

	// Weights lists the branch probabilities parallel to Multipliers.
	// They are not consumed by valuation (risk-neutral probabilities are
	// derived instead) and are carried as a documentation/consistency
	// check: same length as Multipliers, summing to 1 within tolerance.
	Weights []decimal.Decimal

	// Periods is the number of time steps after the root. Must be > 0.
	Periods int
}

// Validate reports the first violated construction precondition, or nil.
// It allocates nothing and runs before any node exists.
func (c Config) Validate() error {
	if c.InitialPrice.Sign() <= 0 {
		return fmt.Errorf("%w: got %s", ErrNonPositivePrice, c.InitialPrice)
	}
	if len(c.Multipliers) == 0 {
		return ErrNoBranches
	}
	if len(c.Multipliers) != len(c.Weights) {
		return fmt.Errorf("%w: %d multipliers vs %d weights",
			ErrMismatchedBranches, len(c.Multipliers), len(c.Weights))
	}
	for _, m := range c.Multipliers {
		if m.Sign() <= 0 {
			return fmt.Errorf("%w: got %s", ErrNonPositiveMultiplier, m)
		}
	}
	sum := decimal.Zero
	for _, w := range c.Weights {
		sum = sum.Add(w)
	}
	if sum.Sub(decimal.New(1, 0)).Abs().GreaterThan(weightTolerance) {
		return fmt.Errorf("%w: sum = %s", ErrWeightsNotNormalized, sum)
	}
	if c.Periods <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositivePeriods, c.Periods)
	}
	return nil
}

// Lattice is the complete, deduplicated node set of one pricing run:
// a DAG rooted at NodeID 0, held in a single exclusively-owned arena.
type Lattice struct {
	nodes    []Node
	periods  int
	branches int
}

// Len returns the number of nodes in the lattice.
func (l *Lattice) Len() int { return len(l.nodes) }

// Periods returns the configured time horizon.
func (l *Lattice) Periods() int { return l.periods }

// Branches returns the configured branch count per step.
func (l *Lattice) Branches() int { return l.branches }

// Root returns the node at time 0.
func (l *Lattice) Root() *Node { return &l.nodes[0] }

// Node returns the node with the given ID. The pointer aliases the arena;
// valuation mutates OptionValue through it. Panics on an out-of-range ID,
// mirroring slice indexing.
func (l *Lattice) Node(id NodeID) *Node { return &l.nodes[id] }

// Nodes returns the arena in creation (breadth-first, topological) order.
// The slice is shared, not copied; treat it as read-only.
func (l *Lattice) Nodes() []Node { return l.nodes }

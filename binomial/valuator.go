package binomial

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/optlattice/lattice"
)

// one is the unit decimal, reused across valuation runs.
var one = decimal.New(1, 0)

// Valuate populates OptionValue on every node of l, which must be the
// lattice built from cfg's construction inputs.
//
// Phase 1 stores each node's intrinsic exercise payoff, order-independent.
// Phase 2 walks IDs in strictly decreasing order (a reverse topological
// order, so both children are final before their parent) and assigns each
// internal node the discounted risk-neutral expectation of its children,
// rounded to lattice.Precision:
//
//	q    = (R − d) / (u − d)        u, d = max, min multiplier
//	cont = (q·c₀ + (1−q)·c₁) / R
//
// q weights Children[0] (the first-multiplier child) and 1−q weights
// Children[1], whatever order the multipliers were configured in; a child
// recombined twice from one parent occupies both slots. American style
// keeps max(intrinsic, continuation) and reports strict intrinsic
// exceedance through the early-exercise hook; European style keeps the
// continuation value.
//
// The formula assumes exactly two children, so lattices with a branch
// count other than 2 are rejected with ErrUnsupportedBranching (extending
// to n-ary valuation means generalizing cont above and nothing else).
//
// Valuate is idempotent: re-running it on an already-valued lattice leaves
// every OptionValue unchanged. Terminal nodes keep their intrinsic value.
//
// Complexity: O(n) time over n nodes, O(1) extra space.
func Valuate(l *lattice.Lattice, cfg Config, opts ...Option) error {
	if l == nil {
		return ErrNilLattice
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if l.Branches() != 2 {
		return fmt.Errorf("%w: lattice has %d", ErrUnsupportedBranching, l.Branches())
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Phase 1: intrinsic value at every node.
	for id := 0; id < l.Len(); id++ {
		n := l.Node(lattice.NodeID(id))
		n.OptionValue = intrinsic(cfg.Type, cfg.Strike, n.Price)
	}

	// Phase 2: backward induction in decreasing ID order.
	q := riskNeutral(cfg)
	qBar := one.Sub(q)
	for id := l.Len() - 1; id >= 0; id-- {
		n := l.Node(lattice.NodeID(id))
		if len(n.Children) == 0 {
			continue // terminal: intrinsic value stands
		}
		c0 := l.Node(n.Children[0]).OptionValue
		c1 := l.Node(n.Children[1]).OptionValue
		cont := q.Mul(c0).Add(qBar.Mul(c1)).Div(cfg.GrowthFactor).Round(lattice.Precision)

		if cfg.Style == American && n.OptionValue.GreaterThan(cont) {
			o.onEarlyExercise(EarlyExercise{
				Node:         n.ID,
				Intrinsic:    n.OptionValue,
				Continuation: cont,
			})
			continue // intrinsic stands: exercising beats holding
		}
		n.OptionValue = cont
	}
	return nil
}

// intrinsic returns the rounded immediate exercise payoff of price against
// strike, floored at zero.
func intrinsic(t OptionType, strike, price decimal.Decimal) decimal.Decimal {
	var iv decimal.Decimal
	if t == Call {
		iv = price.Sub(strike)
	} else {
		iv = strike.Sub(price)
	}
	if iv.Sign() < 0 {
		return decimal.Zero
	}
	return iv.Round(lattice.Precision)
}

// riskNeutral derives the risk-neutral up-probability q = (R−d)/(u−d).
// The no-arbitrage precondition d < R < u keeps q inside (0, 1).
func riskNeutral(cfg Config) decimal.Decimal {
	d, u := minMax(cfg.Multipliers)
	return cfg.GrowthFactor.Sub(d).Div(u.Sub(d))
}

package binomial

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/optlattice/lattice"
)

// Model is one completed pricing run: configuration, the built lattice, and
// the early-exercise events observed during valuation. The lattice has
// exactly one owner (the Model) and is read-only after New returns.
type Model struct {
	cfg    Config
	lat    *lattice.Lattice
	events []EarlyExercise
}

// New validates cfg, builds the lattice and runs both valuation passes.
//
// Every configuration error (option type, exercise style, strike, the
// lattice preconditions, the no-arbitrage condition and the two-branch
// valuation limit) is detected before any node is allocated; on failure no
// partial lattice exists. Construction respects WithMaxNodes.
//
// Returns the first violated sentinel (use errors.Is), or the fully valued
// model.
func New(cfg Config, opts ...Option) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// The Model always valuates, so a lattice it could never value is a
	// configuration error here, not after construction.
	if len(cfg.Multipliers) != 2 {
		return nil, fmt.Errorf("%w: got %d multipliers", ErrUnsupportedBranching, len(cfg.Multipliers))
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var lopts []lattice.Option
	if o.maxNodes > 0 {
		lopts = append(lopts, lattice.WithMaxNodes(o.maxNodes))
	}
	lat, err := lattice.Build(cfg.latticeConfig(), lopts...)
	if err != nil {
		return nil, err
	}

	m := &Model{cfg: cfg, lat: lat}
	record := func(ev EarlyExercise) {
		m.events = append(m.events, ev)
		o.onEarlyExercise(ev)
	}
	if err = Valuate(lat, cfg, WithEarlyExerciseHook(record)); err != nil {
		return nil, err
	}
	return m, nil
}

// Value returns the root's final option value, the fair price of the
// configured option.
func (m *Model) Value() decimal.Decimal { return m.lat.Root().OptionValue }

// Lattice exposes the underlying node arena for introspection. Treat it as
// read-only.
func (m *Model) Lattice() *lattice.Lattice { return m.lat }

// EarlyExercises lists the nodes where immediate exercise strictly beat
// holding, in the backward-pass visit order (decreasing node ID). Empty for
// European style.
func (m *Model) EarlyExercises() []EarlyExercise { return m.events }

// RiskNeutralProbability returns q = (R−d)/(u−d), the up-branch weighting
// used by backward induction. Strictly inside (0, 1) by the no-arbitrage
// validation.
func (m *Model) RiskNeutralProbability() decimal.Decimal { return riskNeutral(m.cfg) }

// Snapshot exports the full node table in creation (topological) order:
// the data shape guaranteed to downstream visualization tooling.
func (m *Model) Snapshot() []NodeState {
	nodes := m.lat.Nodes()
	out := make([]NodeState, len(nodes))
	for i := range nodes {
		n := &nodes[i]
		s := NodeState{
			ID:          int(n.ID),
			Children:    make([]int, len(n.Children)),
			Time:        n.Time,
			Price:       n.Price,
			OptionValue: n.OptionValue,
		}
		if n.Parent != lattice.NoParent {
			p := int(n.Parent)
			s.Parent = &p
		}
		for j, c := range n.Children {
			s.Children[j] = int(c)
		}
		out[i] = s
	}
	return out
}

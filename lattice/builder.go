package lattice

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// stateKey identifies a lattice state for recombination: the canonical
// fixed-precision rendering of a price together with its time step.
// Two distinct nodes never share a stateKey.
type stateKey struct {
	price string
	time  int
}

// key builds the recombination identity of a price at a time step.
func key(price decimal.Decimal, time int) stateKey {
	return stateKey{price: price.StringFixed(Precision), time: time}
}

// Build constructs the complete, deduplicated lattice for cfg.
//
// Traversal is breadth-first from the root over an explicit FIFO queue of
// node IDs (no recursion, so depth is bounded only by the cap). For each
// dequeued node below the horizon, one child is recorded per multiplier in
// configured order: the candidate price is parent price × multiplier,
// rounded to Precision. If a node with the same (price, time) identity
// already exists, its ID is recorded instead of allocating a duplicate;
// this is the recombination invariant that collapses the tree into a DAG.
//
// All preconditions are validated before the first allocation; on any
// error, no partial lattice is returned.
//
// Complexity: O(n·b) time and O(n) space for n produced nodes and b
// branches, with O(1) amortized recombination lookups.
func Build(cfg Config, opts ...Option) (*Lattice, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bc := newBuildConfig(opts...)

	// Fail fast when even perfect recombination cannot fit under the cap.
	if floor, ok := recombinedSize(len(cfg.Multipliers), cfg.Periods, bc.maxNodes); !ok {
		return nil, fmt.Errorf("%w: ≥%d nodes projected for %d branches over %d periods (cap %d)",
			ErrTooManyNodes, floor, len(cfg.Multipliers), cfg.Periods, bc.maxNodes)
	}

	l := &Lattice{
		periods:  cfg.Periods,
		branches: len(cfg.Multipliers),
	}
	l.nodes = append(l.nodes, Node{
		ID:     0,
		Parent: NoParent,
		Time:   0,
		Price:  cfg.InitialPrice,
	})

	// seen maps each occupied state to its node, keeping dedup O(1)
	// amortized instead of a scan over the arena.
	seen := map[stateKey]NodeID{key(cfg.InitialPrice, 0): 0}

	// FIFO queue of pending node IDs; head advances instead of reslicing.
	queue := []NodeID{0}
	for head := 0; head < len(queue); head++ {
		id := queue[head]
		if l.nodes[id].Time >= cfg.Periods {
			continue // terminal node: Children stays empty
		}
		parentTime := l.nodes[id].Time
		parentPrice := l.nodes[id].Price

		for _, m := range cfg.Multipliers {
			price := parentPrice.Mul(m).Round(Precision)
			k := key(price, parentTime+1)

			child, ok := seen[k]
			if !ok {
				if len(l.nodes) >= bc.maxNodes {
					return nil, fmt.Errorf("%w: recombination degraded past cap %d",
						ErrTooManyNodes, bc.maxNodes)
				}
				child = NodeID(len(l.nodes))
				l.nodes = append(l.nodes, Node{
					ID:     child,
					Parent: id,
					Time:   parentTime + 1,
					Price:  price,
				})
				seen[k] = child
				queue = append(queue, child)
			}
			// One entry per multiplier, in multiplier order. A target
			// recombined from the same parent via two multipliers is
			// listed twice; consumers see the configured branch shape.
			l.nodes[id].Children = append(l.nodes[id].Children, child)
		}
	}
	return l, nil
}

// recombinedSize returns the node count of a fully recombined lattice with
// b branches over T periods (the layer at time t holds C(t+b−1, b−1)
// states), or (partial, false) once the running total exceeds maxNodes.
// This is the lower bound of any build; the true count only grows when
// rounding breaks recombination.
func recombinedSize(b, periods, maxNodes int) (int, bool) {
	total := uint64(0)
	layer := uint64(1) // C(b-1, b-1) at t=0
	limit := uint64(maxNodes)
	for t := 0; ; t++ {
		total += layer
		if total > limit {
			return int(limit) + 1, false
		}
		if t == periods {
			return int(total), true
		}
		// C(t+b, b-1) = C(t+b-1, b-1) · (t+b) / (t+1), exact division.
		next := t + b
		if layer > (1<<62)/uint64(next) {
			return int(limit) + 1, false // saturate well before overflow
		}
		layer = layer * uint64(next) / uint64(t+1)
	}
}

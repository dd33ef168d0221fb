package lattice_test

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/optlattice/lattice"
)

// ExampleBuild constructs a two-period lattice with a 7% up step and its
// exact reciprocal down step. The two middle paths (up-down, down-up) land
// on the same rounded price and collapse into one node, so the lattice
// holds 6 nodes instead of a 7-node binary tree.
func ExampleBuild() {
	cfg := lattice.Config{
		InitialPrice: decimal.NewFromInt(100),
		Multipliers: []decimal.Decimal{
			decimal.RequireFromString("1.07"),
			decimal.NewFromFloat(1.0 / 1.07),
		},
		Weights: []decimal.Decimal{
			decimal.RequireFromString("0.5"),
			decimal.RequireFromString("0.5"),
		},
		Periods: 2,
	}

	l, err := lattice.Build(cfg)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("nodes:", l.Len())
	for _, n := range l.Nodes() {
		fmt.Printf("t=%d price=%s\n", n.Time, n.Price.StringFixed(lattice.Precision))
	}
	// Output:
	// nodes: 6
	// t=0 price=100.000
	// t=1 price=107.000
	// t=1 price=93.458
	// t=2 price=114.490
	// t=2 price=100.000
	// t=2 price=87.344
}

package lattice_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/optlattice/lattice"
)

// BenchmarkBuild measures construction of a deep reciprocal lattice
// (T=100, ~11k nodes: rounding chips away at recombination far from the
// root), the dedup map doing all the work.
func BenchmarkBuild(b *testing.B) {
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
		Periods: 100,
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lattice.Build(cfg); err != nil {
			b.Fatal(err)
		}
	}
}

package binomial_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optlattice/binomial"
	"github.com/katalvlaran/optlattice/lattice"
)

// dec is a test shorthand for exact decimal literals.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// putConfig is the reference scenario: at-the-money 3-period put with a 7%
// up step, its exact reciprocal down step, and 1% riskless growth per
// period. Every expected figure below reproduces the textbook worked
// example to 3 decimal places.
func putConfig(style binomial.ExerciseStyle) binomial.Config {
	return binomial.Config{
		InitialPrice: dec("100"),
		Strike:       dec("100"),
		Type:         binomial.Put,
		Style:        style,
		Periods:      3,
		Multipliers:  []decimal.Decimal{dec("1.07"), decimal.NewFromFloat(1.0 / 1.07)},
		Weights:      []decimal.Decimal{dec("0.5"), dec("0.5")},
		GrowthFactor: dec("1.01"),
	}
}

// TestNew_AmericanPutReferenceCase pins the end-to-end reference result:
// root value, lattice size, risk-neutral probability, and the single
// early-exercise event on the deep in-the-money node.
func TestNew_AmericanPutReferenceCase(t *testing.T) {
	m, err := binomial.New(putConfig(binomial.American))
	require.NoError(t, err)

	assert.True(t, m.Value().Equal(dec("3.824")), "root value = %s; want 3.824", m.Value())
	assert.Equal(t, 10, m.Lattice().Len(), "reciprocal multipliers must recombine to the triangular sum")
	assert.True(t, m.RiskNeutralProbability().Equal(dec("0.5569358178053832")),
		"q = %s", m.RiskNeutralProbability())

	events := m.EarlyExercises()
	require.Len(t, events, 1, "exactly one node should exercise early")
	assert.Equal(t, lattice.NodeID(5), events[0].Node)
	assert.True(t, events[0].Intrinsic.Equal(dec("12.656")), "intrinsic = %s", events[0].Intrinsic)
	assert.True(t, events[0].Continuation.Equal(dec("11.666")), "continuation = %s", events[0].Continuation)
}

// TestNew_EuropeanPut checks the European rendition of the same scenario:
// lower root value (non-negative early-exercise premium) and no events.
func TestNew_EuropeanPut(t *testing.T) {
	eu, err := binomial.New(putConfig(binomial.European))
	require.NoError(t, err)
	am, err := binomial.New(putConfig(binomial.American))
	require.NoError(t, err)

	assert.True(t, eu.Value().Equal(dec("3.633")), "European root = %s; want 3.633", eu.Value())
	assert.Empty(t, eu.EarlyExercises(), "European valuation must not report early exercise")
	assert.True(t, am.Value().GreaterThanOrEqual(eu.Value()),
		"American %s must dominate European %s", am.Value(), eu.Value())
}

// TestNew_CallBothStyles verifies that the call carries no early-exercise
// premium here: both styles price identically and report nothing.
func TestNew_CallBothStyles(t *testing.T) {
	for _, style := range []binomial.ExerciseStyle{binomial.European, binomial.American} {
		cfg := putConfig(style)
		cfg.Type = binomial.Call
		m, err := binomial.New(cfg)
		require.NoError(t, err, style.String())

		assert.True(t, m.Value().Equal(dec("6.574")), "%s call = %s; want 6.574", style, m.Value())
		assert.Empty(t, m.EarlyExercises(), "%s call should never exercise early", style)
	}
}

// TestNew_PutCallParity checks C − P ≈ S − K/Rᵀ for European style, within
// the tolerance the compounding 3-decimal rounding allows.
func TestNew_PutCallParity(t *testing.T) {
	callCfg := putConfig(binomial.European)
	callCfg.Type = binomial.Call
	call, err := binomial.New(callCfg)
	require.NoError(t, err)
	put, err := binomial.New(putConfig(binomial.European))
	require.NoError(t, err)

	lhs := call.Value().Sub(put.Value()).InexactFloat64()
	rhs := 100.0 - 100.0/math.Pow(1.01, 3)
	assert.InDelta(t, rhs, lhs, 0.01, "put-call parity: C−P = %v vs S−K/Rᵀ = %v", lhs, rhs)
}

// TestNew_AmericanDominatesIntrinsic asserts the American invariant at
// every node: the option value never falls below immediate exercise.
func TestNew_AmericanDominatesIntrinsic(t *testing.T) {
	m, err := binomial.New(putConfig(binomial.American))
	require.NoError(t, err)

	strike := dec("100")
	for _, n := range m.Lattice().Nodes() {
		iv := decimal.Max(strike.Sub(n.Price), decimal.Zero).Round(lattice.Precision)
		assert.True(t, n.OptionValue.GreaterThanOrEqual(iv),
			"node %d: option value %s below intrinsic %s", n.ID, n.OptionValue, iv)
	}
}

// TestNew_Snapshot checks the exported node-table shape: null parent at the
// root, integer references everywhere else, final option values in place.
func TestNew_Snapshot(t *testing.T) {
	m, err := binomial.New(putConfig(binomial.American))
	require.NoError(t, err)

	snap := m.Snapshot()
	require.Len(t, snap, 10)

	root := snap[0]
	assert.Nil(t, root.Parent, "root parent must export as null")
	assert.Equal(t, []int{1, 2}, root.Children)
	assert.Zero(t, root.Time)
	assert.True(t, root.OptionValue.Equal(dec("3.824")))

	require.NotNil(t, snap[4].Parent)
	assert.Equal(t, 1, *snap[4].Parent, "the shared middle node keeps its first discoverer as parent")
	assert.True(t, snap[4].Price.Equal(dec("100.000")))

	for _, row := range snap[6:] {
		assert.Empty(t, row.Children, "terminal row %d must have no children", row.ID)
		assert.Equal(t, 3, row.Time)
	}
}

// TestNew_ValidationErrors drives every configuration sentinel through the
// orchestrator and confirms nothing is constructed alongside an error.
func TestNew_ValidationErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*binomial.Config)
		want   error
	}{
		{"invalid option type", func(c *binomial.Config) { c.Type = binomial.OptionType(9) }, binomial.ErrInvalidOptionType},
		{"invalid exercise style", func(c *binomial.Config) { c.Style = binomial.ExerciseStyle(9) }, binomial.ErrInvalidExerciseStyle},
		{"zero strike", func(c *binomial.Config) { c.Strike = decimal.Zero }, binomial.ErrNonPositiveStrike},
		{"zero price", func(c *binomial.Config) { c.InitialPrice = decimal.Zero }, lattice.ErrNonPositivePrice},
		{"zero periods", func(c *binomial.Config) { c.Periods = 0 }, lattice.ErrNonPositivePeriods},
		{"mismatched lists", func(c *binomial.Config) { c.Weights = c.Weights[:1] }, lattice.ErrMismatchedBranches},
		{"weights not normalized", func(c *binomial.Config) {
			c.Weights = []decimal.Decimal{dec("0.9"), dec("0.2")}
		}, lattice.ErrWeightsNotNormalized},
		{"growth above max multiplier", func(c *binomial.Config) { c.GrowthFactor = dec("1.2") }, binomial.ErrArbitrageViolation},
		{"growth equals max multiplier", func(c *binomial.Config) { c.GrowthFactor = dec("1.07") }, binomial.ErrArbitrageViolation},
		{"growth below min multiplier", func(c *binomial.Config) { c.GrowthFactor = dec("0.9") }, binomial.ErrArbitrageViolation},
		{"three branches", func(c *binomial.Config) {
			c.Multipliers = []decimal.Decimal{dec("1.2"), dec("1"), dec("0.8")}
			c.Weights = []decimal.Decimal{dec("0.3"), dec("0.4"), dec("0.3")}
		}, binomial.ErrUnsupportedBranching},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := putConfig(binomial.American)
			tc.mutate(&cfg)
			m, err := binomial.New(cfg)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, m, "no model may exist alongside a configuration error")
		})
	}
}

// TestNew_MaxNodesCap forwards the ceiling to the builder.
func TestNew_MaxNodesCap(t *testing.T) {
	m, err := binomial.New(putConfig(binomial.American), binomial.WithMaxNodes(5))
	assert.ErrorIs(t, err, lattice.ErrTooManyNodes)
	assert.Nil(t, m)
}

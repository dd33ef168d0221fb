package lattice

// DefaultMaxNodes bounds lattice growth when no explicit cap is configured.
// A fully recombined two-branch lattice reaches this figure only past a
// thousand time steps; a non-recombining one hits it near twenty.
const DefaultMaxNodes = 1 << 20

// Option customizes lattice construction by mutating a buildConfig before
// any node is created. Applying N options costs O(N) time, O(1) space.
type Option func(*buildConfig)

// buildConfig aggregates construction knobs. Passed by value to Build;
// immutable to callers.
type buildConfig struct {
	// maxNodes is the inclusive ceiling on arena size.
	maxNodes int
}

// newBuildConfig resolves deterministic defaults, then applies options in
// order (last wins).
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{maxNodes: DefaultMaxNodes}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxNodes sets the node-count ceiling. Construction fails with
// ErrTooManyNodes before allocating anything if even a fully recombined
// lattice would exceed n, and aborts mid-build if rounding degrades
// recombination past n. Panics if n <= 0: option constructors validate and
// fail fast, algorithms never panic at runtime.
func WithMaxNodes(n int) Option {
	if n <= 0 {
		panic("lattice: WithMaxNodes(n<=0)")
	}
	return func(c *buildConfig) {
		c.maxNodes = n
	}
}

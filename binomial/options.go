package binomial

// Option configures valuation behavior via functional arguments.
type Option func(*options)

// options holds resolved valuation knobs.
type options struct {
	// maxNodes caps lattice construction; 0 means the lattice default.
	maxNodes int
	// onEarlyExercise fires once per early-exercise event, in decreasing
	// node-ID order (the backward-pass visit order).
	onEarlyExercise func(EarlyExercise)
}

// defaultOptions returns deterministic defaults: builder-default node cap,
// no-op early-exercise hook.
func defaultOptions() options {
	return options{
		maxNodes:        0,
		onEarlyExercise: func(EarlyExercise) {},
	}
}

// WithMaxNodes forwards a node-count ceiling to the lattice builder.
// Panics if n <= 0; option constructors validate and fail fast.
func WithMaxNodes(n int) Option {
	if n <= 0 {
		panic("binomial: WithMaxNodes(n<=0)")
	}
	return func(o *options) {
		o.maxNodes = n
	}
}

// WithEarlyExerciseHook registers a callback observing early-exercise
// events as the backward pass finds them. The Model records events
// regardless; the hook is for streaming consumers. A nil fn is ignored.
func WithEarlyExerciseHook(fn func(EarlyExercise)) Option {
	return func(o *options) {
		if fn != nil {
			o.onEarlyExercise = fn
		}
	}
}

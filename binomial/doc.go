// Package binomial values call and put options, American or European, on a
// two-branch recombining lattice built by package lattice.
//
// Valuation runs in two passes over the node arena:
//
//  1. Intrinsic pass: every node receives its immediate exercise payoff,
//     max(S−K, 0) for calls, max(K−S, 0) for puts, rounded to the fixed
//     display precision.
//  2. Backward induction: nodes are visited in strictly decreasing ID
//     order (ascending IDs are a topological order of the lattice, so every
//     child is final before its parents). Each internal node receives the
//     discounted risk-neutral expectation of its two children,
//     (q·c₀ + (1−q)·c₁)/R with q = (R−d)/(u−d); American-style nodes keep
//     the larger of intrinsic and continuation value, and a strict
//     intrinsic exceedance is reported as an early-exercise event.
//
// The entry point Model validates the full configuration, including the
// no-arbitrage condition min(multipliers) < R < max(multipliers), before
// any node is constructed, then orchestrates lattice.Build and Valuate and
// exposes the root option value plus a full node-table snapshot for
// downstream tooling.
//
// Backward induction supports exactly two branches per step. N-ary
// (trinomial and beyond) valuation is a documented extension point, not a
// capability: Valuate rejects wider lattices with ErrUnsupportedBranching.
package binomial

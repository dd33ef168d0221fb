// Package lattice builds the recombining price lattice that underlies
// discrete-time option valuation: a DAG of price states constructed
// breadth-first from an initial price and a list of per-step multipliers.
//
// Distinct paths that reach the same rounded price at the same time step
// collapse into a single node (the recombination invariant), which keeps
// the node count near the triangular sum Σ(t+1) for reciprocal up/down
// multipliers instead of the full 2^(T+1)−1 binary tree.
//
// Nodes live in a single owned arena and reference each other by integer
// NodeID, so the recombined DAG carries no cyclic ownership. Creation order
// is breadth-first, which makes ascending IDs a valid topological order:
// every child has a strictly greater ID than each of its parents. Backward
// passes over the lattice are therefore a plain reverse iteration.
//
// Construction is fully synchronous and allocation-bounded: inputs are
// validated before any node exists, a fully-recombined size estimate is
// checked against a configurable ceiling up front, and the ceiling is
// enforced again while building in case rounding breaks recombination.
package lattice

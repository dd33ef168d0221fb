// Package optlattice prices discrete-time options on a recombining
// binomial lattice, from lattice construction to risk-neutral backward
// induction with optional early exercise.
//
// 🚀 What is optlattice?
//
//	A small, deterministic library that brings together:
//		• lattice/  – Node arena + breadth-first recombining lattice builder
//		• binomial/ – intrinsic-value pass, backward induction, early exercise,
//		              validation and orchestration (Model)
//
// ✨ Why choose optlattice?
//
//   - Textbook-faithful – every intermediate price and value is rounded to a
//     fixed 3-decimal display precision, so results line up with worked
//     examples digit for digit
//   - Exact money math – all prices flow through shopspring/decimal; the
//     recombination identity is a canonical decimal rendering, never a
//     float comparison
//   - Deterministic & synchronous – one owner, one pass, no goroutines,
//     no hidden state
//   - Introspectable – the full node table (id, parent, children, time,
//     price, option value) is exported for downstream tooling
//
// Quick ASCII example (2 periods, up/down reciprocal multipliers):
//
//	            ┌── 114.490
//	  ┌ 107.000 ┤
//	100         ├── 100.000   ← two paths, one node (recombination)
//	  └  93.458 ┤
//	            └──  87.344
//
// Start with binomial.New for end-to-end pricing, or lattice.Build if you
// only need the price tree.
package optlattice

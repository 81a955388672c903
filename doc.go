// Package admix is an in-memory engine for genetic-ancestry admixture
// modeling over the Global 25 (G25) reduced coordinate space — from the
// distance metric up to ranked multi-order mixture reports.
//
// 🚀 What is admix?
//
//	A modern, deterministic, computation-only library that brings together:
//		• Coordinate primitives: fixed 25-dimensional vectors & Euclidean metric
//		• Proportion solving: least-squares mixture fits with clip & renormalize
//		• Candidate reduction: explicit pools and nearest-K pre-filtering
//		• Combinatorial search: best k-way models for k = 2..6, solved in parallel
//		• Differential ranking: which of two targets each population sits closer to
//		• An engine facade: immutable reference-table snapshots, env config,
//		  structured logging and Prometheus instrumentation
//
// ✨ Why choose admix?
//
//   - Reproducible – canonical enumeration order, documented tie-breaks,
//     parallel reduction that cannot change the winner
//   - Rock-solid guarantees – immutable request-scoped values, sentinel errors,
//     no hidden state between searches
//   - Degenerate-safe – ill-conditioned and all-clipped fits degrade into
//     reportable results instead of aborting a search midway
//
// Under the hood, everything is organized under these subpackages:
//
//	coords/       — Vector, NamedPoint & the L2 distance metric
//	mixture/      — the non-negative proportion solver (SVD least squares)
//	model/        — candidate pools, k-subset search & ranked reports
//	differential/ — two-target closeness ranking
//	engine/       — request facade, table snapshots, config, logging, metrics
//
// Quick example: target (0.5, 0.5, 0, …) over sources e₁ and e₂ yields the
// 2-way model [0.5, 0.5] with residual ≈ 0.
//
// Dive into the package docs and example tests for full walkthroughs.
//
//	go get github.com/katalvlaran/admix
package admix

// Package model runs the combinatorial admixture model search: for each
// requested model order k it enumerates every k-subset of a candidate pool,
// solves the mixture proportions for each subset, and keeps the single best
// fit per order, assembled into a ranked Report.
//
// 🚀 What is the model search?
//
//	A k-way admixture model draws k distinct reference populations from a
//	candidate pool. For a pool of size n there are C(n,k) such subsets; each
//	is solved independently by mixture.Solve and judged by residual distance.
//	The search is the expensive heart of the engine: a pool of 25 at k=4
//	already means 12,650 least-squares solves, so pools are bounded up front
//	(explicit pools or the NearestK pre-filter) and the per-subset solves run
//	concurrently across a bounded worker group.
//
// ✨ Key guarantees:
//   - Determinism: subsets are enumerated lazily in lexicographic order over
//     stable pool indices, and exact residual ties are broken by that order.
//     The parallel reduction folds (residual, enumeration rank) pairs, which
//     is associative and commutative, so worker scheduling can never change
//     the winner.
//   - Fail fast: a pool smaller than the largest requested order is rejected
//     with ErrPoolTooSmall before any solving starts.
//   - Degrade, don't abort: degenerate all-zero fits participate in the
//     ranking like any other result; a search never errors because one
//     subset happened to be singular.
//   - Cooperative cancellation: pass a context with a deadline to impose a
//     time budget; abandoned searches need no cleanup.
//
// ⚙️ Usage:
//
//	pool := model.NewPool(points)                   // explicit pool, or:
//	pool  = model.NearestK(target, universe, 25)    // nearest-K pre-filter
//
//	report, err := model.Search(ctx, target, pool, model.DefaultOptions())
//	if err != nil {
//	  // model.ErrPoolTooSmall, model.ErrBadOrder, model.ErrNoOrders, ctx.Err()
//	}
//	best, ok := report.Order(4) // best 4-way model, if that order was run
//
// Complexity: Σₖ C(n,k) solver invocations for pool size n; each solve is
// O(Dim·k²). Memory stays O(n + workers·k) thanks to lazy enumeration.
package model

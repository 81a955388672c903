// Package mixture solves non-negative admixture proportions: given a target
// point and k candidate source populations in the G25 coordinate space, it
// finds the mixture weights that best reconstruct the target, and reports the
// residual fit distance.
//
// 🚀 What is the proportion solver?
//
//	A k-way admixture model approximates a target t as Σ pᵢ·sᵢ over k source
//	vectors. The solver reproduces the historical fitting policy exactly:
//	  1. solve the unconstrained least-squares system A·p ≈ t, where the
//	     source vectors form the columns of A, via SVD pseudo-inverse with a
//	     relative rank cutoff (an rcond-style tolerance);
//	  2. clip every negative coefficient to zero;
//	  3. renormalize to sum 1 when the clipped sum is positive — otherwise
//	     leave the all-zero vector and mark the fit degenerate;
//	  4. recompute the reconstruction with the renormalized weights and report
//	     residual = Distance(t, Σ pᵢ·sᵢ).
//
// This is deliberately NOT a true non-negative least squares solver: the
// clip-then-renormalize policy is part of the compatibility contract and is
// preserved bit-for-bit in spirit, including its degenerate corner.
//
// ✨ Key properties:
//   - Proportions are always non-negative, and either sum to 1 (within
//     floating tolerance) or are all exactly zero (Result.Degenerate).
//   - Rank deficiency never errors: the SVD cutoff absorbs near-singular
//     systems and the solver always returns some Result.
//   - Purely functional: no shared state, safe to call from many goroutines.
//
// ⚙️ Usage:
//
//	res, err := mixture.Solve(target, sources, mixture.DefaultOptions())
//	if err != nil {
//	  // mixture.ErrTooFewSources: k < 2 is a direct-distance lookup,
//	  // not a model, and is rejected here.
//	}
//	if res.Degenerate {
//	  // all coefficients clipped to zero; treat res.Residual as unreliable
//	}
//
// Complexity: O(Dim·k²) per solve (thin SVD of a 25×k system, k ≤ 6 in
// practice), O(Dim·k) space.
package mixture

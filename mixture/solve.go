// Package mixture - the least-squares proportion solve.
//
// Design principles:
//   - Deterministic, side-effect free: same inputs, same Result, no logging.
//   - Strict sentinels: only ErrTooFewSources; numeric trouble never errors.
//   - The clip-then-renormalize policy is a compatibility contract, not an
//     approximation of NNLS that may be "improved" later.
package mixture

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/admix/coords"
)

// Solve computes the admixture proportions for target over sources.
//
// Contract:
//   - len(sources) >= MinSources; otherwise ErrTooFewSources.
//   - Duplicate source vectors are allowed and solved as-is.
//   - The returned Result is independent of the inputs (fresh slice).
//
// Stages:
//  1. Validate - reject k < MinSources.
//  2. Factorize - thin SVD of the Dim×k source matrix.
//  3. Project - minimum-norm least-squares coefficients via the
//     pseudo-inverse, discarding singular values below RCond·σ₀.
//  4. Clip & renormalize - negatives to zero; rescale to sum 1 when the
//     clipped sum is positive, else keep the all-zero degenerate vector.
//  5. Reconstruct - residual = Distance(target, Σ pᵢ·sᵢ) with the final p.
//
// Complexity: O(Dim·k²) time, O(Dim·k) space.
func Solve(target coords.Vector, sources []coords.Vector, opts Options) (Result, error) {
	// Stage 1: shape validation.
	k := len(sources)
	if k < MinSources {
		return Result{}, ErrTooFewSources
	}

	rcond := opts.RCond
	if rcond <= 0 {
		rcond = DefaultRCond
	}

	// Stage 2: assemble A (source vectors as columns) and factorize.
	a := mat.NewDense(coords.Dim, k, nil)
	var (
		row int // coordinate index, 0..Dim-1
		col int // source index, 0..k-1
	)
	for col = 0; col < k; col++ {
		for row = 0; row < coords.Dim; row++ {
			a.Set(row, col, sources[col][row])
		}
	}

	var svd mat.SVD
	raw := make([]float64, k) // unconstrained least-squares coefficients
	if svd.Factorize(a, mat.SVDThin) {
		// Stage 3: p_raw = V · Σ⁺ · Uᵀ · t, truncated at the rank cutoff.
		projectPseudoInverse(&svd, target, raw, rcond)
	}
	// On a (practically unreachable) factorization failure raw stays all
	// zero, which flows into the degenerate path below - the solver always
	// returns some Result.

	// Stage 4: clip negatives, then renormalize when anything survived.
	var (
		sum float64 // sum of clipped coefficients
		j   int     // source index
	)
	for j = 0; j < k; j++ {
		if raw[j] < 0 {
			raw[j] = 0
		}
		sum += raw[j]
	}
	degenerate := sum == 0
	if !degenerate {
		for j = 0; j < k; j++ {
			raw[j] /= sum
		}
	}

	// Stage 5: reconstruct with the FINAL proportions and measure the fit.
	var recon coords.Vector
	for j = 0; j < k; j++ {
		if raw[j] == 0 {
			continue
		}
		for row = 0; row < coords.Dim; row++ {
			recon[row] += raw[j] * sources[j][row]
		}
	}

	return Result{
		Proportions: raw,
		Residual:    coords.Distance(target, recon),
		Degenerate:  degenerate,
	}, nil
}

// projectPseudoInverse writes the minimum-norm least-squares solution of
// A·p ≈ t into dst using the factorized SVD: dst = V · Σ⁺ · Uᵀ · t, where
// Σ⁺ inverts only singular values above rcond·σ₀.
//
// dst must have length k (the column count of the factorized matrix) and is
// assumed zeroed; entries beyond the effective rank contribute nothing.
//
// Complexity: O(Dim·r + k·r) for effective rank r.
func projectPseudoInverse(svd *mat.SVD, target coords.Vector, dst []float64, rcond float64) {
	// Singular values arrive in non-increasing order.
	sv := svd.Values(nil)
	if len(sv) == 0 || sv[0] <= 0 {
		return // zero matrix: keep dst all zero
	}

	// Effective rank under the relative cutoff.
	var rank int
	for rank = 0; rank < len(sv); rank++ {
		if sv[rank] <= rcond*sv[0] {
			break
		}
	}
	if rank == 0 {
		return
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	var (
		i   int     // singular-triplet index, 0..rank-1
		m   int     // coordinate index, 0..Dim-1
		j   int     // source index, 0..k-1
		dot float64 // (uᵢ · t) / σᵢ for the current triplet
	)
	for i = 0; i < rank; i++ {
		dot = 0
		for m = 0; m < coords.Dim; m++ {
			dot += u.At(m, i) * target[m]
		}
		dot /= sv[i]
		for j = 0; j < len(dst); j++ {
			dst[j] += v.At(j, i) * dot
		}
	}
}

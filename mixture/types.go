// Package mixture: options, result type and sentinel errors.
package mixture

import "errors"

// DefaultRCond is the default relative rank cutoff for the SVD solve.
// Singular values below DefaultRCond times the largest singular value are
// treated as zero, which keeps near-singular systems from blowing up.
const DefaultRCond = 1e-15

// MinSources is the smallest k the solver accepts. A single-source "model"
// is just a direct distance lookup and is handled outside this package.
const MinSources = 2

// ErrTooFewSources indicates that fewer than MinSources source vectors were
// supplied. Duplicate sources are permitted and are NOT deduplicated here;
// deduplication is the candidate pool's job.
var ErrTooFewSources = errors.New("mixture: need at least 2 source vectors")

// Options configures a proportion solve.
//
// RCond – relative rank cutoff for the SVD pseudo-inverse. Singular values
// σᵢ with σᵢ ≤ RCond·σ₀ are discarded. Zero or negative values fall back to
// DefaultRCond.
type Options struct {
	RCond float64 // relative singular-value cutoff
}

// DefaultOptions returns the canonical solver configuration.
func DefaultOptions() Options {
	return Options{RCond: DefaultRCond}
}

// Result holds the outcome of solving one source combination against one
// target. It is immutable once produced; callers own the Proportions slice.
type Result struct {
	// Proportions holds one non-negative weight per source, in source order.
	// Either the weights sum to 1 (within floating tolerance) or every entry
	// is exactly zero — see Degenerate.
	Proportions []float64

	// Residual is the Euclidean distance between the target and its
	// reconstruction under the renormalized proportions. Always >= 0.
	Residual float64

	// Degenerate reports that every least-squares coefficient clipped to
	// zero, so the proportions are the all-zero vector and Residual reflects
	// the zero reconstruction's distance to the target rather than a genuine
	// fit. This is a reportable outcome, never an error: callers decide how
	// to treat it by residual magnitude.
	Degenerate bool
}

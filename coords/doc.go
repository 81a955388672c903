// Package coords defines the coordinate-space primitives shared by every
// admix component: the fixed 25-dimensional Vector, named points, and the
// Euclidean (L2) distance metric.
//
// 🚀 What is coords?
//
//	The G25 reduced coordinate space represents samples and reference
//	populations as points in ℝ²⁵. Every higher-level operation — proportion
//	solving, combinatorial model search, differential ranking — is defined
//	purely in terms of this space and its metric.
//
// ✨ Key guarantees:
//   - Dimension is fixed by the type: a Vector always has exactly Dim (25)
//     components, so metric calls can never see mismatched lengths.
//   - Finiteness is enforced at the boundary: the slice constructors reject
//     NaN/±Inf components with ErrNotFinite and wrong lengths with
//     ErrBadDimension; values built from them are safe everywhere downstream.
//   - Vectors are plain values: copying is cheap, nothing is mutated in place.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/admix/coords"
//
//	v, err := coords.FromSlice(cs) // cs must hold exactly 25 finite floats
//	if err != nil {
//	  // coords.ErrBadDimension or coords.ErrNotFinite
//	}
//	d := coords.Distance(v, other) // symmetric, non-negative, d(v,v)==0
//
// Complexity: all operations are O(Dim) time, O(1) extra space.
package coords

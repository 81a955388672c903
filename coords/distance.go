// Package coords: the metric of the coordinate space.
package coords

import "math"

// Distance returns the Euclidean (L2) distance between a and b:
// the square root of the sum of squared component-wise differences.
//
// Properties (verified by tests):
//   - Distance(a, a) == 0
//   - Distance(a, b) == Distance(b, a)
//   - Distance(a, b) >= 0
//
// The two operands share the fixed Dim, so a length mismatch is impossible
// by construction; there is no recoverable-error path here.
//
// Complexity: O(Dim) time, O(1) space.
func Distance(a, b Vector) float64 {
	var (
		sum float64 // accumulated squared difference
		d   float64 // per-component difference
		i   int     // component index
	)
	for i = 0; i < Dim; i++ {
		d = a[i] - b[i]
		sum += d * d
	}

	return math.Sqrt(sum)
}

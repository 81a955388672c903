// Package model - lazy lexicographic k-subset enumeration.
//
// The generator is deliberately minimal: a cursor over index combinations in
// strictly increasing lexicographic order, advanced one step at a time. No
// slice of all C(n,k) combinations is ever materialized, so a caller (or a
// cancelled context) can stop the stream at any point with O(k) state lost.
package model

// combGen enumerates all k-subsets of {0,…,n-1} as ascending index slices in
// lexicographic order: {0,1,…,k-1} first, {n-k,…,n-1} last.
//
// Zero value is not usable; construct with newCombGen.
type combGen struct {
	n, k    int   // universe size and subset size, 0 < k <= n
	idx     []int // current combination, ascending indices
	started bool  // false until the first next call emits {0..k-1}
}

// newCombGen returns a generator over k-subsets of {0,…,n-1}.
// Callers must ensure 0 < k <= n; Search validates this upfront.
func newCombGen(n, k int) *combGen {
	return &combGen{n: n, k: k, idx: make([]int, k)}
}

// next advances the cursor to the next combination and reports whether one
// exists. The returned slice is the generator's internal buffer: it is valid
// until the following next call, and callers that retain it must copy.
//
// Complexity: amortized O(1) per step, O(k) worst case.
func (g *combGen) next() ([]int, bool) {
	// First emission: the identity combination {0,1,…,k-1}.
	if !g.started {
		g.started = true
		for i := 0; i < g.k; i++ {
			g.idx[i] = i
		}

		return g.idx, true
	}

	// Find the rightmost index that can still be incremented: idx[i] may
	// grow up to n-k+i while keeping room for the suffix.
	i := g.k - 1
	for i >= 0 && g.idx[i] == g.n-g.k+i {
		i--
	}
	if i < 0 {
		return nil, false // exhausted
	}

	// Increment it and reset the suffix to the minimal ascending run.
	g.idx[i]++
	for j := i + 1; j < g.k; j++ {
		g.idx[j] = g.idx[j-1] + 1
	}

	return g.idx, true
}

// binomial returns C(n, k), the number of k-subsets of an n-element set.
// Overflow is not a practical concern at this module's scale (n <= a few
// dozen, k <= 6 ⇒ well inside int64).
//
// Complexity: O(min(k, n-k)).
func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}

	return result
}

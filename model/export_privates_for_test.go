// Package model: narrow re-exports of private helpers for white-box tests.
// Test-only file; keep the surface minimal.
package model

// NewCombGenForTest exposes the lazy combination generator.
func NewCombGenForTest(n, k int) *combGen { return newCombGen(n, k) }

// Next exposes combGen.next for tests.
func (g *combGen) Next() ([]int, bool) { return g.next() }

// BinomialForTest exposes binomial.
func BinomialForTest(n, k int) int { return binomial(n, k) }

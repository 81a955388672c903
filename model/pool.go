// Package model - candidate pool construction (the reducer step).
//
// Two reduction modes bound the combinatorial search space before
// enumeration:
//   - explicit pools: NewPool deduplicates a caller-supplied point list;
//   - nearest-K pre-filter: NearestK keeps only the K populations closest to
//     the target, for "closest populations" style searches over a large
//     reference universe.
package model

import (
	"sort"

	"github.com/katalvlaran/admix/coords"
)

// Pool is an ordered, name-deduplicated collection of candidate points
// eligible to participate as model sources for one search request. It is an
// immutable request-scoped snapshot: build it, search it, discard it.
type Pool struct {
	points []coords.NamedPoint // candidates in stable canonical order
}

// NewPool builds a Pool from points, deduplicating by name.
//
// Duplicate policy: the FIRST occurrence of a name wins and later ones are
// dropped. This is deliberate - callers merge several collections (saved
// samples, reference table) in priority order and expect the earlier
// collection to shadow the later one.
//
// Complexity: O(n) time and space.
func NewPool(points []coords.NamedPoint) *Pool {
	var (
		kept = make([]coords.NamedPoint, 0, len(points))
		seen = make(map[string]struct{}, len(points))
		ok   bool
	)
	for _, pt := range points {
		if _, ok = seen[pt.Name]; ok {
			continue // first occurrence wins
		}
		seen[pt.Name] = struct{}{}
		kept = append(kept, pt)
	}

	return &Pool{points: kept}
}

// NearestK reduces universe to the k points closest to target, in ascending
// distance order. The universe is name-deduplicated first (first occurrence
// wins, as in NewPool); exact distance ties keep the original universe order
// (stable sort), so the result is reproducible for a fixed universe ordering.
//
// The returned pool has size min(k, deduplicated universe size); k <= 0
// yields an empty pool.
//
// Complexity: O(n·Dim + n log n) time, O(n) space.
func NearestK(target coords.Vector, universe []coords.NamedPoint, k int) *Pool {
	deduped := NewPool(universe)
	if k <= 0 {
		return &Pool{}
	}

	// Stage 1: measure every candidate once.
	type scored struct {
		pt   coords.NamedPoint
		dist float64
	}
	all := make([]scored, len(deduped.points))
	for i, pt := range deduped.points {
		all[i] = scored{pt: pt, dist: coords.Distance(target, pt.Vec)}
	}

	// Stage 2: stable ascending sort - ties resolved by universe order.
	sort.SliceStable(all, func(i, j int) bool { return all[i].dist < all[j].dist })

	// Stage 3: truncate to k.
	if k > len(all) {
		k = len(all)
	}
	kept := make([]coords.NamedPoint, k)
	for i := 0; i < k; i++ {
		kept[i] = all[i].pt
	}

	return &Pool{points: kept}
}

// Len returns the number of candidates in the pool.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}

	return len(p.points)
}

// At returns the candidate at canonical index i. Index validity is the
// caller's contract; out-of-range access is a programming error and panics
// like any slice access.
func (p *Pool) At(i int) coords.NamedPoint {
	return p.points[i]
}

// Names returns the candidate names in canonical pool order as a fresh slice.
//
// Complexity: O(n).
func (p *Pool) Names() []string {
	out := make([]string, len(p.points))
	for i, pt := range p.points {
		out[i] = pt.Name
	}

	return out
}

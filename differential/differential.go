// Package differential - two-target closeness ranking.
package differential

import (
	"sort"

	"github.com/katalvlaran/admix/coords"
)

// DefaultTopN is the default truncation applied to each side of the ranking.
const DefaultTopN = 15

// Options configures a differential ranking.
//
// TopN – maximum entries kept per side. Zero or negative disables
// truncation and returns every qualifying population.
type Options struct {
	TopN int // per-side truncation; <= 0 ⇒ unlimited
}

// DefaultOptions returns the canonical configuration (TopN = DefaultTopN).
func DefaultOptions() Options {
	return Options{TopN: DefaultTopN}
}

// Entry is one population's position in the ranking.
type Entry struct {
	Name  string  // population display name
	DistA float64 // Distance(x, a)
	DistB float64 // Distance(x, b)
	Diff  float64 // DistA - DistB; the ranking key
}

// Result holds the two sides of a differential ranking.
//
// CloserToA lists populations with Diff < 0, ascending by Diff (the most
// strongly a-leaning first). CloserToB lists populations with Diff > 0,
// descending by Diff. Populations exactly equidistant (Diff == 0) appear on
// neither side. Equal differences keep the original universe order.
type Result struct {
	CloserToA []Entry
	CloserToB []Entry
}

// Rank computes the signed distance difference of every universe member
// against targets a and b and splits the universe into the two sorted,
// truncated sides described on Result.
//
// The universe is read as-is: no deduplication, no validation beyond what
// coords already guarantees. An empty universe yields two empty sides.
//
// Complexity: O(n·Dim + n log n) time, O(n) space.
func Rank(a, b coords.Vector, universe []coords.NamedPoint, opts Options) Result {
	var (
		toA = make([]Entry, 0, len(universe))
		toB = make([]Entry, 0, len(universe))
		e   Entry
	)

	// Stage 1: measure both distances once per population and split by sign.
	for _, pt := range universe {
		e = Entry{
			Name:  pt.Name,
			DistA: coords.Distance(pt.Vec, a),
			DistB: coords.Distance(pt.Vec, b),
		}
		e.Diff = e.DistA - e.DistB
		switch {
		case e.Diff < 0:
			toA = append(toA, e)
		case e.Diff > 0:
			toB = append(toB, e)
		}
	}

	// Stage 2: per-side stable sort - ties keep universe order.
	sort.SliceStable(toA, func(i, j int) bool { return toA[i].Diff < toA[j].Diff })
	sort.SliceStable(toB, func(i, j int) bool { return toB[i].Diff > toB[j].Diff })

	// Stage 3: truncate each side to TopN when configured.
	if opts.TopN > 0 {
		if len(toA) > opts.TopN {
			toA = toA[:opts.TopN]
		}
		if len(toB) > opts.TopN {
			toB = toB[:opts.TopN]
		}
	}

	return Result{CloserToA: toA, CloserToB: toB}
}

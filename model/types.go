// Package model: options, report types and sentinel errors.
//
// This file defines ONLY package-level types and sentinels. All search
// algorithms return these sentinels and tests match them via errors.Is.
package model

import (
	"errors"
	"sort"
)

// MinOrder is the smallest meaningful model order: a 1-way "model" is a
// plain distance lookup, handled by the engine's closest-populations path.
const MinOrder = 2

// DefaultMaxOrder bounds the default order set produced by DefaultOptions.
// Six-way models are the largest order observed in this domain.
const DefaultMaxOrder = 6

// Sentinel errors returned by the model search.
var (
	// ErrNilPool indicates that a nil *Pool was passed to Search.
	ErrNilPool = errors.New("model: candidate pool is nil")

	// ErrNoOrders indicates that the requested order set was empty.
	ErrNoOrders = errors.New("model: no model orders requested")

	// ErrBadOrder indicates a requested order below MinOrder.
	ErrBadOrder = errors.New("model: model order must be at least 2")

	// ErrPoolTooSmall indicates that the candidate pool has fewer members
	// than the largest requested model order, so no valid combination can be
	// formed for that order. Raised before any solving is attempted.
	ErrPoolTooSmall = errors.New("model: candidate pool smaller than requested model order")
)

// Options configures a combinatorial model search.
//
// Orders  – the model orders to compute (e.g. {2,4} or {2,3,4,5,6}). The set
// is canonicalized (sorted ascending, deduplicated) before searching.
// Workers – number of concurrent solver goroutines per order; values < 1
// fall back to runtime.GOMAXPROCS(0).
// RCond   – relative rank cutoff forwarded to mixture.Solve; zero or
// negative falls back to mixture.DefaultRCond.
type Options struct {
	Orders  []int   // model orders to search
	Workers int     // solver parallelism (0 ⇒ GOMAXPROCS)
	RCond   float64 // SVD rank cutoff forwarded to the solver
}

// DefaultOptions returns the canonical search configuration: the full
// observed order range 2..6, GOMAXPROCS workers and the default rank cutoff.
func DefaultOptions() Options {
	orders := make([]int, 0, DefaultMaxOrder-MinOrder+1)
	for k := MinOrder; k <= DefaultMaxOrder; k++ {
		orders = append(orders, k)
	}

	return Options{Orders: orders}
}

// Best is the winning combination for a single model order: the member
// names, their mixture proportions and the residual fit distance.
type Best struct {
	// Order is the model order k this result was computed for.
	Order int

	// Names lists the winning combination's members in canonical pool order.
	Names []string

	// Proportions holds the mixture weight of each member, aligned with
	// Names. Fractions in [0,1]; all zero when Degenerate.
	Proportions []float64

	// Residual is the Euclidean distance between the target and the model's
	// reconstruction.
	Residual float64

	// Degenerate marks an all-clipped fit (see mixture.Result.Degenerate).
	Degenerate bool
}

// Percentages returns the proportions scaled by 100, in Names order.
// Formatting (e.g. two decimals) is the presentation layer's concern; the
// engine itself only ever emits raw fractions.
func (b Best) Percentages() []float64 {
	out := make([]float64, len(b.Proportions))
	for i, p := range b.Proportions {
		out[i] = p * 100
	}

	return out
}

// Report collects the per-order winners of one search request, ordered by
// ascending model order. Orders that could not be searched are simply absent,
// never represented as errors. A Report is built once per request, handed to
// the caller and then discarded; the engine keeps no state across requests.
type Report struct {
	// Bests holds one entry per computed order, ascending by Order.
	Bests []Best

	// Solves counts the solver invocations performed across all orders.
	Solves int
}

// Order returns the best fit for model order k and whether that order was
// computed.
//
// Complexity: O(log len(Bests)).
func (r Report) Order(k int) (Best, bool) {
	i := sort.Search(len(r.Bests), func(i int) bool { return r.Bests[i].Order >= k })
	if i < len(r.Bests) && r.Bests[i].Order == k {
		return r.Bests[i], true
	}

	return Best{}, false
}

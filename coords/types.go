// Package coords: core types and sentinel errors.
//
// This file defines ONLY the value types of the coordinate space and the
// package-level sentinels used by constructors. All validation happens here,
// at ingestion time; downstream packages may assume every Vector is finite
// and exactly Dim-dimensional.
package coords

import (
	"errors"
	"math"
)

// Dim is the dimensionality of the G25 reduced coordinate space.
// Every Vector has exactly Dim components; the value is fixed at compile time.
const Dim = 25

// Sentinel errors returned by the coords constructors.
var (
	// ErrBadDimension indicates that a slice did not hold exactly Dim components.
	ErrBadDimension = errors.New("coords: expected exactly 25 components")

	// ErrNotFinite indicates that a component was NaN or ±Inf.
	ErrNotFinite = errors.New("coords: component is NaN or Inf")
)

// Vector is a point in the G25 coordinate space. It is a plain value type:
// assignment copies, and no operation in this module mutates one in place.
type Vector [Dim]float64

// NamedPoint pairs a Vector with a display name. It represents either a user
// sample or a reference population; name uniqueness is scoped to whichever
// collection the point is drawn from, never globally.
type NamedPoint struct {
	Name string // display name, unique within its collection
	Vec  Vector // position in the coordinate space
}

// New builds a Vector from exactly Dim variadic components.
//
// Contract:
//   - len(components) == Dim, every component finite.
//
// Errors: ErrBadDimension, ErrNotFinite.
//
// Complexity: O(Dim).
func New(components ...float64) (Vector, error) {
	return FromSlice(components)
}

// FromSlice builds a Vector from a slice of exactly Dim finite components.
// The slice is copied; the caller keeps ownership of cs.
//
// Errors: ErrBadDimension when len(cs) != Dim, ErrNotFinite on NaN/±Inf.
//
// Complexity: O(Dim).
func FromSlice(cs []float64) (Vector, error) {
	var v Vector

	// Stage 1: shape check.
	if len(cs) != Dim {
		return v, ErrBadDimension
	}

	// Stage 2: finiteness check + copy in one pass.
	var (
		i int     // component index
		c float64 // current component
	)
	for i = 0; i < Dim; i++ {
		c = cs[i]
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Vector{}, ErrNotFinite
		}
		v[i] = c
	}

	return v, nil
}

// Slice returns the components as a fresh []float64 of length Dim.
// The result is a copy; mutating it does not affect v.
//
// Complexity: O(Dim).
func (v Vector) Slice() []float64 {
	out := make([]float64, Dim)
	copy(out, v[:])

	return out
}

// Package engine - tagged target specification and its resolution.
//
// The historical system accepted "either a saved sample name, a reference
// population name, or raw coordinates" dynamically; here the union is an
// explicit tagged variant resolved exactly once, before the core runs. The
// algorithm packages never see a TargetSpec, only the resolved Vector.
package engine

import (
	"fmt"

	"github.com/katalvlaran/admix/coords"
)

// TargetKind discriminates the TargetSpec variants.
type TargetKind uint8

const (
	// TargetInline carries the vector directly.
	TargetInline TargetKind = iota

	// TargetByName refers to a saved user sample by name.
	TargetByName

	// TargetByPopulation refers to a reference population by name.
	TargetByPopulation
)

// TargetSpec names a target for one request. Construct with Inline, ByName
// or ByPopulation; the zero value is an inline zero vector.
type TargetSpec struct {
	Kind TargetKind
	Name string        // set for ByName / ByPopulation
	Vec  coords.Vector // set for Inline
}

// Inline wraps an already-resolved vector.
func Inline(v coords.Vector) TargetSpec {
	return TargetSpec{Kind: TargetInline, Vec: v}
}

// ByName refers to a saved user sample.
func ByName(name string) TargetSpec {
	return TargetSpec{Kind: TargetByName, Name: name}
}

// ByPopulation refers to a reference population.
func ByPopulation(name string) TargetSpec {
	return TargetSpec{Kind: TargetByPopulation, Name: name}
}

// label returns a human-readable identifier for logging: the referenced name
// or "inline" for raw vectors.
func (s TargetSpec) label() string {
	if s.Kind == TargetInline {
		return "inline"
	}

	return s.Name
}

// resolve turns a TargetSpec into a plain vector against the current
// snapshots. Errors wrap the sentinel with the offending name.
func (e *Engine) resolve(s TargetSpec) (coords.Vector, error) {
	switch s.Kind {
	case TargetInline:
		return s.Vec, nil

	case TargetByName:
		pt, ok := e.samples.Load().Lookup(s.Name)
		if !ok {
			return coords.Vector{}, fmt.Errorf("sample %q: %w", s.Name, ErrUnknownSample)
		}

		return pt.Vec, nil

	case TargetByPopulation:
		pt, ok := e.refs.Load().Lookup(s.Name)
		if !ok {
			return coords.Vector{}, fmt.Errorf("population %q: %w", s.Name, ErrUnknownPopulation)
		}

		return pt.Vec, nil

	default:
		return coords.Vector{}, fmt.Errorf("kind %d: %w", s.Kind, ErrBadTargetKind)
	}
}

// Package engine - immutable name-indexed snapshots of point collections.
package engine

import "github.com/katalvlaran/admix/coords"

// Table is an immutable snapshot of a named-point collection (the reference
// population universe, or a user's saved samples). Build one, swap it into
// the engine, and never touch it again: reloads produce a NEW Table that
// atomically replaces the old one, so a search holding the previous snapshot
// keeps reading consistent data.
type Table struct {
	points []coords.NamedPoint
	index  map[string]int // name -> position in points
}

// NewTable builds a snapshot from points, deduplicating by name with the
// same first-occurrence-wins policy as model.NewPool.
//
// Complexity: O(n) time and space.
func NewTable(points []coords.NamedPoint) *Table {
	t := &Table{
		points: make([]coords.NamedPoint, 0, len(points)),
		index:  make(map[string]int, len(points)),
	}
	for _, pt := range points {
		if _, ok := t.index[pt.Name]; ok {
			continue // first occurrence wins
		}
		t.index[pt.Name] = len(t.points)
		t.points = append(t.points, pt)
	}

	return t
}

// Lookup returns the point registered under name, if any.
//
// Complexity: O(1).
func (t *Table) Lookup(name string) (coords.NamedPoint, bool) {
	i, ok := t.index[name]
	if !ok {
		return coords.NamedPoint{}, false
	}

	return t.points[i], true
}

// Points returns the snapshot's points in stable insertion order. The slice
// is the table's backing storage: it is shared, read-only by contract, and
// must not be mutated by callers.
func (t *Table) Points() []coords.NamedPoint {
	return t.points
}

// Len returns the number of points in the snapshot.
func (t *Table) Len() int {
	return len(t.points)
}

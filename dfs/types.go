// Package dfs defines the visitation states and sentinel errors shared by the
// ring searches.
package dfs

import "errors"

// Visitation states used by the depth-first walks.
const (
	White  = iota // White: the atom has not been visited yet.
	Gray          // Gray: the atom is on the current search path.
	Target        // Target: the atom the bounded ring search is trying to reach.
)

var (
	// ErrMoleculeNil is returned when a nil molecule or snapshot is passed in.
	ErrMoleculeNil = errors.New("dfs: molecule is nil")
)

// Rings is the result of ring membership perception: Atoms[i] reports whether
// atom i lies on a cycle and Bonds[j] whether bond j does.
type Rings struct {
	Atoms []bool
	Bonds []bool
}

// Count returns the number of ring atoms and ring bonds.
func (r Rings) Count() (atoms, bonds int) {
	for _, f := range r.Atoms {
		if f {
			atoms++
		}
	}
	for _, f := range r.Bonds {
		if f {
			bonds++
		}
	}

	return atoms, bonds
}

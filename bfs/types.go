// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Snapshot.
package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrStartAtomNotFound is returned when the start atom is out of range.
	ErrStartAtomNotFound = errors.New("bfs: start atom not found")

	// ErrNilSnapshot is returned if a nil snapshot pointer is passed.
	ErrNilSnapshot = errors.New("bfs: snapshot is nil")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnVisit is called when visiting an atom. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(atom, depth int) error

	// FilterBond can skip a bond by returning false. Called for each
	// bond crossed from atom 'from' to atom 'to'.
	FilterBond func(bond, from, to int) bool
}

// DefaultOptions returns a no-op visit hook and no filtering.
func DefaultOptions() Options {
	return Options{
		OnVisit:    func(int, int) error { return nil },
		FilterBond: func(int, int, int) bool { return true },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from it stops the search.
func WithOnVisit(fn func(atom, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterBond skips bonds for which fn returns false.
func WithFilterBond(fn func(bond, from, to int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterBond = fn
		}
	}
}

// Result holds the outcome of a traversal. Depth, Parent and ParentBond are
// indexed by atom; unreached atoms have Depth -1, and the start and unreached
// atoms have Parent and ParentBond -1.
type Result struct {
	Order      []int
	Depth      []int
	Parent     []int
	ParentBond []int
}

// File: smallring.go
// Role: Ring-size-bounded search ("is this bond in a ring of at most N atoms").
// Determinism:
//   - Neighbours are explored in adjacency order; the answer does not depend on it.
// Concurrency:
//   - Read-only on the snapshot; each call allocates its own marks.

package dfs

import "github.com/katalvlaran/stereo/core"

// InSmallRing reports whether bond lies on a cycle of at most limit atoms.
//
// The bond's ring flag gates the search: an unflagged (or unknown) bond is
// never in a small ring. Otherwise Begin is marked as the Target and a depth
// bounded DFS starts from End with Begin as its predecessor; reaching the
// Target within limit atoms succeeds.
//
// Complexity: O(d^limit) worst case, d = maximum degree.
func InSmallRing(s *core.Snapshot, bond, limit int) bool {
	b := s.Bond(bond)
	if b == nil || !b.InRing {
		return false
	}

	marks := make([]int, s.AtomCount())
	marks[b.Begin] = Target

	return visitSmallRing(s, marks, b.End, b.Begin, 1, limit)
}

// visitSmallRing walks from atom, never stepping straight back to prev.
// Gray marks prevent revisiting atoms on the current path and are cleared on
// backtrack so sibling branches may reuse them.
func visitSmallRing(s *core.Snapshot, marks []int, atom, prev, depth, limit int) bool {
	// 1) Target reached.
	if marks[atom] == Target {
		return true
	}
	// 2) Out of budget or already on the path.
	if depth == limit || marks[atom] == Gray {
		return false
	}

	// 3) Descend.
	marks[atom] = Gray
	for _, nbr := range s.Neighbors(atom) {
		if nbr != prev && visitSmallRing(s, marks, nbr, atom, depth+1, limit) {
			return true
		}
	}

	// 4) Backtrack.
	marks[atom] = White

	return false
}

// AtomInSmallRing reports whether any bond at atom lies on a cycle of at most
// limit atoms. An atom without the ring flag never does.
func AtomInSmallRing(s *core.Snapshot, atom, limit int) bool {
	a := s.Atom(atom)
	if a == nil || !a.InRing {
		return false
	}
	for _, bi := range s.BondsOf(atom) {
		if InSmallRing(s, bi, limit) {
			return true
		}
	}

	return false
}

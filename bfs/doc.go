// Package bfs provides breadth-first search over a core.Snapshot,
// returning bond-count distances, parent links, and visit order.
//
// What
//
//   - Explore atoms in non-decreasing bond distance from a start atom.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: per-atom distance in bonds (-1 when unreached)
//   - Parent, ParentBond: the BFS tree
//   - Hook: OnVisit (may abort).
//   - Bond filtering via WithFilterBond.
//   - Components labels connected pieces of an atom subset; the
//     stereocentre classifier uses it to group ring systems.
//
// Determinism
//
//	Neighbours are taken in bond insertion order, so the visit sequence is
//	fully reproducible for a given molecule.
//
// Complexity (V = atoms, E = bonds)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(s, 0,
//	    bfs.WithFilterBond(func(bond, from, to int) bool { return s.Bond(bond).InRing }),
//	)
//
// Errors
//
//   - ErrNilSnapshot        if the snapshot pointer is nil.
//   - ErrStartAtomNotFound  if the start atom is out of range.
//   - Wrapped OnVisit errors.
package bfs

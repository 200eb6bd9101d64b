// File: rings.go
// Role: Ring membership perception (bridge detection by DFS low-link).
// Determinism:
//   - Roots are taken in atom index order, neighbours in adjacency order.
// Concurrency:
//   - RingMembership only reads the snapshot. MarkRings writes through the
//     Molecule's own lock.

package dfs

import "github.com/katalvlaran/stereo/core"

// lowLinkWalker carries the state of one bridge-finding pass.
type lowLinkWalker struct {
	s     *core.Snapshot
	disc  []int // discovery time, 0 = unvisited
	low   []int // lowest discovery time reachable through one back edge
	time  int
	rings Rings
}

// RingMembership returns the ring flags of every atom and bond of s.
//
// A bond is in a ring exactly when it is not a bridge; an atom is in a ring
// when at least one of its bonds is.
//
// Implementation:
//   - Stage 1: Run a low-link DFS from every unvisited atom (forest traversal).
//   - Stage 2: A tree bond u-v is a bridge iff low[v] > disc[u]; every other
//     bond is flagged as a ring bond.
//   - Stage 3: Flag both endpoints of every ring bond.
//
// Complexity: Time O(V + E), Memory O(V).
func RingMembership(s *core.Snapshot) (Rings, error) {
	if s == nil {
		return Rings{}, ErrMoleculeNil
	}

	n := s.AtomCount()
	w := &lowLinkWalker{
		s:    s,
		disc: make([]int, n),
		low:  make([]int, n),
		rings: Rings{
			Atoms: make([]bool, n),
			Bonds: make([]bool, s.BondCount()),
		},
	}

	// 1) Forest traversal.
	for v := 0; v < n; v++ {
		if w.disc[v] == 0 {
			w.visit(v, -1)
		}
	}

	// 2) Every bond that survived as a non-bridge is a ring bond.
	for j := range w.rings.Bonds {
		if w.rings.Bonds[j] {
			b := s.Bond(j)
			w.rings.Atoms[b.Begin] = true
			w.rings.Atoms[b.End] = true
		}
	}

	return w.rings, nil
}

// visit explores atom u, entered through bond 'via' (-1 for a root).
func (w *lowLinkWalker) visit(u, via int) {
	w.time++
	w.disc[u] = w.time
	w.low[u] = w.time

	nbrs := w.s.Neighbors(u)
	bonds := w.s.BondsOf(u)
	for k, v := range nbrs {
		bi := bonds[k]
		if bi == via {
			continue
		}
		if w.disc[v] == 0 {
			// Tree edge: recurse, then pull up the child's low-link.
			w.visit(v, bi)
			w.low[u] = min(w.low[u], w.low[v])
			w.rings.Bonds[bi] = w.low[v] <= w.disc[u]
			continue
		}
		// Back edge (or the far side of one already seen): always a ring bond.
		w.low[u] = min(w.low[u], w.disc[v])
		w.rings.Bonds[bi] = true
	}
}

// MarkRings perceives ring membership on a snapshot of m and writes the flags
// back into m. It returns the flags it wrote.
//
// Errors:
//   - ErrMoleculeNil: if m is nil.
func MarkRings(m *core.Molecule) (Rings, error) {
	if m == nil {
		return Rings{}, ErrMoleculeNil
	}
	rings, err := RingMembership(m.Snapshot())
	if err != nil {
		return Rings{}, err
	}
	if err = m.SetRingMembership(rings.Atoms, rings.Bonds); err != nil {
		// Only possible if atoms were appended between the two calls.
		return Rings{}, err
	}

	return rings, nil
}

// MarkSnapshotRings perceives ring membership of s and stores it on s itself.
func MarkSnapshotRings(s *core.Snapshot) (Rings, error) {
	rings, err := RingMembership(s)
	if err != nil {
		return Rings{}, err
	}

	return rings, s.SetRingMembership(rings.Atoms, rings.Bonds)
}

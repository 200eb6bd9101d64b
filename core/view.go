// File: view.go
// Role: Snapshot, the immutable lock-free read view of a Molecule.
// Determinism:
//   - A Snapshot preserves atom and bond indices, Begin/End order and adjacency order.
// Concurrency:
//   - Snapshot() holds the source read lock while copying; the result shares nothing
//     mutable with the source.
//   - Snapshot readers take no locks. SetRingMembership is the only writer and must
//     happen before the snapshot is shared.

package core

import "github.com/katalvlaran/stereo/geometry"

// Snapshot is a read-only copy of a Molecule taken at one point in time.
//
// Accessors return pointers into the snapshot's own storage to keep hot loops
// allocation free; callers must treat them as immutable.
type Snapshot struct {
	g graph
}

// Snapshot returns a deep copy of the molecule suitable for lock-free reading.
//
// Complexity: O(V + E).
func (m *Molecule) Snapshot() *Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return &Snapshot{g: m.g.clone()}
}

// clone copies every slice and the pair index. Point pointers are shared: they
// are never written after AddAtom.
func (g *graph) clone() graph {
	out := graph{
		atoms:    append([]Atom(nil), g.atoms...),
		bonds:    append([]Bond(nil), g.bonds...),
		adj:      make([][]int, len(g.adj)),
		adjBonds: make([][]int, len(g.adjBonds)),
		pairs:    make(map[pair]int, len(g.pairs)),
	}
	for i := range g.adj {
		out.adj[i] = append([]int(nil), g.adj[i]...)
		out.adjBonds[i] = append([]int(nil), g.adjBonds[i]...)
	}
	for k, v := range g.pairs {
		out.pairs[k] = v
	}

	return out
}

// AtomCount returns the number of atoms.
func (s *Snapshot) AtomCount() int { return len(s.g.atoms) }

// BondCount returns the number of bonds.
func (s *Snapshot) BondCount() int { return len(s.g.bonds) }

// Atom returns atom i, or nil if i is out of range.
func (s *Snapshot) Atom(i int) *Atom {
	if !s.g.hasAtom(i) {
		return nil
	}

	return &s.g.atoms[i]
}

// Bond returns bond i, or nil if i is out of range.
func (s *Snapshot) Bond(i int) *Bond {
	if !s.g.hasBond(i) {
		return nil
	}

	return &s.g.bonds[i]
}

// Neighbors returns the atoms bonded to i in bond insertion order.
// The slice belongs to the snapshot and must not be modified.
func (s *Snapshot) Neighbors(i int) []int {
	if !s.g.hasAtom(i) {
		return nil
	}

	return s.g.adj[i]
}

// BondsOf returns the indices of the bonds at atom i, parallel to Neighbors(i).
// The slice belongs to the snapshot and must not be modified.
func (s *Snapshot) BondsOf(i int) []int {
	if !s.g.hasAtom(i) {
		return nil
	}

	return s.g.adjBonds[i]
}

// Degree returns the number of explicit bonds at atom i (0 when out of range).
func (s *Snapshot) Degree(i int) int { return len(s.Neighbors(i)) }

// BondIndex returns the index of the bond joining u and v, or -1.
// Complexity: O(1).
func (s *Snapshot) BondIndex(u, v int) int {
	idx, ok := s.g.pairs[pairOf(u, v)]
	if !ok {
		return -1
	}

	return idx
}

// BondBetween returns the bond joining u and v, or nil.
// Complexity: O(1).
func (s *Snapshot) BondBetween(u, v int) *Bond {
	return s.Bond(s.BondIndex(u, v))
}

// ImplicitH returns the implicit hydrogen count of atom i, treating "unknown" as zero.
func (s *Snapshot) ImplicitH(i int) int {
	a := s.Atom(i)
	if a == nil || a.ImplicitH < 0 {
		return 0
	}

	return a.ImplicitH
}

// Point2 returns the 2D coordinates of atom i and whether it has any.
func (s *Snapshot) Point2(i int) (geometry.Point2, bool) {
	a := s.Atom(i)
	if a == nil || a.Point2 == nil {
		return geometry.Point2{}, false
	}

	return *a.Point2, true
}

// Point3 returns the 3D coordinates of atom i and whether it has any.
func (s *Snapshot) Point3(i int) (geometry.Point3, bool) {
	a := s.Atom(i)
	if a == nil || a.Point3 == nil {
		return geometry.Point3{}, false
	}

	return *a.Point3, true
}

// SetRingMembership overwrites the ring flags on this snapshot only.
//
// Errors:
//   - ErrBadRingMembership: if either slice length does not match.
func (s *Snapshot) SetRingMembership(atoms, bonds []bool) error {
	return s.g.setRings(atoms, bonds)
}

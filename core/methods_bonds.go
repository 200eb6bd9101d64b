// File: methods_bonds.go
// Role: Bond APIs (AddBond, Bond, BondCount, BondBetween, SetRingMembership).
// Determinism:
//   - Bond indices are assigned in insertion order starting at 0.
//   - Begin/End are stored exactly as given; they are never normalised.
// Concurrency:
//   - Mutators hold the write lock; queries hold the read lock.

package core

// AddBond joins atoms u and v with a bond of the given order and returns the
// bond index. u becomes Bond.Begin and v becomes Bond.End.
//
// Implementation:
//   - Stage 1: Validate endpoints (existence, u != v).
//   - Stage 2: Reject a second bond on the same pair.
//   - Stage 3: Append the bond, index the pair, extend both adjacency rows.
//
// Errors:
//   - ErrAtomNotFound: if u or v is out of range.
//   - ErrLoopNotAllowed: if u == v.
//   - ErrMultiBondNotAllowed: if u and v are already bonded.
//
// Complexity: O(1) amortized.
func (m *Molecule) AddBond(u, v int, order Order, opts ...BondOption) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// 1) Endpoints.
	if !m.g.hasAtom(u) || !m.g.hasAtom(v) {
		return -1, ErrAtomNotFound
	}
	if u == v {
		return -1, ErrLoopNotAllowed
	}

	// 2) Simple graph only.
	key := pairOf(u, v)
	if _, dup := m.g.pairs[key]; dup {
		return -1, ErrMultiBondNotAllowed
	}

	// 3) Store.
	b := Bond{Index: len(m.g.bonds), Begin: u, End: v, Order: order}
	for _, opt := range opts {
		opt(&b)
	}
	m.g.bonds = append(m.g.bonds, b)
	m.g.pairs[key] = b.Index
	m.g.adj[u] = append(m.g.adj[u], v)
	m.g.adjBonds[u] = append(m.g.adjBonds[u], b.Index)
	m.g.adj[v] = append(m.g.adj[v], u)
	m.g.adjBonds[v] = append(m.g.adjBonds[v], b.Index)

	return b.Index, nil
}

// BondCount returns the number of bonds.
func (m *Molecule) BondCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.g.bonds)
}

// Bond returns a copy of bond i.
//
// Errors:
//   - ErrBondNotFound: if i is out of range.
func (m *Molecule) Bond(i int) (Bond, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.g.hasBond(i) {
		return Bond{}, ErrBondNotFound
	}

	return m.g.bonds[i], nil
}

// BondBetween returns a copy of the bond joining u and v, in either direction.
//
// Errors:
//   - ErrBondNotFound: if u and v are not bonded.
func (m *Molecule) BondBetween(u, v int) (Bond, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx, ok := m.g.pairs[pairOf(u, v)]
	if !ok {
		return Bond{}, ErrBondNotFound
	}

	return m.g.bonds[idx], nil
}

// SetBondStereo replaces the display annotation of bond i.
//
// Errors:
//   - ErrBondNotFound: if i is out of range.
func (m *Molecule) SetBondStereo(i int, s BondStereo) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.g.hasBond(i) {
		return ErrBondNotFound
	}
	m.g.bonds[i].Stereo = s

	return nil
}

// SetRingMembership overwrites the ring flags of every atom and bond.
// atoms[i] is the flag for atom i and bonds[j] the flag for bond j.
//
// Errors:
//   - ErrBadRingMembership: if either slice length does not match.
func (m *Molecule) SetRingMembership(atoms, bonds []bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.g.setRings(atoms, bonds)
}

func (g *graph) setRings(atoms, bonds []bool) error {
	if len(atoms) != len(g.atoms) || len(bonds) != len(g.bonds) {
		return ErrBadRingMembership
	}
	for i := range g.atoms {
		g.atoms[i].InRing = atoms[i]
	}
	for j := range g.bonds {
		g.bonds[j].InRing = bonds[j]
	}

	return nil
}

// File: methods_atoms.go
// Role: Atom APIs (AddAtom, Atom, AtomCount, Neighbors, Degree).
// Determinism:
//   - Atom indices are assigned in insertion order starting at 0.
//   - Neighbors() lists partners in bond insertion order.
// Concurrency:
//   - Mutators hold the write lock; queries hold the read lock.

package core

import "strings"

// AddAtom appends an atom with the given element symbol and returns its index.
//
// The symbol is trimmed; an unknown symbol is accepted with AtomicNumber 0 so
// pseudo atoms ("R", "*") can take part in the graph. ImplicitH defaults to -1
// ("unknown") unless WithImplicitH is given.
//
// Errors:
//   - ErrEmptySymbol: if symbol is blank.
//
// Complexity: O(1) amortized.
func (m *Molecule) AddAtom(symbol string, opts ...AtomOption) (int, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return -1, ErrEmptySymbol
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// 1) Build the atom with its defaults, then apply options.
	a := Atom{
		Index:        len(m.g.atoms),
		Symbol:       symbol,
		AtomicNumber: AtomicNumber(symbol),
		ImplicitH:    -1,
	}
	for _, opt := range opts {
		opt(&a)
	}

	// 2) Register the atom and its (empty) adjacency rows.
	m.g.atoms = append(m.g.atoms, a)
	m.g.adj = append(m.g.adj, nil)
	m.g.adjBonds = append(m.g.adjBonds, nil)

	return a.Index, nil
}

// AtomCount returns the number of atoms.
func (m *Molecule) AtomCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.g.atoms)
}

// Atom returns a copy of atom i.
//
// Errors:
//   - ErrAtomNotFound: if i is out of range.
func (m *Molecule) Atom(i int) (Atom, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.g.hasAtom(i) {
		return Atom{}, ErrAtomNotFound
	}

	return m.g.atoms[i], nil
}

// Neighbors returns a copy of the indices of the atoms bonded to i.
//
// Errors:
//   - ErrAtomNotFound: if i is out of range.
func (m *Molecule) Neighbors(i int) ([]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.g.hasAtom(i) {
		return nil, ErrAtomNotFound
	}

	return append([]int(nil), m.g.adj[i]...), nil
}

// Degree returns the number of explicit bonds at atom i, or -1 if i is out of range.
func (m *Molecule) Degree(i int) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.g.hasAtom(i) {
		return -1
	}

	return len(m.g.adj[i])
}

func (g *graph) hasAtom(i int) bool { return i >= 0 && i < len(g.atoms) }

func (g *graph) hasBond(i int) bool { return i >= 0 && i < len(g.bonds) }

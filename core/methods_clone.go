// File: methods_clone.go
// Role: Cloning molecule instances.
// Determinism:
//   - Clone preserves every index, Begin/End order and adjacency order.
// Concurrency:
//   - Read lock on the source while copying; the clone has its own lock.

package core

// Clone returns a deep copy of the molecule. Edits to either copy do not affect
// the other, which lets callers run perception on many molecules in parallel
// while keeping a pristine original.
//
// Complexity: O(V + E).
func (m *Molecule) Clone() *Molecule {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return &Molecule{g: m.g.clone()}
}

// Molecule returns a new mutable Molecule holding the snapshot's contents,
// including any ring flags set on the snapshot.
func (s *Snapshot) Molecule() *Molecule {
	return &Molecule{g: s.g.clone()}
}

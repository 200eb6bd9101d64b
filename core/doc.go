// Package core provides the in-memory molecular graph used throughout the
// stereo module.
//
// A Molecule is an append-only, thread-safe builder: AddAtom and AddBond
// return stable integer indices, adjacency is kept symmetric, and any two
// bonded atoms resolve to their bond in O(1). Perception never works on the
// Molecule directly. It takes a Snapshot, an immutable copy with the same
// query surface and no locking, so a run sees one consistent graph even if
// the source is being edited elsewhere.
//
// Key Types:
//
//   - Atom: element symbol, optional 2D/3D point, implicit hydrogens, ring flag
//     and the "unspecified parity" marker.
//   - Bond: ordered endpoints (Begin anchors wedges), Order, BondStereo, ring flag.
//   - Molecule: the builder. Mutation under a write lock, queries under a read lock.
//   - Snapshot: a lock-free read view.
//
// Example:
//
//	m := core.NewMolecule()
//	c, _ := m.AddAtom("C", core.WithPoint2(0, 0))
//	o, _ := m.AddAtom("O", core.WithPoint2(1, 0))
//	_, _ = m.AddBond(c, o, core.OrderDouble)
//	s := m.Snapshot()
//	fmt.Println(s.Degree(c)) // 1
//
// Concurrency:
//
//	Molecule methods are safe for concurrent use. A Snapshot is read-only
//	except for SetRingMembership, which a perception run calls once on its own
//	private snapshot before any other read.
package core

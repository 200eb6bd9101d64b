// Package dfs implements the depth-first searches stereo perception needs on a
// core.Snapshot: ring membership (which atoms and bonds lie on any cycle) and
// the ring-size-bounded search used to exclude double bonds and biaryl axes
// that sit inside small rings.
//
// What:
//
//   - RingMembership: bridge detection by DFS low-link. A bond is a ring bond
//     exactly when removing it leaves its endpoints connected.
//   - MarkRings / MarkSnapshotRings: run RingMembership and store the flags on
//     the molecule or on a private snapshot.
//   - InSmallRing / AtomInSmallRing: bounded DFS with White/Gray/Target marks.
//     The ring flags act as a gate, so callers must mark rings first.
//
// Complexity:
//
//   - RingMembership:  Time O(V+E), Memory O(V)
//   - InSmallRing:     Time O(d^limit) worst case, Memory O(V)
//
// Errors:
//
//   - ErrMoleculeNil   molecule or snapshot pointer is nil
package dfs

// File: branch.go
// Role: Constitutional symmetry classes and branch comparison.
// Determinism:
//   - Classes depend only on the snapshot, never on map or goroutine order.
// Concurrency:
//   - Classes are computed lazily on the owning Classifier; not safe for
//     concurrent use.

package stereocenters

import (
	"slices"
	"strings"
)

// orderSpan packs a bond order next to a neighbour class in one int.
const orderSpan = 8

// SameBranch reports whether the branches leaving centre through bonds b1 and
// b2 are constitutionally equivalent: same bond order and the same symmetry
// class at the atom one step out. Bonds not incident to centre never match.
func (c *Classifier) SameBranch(centre, b1, b2 int) bool {
	bond1, bond2 := c.s.Bond(b1), c.s.Bond(b2)
	if bond1 == nil || bond2 == nil || bond1.Order != bond2.Order {
		return false
	}
	n1, n2 := bond1.Other(centre), bond2.Other(centre)
	if n1 < 0 || n2 < 0 {
		return false
	}
	class := c.symmetryClasses()

	return class[n1] == class[n2]
}

// symmetryClasses partitions the atoms by iterative refinement and caches the
// result. Two atoms share a class when their neighbourhoods agree out to the
// refinement depth (3 + sqrt(V) rounds at most).
//
// Implementation:
//   - Stage 1: seed classes from symbol, atomic number, charge, hydrogen
//     count and heavy degree.
//   - Stage 2: each round ranks atoms by (own class, sorted multiset of
//     bond order and neighbour class over heavy neighbours).
//   - Stage 3: stop when a round splits no class or the budget runs out.
//
// Complexity: O(R * (V + E) * log V) for R rounds.
func (c *Classifier) symmetryClasses() []int {
	if c.classes != nil {
		return c.classes
	}
	n := c.s.AtomCount()

	// 1) Seed.
	seed := make([][]int, n)
	for v := 0; v < n; v++ {
		a := c.s.Atom(v)
		seed[v] = []int{a.AtomicNumber, a.Charge, c.hydrogens(v), len(c.heavyBonds(v, -1))}
	}
	class, count := rankAtoms(n, func(a, b int) int {
		if d := strings.Compare(c.s.Atom(a).Symbol, c.s.Atom(b).Symbol); d != 0 {
			return d
		}

		return slices.Compare(seed[a], seed[b])
	})

	// 2-3) Refine.
	keys := make([][]int, n)
	for round := 0; round < c.rounds && count < n; round++ {
		for v := 0; v < n; v++ {
			key := append(keys[v][:0], class[v])
			start := len(key)
			nbrs := c.s.Neighbors(v)
			for k, bi := range c.s.BondsOf(v) {
				if c.isHydrogen(nbrs[k]) {
					continue
				}
				key = append(key, class[nbrs[k]]*orderSpan+int(c.s.Bond(bi).Order))
			}
			slices.Sort(key[start:])
			keys[v] = key
		}
		next, split := rankAtoms(n, func(a, b int) int { return slices.Compare(keys[a], keys[b]) })
		if split == count {
			break
		}
		class, count = next, split
	}
	c.classes = class

	return class
}

// rankAtoms sorts atom indices with cmp and returns dense ranks (equal keys
// share a rank) plus the number of distinct ranks.
func rankAtoms(n int, cmp func(a, b int) int) ([]int, int) {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, cmp)

	rank := make([]int, n)
	count := 0
	for k, v := range idx {
		if k > 0 && cmp(idx[k-1], v) != 0 {
			count++
		}
		rank[v] = count
	}
	if n > 0 {
		count++
	}

	return rank, count
}

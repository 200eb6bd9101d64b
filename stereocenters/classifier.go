// File: classifier.go
// Role: Default stereocentre oracle over a core.Snapshot.
// Determinism:
//   - Classification depends only on the snapshot; atoms are visited in index order.
// Concurrency:
//   - A Classifier belongs to one perception run and is not safe for concurrent use.

package stereocenters

import (
	"math"

	"github.com/katalvlaran/stereo/bfs"
	"github.com/katalvlaran/stereo/core"
	"github.com/katalvlaran/stereo/dfs"
)

// Classifier assigns a geometry Type and a Stereocenter verdict to every atom.
//
// Types are fixed at construction. Verdicts start as Non or Potential and are
// refined once by CheckSymmetry; IsStereocenter answers from whichever state
// the classifier is in.
type Classifier struct {
	s       *core.Snapshot
	types   []Type
	centres []Stereocenter
	checked bool
	rounds  int
	classes []int
}

// New classifies every atom of s. Ring flags on s must already be set when
// ring-dependent verdicts (para centres) are wanted.
//
// Complexity: O(V + E).
func New(s *core.Snapshot) *Classifier {
	n := s.AtomCount()
	c := &Classifier{
		s:       s,
		types:   make([]Type, n),
		centres: make([]Stereocenter, n),
		rounds:  int(3 + math.Sqrt(float64(n))),
	}
	for v := 0; v < n; v++ {
		c.types[v] = c.classify(v)
		c.centres[v] = c.initial(v)
	}

	return c
}

// ElementType returns the geometry class of atom v (Other when out of range).
func (c *Classifier) ElementType(v int) Type {
	if v < 0 || v >= len(c.types) {
		return Other
	}

	return c.types[v]
}

// StereocenterType returns the current verdict for atom v.
func (c *Classifier) StereocenterType(v int) Stereocenter {
	if v < 0 || v >= len(c.centres) {
		return Non
	}

	return c.centres[v]
}

// IsStereocenter reports whether v may carry configuration. Before
// CheckSymmetry any non-Non verdict counts; afterwards only True does.
func (c *Classifier) IsStereocenter(v int) bool {
	if c.checked {
		return c.StereocenterType(v) == True
	}

	return c.StereocenterType(v) != Non
}

// SymmetryChecked reports whether CheckSymmetry has run.
func (c *Classifier) SymmetryChecked() bool { return c.checked }

// counts summarises the bonds at an atom.
type counts struct {
	single, double, triple, aromatic int
}

func (c *Classifier) bondCounts(v int) counts {
	var k counts
	for _, bi := range c.s.BondsOf(v) {
		switch c.s.Bond(bi).Order {
		case core.OrderDouble:
			k.double++
		case core.OrderTriple, core.OrderQuadruple:
			k.triple++
		case core.OrderAromatic:
			k.aromatic++
		default:
			k.single++
		}
	}

	return k
}

// classify derives the geometry class of v from element, charge, connectivity
// (explicit neighbours plus implicit hydrogens) and bond orders.
func (c *Classifier) classify(v int) Type {
	a := c.s.Atom(v)
	if a.AtomicNumber <= 1 {
		return Other
	}
	q := c.s.Degree(v) + c.s.ImplicitH(v)
	k := c.bondCounts(v)
	if k.triple > 0 {
		return Other
	}
	allSingle := k.double == 0 && k.aromatic == 0

	switch q {
	case 4:
		if allSingle {
			switch {
			case a.Charge == 0 && isGroup14(a.AtomicNumber):
				return Tetracoordinate
			case a.Charge == 1 && isGroup15(a.AtomicNumber):
				return Tetracoordinate
			case a.Charge == -1 && a.AtomicNumber == 5:
				return Tetracoordinate
			}
		}
		// P=O, As=O: one double bond, tetrahedral phosphorus.
		if k.double == 1 && k.aromatic == 0 && a.Charge == 0 && (a.AtomicNumber == 15 || a.AtomicNumber == 33) {
			return Tetracoordinate
		}
	case 3:
		if allSingle {
			// Lone pair completes the tetrahedron.
			switch {
			case a.Charge == 0 && (a.AtomicNumber == 15 || a.AtomicNumber == 33):
				return Tetracoordinate
			case a.Charge == 1 && (a.AtomicNumber == 16 || a.AtomicNumber == 34):
				return Tetracoordinate
			}

			return Other
		}
		if k.double == 1 && k.aromatic == 0 {
			switch {
			case a.Charge == 0 && (a.AtomicNumber == 16 || a.AtomicNumber == 34):
				// Sulfoxide / selenoxide.
				return Tetracoordinate
			case a.Charge == 0 && a.AtomicNumber == 6:
				return Tricoordinate
			case a.Charge == 1 && a.AtomicNumber == 7:
				return Tricoordinate
			}
		}
		if k.double == 0 && k.aromatic >= 2 && a.AtomicNumber == 6 {
			return Tricoordinate
		}
	case 2:
		if k.double == 2 && a.AtomicNumber == 6 {
			return Bicoordinate
		}
		if k.double == 1 && k.aromatic == 0 && a.Charge == 0 && a.AtomicNumber == 7 {
			return Tricoordinate
		}
	}

	return Other
}

func isGroup14(z int) bool { return z == 6 || z == 14 || z == 32 || z == 50 }

func isGroup15(z int) bool { return z == 7 || z == 15 || z == 33 }

// initial is the verdict before symmetry checking: geometry alone, plus the
// cheap "two hydrogens" exclusion.
func (c *Classifier) initial(v int) Stereocenter {
	switch c.types[v] {
	case Tetracoordinate, Tricoordinate:
		if c.hydrogens(v) >= 2 {
			return Non
		}

		return Potential
	case Bicoordinate:
		return Potential
	default:
		return Non
	}
}

// isHydrogen reports whether atom v is an explicit terminal hydrogen.
func (c *Classifier) isHydrogen(v int) bool {
	return c.s.Atom(v).AtomicNumber == 1 && c.s.Degree(v) == 1
}

// hydrogens counts implicit plus explicit terminal hydrogens on v.
func (c *Classifier) hydrogens(v int) int {
	h := c.s.ImplicitH(v)
	for _, w := range c.s.Neighbors(v) {
		if c.isHydrogen(w) {
			h++
		}
	}

	return h
}

// heavyBonds returns the bonds at v that do not lead to an explicit hydrogen,
// skipping the bond 'except' (-1 for none).
func (c *Classifier) heavyBonds(v, except int) []int {
	var out []int
	nbrs := c.s.Neighbors(v)
	for k, bi := range c.s.BondsOf(v) {
		if bi == except || c.isHydrogen(nbrs[k]) {
			continue
		}
		out = append(out, bi)
	}

	return out
}

// CheckSymmetry refines every Potential verdict by comparing substituent
// branches. It runs once; later calls are no-ops.
//
// Implementation:
//   - Stage 1: Tetracoordinate atoms: all branches distinct => True; exactly one
//     pair of equivalent ring branches => Para; otherwise Non.
//   - Stage 2: Tricoordinate atoms: the substituents away from the double bond
//     must be present and distinct.
//   - Stage 3: Para atoms are promoted to True when another True or Para
//     tetracoordinate atom shares their ring system, else demoted to Non.
//   - Stage 4: Bicoordinate atoms take True only when both ends of their
//     cumulated chain are True.
func (c *Classifier) CheckSymmetry() {
	if c.checked {
		return
	}
	c.checked = true

	// 1-2) Local branch comparison.
	for v := range c.centres {
		if c.centres[v] != Potential {
			continue
		}
		switch c.types[v] {
		case Tetracoordinate:
			c.centres[v] = c.tetrahedralVerdict(v)
		case Tricoordinate:
			c.centres[v] = c.planarVerdict(v)
		}
	}

	// 3) Para centres need a partner in the same ring system.
	c.resolvePara()

	// 4) Cumulated centres follow their terminals.
	for v := range c.centres {
		if c.types[v] == Bicoordinate && c.centres[v] == Potential {
			c.centres[v] = c.cumulatedVerdict(v)
		}
	}
}

func (c *Classifier) tetrahedralVerdict(v int) Stereocenter {
	branches := c.heavyBonds(v, -1)
	var equal [][2]int
	for i := 0; i < len(branches); i++ {
		for j := i + 1; j < len(branches); j++ {
			if c.SameBranch(v, branches[i], branches[j]) {
				equal = append(equal, [2]int{branches[i], branches[j]})
			}
		}
	}
	if len(equal) == 0 {
		return True
	}
	if len(equal) == 1 && c.s.Atom(v).InRing &&
		c.s.Bond(equal[0][0]).InRing && c.s.Bond(equal[0][1]).InRing {
		return Para
	}

	return Non
}

func (c *Classifier) planarVerdict(v int) Stereocenter {
	// Aryl carbons (no explicit double bond) only serve atropisomer axes.
	partner := -1
	for _, bi := range c.s.BondsOf(v) {
		if c.s.Bond(bi).Order == core.OrderDouble {
			partner = bi
			break
		}
	}
	if partner < 0 {
		return Non
	}

	subs := c.heavyBonds(v, partner)
	switch {
	case len(subs) == 0:
		return Non
	case len(subs) == 2 && c.SameBranch(v, subs[0], subs[1]):
		return Non
	default:
		return True
	}
}

// resolvePara promotes or demotes Para verdicts by ring system.
func (c *Classifier) resolvePara() {
	system := c.ringSystems()
	for v, sc := range c.centres {
		if sc != Para {
			continue
		}
		partnered := false
		for w, other := range c.centres {
			if w != v && system[w] >= 0 && system[w] == system[v] &&
				c.types[w] == Tetracoordinate && (other == Para || other == True) {
				partnered = true
				break
			}
		}
		if partnered {
			c.centres[v] = True
		} else {
			c.centres[v] = Non
		}
	}
}

// ringSystems labels every ring atom with the id of its ring system (atoms
// connected through ring bonds); acyclic atoms get -1.
func (c *Classifier) ringSystems() []int {
	inRing := func(v int) bool { return c.s.Atom(v).InRing }
	label, err := bfs.Components(c.s, inRing, bfs.WithFilterBond(func(bond, _, _ int) bool {
		return c.s.Bond(bond).InRing
	}))
	if err != nil {
		// Only a nil snapshot fails, and New never builds one.
		label = make([]int, c.s.AtomCount())
		for i := range label {
			label[i] = -1
		}
	}

	return label
}

// cumulatedVerdict walks both double bonds of a cumulated centre to the chain
// terminals and requires both to be True.
func (c *Classifier) cumulatedVerdict(v int) Stereocenter {
	ends := 0
	nbrs := c.s.Neighbors(v)
	for k, bi := range c.s.BondsOf(v) {
		if c.s.Bond(bi).Order != core.OrderDouble {
			continue
		}
		t := c.chainTerminal(nbrs[k], v)
		if t < 0 || c.centres[t] != True {
			return Non
		}
		ends++
	}
	if ends != 2 {
		return Non
	}

	return True
}

// chainTerminal follows double bonds from atom (entered from prev) through
// further cumulated centres and returns the first non-cumulated atom, or -1.
func (c *Classifier) chainTerminal(atom, prev int) int {
	seen := map[int]bool{prev: true}
	for c.types[atom] == Bicoordinate {
		if seen[atom] {
			return -1
		}
		seen[atom] = true
		next := -1
		nbrs := c.s.Neighbors(atom)
		for k, bi := range c.s.BondsOf(atom) {
			if nbrs[k] != prev && c.s.Bond(bi).Order == core.OrderDouble {
				next = nbrs[k]
			}
		}
		if next < 0 {
			return -1
		}
		prev, atom = atom, next
	}

	return atom
}

// NewWithRings marks ring membership on s and then classifies it. Use it when
// the snapshot has not been through ring marking yet.
func NewWithRings(s *core.Snapshot) (*Classifier, error) {
	if _, err := dfs.MarkSnapshotRings(s); err != nil {
		return nil, err
	}

	return New(s), nil
}

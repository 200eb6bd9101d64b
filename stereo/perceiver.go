// File: perceiver.go
// Role: Perception driver and per-feature entry points.
// Determinism:
//   - Atoms are visited in index order; output order is projection results,
//     first-pass elements by atom, then double bonds by atom.
// Concurrency:
//   - A Perceiver works on its own snapshot and oracle and is not safe for
//     concurrent use. Separate Perceivers over one Molecule may run in
//     parallel when WithPrivateRings is set.

package stereo

import (
	"fmt"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/stereo/core"
	"github.com/katalvlaran/stereo/dfs"
	"github.com/katalvlaran/stereo/stereocenters"
)

// Ring size limits used by the driver.
const (
	// atropisomerRingLimit: both axis atoms must sit in a ring this small
	// and the axis itself must not.
	atropisomerRingLimit = 6
	// doubleBondRingLimit: double bonds in rings this small are never
	// stereogenic.
	doubleBondRingLimit = 7
)

// Perceiver perceives stereo elements of one molecule under one coordinate
// model. The molecule is copied at construction; later edits are not seen.
type Perceiver struct {
	s       *core.Snapshot
	model   CoordinateModel
	creator featureCreator
	oracle  Oracle
	opts    Options
	// checked is a symmetry-checked oracle for DoubleBond while oracle is
	// still unrefined.
	checked Oracle
}

// NewPerceiver snapshots mol, marks rings and builds the oracle.
//
// Ring flags are copied back to mol unless WithPrivateRings is given; a
// failure to do so is logged and does not stop perception. 3D models always
// check symmetry. When symmetry checking is on the oracle is refined here,
// before any element is created.
//
// Errors:
//   - ErrNilMolecule, ErrNilModel.
//   - dfs errors from ring marking.
func NewPerceiver(mol *core.Molecule, model CoordinateModel, opts ...Option) (*Perceiver, error) {
	if mol == nil {
		return nil, ErrNilMolecule
	}
	if model == nil {
		return nil, ErrNilModel
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if model.Dimension() == Dim3D {
		o.CheckSymmetry = true
	}

	// 1) Private snapshot with ring flags.
	s := mol.Snapshot()
	rings, err := dfs.MarkSnapshotRings(s)
	if err != nil {
		return nil, fmt.Errorf("stereo: marking rings: %w", err)
	}
	if !o.PrivateRings {
		if err := mol.SetRingMembership(rings.Atoms, rings.Bonds); err != nil {
			klog.Warningf("stereo: ring flags not copied back: %v", err)
		}
	}

	// 2) Oracle.
	p := &Perceiver{
		s:       s,
		model:   model,
		creator: creatorFor(model.Dimension()),
		oracle:  o.Oracle(s),
		opts:    o,
	}
	if o.CheckSymmetry {
		p.checkSymmetry()
	}

	return p, nil
}

// Perceive is NewPerceiver followed by All, using the model for d.
func Perceive(mol *core.Molecule, d Dimension, opts ...Option) ([]Element, error) {
	p, err := NewPerceiver(mol, ModelFor(d), opts...)
	if err != nil {
		return nil, err
	}

	return p.All(), nil
}

// Snapshot returns the ring-marked copy the Perceiver works on.
func (p *Perceiver) Snapshot() *core.Snapshot { return p.s }

// Oracle returns the stereocentre oracle of this run.
func (p *Perceiver) Oracle() Oracle { return p.oracle }

// symmetricOracle returns the run's oracle once it is refined, else a
// separate checked oracle built on first use.
func (p *Perceiver) symmetricOracle() Oracle {
	if p.oracle.SymmetryChecked() {
		return p.oracle
	}
	if p.checked == nil {
		p.checked = p.opts.Oracle(p.s)
		p.checked.CheckSymmetry()
	}

	return p.checked
}

func (p *Perceiver) checkSymmetry() {
	if !p.oracle.SymmetryChecked() {
		klog.V(2).Infof("stereo: checking symmetry")
	}
	p.oracle.CheckSymmetry()
}

// All perceives every stereo element.
//
// Implementation:
//   - Stage 1: projection elements from the Recognizer, when enabled.
//   - Stage 2: first pass over atoms by geometry type: cumulenes from
//     bicoordinate atoms, tetrahedral centres, atropisomer axes between
//     tricoordinate ring atoms.
//   - Stage 3: refine the oracle with CheckSymmetry.
//   - Stage 4: second pass: double bonds between confirmed tricoordinate
//     stereocentres outside small rings.
//
// An element whose focus is already taken is dropped, so no atom or bond
// carries more than one element.
//
// Complexity: O(V·d + E) plus the bounded ring searches.
func (p *Perceiver) All() []Element {
	s := p.s
	out := make([]Element, 0)
	claimed := make(map[Focus]bool)
	add := func(e Element) {
		if e == nil {
			return
		}
		if f := e.Focus(); !claimed[f] {
			claimed[f] = true
			out = append(out, e)
		}
	}

	// 1) Projections.
	if len(p.opts.Projections) > 0 && p.opts.Recognizer != nil {
		for _, e := range p.opts.Recognizer.Recognise(s, p.oracle, p.opts.Projections) {
			add(e)
		}
	}

	// 2) First pass.
	for v := 0; v < s.AtomCount(); v++ {
		switch p.oracle.ElementType(v) {
		case stereocenters.Bicoordinate:
			for _, w := range s.Neighbors(v) {
				if p.oracle.ElementType(w) != stereocenters.Tricoordinate {
					continue
				}
				chain := canonicalChain(s, s.BondIndex(v, w))
				if chain == nil {
					continue
				}
				add(p.cumulated(chain))
				break
			}
		case stereocenters.Tetracoordinate:
			add(p.creator.tetrahedral(p, v))
		case stereocenters.Tricoordinate:
			bonds := s.BondsOf(v)
			for i, w := range s.Neighbors(v) {
				if w > v && p.atropisomerAxis(bonds[i]) {
					add(p.creator.atropisomer(p, v, w))
					break
				}
			}
		}
	}

	// 3) Refine.
	p.checkSymmetry()

	// 4) Second pass.
	for v := 0; v < s.AtomCount(); v++ {
		if p.oracle.ElementType(v) != stereocenters.Tricoordinate || !p.oracle.IsStereocenter(v) {
			continue
		}
		bonds := s.BondsOf(v)
		for i, w := range s.Neighbors(v) {
			if w < v || s.Bond(bonds[i]).Order != core.OrderDouble {
				continue
			}
			if p.doubleBondCandidate(p.oracle, bonds[i]) {
				add(p.doubleBond(v, w))
			}
			break
		}
	}

	klog.V(1).Infof("stereo: %d elements from %d atoms (%s)", len(out), s.AtomCount(), p.model.Dimension())

	return out
}

// cumulated dispatches a chain: even length makes an extended tetrahedral
// centre on the middle atom, odd length an extended cis/trans on the middle
// bond.
func (p *Perceiver) cumulated(chain []int) Element {
	path := chainPath(p.s, chain)
	if len(chain)%2 == 0 {
		mid := len(chain) / 2
		ends := [2]int{path[0], path[len(path)-1]}

		return p.creator.extendedTetrahedral(p, path[mid], ends)
	}

	return p.extendedCisTrans(chain, path)
}

// atropisomerAxis reports whether bond joins two tricoordinate ring atoms by
// a single bond outside any small ring.
func (p *Perceiver) atropisomerAxis(bond int) bool {
	b := p.s.Bond(bond)
	if b == nil || b.Order != core.OrderSingle {
		return false
	}
	if p.oracle.ElementType(b.Begin) != stereocenters.Tricoordinate ||
		p.oracle.ElementType(b.End) != stereocenters.Tricoordinate {
		return false
	}

	return !dfs.InSmallRing(p.s, bond, atropisomerRingLimit) &&
		dfs.AtomInSmallRing(p.s, b.Begin, atropisomerRingLimit) &&
		dfs.AtomInSmallRing(p.s, b.End, atropisomerRingLimit)
}

// doubleBondCandidate reports whether a double bond joins two tricoordinate
// stereocentres of oracle and is not held in a small ring.
func (p *Perceiver) doubleBondCandidate(oracle Oracle, bond int) bool {
	b := p.s.Bond(bond)
	for _, a := range [2]int{b.Begin, b.End} {
		if oracle.ElementType(a) != stereocenters.Tricoordinate || !oracle.IsStereocenter(a) {
			return false
		}
	}

	return !dfs.InSmallRing(p.s, bond, doubleBondRingLimit)
}

// Tetrahedral perceives a tetrahedral centre at atom v, applying the same
// rules as All.
//
// Errors:
//   - ErrInvalidArgument: v out of range or not 3- or 4-connected.
func (p *Perceiver) Tetrahedral(v int) (Element, error) {
	if v < 0 || v >= p.s.AtomCount() {
		return nil, fmt.Errorf("%w: atom %d out of range", ErrInvalidArgument, v)
	}
	if d := p.s.Degree(v); d < 3 || d > 4 {
		return nil, fmt.Errorf("%w: atom %d has %d neighbours, want 3 or 4", ErrInvalidArgument, v, d)
	}
	if p.oracle.ElementType(v) != stereocenters.Tetracoordinate {
		return rejectAtom(v, "not tetracoordinate"), nil
	}

	return p.creator.tetrahedral(p, v), nil
}

// DoubleBond perceives cis/trans isomerism of a double bond. Its ends are
// judged by a symmetry-checked oracle, as they are in the double bond pass of
// All. When the run's oracle is not refined yet a second oracle is built and
// checked for this purpose, so calling DoubleBond does not change what a later
// All reports.
//
// Errors:
//   - ErrInvalidArgument: bond out of range or not a double bond.
func (p *Perceiver) DoubleBond(bond int) (Element, error) {
	b, err := p.bondOfOrder(bond, core.OrderDouble)
	if err != nil {
		return nil, err
	}
	if !p.doubleBondCandidate(p.symmetricOracle(), bond) {
		return rejectBond(bond, "ends are not stereocentres or the bond is in a small ring"), nil
	}
	u, v := min(b.Begin, b.End), max(b.Begin, b.End)

	return p.doubleBond(u, v), nil
}

// ExtendedTetrahedral perceives an allene-like centre on the middle atom v of
// an even cumulated chain.
//
// Errors:
//   - ErrInvalidArgument: v out of range or not two double bonds.
func (p *Perceiver) ExtendedTetrahedral(v int) (Element, error) {
	if v < 0 || v >= p.s.AtomCount() {
		return nil, fmt.Errorf("%w: atom %d out of range", ErrInvalidArgument, v)
	}
	bonds := p.s.BondsOf(v)
	if len(bonds) != 2 || p.s.Bond(bonds[0]).Order != core.OrderDouble || p.s.Bond(bonds[1]).Order != core.OrderDouble {
		return nil, fmt.Errorf("%w: atom %d is not a cumulated centre", ErrInvalidArgument, v)
	}
	chain := canonicalChain(p.s, bonds[0])
	if len(chain) == 0 || len(chain)%2 != 0 {
		return rejectAtom(v, "not the centre of an even cumulene"), nil
	}
	path := chainPath(p.s, chain)
	if path[len(chain)/2] != v {
		return rejectAtom(v, "not the centre of an even cumulene"), nil
	}

	return p.creator.extendedTetrahedral(p, v, [2]int{path[0], path[len(path)-1]}), nil
}

// ExtendedCisTrans perceives cis/trans isomerism on the middle bond of an odd
// cumulated chain.
//
// Errors:
//   - ErrInvalidArgument: bond out of range or not a double bond.
func (p *Perceiver) ExtendedCisTrans(bond int) (Element, error) {
	if _, err := p.bondOfOrder(bond, core.OrderDouble); err != nil {
		return nil, err
	}
	chain := canonicalChain(p.s, bond)
	if len(chain)%2 == 0 || chain[len(chain)/2] != bond {
		return rejectBond(bond, "not the middle of an odd cumulene"), nil
	}

	return p.extendedCisTrans(chain, chainPath(p.s, chain)), nil
}

// Atropisomer perceives axial chirality about a single bond.
//
// Errors:
//   - ErrInvalidArgument: bond out of range, not single, or an end that is
//     not 3-connected.
func (p *Perceiver) Atropisomer(bond int) (Element, error) {
	b, err := p.bondOfOrder(bond, core.OrderSingle)
	if err != nil {
		return nil, err
	}
	if p.s.Degree(b.Begin) != 3 || p.s.Degree(b.End) != 3 {
		return nil, fmt.Errorf("%w: bond %d ends must be 3-connected", ErrInvalidArgument, bond)
	}
	if !p.atropisomerAxis(bond) {
		return rejectBond(bond, "not a biaryl axis"), nil
	}

	return p.creator.atropisomer(p, min(b.Begin, b.End), max(b.Begin, b.End)), nil
}

func (p *Perceiver) bondOfOrder(bond int, order core.Order) (*core.Bond, error) {
	b := p.s.Bond(bond)
	if b == nil {
		return nil, fmt.Errorf("%w: bond %d out of range", ErrInvalidArgument, bond)
	}
	if b.Order != order {
		return nil, fmt.Errorf("%w: bond %d is %s, want %s", ErrInvalidArgument, bond, b.Order, order)
	}

	return b, nil
}

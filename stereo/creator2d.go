// File: creator2d.go
// Role: Element creation from 2D coordinates and wedge annotations.
// Determinism:
//   - Depends only on the snapshot, the options and the oracle state.
// Concurrency:
//   - Single run only; may call Oracle.CheckSymmetry.

package stereo

import (
	"github.com/katalvlaran/stereo/core"
	"github.com/katalvlaran/stereo/stereocenters"
)

type planarCreator struct{}

// tetrahedral perceives a centre at v from wedges.
//
// Implementation:
//   - Stage 1: gate on the unspecified marker and, when symmetry checking
//     is on, the oracle.
//   - Stage 2: collect carriers and elevations; wavy bonds reject.
//   - Stage 3: strict mode validates the wedge pattern.
//   - Stage 4: lenient mode reads a hatch whose narrow end is away from v
//     as lowering that neighbour, unless the far atom is itself a centre.
//   - Stage 5: parity; no elevation or a parity within threshold rejects.
func (planarCreator) tetrahedral(p *Perceiver, v int) Element {
	s := p.s
	// 1) Gates.
	if unspecifiedParity(s, v) {
		return rejectAtom(v, "configuration marked unspecified")
	}
	if p.opts.CheckSymmetry && !p.oracle.IsStereocenter(v) {
		return rejectAtom(v, "not a stereocentre")
	}

	// 2) Carriers.
	if d := s.Degree(v); d < 3 || d > 4 {
		return rejectAtom(v, "needs 3 or 4 neighbours")
	}
	carriers, elev, ok := p.neighbourhood(v)
	if !ok {
		return rejectAtom(v, "wavy bond")
	}
	nonplanar := elev != [4]int{}

	// 3) Strict layout check.
	if p.opts.Strict && !p.verifyWedgePattern(v, carriers, elev) {
		return nil
	}

	// 4) Inverted hatch fallback.
	if !nonplanar && !p.opts.Strict {
		bonds := s.BondsOf(v)
		for i, w := range s.Neighbors(v) {
			bi := bonds[i]
			switch s.Bond(bi).Stereo {
			case core.StereoDown, core.StereoDownInverted:
				if p.oracle.StereocenterType(w) != stereocenters.Non {
					p.checkSymmetry()
					if p.oracle.IsStereocenter(w) {
						layoutErrorf("stereo: hatch bond %d between stereocentres %d and %d is ambiguous", bi, v, w)
						return nil
					}
				}
				layoutWarningf("stereo: hatch bond %d points at atom %d, reading atom %d as below the plane", bi, v, w)
				elev[i] = -1
				nonplanar = true
			case core.StereoUp, core.StereoUpInverted:
				layoutWarningf("stereo: wedge bond %d points at atom %d, ignoring centre", bi, v)
				return nil
			}
		}
	}
	if !nonplanar {
		return rejectAtom(v, "all neighbours in plane")
	}

	// 5) Parity.
	par := p.model.TetrahedralParity(s, []int{v}, carriers, elev)
	if par == 0 {
		return rejectAtom(v, "parity below threshold")
	}

	return Tetrahedral{Atom: v, Carriers: carriers, Winding: windingOf(par)}
}

// extendedTetrahedral perceives an allene-like axis centred on focus with
// terminals ends. Elevation must come from the substituents of one terminal.
func (planarCreator) extendedTetrahedral(p *Perceiver, focus int, ends [2]int) Element {
	s := p.s
	if unspecifiedParity(s, focus) {
		return rejectAtom(focus, "configuration marked unspecified")
	}
	if !p.terminalStereocentres(ends) {
		return rejectAtom(focus, "cumulene terminal is not a stereocentre")
	}
	carriers, elev, ok := p.cumulatedCarriers(ends)
	if !ok {
		return rejectAtom(focus, "terminal substituents missing, wavy or too many")
	}
	if !oneSided(elev) {
		return rejectAtom(focus, "wedges must mark exactly one terminal")
	}
	par := p.model.TetrahedralParity(s, []int{focus}, carriers, elev)
	if par == 0 {
		return rejectAtom(focus, "parity below threshold")
	}

	return ExtendedTetrahedral{Atom: focus, Carriers: carriers, Winding: windingOf(par)}
}

// atropisomer perceives a hindered axis u-v. Wedges must mark the carriers
// of one side only; the parity is taken about the axis midpoint.
func (planarCreator) atropisomer(p *Perceiver, u, v int) Element {
	s := p.s
	bond := s.BondIndex(u, v)
	if unspecifiedParity(s, u) || unspecifiedParity(s, v) {
		return rejectBond(bond, "configuration marked unspecified")
	}
	if s.Degree(u) != 3 || s.Degree(v) != 3 {
		return rejectBond(bond, "axis atoms must be 3-connected")
	}
	carriers, elev, ok := p.axisCarriers(u, v)
	if !ok {
		return rejectBond(bond, "insufficient ortho substitution")
	}
	if !oneSided(elev) {
		return rejectBond(bond, "wedges must mark exactly one ring")
	}
	par := p.model.TetrahedralParity(s, []int{u, v}, carriers, elev)
	if par == 0 {
		return rejectBond(bond, "parity below threshold")
	}

	return Atropisomer{Bond: bond, Ends: [2]int{u, v}, Carriers: carriers, Axial: axialOf(par)}
}

// File: creator3d.go
// Role: Element creation from 3D coordinates.
// Determinism:
//   - Depends only on the snapshot and the oracle state.
// Concurrency:
//   - Single run only.

package stereo

import "math"

type spatialCreator struct{}

// tetrahedral perceives a centre at v from the signed volume of its
// carriers. The oracle must confirm v.
func (spatialCreator) tetrahedral(p *Perceiver, v int) Element {
	s := p.s
	if !p.oracle.IsStereocenter(v) {
		return rejectAtom(v, "not a stereocentre")
	}
	if unspecifiedParity(s, v) {
		return rejectAtom(v, "configuration marked unspecified")
	}
	if d := s.Degree(v); d < 3 || d > 4 {
		return rejectAtom(v, "needs 3 or 4 neighbours")
	}
	carriers, elev, ok := p.neighbourhood(v)
	if !ok {
		return rejectAtom(v, "wavy bond")
	}
	par := p.model.TetrahedralParity(s, []int{v}, carriers, elev)
	if par == 0 {
		return rejectAtom(v, "flat or missing coordinates")
	}

	return Tetrahedral{Atom: v, Carriers: carriers, Winding: windingOf(par)}
}

// extendedTetrahedral requires a straight cumulene: the terminals must sit
// on opposite sides of the 2-connected focus.
func (spatialCreator) extendedTetrahedral(p *Perceiver, focus int, ends [2]int) Element {
	s := p.s
	if s.Degree(focus) != 2 {
		return rejectAtom(focus, "cumulene centre must be 2-connected")
	}
	if unspecifiedParity(s, focus) {
		return rejectAtom(focus, "configuration marked unspecified")
	}
	if !p.terminalStereocentres(ends) {
		return rejectAtom(focus, "cumulene terminal is not a stereocentre")
	}
	cos, ok := p.model.UnitDot(s, focus, ends[0], focus, ends[1])
	if !ok {
		return rejectAtom(focus, "missing coordinates")
	}
	if math.Abs(cos+1) >= colinearTolerance {
		return rejectAtom(focus, "cumulene is kinked")
	}
	carriers, elev, ok := p.cumulatedCarriers(ends)
	if !ok {
		return rejectAtom(focus, "terminal substituents missing, wavy or too many")
	}
	par := p.model.TetrahedralParity(s, []int{focus}, carriers, elev)
	if par == 0 {
		return rejectAtom(focus, "flat or missing coordinates")
	}

	return ExtendedTetrahedral{Atom: focus, Carriers: carriers, Winding: windingOf(par)}
}

// atropisomer perceives a hindered axis u-v from the volume of its four
// carriers.
func (spatialCreator) atropisomer(p *Perceiver, u, v int) Element {
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
	par := p.model.TetrahedralParity(s, []int{u, v}, carriers, elev)
	if par == 0 {
		return rejectBond(bond, "flat or missing coordinates")
	}

	return Atropisomer{Bond: bond, Ends: [2]int{u, v}, Carriers: carriers, Axial: axialOf(par)}
}
